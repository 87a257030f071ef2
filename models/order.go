package models

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is a customer order. The money fields satisfy
// Total = Subtotal + ShippingFee - Discount after every write; callers
// go through RecalculateTotal rather than assigning Total directly.
type Order struct {
	ID          int             `gorm:"primary_key" json:"id"`
	CustomerId  int             `gorm:"not null;index" json:"customer_id"`
	Customer    Customer        `gorm:"constraint:OnDelete:RESTRICT" json:"customer"`
	StatusId    int             `gorm:"not null;index" json:"status_id"`
	Status      OrderStatus     `gorm:"constraint:OnDelete:RESTRICT" json:"status"`
	OrderDate   time.Time       `gorm:"type:date;not null;index" json:"order_date"`
	Notes       string          `gorm:"type:text" json:"notes"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"subtotal"`
	ShippingFee decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"shipping_fee"`
	Discount    decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"discount"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	Items       []OrderItem     `gorm:"foreignKey:OrderId" json:"items"`
}

type OrderItem struct {
	ID        int             `gorm:"primary_key" json:"id"`
	OrderId   int             `gorm:"not null;index" json:"order_id"`
	Order     *Order          `gorm:"constraint:OnDelete:CASCADE" json:"order"`
	SkuId     int             `gorm:"not null;index" json:"sku_id"`
	Sku       ProductSKU      `gorm:"constraint:OnDelete:RESTRICT" json:"sku"`
	Qty       int             `gorm:"not null" json:"qty"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	LineTotal decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"line_total"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// OrderStatusHistory is a write-only audit trail of status
// transitions. Nothing in this package reads it back.
type OrderStatusHistory struct {
	ID           int         `gorm:"primary_key" json:"id"`
	OrderId      int         `gorm:"not null;index" json:"order_id"`
	Order        *Order      `gorm:"constraint:OnDelete:CASCADE" json:"order"`
	FromStatusId int         `gorm:"not null" json:"from_status_id"`
	FromStatus   OrderStatus `gorm:"foreignKey:FromStatusId;constraint:OnDelete:RESTRICT" json:"from_status"`
	ToStatusId   int         `gorm:"not null" json:"to_status_id"`
	ToStatus     OrderStatus `gorm:"foreignKey:ToStatusId;constraint:OnDelete:RESTRICT" json:"to_status"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (o *Order) RecalculateTotal() {
	o.Total = o.Subtotal.Add(o.ShippingFee).Sub(o.Discount)
}

// ChangeOrderStatus moves the order to the status identified by code
// and appends an OrderStatusHistory row for the transition. Setting
// the same status again is a no-op and leaves no history entry.
func ChangeOrderStatus(ctx context.Context, tx *gorm.DB, order *Order, toStatusCode string) error {
	var toStatus OrderStatus
	if err := tx.WithContext(ctx).Where("code = ?", toStatusCode).First(&toStatus).Error; err != nil {
		return fmt.Errorf("order status %q: %w", toStatusCode, err)
	}
	if toStatus.ID == order.StatusId {
		return nil
	}

	history := OrderStatusHistory{
		OrderId:      order.ID,
		FromStatusId: order.StatusId,
		ToStatusId:   toStatus.ID,
	}
	if err := tx.WithContext(ctx).Create(&history).Error; err != nil {
		return err
	}

	if err := tx.WithContext(ctx).Model(&Order{}).Where("id = ?", order.ID).
		Update("status_id", toStatus.ID).Error; err != nil {
		return err
	}
	order.StatusId = toStatus.ID
	order.Status = toStatus
	return nil
}
