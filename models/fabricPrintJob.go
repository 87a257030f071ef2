package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FabricPrintJob records a conversion of raw fabric into printed
// fabric. It is purely a log: fabric balances are not debited or
// credited here.
type FabricPrintJob struct {
	ID                    int             `gorm:"primary_key" json:"id"`
	PrintPatternId        int             `gorm:"not null" json:"print_pattern_id"`
	PrintPattern          PrintPattern    `gorm:"constraint:OnDelete:RESTRICT" json:"print_pattern"`
	InputFabricMaterialId int             `gorm:"not null" json:"input_fabric_material_id"`
	InputFabricMaterial   FabricMaterial  `gorm:"foreignKey:InputFabricMaterialId;constraint:OnDelete:RESTRICT" json:"input_fabric_material"`
	InputQty              decimal.Decimal `gorm:"type:decimal(14,3);not null" json:"input_qty"`
	OutputFabricMaterialId int            `gorm:"not null" json:"output_fabric_material_id"`
	OutputFabricMaterial  FabricMaterial  `gorm:"foreignKey:OutputFabricMaterialId;constraint:OnDelete:RESTRICT" json:"output_fabric_material"`
	OutputQty             decimal.Decimal `gorm:"type:decimal(14,3);not null" json:"output_qty"`
	PrintCost             decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"print_cost"`
	CreatedAt             time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// CreateFabricPrintJob logs a raw-to-printed conversion after checking
// that the materials make sense: the input must be raw fabric and the
// output must be printed with the job's own pattern.
func CreateFabricPrintJob(ctx context.Context, tx *gorm.DB, job *FabricPrintJob) error {
	if !job.InputQty.IsPositive() || !job.OutputQty.IsPositive() {
		return errors.New("print job quantities must be positive")
	}

	var input FabricMaterial
	if err := tx.WithContext(ctx).First(&input, job.InputFabricMaterialId).Error; err != nil {
		return fmt.Errorf("input fabric material: %w", err)
	}
	if input.IsPrinted {
		return errors.New("input fabric material must be raw (not printed)")
	}

	var output FabricMaterial
	if err := tx.WithContext(ctx).First(&output, job.OutputFabricMaterialId).Error; err != nil {
		return fmt.Errorf("output fabric material: %w", err)
	}
	if !output.IsPrinted || output.PrintPatternId == nil || *output.PrintPatternId != job.PrintPatternId {
		return errors.New("output fabric material must be printed with the job's pattern")
	}

	return tx.WithContext(ctx).Create(job).Error
}
