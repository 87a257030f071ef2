package seeder

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// Amount is a raw money or quantity value from the fixture. Operators
// hand-edit these files, so both JSON numbers and strings are
// accepted. Parsing to decimal is deferred to use time so the error
// can carry the field name.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*a = Amount(strings.TrimSpace(v))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

// Fixture is the seed document. Every key is optional; a missing key
// seeds nothing for that table.
type Fixture struct {
	ProductSizes       []ProductSizeRecord       `json:"product_sizes" validate:"omitempty,dive"`
	FabricTypes        []FabricTypeRecord        `json:"fabric_types" validate:"omitempty,dive"`
	PrintPatterns      []PrintPatternRecord      `json:"print_patterns" validate:"omitempty,dive"`
	InventoryLocations []InventoryLocationRecord `json:"inventory_locations" validate:"omitempty,dive"`
	OrderStatuses      []OrderStatusRecord       `json:"order_statuses" validate:"omitempty,dive"`
	Customers          []CustomerRecord          `json:"customers" validate:"omitempty,dive"`
	ExpenseTypes       []ExpenseTypeRecord       `json:"expense_types" validate:"omitempty,dive"`
	ProductSKUs        []ProductSKURecord        `json:"product_skus" validate:"omitempty,dive"`
	InventoryBalances  []InventoryBalanceRecord  `json:"inventory_balances" validate:"omitempty,dive"`
	FabricMaterials    []FabricMaterialRecord    `json:"fabric_materials" validate:"omitempty,dive"`
	FabricInventory    []FabricInventoryRecord   `json:"fabric_inventory" validate:"omitempty,dive"`
	Orders             []OrderRecord             `json:"orders" validate:"omitempty,dive"`
	Expenses           []ExpenseRecord           `json:"expenses" validate:"omitempty,dive"`
}

type ProductSizeRecord struct {
	Code        string `json:"code" validate:"required"`
	DisplayName string `json:"display_name"`
}

type FabricTypeRecord struct {
	Name     string `json:"name" validate:"required"`
	IsActive *bool  `json:"is_active"`
}

type PrintPatternRecord struct {
	Name     string `json:"name" validate:"required"`
	IsActive *bool  `json:"is_active"`
}

type InventoryLocationRecord struct {
	Name string `json:"name" validate:"required"`
}

type OrderStatusRecord struct {
	Code        string `json:"code" validate:"required"`
	DisplayName string `json:"display_name"`
	SortOrder   int    `json:"sort_order"`
}

type CustomerRecord struct {
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

type ExpenseTypeRecord struct {
	Name string `json:"name" validate:"required"`
}

// SKURef is embedded wherever a record addresses a SKU by its
// dimension triple. A nil PrintPattern means plain.
type SKURef struct {
	SizeCode     string  `json:"size_code" validate:"required"`
	FabricType   string  `json:"fabric_type" validate:"required"`
	PrintPattern *string `json:"print_pattern"`
}

type ProductSKURecord struct {
	SKURef
	UnitPrice Amount `json:"unit_price"`
	IsActive  *bool  `json:"is_active"`
}

type InventoryBalanceRecord struct {
	SKURef
	Location     string `json:"location" validate:"required"`
	QtyOnHand    int    `json:"qty_on_hand"`
	ReorderLevel int    `json:"reorder_level" validate:"gte=0"`
}

type FabricMaterialRecord struct {
	FabricType   string  `json:"fabric_type" validate:"required"`
	Uom          string  `json:"uom"`
	IsPrinted    *bool   `json:"is_printed"`
	PrintPattern *string `json:"print_pattern"`
}

type FabricInventoryRecord struct {
	FabricType   string  `json:"fabric_type" validate:"required"`
	Uom          string  `json:"uom"`
	IsPrinted    *bool   `json:"is_printed"`
	PrintPattern *string `json:"print_pattern"`
	Location     string  `json:"location" validate:"required"`
	QtyOnHand    Amount  `json:"qty_on_hand"`
}

type OrderRecord struct {
	Customer    string            `json:"customer" validate:"required"`
	Status      string            `json:"status" validate:"required"`
	OrderDate   string            `json:"order_date" validate:"required"`
	Notes       string            `json:"notes"`
	ShippingFee Amount            `json:"shipping_fee"`
	Discount    Amount            `json:"discount"`
	Items       []OrderItemRecord `json:"items" validate:"omitempty,dive"`
}

type OrderItemRecord struct {
	SKURef
	Qty       int    `json:"qty" validate:"gte=1"`
	UnitPrice Amount `json:"unit_price"`
}

type ExpenseRecord struct {
	ExpenseType string `json:"expense_type" validate:"required"`
	Amount      Amount `json:"amount" validate:"required"`
	ExpenseDate string `json:"expense_date" validate:"required"`
	Currency    string `json:"currency"`
	Vendor      string `json:"vendor"`
	Notes       string `json:"notes"`
}

// Load reads and validates a fixture file. Validation failures are
// reported as ErrMalformedInput; the caller gets either a usable
// fixture or nothing.
func Load(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	var fx Fixture
	if err := json.NewDecoder(f).Decode(&fx); err != nil {
		return nil, malformedf("fixture", path, err)
	}
	if err := validate.Struct(&fx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return &fx, nil
}

// parseAmount converts a fixture Amount to decimal, using def when the
// field was absent.
func parseAmount(field string, raw Amount, def decimal.Decimal) (decimal.Decimal, error) {
	if raw == "" {
		return def, nil
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Decimal{}, malformedf(field, string(raw), err)
	}
	return d, nil
}

func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, malformedf(field, raw, err)
	}
	return t, nil
}
