package seeder

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmountUnmarshal_AcceptsNumbersAndStrings(t *testing.T) {
	cases := []struct {
		in       string
		expected Amount
	}{
		{`{"v": 120}`, "120"},
		{`{"v": 120.50}`, "120.50"},
		{`{"v": "120.50"}`, "120.50"},
		{`{"v": "  75 "}`, "75"},
		{`{"v": null}`, ""},
	}
	for _, tc := range cases {
		var doc struct {
			V Amount `json:"v"`
		}
		if err := json.Unmarshal([]byte(tc.in), &doc); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if doc.V != tc.expected {
			t.Fatalf("unmarshal %s = %q, want %q", tc.in, doc.V, tc.expected)
		}
	}
}

func TestParseAmount(t *testing.T) {
	d, err := parseAmount("f", "30.00", decimal.Zero)
	if err != nil {
		t.Fatalf("parseAmount: %v", err)
	}
	if !d.Equal(decimal.RequireFromString("30.00")) {
		t.Fatalf("parseAmount = %s, want 30", d)
	}

	def := decimal.RequireFromString("9.99")
	d, err = parseAmount("f", "", def)
	if err != nil {
		t.Fatalf("parseAmount default: %v", err)
	}
	if !d.Equal(def) {
		t.Fatalf("parseAmount default = %s, want %s", d, def)
	}

	_, err = parseAmount("expenses.amount", "ten dollars", decimal.Zero)
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("orders.order_date", "2026-03-01")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if d.Year() != 2026 || d.Month() != 3 || d.Day() != 1 {
		t.Fatalf("parseDate = %v", d)
	}

	_, err = parseDate("orders.order_date", "01/03/2026")
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func writeFixtureFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed_data.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFixtureFile(t, `{
		"product_sizes": [{"code": "STD", "display_name": "Standard"}],
		"fabric_types": [{"name": "Cotton"}],
		"orders": [{
			"customer": "Mona Hassan",
			"status": "NEW",
			"order_date": "2026-03-01",
			"shipping_fee": "5.00",
			"items": [{"size_code": "STD", "fabric_type": "Cotton", "qty": 3, "unit_price": 10.00}]
		}]
	}`)

	fx, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(fx.ProductSizes) != 1 || fx.ProductSizes[0].Code != "STD" {
		t.Fatalf("unexpected product sizes: %+v", fx.ProductSizes)
	}
	if len(fx.Orders) != 1 || len(fx.Orders[0].Items) != 1 {
		t.Fatalf("unexpected orders: %+v", fx.Orders)
	}
	if fx.Orders[0].Items[0].UnitPrice != "10.00" {
		t.Fatalf("unit price = %q, want 10.00", fx.Orders[0].Items[0].UnitPrice)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := writeFixtureFile(t, `{"product_sizes": [`)
	if _, err := Load(path); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestLoad_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"size without code", `{"product_sizes": [{"display_name": "Standard"}]}`},
		{"item qty below one", `{"orders": [{
			"customer": "Mona Hassan",
			"status": "NEW",
			"order_date": "2026-03-01",
			"items": [{"size_code": "STD", "fabric_type": "Cotton", "qty": 0}]
		}]}`},
		{"negative reorder level", `{"inventory_balances": [{
			"size_code": "STD", "fabric_type": "Cotton",
			"location": "Main", "reorder_level": -1
		}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFixtureFile(t, tc.body)
			if _, err := Load(path); !errors.Is(err, ErrMalformedInput) {
				t.Fatalf("expected ErrMalformedInput, got %v", err)
			}
		})
	}
}
