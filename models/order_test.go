package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderRecalculateTotal(t *testing.T) {
	cases := []struct {
		name     string
		subtotal string
		shipping string
		discount string
		expected string
	}{
		{"plain sum", "30.00", "0", "0", "30"},
		{"shipping added", "30.00", "5.50", "0", "35.5"},
		{"discount subtracted", "30.00", "5.50", "10.00", "25.5"},
		{"discount can push below zero", "10.00", "0", "15.00", "-5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := Order{
				Subtotal:    decimal.RequireFromString(tc.subtotal),
				ShippingFee: decimal.RequireFromString(tc.shipping),
				Discount:    decimal.RequireFromString(tc.discount),
			}
			order.RecalculateTotal()
			if order.Total.String() != tc.expected {
				t.Fatalf("total = %s, want %s", order.Total.String(), tc.expected)
			}
		})
	}
}

func TestMovementTypeIsValid(t *testing.T) {
	for _, valid := range []MovementType{MovementTypeIn, MovementTypeOut, MovementTypeAdjust} {
		if !valid.IsValid() {
			t.Fatalf("%q should be valid", valid)
		}
	}
	for _, invalid := range []MovementType{"", "TRANSFER", "in"} {
		if invalid.IsValid() {
			t.Fatalf("%q should be invalid", invalid)
		}
	}
}
