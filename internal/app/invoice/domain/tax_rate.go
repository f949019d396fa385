package domain

import (
	"github.com/shopspring/decimal"
)

// TaxRate is a fixed fractional surcharge on a product's net price,
// e.g. 0.08 for 8%. The label names the variant in printed invoices.
type TaxRate struct {
	label string
	rate  decimal.Decimal
}

// Standard rates.
var (
	TaxFree   = TaxRate{label: "TaxFree", rate: decimal.Zero}
	OtherRate = TaxRate{label: "Other", rate: decimal.RequireFromString("0.23")}
	DairyRate = TaxRate{label: "Dairy", rate: decimal.RequireFromString("0.08")}
)

// NewTaxRate creates a custom tax rate.
func NewTaxRate(label string, rate decimal.Decimal) (TaxRate, error) {
	if label == "" {
		return TaxRate{}, ErrEmptyTaxLabel
	}
	if rate.IsNegative() {
		return TaxRate{}, ErrNegativeTaxRate
	}
	return TaxRate{label: label, rate: rate}, nil
}

func (r TaxRate) Label() string         { return r.label }
func (r TaxRate) Rate() decimal.Decimal { return r.rate }

// String renders the rate as a percentage, e.g. "23%".
func (r TaxRate) String() string {
	return r.rate.Shift(2).String() + "%"
}
