package domain

import (
	"github.com/google/uuid"
)

// Product is an immutable sellable item: a name, a net unit price and a tax rate.
// Each constructed Product gets its own ID, which is how invoices tell
// products apart. Two products with identical fields are still distinct.
type Product struct {
	id      string
	name    string
	price   *Money
	taxRate TaxRate
}

// NewProduct creates a Product with an explicit tax rate. The zero TaxRate is
// rejected; use TaxFree for untaxed products.
func NewProduct(name string, price *Money, rate TaxRate) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if price == nil {
		return nil, ErrMissingPrice
	}

	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	if rate.Label() == "" {
		return nil, ErrEmptyTaxLabel
	}

	return &Product{
		id:      uuid.NewString(),
		name:    name,
		price:   price.Copy(),
		taxRate: rate,
	}, nil
}

// NewTaxFreeProduct creates a product taxed at 0%.
func NewTaxFreeProduct(name string, price *Money) (*Product, error) {
	return NewProduct(name, price, TaxFree)
}

// NewOtherProduct creates a product taxed at the standard 23% rate.
func NewOtherProduct(name string, price *Money) (*Product, error) {
	return NewProduct(name, price, OtherRate)
}

// NewDairyProduct creates a product taxed at the reduced 8% rate.
func NewDairyProduct(name string, price *Money) (*Product, error) {
	return NewProduct(name, price, DairyRate)
}

// Getters
func (p *Product) ID() string       { return p.id }
func (p *Product) Name() string     { return p.name }
func (p *Product) Price() *Money    { return p.price.Copy() }
func (p *Product) TaxRate() TaxRate { return p.taxRate }

// PriceWithTax returns the gross unit price: price + price * taxRate.
func (p *Product) PriceWithTax() *Money {
	return defaultPricingCalculator.PriceWithTax(p.price, p.taxRate)
}
