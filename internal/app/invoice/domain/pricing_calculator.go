package domain

// PricingCalculator is a domain service for tax and line-total calculations.
// Product and Invoice delegate to it so each formula lives in one place.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// Package-level calculator instance for domain object use
var defaultPricingCalculator = NewPricingCalculator()

// CalculateTaxAmount returns the tax charged on a net price.
// Formula: tax = price * rate
func (pc *PricingCalculator) CalculateTaxAmount(price *Money, rate TaxRate) *Money {
	return price.MultiplyByDecimal(rate.Rate())
}

// PriceWithTax returns the gross unit price.
// Formula: priceWithTax = price + price * rate
func (pc *PricingCalculator) PriceWithTax(price *Money, rate TaxRate) *Money {
	return price.Add(pc.CalculateTaxAmount(price, rate))
}

// LineNet returns quantity * net unit price.
func (pc *PricingCalculator) LineNet(product *Product, quantity int) *Money {
	return product.price.MultiplyByQuantity(quantity)
}

// LineGross returns quantity * gross unit price.
func (pc *PricingCalculator) LineGross(product *Product, quantity int) *Money {
	return pc.PriceWithTax(product.price, product.taxRate).MultiplyByQuantity(quantity)
}

// Sum adds amounts; an empty list sums to zero.
func (pc *PricingCalculator) Sum(amounts ...*Money) *Money {
	total := Zero()
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total
}
