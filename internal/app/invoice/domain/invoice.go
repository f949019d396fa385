package domain

import (
	"github.com/light-bringer/invoicing/internal/pkg/sequence"
)

// LineItem is a product and its quantity on an invoice, with the line amounts
// computed at the time the snapshot was taken.
type LineItem struct {
	Product  *Product
	Quantity int
	Net      *Money
	Gross    *Money
}

// Invoice aggregates products with quantities and derives its totals on demand.
// Lines are keyed by product ID: re-adding the same product replaces its
// quantity rather than summing it.
type Invoice struct {
	number     int64
	quantities map[string]int
	products   map[string]*Product
	// order keeps first-insertion order for stable printing.
	order []string
	calc  *PricingCalculator
}

// NewInvoice creates an empty Invoice numbered by the next value from numbers.
// It panics if numbers is nil.
func NewInvoice(numbers sequence.Generator) *Invoice {
	if numbers == nil {
		panic("domain: NewInvoice requires a number generator")
	}

	return &Invoice{
		number:     numbers.Next(),
		quantities: make(map[string]int),
		products:   make(map[string]*Product),
		order:      make([]string, 0),
		calc:       defaultPricingCalculator,
	}
}

// Number returns the invoice number assigned at creation.
func (i *Invoice) Number() int64 {
	return i.number
}

// AddProduct adds product with quantity 1.
func (i *Invoice) AddProduct(product *Product) error {
	return i.AddProductQuantity(product, 1)
}

// AddProductQuantity sets the quantity of product on the invoice, replacing
// any quantity recorded earlier for the same product.
func (i *Invoice) AddProductQuantity(product *Product, quantity int) error {
	if product == nil {
		return ErrNilProduct
	}

	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	if _, exists := i.products[product.id]; !exists {
		i.order = append(i.order, product.id)
		i.products[product.id] = product
	}
	i.quantities[product.id] = quantity

	return nil
}

// NetTotal returns the sum of quantity * net price over all lines.
func (i *Invoice) NetTotal() *Money {
	amounts := make([]*Money, 0, len(i.order))
	for _, id := range i.order {
		amounts = append(amounts, i.calc.LineNet(i.products[id], i.quantities[id]))
	}
	return i.calc.Sum(amounts...)
}

// GrossTotal returns the sum of quantity * price with tax over all lines.
func (i *Invoice) GrossTotal() *Money {
	amounts := make([]*Money, 0, len(i.order))
	for _, id := range i.order {
		amounts = append(amounts, i.calc.LineGross(i.products[id], i.quantities[id]))
	}
	return i.calc.Sum(amounts...)
}

// TaxTotal is always derived as GrossTotal - NetTotal.
func (i *Invoice) TaxTotal() *Money {
	return i.GrossTotal().Subtract(i.NetTotal())
}

// LineCount returns the number of distinct products on the invoice.
func (i *Invoice) LineCount() int {
	return len(i.order)
}

// Quantity returns the quantity recorded for product, or 0 if absent.
func (i *Invoice) Quantity(product *Product) int {
	if product == nil {
		return 0
	}
	return i.quantities[product.id]
}

// LineItems returns a snapshot of the lines in first-insertion order.
func (i *Invoice) LineItems() []LineItem {
	items := make([]LineItem, 0, len(i.order))
	for _, id := range i.order {
		product, quantity := i.products[id], i.quantities[id]
		items = append(items, LineItem{
			Product:  product,
			Quantity: quantity,
			Net:      i.calc.LineNet(product, quantity),
			Gross:    i.calc.LineGross(product, quantity),
		})
	}
	return items
}
