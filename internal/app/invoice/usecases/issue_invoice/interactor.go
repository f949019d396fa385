package issue_invoice

import (
	"fmt"

	"github.com/light-bringer/invoicing/internal/app/invoice/contracts"
	"github.com/light-bringer/invoicing/internal/app/invoice/domain"
	"github.com/light-bringer/invoicing/internal/pkg/sequence"
)

// Line is one requested invoice line.
type Line struct {
	Name     string
	Price    *domain.Money
	TaxRate  domain.TaxRate
	Quantity int
}

// Request contains the lines to put on a new invoice.
type Request struct {
	Lines []Line
}

// Interactor handles the issue invoice use case.
type Interactor struct {
	numbers sequence.Generator
}

// ErrNilRequest is returned by Execute for a nil request.
var ErrNilRequest = fmt.Errorf("%w: request is required", domain.ErrInvalidArgument)

// NewInteractor creates a new issue invoice interactor.
// It panics if numbers is nil.
func NewInteractor(numbers sequence.Generator) *Interactor {
	if numbers == nil {
		panic("issue_invoice: NewInteractor requires a number generator")
	}
	return &Interactor{
		numbers: numbers,
	}
}

// Execute builds products from the request, adds them to a fresh invoice and
// returns its snapshot. Lines are validated before an invoice number is
// drawn, so a rejected request does not consume a number.
func (i *Interactor) Execute(req *Request) (*contracts.InvoiceDTO, error) {
	// 1. Validate request and build products
	if req == nil {
		return nil, ErrNilRequest
	}

	products := make([]*domain.Product, 0, len(req.Lines))
	for n, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("line %d (%s): %w", n+1, line.Name, domain.ErrInvalidQuantity)
		}

		product, err := domain.NewProduct(line.Name, line.Price, line.TaxRate)
		if err != nil {
			return nil, fmt.Errorf("line %d: failed to create product: %w", n+1, err)
		}
		products = append(products, product)
	}

	// 2. Create the invoice
	inv := domain.NewInvoice(i.numbers)
	for n, product := range products {
		if err := inv.AddProductQuantity(product, req.Lines[n].Quantity); err != nil {
			return nil, fmt.Errorf("line %d: failed to add product: %w", n+1, err)
		}
	}

	return toDTO(inv), nil
}

// toDTO converts a domain invoice to its DTO.
func toDTO(inv *domain.Invoice) *contracts.InvoiceDTO {
	items := inv.LineItems()
	lines := make([]*contracts.LineItemDTO, 0, len(items))
	for _, item := range items {
		lines = append(lines, &contracts.LineItemDTO{
			ProductID: item.Product.ID(),
			Name:      item.Product.Name(),
			TaxLabel:  item.Product.TaxRate().Label(),
			UnitPrice: item.Product.Price().String(),
			Quantity:  item.Quantity,
			Net:       item.Net.String(),
			Gross:     item.Gross.String(),
		})
	}

	return &contracts.InvoiceDTO{
		Number:     inv.Number(),
		Lines:      lines,
		NetTotal:   inv.NetTotal().String(),
		TaxTotal:   inv.TaxTotal().String(),
		GrossTotal: inv.GrossTotal().String(),
		Printed:    inv.PrintedVersion(),
	}
}
