package contracts

// InvoiceDTO is a data transfer object describing an issued invoice.
// Amounts are decimal strings rounded to two places for display.
type InvoiceDTO struct {
	Number     int64
	Lines      []*LineItemDTO
	NetTotal   string
	TaxTotal   string
	GrossTotal string
	Printed    string
}

// LineItemDTO is one invoice line.
type LineItemDTO struct {
	ProductID string
	Name      string
	TaxLabel  string
	UnitPrice string
	Quantity  int
	Net       string
	Gross     string
}
