package domain

import (
	"fmt"
	"strings"
)

// Labels used in the printed invoice.
const (
	printHeaderLabel    = "Faktura nr: "
	printLineCountLabel = "Liczba pozycji: "
)

// PrintedVersion renders the invoice as text:
//
//	Faktura nr: 7
//	Mleko (Dairy) x2 10.00 = 21.60
//	Liczba pozycji: 1
//
// The trailer counts distinct products, not the sum of quantities.
func (i *Invoice) PrintedVersion() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s%d\n", printHeaderLabel, i.number)
	for _, item := range i.LineItems() {
		fmt.Fprintf(&b, "%s (%s) x%d %s = %s\n",
			item.Product.Name(),
			item.Product.TaxRate().Label(),
			item.Quantity,
			item.Product.Price(),
			item.Gross,
		)
	}
	fmt.Fprintf(&b, "%s%d", printLineCountLabel, i.LineCount())

	return b.String()
}
