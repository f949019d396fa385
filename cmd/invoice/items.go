package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/light-bringer/invoicing/internal/app/invoice/domain"
	"github.com/light-bringer/invoicing/internal/app/invoice/usecases/issue_invoice"
)

// namedRates maps --item rate tokens to the standard tax rates.
var namedRates = map[string]domain.TaxRate{
	"taxfree": domain.TaxFree,
	"other":   domain.OtherRate,
	"dairy":   domain.DairyRate,
}

// parseItem parses "name:rate:price[:qty]". rate is taxfree, other, dairy or
// a decimal fraction such as 0.05; qty defaults to 1. Fields are taken from
// the right, so the name itself may contain ':'. A trailing integer counts as
// qty only when the field three from the end is a rate token.
func parseItem(raw string) (issue_invoice.Line, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 3 {
		return issue_invoice.Line{}, errors.Errorf("item %q: want name:rate:price[:qty]", raw)
	}

	n := len(parts)
	name, rateToken, priceToken, qtyToken := strings.Join(parts[:n-2], ":"), parts[n-2], parts[n-1], ""
	if n >= 4 && isInteger(parts[n-1]) && isRateToken(parts[n-3]) {
		name, rateToken, priceToken, qtyToken = strings.Join(parts[:n-3], ":"), parts[n-3], parts[n-2], parts[n-1]
	}

	rate, err := parseRate(rateToken)
	if err != nil {
		return issue_invoice.Line{}, errors.Wrapf(err, "item %q", raw)
	}

	price, err := domain.NewMoney(priceToken)
	if err != nil {
		return issue_invoice.Line{}, errors.Wrapf(err, "item %q", raw)
	}

	quantity := 1
	if qtyToken != "" {
		quantity, err = strconv.Atoi(qtyToken)
		if err != nil {
			return issue_invoice.Line{}, errors.Wrapf(err, "item %q: bad quantity", raw)
		}
	}

	return issue_invoice.Line{
		Name:     name,
		Price:    price,
		TaxRate:  rate,
		Quantity: quantity,
	}, nil
}

func parseRate(token string) (domain.TaxRate, error) {
	if rate, ok := namedRates[strings.ToLower(token)]; ok {
		return rate, nil
	}

	value, err := decimal.NewFromString(token)
	if err != nil {
		return domain.TaxRate{}, errors.Wrapf(err, "unknown tax rate %q", token)
	}
	return domain.NewTaxRate(token, value)
}

// isRateToken reports whether token names a rate or is a decimal, valid or not.
func isRateToken(token string) bool {
	if _, ok := namedRates[strings.ToLower(token)]; ok {
		return true
	}
	_, err := decimal.NewFromString(token)
	return err == nil
}

func isInteger(token string) bool {
	_, err := strconv.Atoi(token)
	return err == nil
}
