package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingCalculator_CalculateTaxAmount(t *testing.T) {
	pc := NewPricingCalculator()

	t.Run("standard rate", func(t *testing.T) {
		tax := pc.CalculateTaxAmount(MustMoney("50.0"), OtherRate)
		assert.True(t, tax.Equals(MustMoney("11.5")))
	})

	t.Run("tax free yields zero", func(t *testing.T) {
		tax := pc.CalculateTaxAmount(MustMoney("199.99"), TaxFree)
		assert.True(t, tax.IsZero())
	})
}

func TestPricingCalculator_PriceWithTax(t *testing.T) {
	pc := NewPricingCalculator()

	gross := pc.PriceWithTax(MustMoney("10.0"), DairyRate)
	assert.True(t, gross.Equals(MustMoney("10.8")))
}

func TestPricingCalculator_LineAmounts(t *testing.T) {
	pc := NewPricingCalculator()
	p, err := NewOtherProduct("Produkt", MustMoney("50.0"))
	require.NoError(t, err)

	assert.True(t, pc.LineNet(p, 2).Equals(MustMoney("100")))
	assert.True(t, pc.LineGross(p, 2).Equals(MustMoney("123")))
}

func TestPricingCalculator_Sum(t *testing.T) {
	pc := NewPricingCalculator()

	t.Run("empty sum is zero", func(t *testing.T) {
		assert.True(t, pc.Sum().IsZero())
	})

	t.Run("sums all amounts", func(t *testing.T) {
		total := pc.Sum(MustMoney("199.99"), MustMoney("50.0"), MustMoney("10.0"))
		assert.True(t, total.Equals(MustMoney("259.99")))
	})
}
