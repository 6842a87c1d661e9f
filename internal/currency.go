package internal

import (
	"context"

	"github.com/shopspring/decimal"
)

// IRates resolves an exchange rate between two currency codes.
type IRates interface {
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// Converter turns base-currency amounts into minor units of the reporting
// currency. Rounding is decimal.Round: half away from zero.
type Converter struct {
	rates    IRates
	currency string
}

func NewConverter(rates IRates, currency string) *Converter {
	return &Converter{rates: rates, currency: currency}
}

func (c *Converter) Currency() string {
	return c.currency
}

// ConvertAndRound converts amount from the given currency into the reporting
// currency and returns it in minor units. Amounts already in the reporting
// currency skip the rate lookup entirely.
func (c *Converter) ConvertAndRound(ctx context.Context, amount decimal.Decimal, from string) (int64, error) {
	if from != c.currency {
		rate, err := c.rates.GetRate(ctx, from, c.currency)
		if err != nil {
			return 0, err
		}
		amount = amount.Mul(rate)
	}
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// RoundQty rounds an ordered quantity to the nearest whole unit.
func RoundQty(qty decimal.Decimal) int64 {
	return qty.Round(0).IntPart()
}
