package domain

import "github.com/shopspring/decimal"

// MoneyScale is the number of fractional digits stored for prices and amounts.
const MoneyScale = 2

// HasMoneyScale reports whether d fits in a decimal(10,2) column without rounding.
func HasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyScale))
}
