package renderer

import (
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount formats a decimal amount in the given display currency, using the
// currency's own fraction and symbol rules.
func Amount(v decimal.Decimal, currency string) string {
	// Going through the Money constructor guarantees a non-nil currency.
	cur := money.New(0, currency).Currency()
	minor := v.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

func moneyFuncs(currency string) template.FuncMap {
	return template.FuncMap{
		"money": func(v decimal.Decimal) string { return Amount(v, currency) },
	}
}
