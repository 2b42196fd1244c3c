package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineSubtotal is price*qty minus the discount percentage of that amount,
// rounded to cents.
func LineSubtotal(price float64, qty int, discount float64) float64 {
	gross := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(qty)))
	off := gross.Mul(decimal.NewFromFloat(discount)).Div(hundred)

	return gross.Sub(off).Round(2).InexactFloat64()
}

// LineUtility is the line subtotal minus what the units cost.
func LineUtility(price float64, qty int, discount float64, cost float64) float64 {
	subtotal := decimal.NewFromFloat(LineSubtotal(price, qty, discount))
	spent := decimal.NewFromFloat(cost).Mul(decimal.NewFromInt(int64(qty)))

	return subtotal.Sub(spent).Round(2).InexactFloat64()
}

// Sum adds amounts without accumulating float error.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}

	return total.Round(2).InexactFloat64()
}

// Stripe takes these currencies in whole units, with no cents.
var zeroDecimalCurrencies = map[string]bool{
	"bif": true, "clp": true, "djf": true, "gnf": true, "jpy": true, "kmf": true,
	"krw": true, "mga": true, "pyg": true, "rwf": true, "ugx": true, "vnd": true,
	"vuv": true, "xaf": true, "xof": true, "xpf": true,
}

func minorUnitScale(currency string) decimal.Decimal {
	if zeroDecimalCurrencies[strings.ToLower(currency)] {
		return decimal.NewFromInt(1)
	}
	return hundred
}

// ToMinorUnits converts an amount to the smallest unit the payment gateway
// charges in for currency: cents for MXN or USD, whole yen for JPY.
func ToMinorUnits(amount float64, currency string) int64 {
	return decimal.NewFromFloat(amount).Mul(minorUnitScale(currency)).Round(0).IntPart()
}

// FromMinorUnits is the inverse of ToMinorUnits.
func FromMinorUnits(units int64, currency string) float64 {
	return decimal.NewFromInt(units).Div(minorUnitScale(currency)).InexactFloat64()
}
