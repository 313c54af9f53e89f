// Package money holds the bid arithmetic shared by validation and display.
package money

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var (
	incrementRate = decimal.NewFromFloat(0.10)
	minIncrement  = decimal.NewFromInt(1)
)

func init() {
	// Amounts go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Base returns the amount the next increment is computed from.
func Base(startingPrice, currentBid decimal.Decimal) decimal.Decimal {
	if currentBid.IsPositive() {
		return currentBid
	}
	return startingPrice
}

// MinimumIncrement is 10% of the base rounded up, never less than 1.
func MinimumIncrement(startingPrice, currentBid decimal.Decimal) decimal.Decimal {
	increment := Base(startingPrice, currentBid).Mul(incrementRate).Ceil()
	return decimal.Max(minIncrement, increment)
}

// MinimumBid is the lowest amount the next bid may have.
func MinimumBid(startingPrice, currentBid decimal.Decimal) decimal.Decimal {
	return Base(startingPrice, currentBid).Add(MinimumIncrement(startingPrice, currentBid))
}

// Normalize rounds an amount to cents.
func Normalize(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// Format renders an amount as "$1,234.50".
func Format(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", f)
}
