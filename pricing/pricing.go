// Package pricing computes cart and order totals. Listed costs and
// discounts are GST-inclusive, so the charged total is a straight sum
// of discounted prices and the subtotal backs the tax component out.
package pricing

import "math"

// Line is one priced cart or order position.
type Line struct {
	Cost     float64
	Discount float64
	GSTRate  int // percent, one of 5/18/40
	Quantity int
}

// Summary is the derived price breakdown for a set of lines.
type Summary struct {
	Subtotal   float64 `json:"subtotal"`
	TotalTax   float64 `json:"totalTax"`
	FinalTotal float64 `json:"finalTotal"`
}

// DiscountedPrice is the unit price actually charged. Non-negative as
// long as discount <= cost, which product validation guarantees.
func DiscountedPrice(cost, discount float64) float64 {
	return cost - discount
}

// DiscountPercentage is the advertised "% off", rounded half-up to the
// nearest integer. A zero cost short-circuits to 0 instead of dividing.
func DiscountPercentage(cost, discount float64) int {
	if cost <= 0 {
		return 0
	}
	return int(math.Round(discount / cost * 100))
}

// FinalTotal is the GST-inclusive amount charged for the lines. This
// is the value frozen into an order at submission time.
func FinalTotal(lines []Line) float64 {
	var total float64
	for _, l := range lines {
		total += DiscountedPrice(l.Cost, l.Discount) * float64(l.Quantity)
	}
	return total
}

// Subtotal is the tax-exclusive amount: each line's inclusive total
// divided by (1 + rate/100), summed and rounded to two decimals.
func Subtotal(lines []Line) float64 {
	var subtotal float64
	for _, l := range lines {
		lineTotal := DiscountedPrice(l.Cost, l.Discount) * float64(l.Quantity)
		subtotal += lineTotal / (1 + float64(l.GSTRate)/100)
	}
	return round2(subtotal)
}

// TotalTax is the GST component of the final total.
func TotalTax(lines []Line) float64 {
	return round2(FinalTotal(lines) - Subtotal(lines))
}

// Summarize derives the full breakdown in one pass over the lines.
func Summarize(lines []Line) Summary {
	return Summary{
		Subtotal:   Subtotal(lines),
		TotalTax:   TotalTax(lines),
		FinalTotal: FinalTotal(lines),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
