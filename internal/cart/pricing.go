package cart

import (
	"math/big"
	"strconv"
)

// GSTRate is applied to the subtotal of every cart.
const GSTRate = 0.18

type Summary struct {
	Subtotal float64 `json:"subtotal"`
	GST      float64 `json:"gst"`
	Total    float64 `json:"total"`
}

// PricedLine is a resolved line: the live unit price and the cart quantity.
type PricedLine struct {
	Price    float64
	Quantity int
}

// Summarize accumulates price×quantity, derives tax and total from the
// unrounded subtotal and rounds all three to cents only at the end.
func Summarize(lines []PricedLine) Summary {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.Price * float64(l.Quantity)
	}
	gst := subtotal * GSTRate
	total := subtotal + gst

	return Summary{
		Subtotal: round2(subtotal),
		GST:      round2(gst),
		Total:    round2(total),
	}
}

// round2 rounds the exact binary value of v to cents, ties away from zero.
// The product v×100 fits in 200 bits, so the tie test is exact.
func round2(v float64) float64 {
	if v < 0 {
		return -round2(-v)
	}
	f := new(big.Float).SetPrec(200).SetFloat64(v)
	f.Mul(f, big.NewFloat(100))
	f.Add(f, big.NewFloat(0.5))
	cents, _ := f.Int(nil)

	r, err := strconv.ParseFloat(cents.String()+"e-2", 64)
	if err != nil {
		return v
	}
	return r
}
