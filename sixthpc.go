package payroll

import "github.com/shopspring/decimal"

// PayBand is the 6th-PC pay-in-pay-band range associated with a grade pay.
type PayBand struct {
	Min int
	Max int // 0 means unbounded (spec.md §4.3: "if the band has a defined max")
}

var sixthPCThreePercent = decimal.NewFromFloat(0.03)

// Increment6th applies n successive 3%-of-(PIPB+GP) increments, rounding
// each step independently (spec.md §4.3, §9: "do not accumulate
// fractions"), clamping PIPB at the band's max when one is defined.
func Increment6th(pipb, gradePay int, n int, band PayBand) int {
	for i := 0; i < n; i++ {
		inc := roundRupees(decimal.NewFromInt(int64(pipb + gradePay)).Mul(sixthPCThreePercent))
		pipb += inc
		if band.Max > 0 && pipb > band.Max {
			pipb = band.Max
		}
	}
	if pipb < band.Min {
		pipb = band.Min
	}
	return pipb
}
