package payroll

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Rupees is a whole-rupee amount. All persisted pay figures are integers;
// decimal.Decimal is used only as scratch space for the multiplication that
// produces them, per SPEC_FULL.md §2's money-arithmetic rationale.
type Rupees = int64

// roundRupees converts a decimal scratch value to whole rupees using
// round-half-away-from-zero, matching spec.md §9's rounding rule. Fixation
// multipliers (1.86, 2.57, 0.03) are applied in decimal space so that no
// fractional paisa survives across a 40-year simulation.
func roundRupees(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// scaleRupees multiplies a whole-rupee amount by a decimal factor and rounds
// the result to whole rupees in one step.
func scaleRupees(amount int64, factor decimal.Decimal) int64 {
	return roundRupees(decimal.NewFromInt(amount).Mul(factor))
}

// percentOf returns round(amount * pct/100) as whole rupees.
func percentOf(amount int64, pct float64) int64 {
	return roundRupees(decimal.NewFromInt(amount).Mul(decimal.NewFromFloat(pct)).Div(decimal.NewFromInt(100)))
}

// formatPercent renders a rate like 7 or 7.5 without a trailing ".0", for
// remark strings ("DA revised to 7%" vs "DA revised to 7.5%").
func formatPercent(rate float64) string {
	s := strconv.FormatFloat(rate, 'f', -1, 64)
	return s
}

// FormatINR renders a whole-rupee amount using Indian digit grouping
// (lakh/crore, groups of two after the first three digits) with a ₹ prefix.
// The engine's own remarks carry no rupee amounts; cmd/payrollcli uses it for
// its table and PDF output.
func FormatINR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)

	var grouped string
	if len(s) <= 3 {
		grouped = s
	} else {
		head := s[:len(s)-3]
		tail := s[len(s)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		grouped = strings.Join(parts, ",") + "," + tail
	}

	if neg {
		return "-₹" + grouped
	}
	return "₹" + grouped
}
