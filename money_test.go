package payroll

import "testing"

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount   int64
		expected string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{100000, "₹1,00,000"},
		{1234567, "₹12,34,567"},
		{-5000, "-₹5,000"},
	}
	for _, tc := range tests {
		if got := FormatINR(tc.amount); got != tc.expected {
			t.Errorf("FormatINR(%d) = %q, want %q", tc.amount, got, tc.expected)
		}
	}
}

func TestPercentOf(t *testing.T) {
	if got := percentOf(10000, 12.5); got != 1250 {
		t.Errorf("percentOf(10000, 12.5) = %d, want 1250", got)
	}
}
