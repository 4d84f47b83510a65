package payroll

import (
	"strconv"
	"testing"
)

func assertIntEquals(t *testing.T, expected, actual int, description string) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %d, got %d", description, expected, actual)
	}
}

func TestParseScale(t *testing.T) {
	sc, err := ParseScale("S3-2", "1200-30-1440-40-1800")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertIntEquals(t, 1200, sc.Start(), "start")
	assertIntEquals(t, 1800, sc.Max(), "max")
	if len(sc.Stages) != 2 {
		t.Fatalf("expected 2 stages, got %d", len(sc.Stages))
	}
	assertIntEquals(t, 30, sc.Stages[0].Step, "stage 1 step")
	assertIntEquals(t, 40, sc.Stages[1].Step, "stage 2 step")
}

func TestParseScale_Malformed(t *testing.T) {
	if _, err := ParseScale("bad", "1200-30"); err == nil {
		t.Fatal("expected error for malformed scale string")
	}
}

func TestScaleIncrement(t *testing.T) {
	sc, _ := ParseScale("S3-2", "1200-30-1440-40-1800")

	tests := []struct {
		pay      int
		n        int
		expected int
	}{
		{1200, 1, 1230},
		{1410, 1, 1440},  // first stage's step lands on the second stage's lower bound
		{1440, 1, 1480},
		{1780, 1, 1800},  // clamps at max
		{1800, 1, 1800},  // already at max
		{1200, 100, 1800}, // many increments still clamp
	}
	for _, tc := range tests {
		got := sc.Increment(tc.pay, tc.n)
		assertIntEquals(t, tc.expected, got, "increment from "+strconv.Itoa(tc.pay))
	}
}

func TestScaleFitNextHigher(t *testing.T) {
	sc, _ := ParseScale("S3-2", "1200-30-1440-40-1800")

	tests := []struct {
		pay      int
		expected int
	}{
		{1000, 1200}, // below start
		{1200, 1230},
		{1215, 1230},
		{1900, 1800}, // above max, clamps
	}
	for _, tc := range tests {
		got := sc.FitNextHigher(tc.pay)
		assertIntEquals(t, tc.expected, got, "fitNextHigher from "+strconv.Itoa(tc.pay))
	}
}

