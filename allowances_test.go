package payroll

import "testing"

func TestLookupDARate_PreSixthSharedSeries(t *testing.T) {
	rates := []DARate{
		{EffectiveFrom: MustParseDate("1980-01-01"), Commission: 0, RatePercent: 0},
		{EffectiveFrom: MustParseDate("1990-01-01"), Commission: 0, RatePercent: 27},
	}
	got := lookupDARate(rates, 4, MustParseDate("1992-01-01"))
	if got != 27 {
		t.Errorf("lookupDARate for commission 4 at 1992 = %v, want 27", got)
	}
}

func TestLookupDARate_CommissionSpecific(t *testing.T) {
	rates := []DARate{
		{EffectiveFrom: MustParseDate("2016-01-01"), Commission: 7, RatePercent: 0},
		{EffectiveFrom: MustParseDate("2019-01-01"), Commission: 7, RatePercent: 12},
	}
	got := lookupDARate(rates, 7, MustParseDate("2020-06-01"))
	if got != 12 {
		t.Errorf("lookupDARate for commission 7 = %v, want 12", got)
	}
}

func TestDAAmount_Override(t *testing.T) {
	override := 17.0
	got := DAAmount(nil, 7, MustParseDate("2020-01-01"), 50000, &override)
	want := int64(8500) // 50000 * 0.17
	if got != want {
		t.Errorf("DAAmount with override = %d, want %d", got, want)
	}
}

func TestHRAAmount_FallsBackToUnclassified(t *testing.T) {
	slabs := []HRASlab{
		{Era: "7th", PayFrom: 0, PayTo: 0, GradeIA: 0, GradeIB: 0, GradeII: 0, Unclassified: 600},
	}
	got := HRAAmount(slabs, 7, MustParseDate("2020-01-01"), 40000, CityClassA)
	if got != 600 {
		t.Errorf("HRAAmount fallback = %d, want 600", got)
	}
}

func TestCCAAmount_AbolishedFromSeventhPC(t *testing.T) {
	rates := map[CityClass]int{CityClassA: 300}
	if got := CCAAmount(rates, 7, CityClassA); got != 0 {
		t.Errorf("CCAAmount at 7th PC should be 0, got %d", got)
	}
	if got := CCAAmount(rates, 6, CityClassA); got != 300 {
		t.Errorf("CCAAmount at 6th PC should be 300, got %d", got)
	}
}
