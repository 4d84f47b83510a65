package payroll

import "testing"

func TestFirstScheduledIncrement_NoBreak(t *testing.T) {
	got := firstScheduledIncrement(MustParseDate("2020-07-01"), 6, July, 0)
	want := MustParseDate("2021-07-01")
	if !got.Equal(want) {
		t.Errorf("firstScheduledIncrement = %v, want %v", got, want)
	}
}

func TestFirstScheduledIncrement_WithBreak(t *testing.T) {
	got := firstScheduledIncrement(MustParseDate("2020-07-01"), 6, July, 60)
	want := MustParseDate("2021-08-30")
	if !got.Equal(want) {
		t.Errorf("firstScheduledIncrement with break = %v, want %v", got, want)
	}
}

func TestFirstScheduledIncrement_YearBumpsWhenMonthAlreadyPassed(t *testing.T) {
	// DoJ in April with a January schedule: DoJ+6 months lands in October,
	// which is after January, so the first occurrence rolls to next year.
	got := firstScheduledIncrement(MustParseDate("2020-04-01"), 6, January, 0)
	want := MustParseDate("2021-01-01")
	if !got.Equal(want) {
		t.Errorf("firstScheduledIncrement = %v, want %v", got, want)
	}
}

func TestTotalBreakDays(t *testing.T) {
	breaks := []BreakInService{
		{Start: "2021-01-01", End: "2021-01-31"},
		{Start: "2021-06-01", End: "2021-06-11"},
	}
	if got := totalBreakDays(breaks); got != 40 {
		t.Errorf("totalBreakDays = %d, want 40", got)
	}
}

func TestBuildEvents_SortedByDateThenPriority(t *testing.T) {
	input := EmployeeInput{
		Promotions: []Promotion{
			{EffectiveDate: "2006-01-01", TargetPost: "Assistant", NewGradePay: 2400},
		},
	}
	events := buildEvents(input)
	// The 5th->6th commission transition (priority 2) and the promotion
	// (priority 3) share 2006-01-01; the transition must sort first.
	var sawTransitionAt2006, sawPromotionAt2006 bool
	for i, e := range events {
		if e.Date.Year() == 2006 {
			if e.Kind == eventCommissionTransition {
				sawTransitionAt2006 = true
			}
			if e.Kind == eventPromotion {
				sawPromotionAt2006 = true
				if !sawTransitionAt2006 {
					t.Fatalf("promotion at event index %d sorted before the same-month commission transition", i)
				}
			}
		}
	}
	if !sawTransitionAt2006 || !sawPromotionAt2006 {
		t.Fatal("expected both events in 2006 to be present")
	}
}
