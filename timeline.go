package payroll

import (
	"sort"
	"time"
)

// eventKind tags what a timelineEvent carries.
type eventKind int

const (
	eventCommissionTransition eventKind = iota
	eventSelectionGrade
	eventSpecialGrade
	eventPromotion
	eventAccountTestPass
)

// Event priorities, per spec.md §4.10/§9: DA=1 (handled implicitly by the
// simulator recomputing allowances every month; no DA event object is
// needed), commission transitions=2, everything else=3.
const (
	priorityCommissionTransition = 2
	priorityOther                = 3
)

// timelineEvent is one dated occurrence in an employee's career. Events are
// collected once at the start of a simulation and consumed in (date,
// priority) order as the monthly loop advances (spec.md §4.10, §9).
type timelineEvent struct {
	Date     time.Time
	Priority int
	Kind     eventKind

	FromCommission int
	ToCommission   int

	Grade       *GradeEvent
	Promotion   *Promotion
	AccountTest *AccountTestPass
}

// commissionTransitionSchedule is the fixed historical calendar of pay
// commission transitions a Tamil Nadu employee's career can pass through
// (spec.md §4.5). A transition only actually fires if the simulator's
// active commission matches FromCommission when its date is reached.
var commissionTransitionSchedule = []struct {
	From, To int
	Date     time.Time
}{
	{3, 4, MustParseDate("1986-01-01")},
	{4, 5, MustParseDate("1996-01-01")},
	{5, 6, MustParseDate("2006-01-01")},
	{6, 7, MustParseDate("2016-01-01")},
}

// buildEvents assembles and sorts the full timeline for one EmployeeInput.
// Annual-increment-schedule changes are not modeled as events: the
// simulator consults input.ScheduleChanges directly whenever it needs "the
// latest schedule change effective on or before" a date (spec.md §4.8).
func buildEvents(input EmployeeInput) []timelineEvent {
	var events []timelineEvent

	for _, t := range commissionTransitionSchedule {
		events = append(events, timelineEvent{
			Date: t.Date, Priority: priorityCommissionTransition,
			Kind: eventCommissionTransition, FromCommission: t.From, ToCommission: t.To,
		})
	}

	if input.SelectionGrade != nil {
		events = append(events, timelineEvent{
			Date: mustDate(input.SelectionGrade.EffectiveDate), Priority: priorityOther,
			Kind: eventSelectionGrade, Grade: input.SelectionGrade,
		})
	}
	if input.SpecialGrade != nil {
		events = append(events, timelineEvent{
			Date: mustDate(input.SpecialGrade.EffectiveDate), Priority: priorityOther,
			Kind: eventSpecialGrade, Grade: input.SpecialGrade,
		})
	}
	for i := range input.Promotions {
		p := input.Promotions[i]
		events = append(events, timelineEvent{
			Date: mustDate(p.EffectiveDate), Priority: priorityOther,
			Kind: eventPromotion, Promotion: &p,
		})
	}
	for i := range input.AccountTestPasses {
		a := input.AccountTestPasses[i]
		events = append(events, timelineEvent{
			Date: mustDate(a.PassDate), Priority: priorityOther,
			Kind: eventAccountTestPass, AccountTest: &a,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].Priority < events[j].Priority
	})
	return events
}

// latestScheduleMonth returns the increment month from the latest
// ScheduleChange whose EffectiveDate is on or before asOf, falling back to
// the employee's default schedule (spec.md §4.8).
func latestScheduleMonth(input EmployeeInput, asOf time.Time) IncrementMonth {
	best := input.DefaultIncrementMonth
	var bestDate time.Time
	for _, sc := range input.ScheduleChanges {
		d := mustDate(sc.EffectiveDate)
		if d.After(asOf) {
			continue
		}
		if bestDate.IsZero() || d.After(bestDate) {
			bestDate = d
			best = sc.Month
		}
	}
	return best
}

// totalBreakDays sums the calendar-day length of every break in service,
// added once to the first scheduled increment date (spec.md §4.8, and §9's
// open question about this being a startup-only adjustment).
func totalBreakDays(breaks []BreakInService) int {
	total := 0
	for _, b := range breaks {
		start := mustDate(b.Start)
		end := mustDate(b.End)
		days := int(end.Sub(start).Hours() / 24)
		if days > 0 {
			total += days
		}
	}
	return total
}

// firstScheduledIncrement computes the first annual-increment date per
// spec.md §4.8: DoJ + eligibility months, month bumped to the first
// configured schedule month (year advances only if that month has already
// passed in the computed year), then shifted forward by break days.
func firstScheduledIncrement(doj time.Time, eligibilityMonths int, firstMonth IncrementMonth, breakDays int) time.Time {
	computed := addMonths(doj, eligibilityMonths)
	target := firstMonth.time()

	year := computed.Year()
	if computed.Month() > target {
		year++
	}
	date := time.Date(year, target, 1, 0, 0, 0, 0, time.UTC)
	return addDays(date, breakDays)
}

// nextScheduleAfterGrant advances an increment date by one year from the
// date it was actually granted, re-pointing its month at whichever
// schedule is current (spec.md §4.8).
func nextScheduleAfterGrant(input EmployeeInput, grantedOn time.Time) time.Time {
	next := addYears(grantedOn, 1)
	month := latestScheduleMonth(input, next)
	return time.Date(next.Year(), month.time(), 1, 0, 0, 0, 0, time.UTC)
}
