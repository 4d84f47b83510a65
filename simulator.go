package payroll

import "time"

// simState is the engine's single mutable object, per spec.md §3's
// "Simulation State" and §5's concurrency model (one State per
// simulation, never shared).
type simState struct {
	commission int
	scaleID    string // active pre-6th/6th-PC scale identifier; "" once on 7th PC
	level      int    // 7th-PC level; 0 otherwise
	pipb       int    // 6th-PC pay-in-pay-band; 0 otherwise
	gradePay   int    // 6th-PC grade pay; 0 otherwise
	basicPay   int    // always the employee's current basic pay

	nextScheduledIncrement time.Time
	regularIncrementCount  int
	accountTestPending     bool

	daRatePrev      float64
	daRateSeeded    bool
	remarksThisMonth          []string
	incrementHandledThisMonth bool

	fixations map[int]*FixationSnapshot
	revisions []ScaleRevision
	analysis  IncrementAnalysis
	periods   []PayrollPeriod
}

// Simulate is the engine's sole entry point (spec.md §6): given a validated
// EmployeeInput, it runs the monthly event-driven loop described in
// spec.md §4.10 and returns the assembled PayrollResult.
func Simulate(input EmployeeInput) (PayrollResult, error) {
	if err := input.Validate(); err != nil {
		return PayrollResult{}, err
	}

	refs, err := Reference()
	if err != nil {
		return PayrollResult{}, err
	}

	state, err := seedState(input, refs)
	if err != nil {
		return PayrollResult{}, err
	}

	doj := mustDate(input.DateOfJoiningService)
	calcStart := firstOfMonth(mustDate(input.CalculationStart))
	effectiveEnd := firstOfMonth(mustDate(input.CalculationEnd))
	if input.DateOfRelief != "" {
		relief := firstOfMonth(mustDate(input.DateOfRelief))
		if relief.Before(effectiveEnd) {
			effectiveEnd = relief
		}
	}

	state.nextScheduledIncrement = firstScheduledIncrement(
		doj, input.incrementEligibilityMonths(), input.DefaultIncrementMonth, totalBreakDays(input.Breaks))

	events := buildEvents(input)
	eventIdx := 0

	for cur := firstOfMonth(doj); !cur.After(effectiveEnd); cur = addMonths(cur, 1) {
		state.remarksThisMonth = nil
		state.incrementHandledThisMonth = false

		for eventIdx < len(events) && !firstOfMonth(events[eventIdx].Date).After(cur) {
			if sameMonth(events[eventIdx].Date, cur) {
				if err := applyEvent(state, refs, &events[eventIdx]); err != nil {
					return PayrollResult{}, err
				}
			}
			eventIdx++
		}

		if !cur.Before(state.nextScheduledIncrement) && !state.incrementHandledThisMonth {
			if err := grantAnnualIncrement(state, refs, input, cur); err != nil {
				return PayrollResult{}, err
			}
		}

		applyDARemark(state, refs, input, cur)

		if !cur.Before(calcStart) {
			state.periods = append(state.periods, computePeriod(state, refs, input, cur))
		}
	}

	return assembleResult(input, state), nil
}

func seedState(input EmployeeInput, refs *ReferenceTables) (*simState, error) {
	state := &simState{
		commission: input.JoiningCommission,
		fixations:  make(map[int]*FixationSnapshot),
	}

	switch input.JoiningCommission {
	case 3, 4, 5:
		if _, ok := refs.Scale(input.JoiningScaleID); !ok {
			return nil, newValidationError("joiningScaleId", "unknown scale id \""+input.JoiningScaleID+"\"")
		}
		state.scaleID = input.JoiningScaleID
		state.basicPay = input.JoiningBasicPay
	case 6:
		gp, ok := refs.GradePay(input.JoiningGPScaleID)
		if !ok {
			return nil, newValidationError("joiningGpScaleId", "unknown 6th PC scale id \""+input.JoiningGPScaleID+"\"")
		}
		state.scaleID = input.JoiningGPScaleID
		state.gradePay = gp
		state.pipb = input.JoiningPIPB
		state.basicPay = state.pipb + gp
	case 7:
		stages, ok := refs.PayMatrix()[input.JoiningLevel]
		if !ok || len(stages) == 0 {
			return nil, newValidationError("joiningLevel", levelKey(input.JoiningLevel)+" is not a pay-matrix level")
		}
		state.level = input.JoiningLevel
		state.basicPay = stages[0]
	}

	return state, nil
}

func applyEvent(state *simState, refs *ReferenceTables, evt *timelineEvent) error {
	switch evt.Kind {
	case eventCommissionTransition:
		if state.commission != evt.FromCommission {
			return nil
		}
		if err := applyCommissionTransition(state, refs, evt.FromCommission, evt.ToCommission, evt.Date); err != nil {
			return err
		}
		// The transition month's basic pay is the fixed pay itself; an annual
		// increment falling due that month is granted the following month.
		state.incrementHandledThisMonth = true
		return nil
	case eventSelectionGrade:
		return applyGradeEvent(state, refs, evt.Grade, false, evt.Date)
	case eventSpecialGrade:
		return applyGradeEvent(state, refs, evt.Grade, true, evt.Date)
	case eventPromotion:
		return applyPromotion(state, refs, evt.Promotion)
	case eventAccountTestPass:
		state.accountTestPending = true
	}
	return nil
}

// grantAnnualIncrement runs spec.md §4.8's annual-increment logic: a
// probation/test eligibility check, the increment itself if eligible, a
// second increment if an account-test pass is pending, and the schedule
// advancement for next year.
func grantAnnualIncrement(state *simState, refs *ReferenceTables, input EmployeeInput, cur time.Time) error {
	n := state.regularIncrementCount + 1
	verdict := evaluateProbation(input.Probation, state.nextScheduledIncrement, n)

	if !verdict.Eligible {
		state.remarksThisMonth = append(state.remarksThisMonth, verdict.Remark)
		return nil
	}
	if cur.Before(verdict.EffectiveDate) {
		state.remarksThisMonth = append(state.remarksThisMonth, "increment withheld pending departmental test")
		return nil
	}

	if err := applyOneIncrement(state, refs); err != nil {
		return err
	}
	state.regularIncrementCount = n
	state.analysis.record(IncrementRegular)
	state.remarksThisMonth = append(state.remarksThisMonth, "Annual increment granted")

	if state.accountTestPending {
		if err := applyOneIncrement(state, refs); err != nil {
			return err
		}
		state.accountTestPending = false
		state.analysis.record(IncrementAccountTest)
		state.remarksThisMonth = append(state.remarksThisMonth, "Additional increment for departmental test pass")
	}

	state.incrementHandledThisMonth = true
	state.nextScheduledIncrement = nextScheduleAfterGrant(input, cur)
	return nil
}

// applyOneIncrement applies a single commission-appropriate increment step.
func applyOneIncrement(state *simState, refs *ReferenceTables) error {
	switch state.commission {
	case 7:
		newPay, err := refs.PayMatrix().Increment7th(state.basicPay, state.level, 1)
		if err != nil {
			return err
		}
		state.basicPay = newPay
	case 6:
		band, _ := refs.PayBandForGradePay(state.gradePay)
		state.pipb = Increment6th(state.pipb, state.gradePay, 1, band)
		state.basicPay = state.pipb + state.gradePay
	default:
		sc, ok := refs.Scale(state.scaleID)
		if !ok {
			return newMappingError("applyOneIncrement", state.scaleID)
		}
		state.basicPay = sc.Increment(state.basicPay, 1)
	}
	return nil
}

func applyDARemark(state *simState, refs *ReferenceTables, input EmployeeInput, cur time.Time) {
	rate := lookupDARate(refs.DARates(), state.commission, cur)
	if input.DAOverride != nil {
		rate = *input.DAOverride
	}
	if state.daRateSeeded && rate != state.daRatePrev {
		state.remarksThisMonth = append(state.remarksThisMonth, "DA revised to "+formatPercent(rate)+"%")
	}
	if input.DAOverride != nil {
		state.remarksThisMonth = append(state.remarksThisMonth, "DA Override applied")
	}
	state.daRatePrev = rate
	state.daRateSeeded = true
}

func computePeriod(state *simState, refs *ReferenceTables, input EmployeeInput, cur time.Time) PayrollPeriod {
	daAmount := DAAmount(refs.DARates(), state.commission, cur, state.basicPay, input.DAOverride)
	hra := HRAAmount(refs.HRASlabs(), state.commission, cur, state.basicPay, input.CityClass)
	cca := CCAAmount(refs.CCARates(), state.commission, input.CityClass)
	medical := input.Allowances.Medical

	basic := int64(state.basicPay)
	gross := basic + daAmount + hra + cca + medical

	deductions := Deductions{
		ProvidentFund: percentOf(basic+daAmount, input.Allowances.ProvidentRate),
		ProfessionTax: input.Allowances.ProfessionTax,
		GIS:           input.Allowances.GIS,
	}
	net := gross - deductions.Total()

	remarks := make([]string, len(state.remarksThisMonth))
	copy(remarks, state.remarksThisMonth)

	return PayrollPeriod{
		Date: cur, Commission: state.commission, Level: state.level,
		GradePay: state.gradePay, PIPB: state.pipb,
		BasicPay: basic, DAAmount: daAmount, HRAAmount: hra, CCAAmount: cca, Medical: medical,
		GrossPay: gross, Deductions: deductions, NetPay: net, Remarks: remarks,
	}
}
