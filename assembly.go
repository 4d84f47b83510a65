package payroll

// assembleResult groups the simulator's flat period list into yearly
// buckets and attaches metadata, per spec.md §4.11.
func assembleResult(input EmployeeInput, state *simState) PayrollResult {
	var years []YearlyPayroll
	var current *YearlyPayroll
	for _, p := range state.periods {
		y := p.Date.Year()
		if current == nil || current.Year != y {
			years = append(years, YearlyPayroll{Year: y})
			current = &years[len(years)-1]
		}
		current.Periods = append(current.Periods, p)
	}

	return PayrollResult{
		Employee:           buildMetadata(input),
		Fixation4thPC:      state.fixations[4],
		Fixation5thPC:      state.fixations[5],
		Fixation6thPC:      state.fixations[6],
		Fixation7thPC:      state.fixations[7],
		YearlyCalculations: years,
		AppliedRevisions:   state.revisions,
		IncrementAnalysis:  state.analysis,
	}
}

// buildMetadata formats the presenter-facing identity fields, per
// spec.md §4.11: retirement date is the last day of the (DoB month +
// retirementAge years) month, and every date is DD/MM/YYYY.
func buildMetadata(input EmployeeInput) EmployeeMetadata {
	dob := mustDate(input.DateOfBirth)
	retirement := lastDayOfMonth(addYears(firstOfMonth(dob), input.RetirementAge))

	return EmployeeMetadata{
		Name:             input.Name,
		DateOfJoining:    formatDDMMYYYY(mustDate(input.DateOfJoiningService)),
		RetirementDate:   formatDDMMYYYY(retirement),
		JoiningPost:      input.JoiningPost.String(),
		CalculationStart: formatDDMMYYYY(mustDate(input.CalculationStart)),
		CalculationEnd:   formatDDMMYYYY(mustDate(input.CalculationEnd)),
	}
}
