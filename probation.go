package payroll

import "time"

// probationKind buckets a ProbationSettings into which ordinal increment
// (1st or 2nd) its test-linked withholding rule checks, per spec.md §4.9:
// Custom periods of 18 months or less behave like 1Y, longer ones like 2Y.
type probationKind int

const (
	probationOneYear probationKind = iota
	probationTwoYear
)

func kindOf(p ProbationSettings) probationKind {
	switch p.Type {
	case Probation1Year:
		return probationOneYear
	case Probation2Year:
		return probationTwoYear
	default:
		if p.CustomMonths <= 18 {
			return probationOneYear
		}
		return probationTwoYear
	}
}

// probationVerdict is the outcome of checking one scheduled increment
// against an employee's probation and departmental-test status.
type probationVerdict struct {
	Eligible      bool
	EffectiveDate time.Time
	Remark        string
}

// evaluateProbation implements spec.md §4.9 in full: hard termination after
// five years without a required test, the 1Y/2Y test-linked withholding
// rule applied only to the matching ordinal increment, and unconditional
// eligibility otherwise.
func evaluateProbation(p ProbationSettings, normalDate time.Time, n int) probationVerdict {
	if !p.TestRequired {
		return probationVerdict{Eligible: true, EffectiveDate: normalDate}
	}

	start := mustDate(p.StartDate)
	testCleared := p.TestStatus == TestPassed || p.TestStatus == TestExempted

	if !testCleared && normalDate.Sub(start) > 5*365*24*time.Hour {
		return probationVerdict{Remark: "PROBATION TERMINATED: departmental test not cleared within five years"}
	}

	checkedOrdinal := 1
	if kindOf(p) == probationTwoYear {
		checkedOrdinal = 2
	}
	if n != checkedOrdinal {
		return probationVerdict{Eligible: true, EffectiveDate: normalDate}
	}

	switch p.TestStatus {
	case TestExempted:
		return probationVerdict{Eligible: true, EffectiveDate: normalDate}
	case TestPassed:
		passDate := mustDate(p.TestPassDate)
		effective := normalDate
		if passDate.After(effective) {
			effective = passDate
		}
		return probationVerdict{Eligible: true, EffectiveDate: effective}
	default:
		return probationVerdict{Remark: "increment withheld pending departmental test"}
	}
}
