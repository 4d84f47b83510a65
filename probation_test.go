package payroll

import "testing"

func TestEvaluateProbation_NoTestRequired(t *testing.T) {
	p := ProbationSettings{Type: Probation1Year, StartDate: "2020-01-01", TestRequired: false}
	v := evaluateProbation(p, MustParseDate("2020-07-01"), 1)
	if !v.Eligible {
		t.Fatal("expected eligible when no test is required")
	}
}

func TestEvaluateProbation_WithheldPendingTest(t *testing.T) {
	p := ProbationSettings{
		Type: Probation1Year, StartDate: "2020-01-01",
		TestRequired: true, TestStatus: TestPending,
	}
	v := evaluateProbation(p, MustParseDate("2020-07-01"), 1)
	if v.Eligible {
		t.Fatal("expected increment withheld while test is pending")
	}
}

func TestEvaluateProbation_EligibleAfterTestPass(t *testing.T) {
	p := ProbationSettings{
		Type: Probation1Year, StartDate: "2020-01-01",
		TestRequired: true, TestStatus: TestPassed, TestPassDate: "2020-09-01",
	}
	normal := MustParseDate("2020-07-01")
	v := evaluateProbation(p, normal, 1)
	if !v.Eligible {
		t.Fatal("expected eligible once test is passed")
	}
	if !v.EffectiveDate.Equal(MustParseDate("2020-09-01")) {
		t.Errorf("effective date should be the later of normal/test-pass dates, got %v", v.EffectiveDate)
	}
}

func TestEvaluateProbation_OtherOrdinalsUnaffected(t *testing.T) {
	p := ProbationSettings{
		Type: Probation1Year, StartDate: "2020-01-01",
		TestRequired: true, TestStatus: TestPending,
	}
	v := evaluateProbation(p, MustParseDate("2021-07-01"), 2)
	if !v.Eligible {
		t.Fatal("expected the second increment under 1Y probation to be unaffected by the test rule")
	}
}

func TestEvaluateProbation_HardTermination(t *testing.T) {
	p := ProbationSettings{
		Type: Probation1Year, StartDate: "2015-01-01",
		TestRequired: true, TestStatus: TestPending,
	}
	v := evaluateProbation(p, MustParseDate("2021-01-01"), 1)
	if v.Eligible {
		t.Fatal("expected termination after five years without clearing the test")
	}
	if v.Remark == "" {
		t.Error("expected a termination remark")
	}
}

func TestEvaluateProbation_CustomBucketing(t *testing.T) {
	shortCustom := ProbationSettings{Type: ProbationCustom, CustomMonths: 12, StartDate: "2020-01-01", TestRequired: true, TestStatus: TestPending}
	if kindOf(shortCustom) != probationOneYear {
		t.Error("custom <= 18 months should bucket as 1Y")
	}
	longCustom := ProbationSettings{Type: ProbationCustom, CustomMonths: 24, StartDate: "2020-01-01", TestRequired: true, TestStatus: TestPending}
	if kindOf(longCustom) != probationTwoYear {
		t.Error("custom > 18 months should bucket as 2Y")
	}
}
