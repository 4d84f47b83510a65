package payroll

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findPeriod(t *testing.T, result PayrollResult, date string) PayrollPeriod {
	t.Helper()
	target := MustParseDate(date)
	for _, y := range result.YearlyCalculations {
		for _, p := range y.Periods {
			if p.Date.Equal(target) {
				return p
			}
		}
	}
	t.Fatalf("no period found for %s", date)
	return PayrollPeriod{}
}

func baseProbation(start string) ProbationSettings {
	return ProbationSettings{Type: Probation1Year, StartDate: start, TestRequired: false}
}

func TestBoundary_SeventhPCNewEntrant(t *testing.T) {
	input := EmployeeInput{
		Name:                       "New Entrant",
		DateOfBirth:                "1995-01-01",
		RetirementAge:              60,
		DateOfJoiningService:       "2018-07-01",
		DateOfJoiningOffice:        "2018-07-01",
		JoiningPost:                PostRef{CustomName: "Junior Assistant"},
		JoiningCommission:          7,
		JoiningLevel:               7,
		Probation:                  baseProbation("2018-07-01"),
		CityClass:                  CityClassC,
		DefaultIncrementMonth:      July,
		IncrementEligibilityMonths: 6,
		CalculationStart:           "2018-07-01",
		CalculationEnd:             "2019-12-01",
	}

	result, err := Simulate(input)
	require.NoError(t, err)

	refs, err := Reference()
	require.NoError(t, err)
	stages := refs.PayMatrix()[7]

	first := findPeriod(t, result, "2018-07-01")
	assert.EqualValues(t, stages[0], first.BasicPay)

	afterIncrement := findPeriod(t, result, "2019-07-01")
	assert.EqualValues(t, stages[1], afterIncrement.BasicPay)
}

func TestBoundary_SixthToSeventhTransition(t *testing.T) {
	input := EmployeeInput{
		Name:                       "Transition Employee",
		DateOfBirth:                "1985-01-01",
		RetirementAge:              60,
		DateOfJoiningService:       "2010-01-01",
		DateOfJoiningOffice:        "2010-01-01",
		JoiningPost:                PostRef{CustomName: "Clerk"},
		JoiningCommission:          6,
		JoiningPIPB:                9300,
		JoiningGPScaleID:           "S6-5",
		Probation:                  baseProbation("2010-01-01"),
		CityClass:                  CityClassC,
		DefaultIncrementMonth:      January,
		IncrementEligibilityMonths: 6,
		CalculationStart:           "2010-01-01",
		CalculationEnd:             "2016-06-01",
	}

	result, err := Simulate(input)
	require.NoError(t, err)

	require.NotNil(t, result.Fixation7thPC)
	assert.Equal(t, 6, result.Fixation7thPC.FromCommission)
	assert.Equal(t, 7, result.Fixation7thPC.ToCommission)

	firstInSeventh := findPeriod(t, result, "2016-01-01")
	assert.EqualValues(t, result.Fixation7thPC.InitialRevisedPay, firstInSeventh.BasicPay)
	assert.Equal(t, 8, firstInSeventh.Level) // gradePayToLevel[4200] = 8
}

func TestBoundary_ProbationWithholding(t *testing.T) {
	input := EmployeeInput{
		Name:                 "Probationer",
		DateOfBirth:          "1998-01-01",
		RetirementAge:        58,
		DateOfJoiningService: "2021-01-01",
		DateOfJoiningOffice:  "2021-01-01",
		JoiningPost:          PostRef{CustomName: "Junior Assistant"},
		JoiningCommission:    5,
		JoiningScaleID:       "S5-1",
		JoiningBasicPay:      4000,
		Probation: ProbationSettings{
			Type: Probation1Year, StartDate: "2021-01-01",
			TestRequired: true, TestStatus: TestPassed, TestPassDate: "2021-09-01",
		},
		CityClass:                  CityClassC,
		DefaultIncrementMonth:      July,
		IncrementEligibilityMonths: 6,
		CalculationStart:           "2021-01-01",
		CalculationEnd:             "2021-12-01",
	}

	result, err := Simulate(input)
	require.NoError(t, err)

	atSchedule := findPeriod(t, result, "2021-07-01")
	assert.EqualValues(t, 4000, atSchedule.BasicPay, "increment should be withheld until the test-pass date")
	assert.True(t, containsSubstring(atSchedule.Remarks, "withheld"))

	afterPass := findPeriod(t, result, "2021-09-01")
	assert.EqualValues(t, 4100, afterPass.BasicPay, "increment should apply once the test-pass date is reached")
}

func TestBoundary_SelectionGradeFixationBenefit(t *testing.T) {
	input := EmployeeInput{
		Name:                 "Selection Grade Employee",
		DateOfBirth:          "1980-01-01",
		RetirementAge:        60,
		DateOfJoiningService: "2017-01-01",
		DateOfJoiningOffice:  "2017-01-01",
		JoiningPost:          PostRef{CustomName: "Superintendent"},
		JoiningCommission:    7,
		JoiningLevel:         7,
		SelectionGrade: &GradeEvent{
			EffectiveDate: "2020-01-01", ApplyFixation: true,
		},
		Probation:                  baseProbation("2017-01-01"),
		CityClass:                  CityClassC,
		DefaultIncrementMonth:      July,
		IncrementEligibilityMonths: 60,
		CalculationStart:           "2017-01-01",
		CalculationEnd:             "2020-06-01",
	}

	result, err := Simulate(input)
	require.NoError(t, err)

	refs, err := Reference()
	require.NoError(t, err)
	stages := refs.PayMatrix()[7]

	before := findPeriod(t, result, "2019-12-01")
	origIndex := refs.PayMatrix().StageIndex(int(before.BasicPay), 7)
	require.GreaterOrEqual(t, origIndex, 0)

	after := findPeriod(t, result, "2020-01-01")
	wantIndex := origIndex + 2
	if wantIndex >= len(stages) {
		wantIndex = len(stages) - 1
	}
	assert.EqualValues(t, stages[wantIndex], after.BasicPay)
	assert.Equal(t, 1, result.IncrementAnalysis.SelectionGrade)
}

func TestBoundary_AccountTestDoubleIncrement(t *testing.T) {
	input := EmployeeInput{
		Name:                 "Test Passer",
		DateOfBirth:          "1990-01-01",
		RetirementAge:        60,
		DateOfJoiningService: "2019-01-01",
		DateOfJoiningOffice:  "2019-01-01",
		JoiningPost:          PostRef{CustomName: "Assistant"},
		JoiningCommission:    7,
		JoiningLevel:         5,
		AccountTestPasses: []AccountTestPass{
			{PassDate: "2019-11-01", Description: "Account Test Part I"},
		},
		Probation:                  baseProbation("2019-01-01"),
		CityClass:                  CityClassC,
		DefaultIncrementMonth:      January,
		IncrementEligibilityMonths: 6,
		CalculationStart:           "2019-01-01",
		CalculationEnd:             "2020-03-01",
	}

	result, err := Simulate(input)
	require.NoError(t, err)

	refs, err := Reference()
	require.NoError(t, err)
	stages := refs.PayMatrix()[5]

	period := findPeriod(t, result, "2020-01-01")
	assert.EqualValues(t, stages[2], period.BasicPay, "one regular plus one account-test increment should advance two stages")

	assert.Equal(t, 1, result.IncrementAnalysis.Regular)
	assert.Equal(t, 1, result.IncrementAnalysis.AccountTest)
	assert.Equal(t, 2, result.IncrementAnalysis.Total)
}

func containsSubstring(remarks []string, substr string) bool {
	for _, r := range remarks {
		if strings.Contains(r, substr) {
			return true
		}
	}
	return false
}
