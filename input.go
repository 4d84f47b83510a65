package payroll

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// ProbationType is the probation period an employee serves, per spec.md §3.
type ProbationType string

const (
	Probation1Year  ProbationType = "1Y"
	Probation2Year  ProbationType = "2Y"
	ProbationCustom ProbationType = "Custom"
)

// TestStatus is the departmental-test status feeding probation eligibility
// (spec.md §4.9).
type TestStatus string

const (
	TestPending  TestStatus = "pending"
	TestPassed   TestStatus = "passed"
	TestExempted TestStatus = "exempted"
)

// ProbationSettings describes an employee's probation and its test
// requirement (spec.md §3, §4.9).
type ProbationSettings struct {
	Type          ProbationType `yaml:"type" json:"type" validate:"required,oneof=1Y 2Y Custom"`
	CustomMonths  int           `yaml:"customMonths,omitempty" json:"customMonths,omitempty"`
	StartDate     string        `yaml:"startDate" json:"startDate" validate:"required"`
	TestRequired  bool          `yaml:"testRequired" json:"testRequired"`
	TestType      string        `yaml:"testType,omitempty" json:"testType,omitempty"`
	TestStatus    TestStatus    `yaml:"testStatus,omitempty" json:"testStatus,omitempty" validate:"omitempty,oneof=pending passed exempted"`
	TestPassDate  string        `yaml:"testPassDate,omitempty" json:"testPassDate,omitempty"`
}

// GradeEvent is a selection- or special-grade award (spec.md §3, §4.6).
type GradeEvent struct {
	EffectiveDate string `yaml:"effectiveDate" json:"effectiveDate" validate:"required"`
	ApplyFixation bool   `yaml:"applyFixation" json:"applyFixation"`
}

// Promotion is a career promotion event (spec.md §3, §4.7). Exactly one of
// NewGradePay (6th PC target) or NewLevel (7th PC target) applies,
// depending on which commission is active on EffectiveDate.
type Promotion struct {
	EffectiveDate string `yaml:"effectiveDate" json:"effectiveDate" validate:"required"`
	TargetPost    string `yaml:"targetPost" json:"targetPost" validate:"required"`
	NewGradePay   int    `yaml:"newGradePay,omitempty" json:"newGradePay,omitempty"`
	NewLevel      int    `yaml:"newLevel,omitempty" json:"newLevel,omitempty"`
}

// ScheduleChange moves an employee's annual-increment month (spec.md §3).
type ScheduleChange struct {
	EffectiveDate string         `yaml:"effectiveDate" json:"effectiveDate" validate:"required"`
	Month         IncrementMonth `yaml:"month" json:"month" validate:"required"`
}

// BreakInService is one gap in continuous service (spec.md §3).
type BreakInService struct {
	Start string `yaml:"start" json:"start" validate:"required"`
	End   string `yaml:"end" json:"end" validate:"required"`
}

// AccountTestPass is a departmental qualifying-exam pass event (spec.md §3).
type AccountTestPass struct {
	PassDate    string `yaml:"passDate" json:"passDate" validate:"required"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// FixedAllowances are the flat monthly allowance/deduction amounts that
// don't depend on commission-era lookups (spec.md §3).
type FixedAllowances struct {
	Medical       int64   `yaml:"medical" json:"medical"`
	ProvidentRate float64 `yaml:"providentFundRate" json:"providentFundRate"` // CPS/GPF %, applied to basic+DA
	ProfessionTax int64   `yaml:"professionTax" json:"professionTax"`
	GIS           int64   `yaml:"gis" json:"gis"`
}

// LPCAdvance records a Last Pay Certificate advance carried into this
// office; the engine's monthly loop does not compute recovery against it
// (arrear/recovery accounting is a documented Non-goal, spec.md §1) — it is
// retained purely as audit metadata for the presenter.
type LPCAdvance struct {
	Date   string `yaml:"date" json:"date"`
	Amount int64  `yaml:"amount" json:"amount"`
}

// EmployeeInput is the engine's sole input type (spec.md §3, §6). It is
// YAML/JSON tagged so a Form collaborator can serialize it directly, and
// validator/v10-tagged for the struct-level checks spec.md §7.1 calls for;
// cross-field rules the tag language can't express (which joining-pay
// fields are required for which commission) are enforced in Validate().
type EmployeeInput struct {
	Name                    string `yaml:"name" json:"name" validate:"required"`
	DateOfBirth             string `yaml:"dateOfBirth" json:"dateOfBirth" validate:"required"`
	RetirementAge           int    `yaml:"retirementAge" json:"retirementAge" validate:"required,oneof=58 60"`
	DateOfJoiningService    string `yaml:"dateOfJoiningService" json:"dateOfJoiningService" validate:"required"`
	DateOfJoiningOffice     string `yaml:"dateOfJoiningOffice" json:"dateOfJoiningOffice" validate:"required"`
	DateOfRelief            string `yaml:"dateOfRelief,omitempty" json:"dateOfRelief,omitempty"`

	JoiningPost       PostRef `yaml:"joiningPost" json:"joiningPost"`
	JoiningCommission int     `yaml:"joiningCommission" json:"joiningCommission" validate:"required,oneof=3 4 5 6 7"`

	// Commission-appropriate joining pay: Validate requires the group that
	// matches JoiningCommission; fields of the other groups are ignored.
	JoiningScaleID  string `yaml:"joiningScaleId,omitempty" json:"joiningScaleId,omitempty"`
	JoiningBasicPay int    `yaml:"joiningBasicPay,omitempty" json:"joiningBasicPay,omitempty"`
	JoiningPIPB     int    `yaml:"joiningPipb,omitempty" json:"joiningPipb,omitempty"`
	JoiningGPScaleID string `yaml:"joiningGpScaleId,omitempty" json:"joiningGpScaleId,omitempty"`
	JoiningLevel    int    `yaml:"joiningLevel,omitempty" json:"joiningLevel,omitempty"`

	SelectionGrade *GradeEvent `yaml:"selectionGrade,omitempty" json:"selectionGrade,omitempty"`
	SpecialGrade   *GradeEvent `yaml:"specialGrade,omitempty" json:"specialGrade,omitempty"`

	Promotions             []Promotion      `yaml:"promotions,omitempty" json:"promotions,omitempty"`
	ScheduleChanges        []ScheduleChange `yaml:"scheduleChanges,omitempty" json:"scheduleChanges,omitempty"`
	Breaks                 []BreakInService `yaml:"breaks,omitempty" json:"breaks,omitempty"`
	AccountTestPasses      []AccountTestPass `yaml:"accountTestPasses,omitempty" json:"accountTestPasses,omitempty"`
	LPCAdvances            []LPCAdvance     `yaml:"lpcAdvances,omitempty" json:"lpcAdvances,omitempty"`

	Allowances FixedAllowances `yaml:"allowances" json:"allowances"`
	Probation  ProbationSettings `yaml:"probation" json:"probation" validate:"required"`

	CityClass      CityClass `yaml:"cityClass" json:"cityClass"`
	DAOverride     *float64  `yaml:"daOverride,omitempty" json:"daOverride,omitempty"`

	// IncrementEligibilityMonths defaults to 6 (spec.md §4.8) if zero.
	IncrementEligibilityMonths int `yaml:"incrementEligibilityMonths,omitempty" json:"incrementEligibilityMonths,omitempty"`
	// DefaultIncrementMonth is used until the first ScheduleChange applies.
	DefaultIncrementMonth IncrementMonth `yaml:"defaultIncrementMonth" json:"defaultIncrementMonth" validate:"required"`

	CalculationStart string `yaml:"calculationStart" json:"calculationStart" validate:"required"`
	CalculationEnd   string `yaml:"calculationEnd" json:"calculationEnd" validate:"required"`
}

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New()
	})
	return validatorInst
}

// Validate runs struct-tag validation followed by the cross-field and
// domain rules spec.md §7.1 names explicitly: DoJ >= 1980-01-01, and the
// commission-appropriate joining-pay fields being present.
func (in EmployeeInput) Validate() error {
	if err := getValidator().Struct(in); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	doj, err := ParseDate(in.DateOfJoiningService)
	if err != nil {
		return newValidationError("dateOfJoiningService", err.Error())
	}
	if doj.Before(earliestAllowedDate) {
		return newValidationError("dateOfJoiningService", "must not precede 1980-01-01")
	}

	if _, err := ParseDate(in.DateOfJoiningOffice); err != nil {
		return newValidationError("dateOfJoiningOffice", err.Error())
	}
	if _, err := ParseDate(in.DateOfBirth); err != nil {
		return newValidationError("dateOfBirth", err.Error())
	}
	if _, err := ParseDate(in.CalculationStart); err != nil {
		return newValidationError("calculationStart", err.Error())
	}
	if _, err := ParseDate(in.CalculationEnd); err != nil {
		return newValidationError("calculationEnd", err.Error())
	}
	if in.DateOfRelief != "" {
		if _, err := ParseDate(in.DateOfRelief); err != nil {
			return newValidationError("dateOfRelief", err.Error())
		}
	}

	switch in.JoiningCommission {
	case 3, 4, 5:
		if in.JoiningScaleID == "" || in.JoiningBasicPay <= 0 {
			return newValidationError("joiningScaleId/joiningBasicPay",
				"required when joiningCommission is 3, 4, or 5")
		}
	case 6:
		if in.JoiningPIPB <= 0 || in.JoiningGPScaleID == "" {
			return newValidationError("joiningPipb/joiningGpScaleId",
				"required when joiningCommission is 6")
		}
	case 7:
		if in.JoiningLevel <= 0 {
			return newValidationError("joiningLevel", "required when joiningCommission is 7")
		}
	}

	if in.Probation.Type == ProbationCustom && in.Probation.CustomMonths <= 0 {
		return newValidationError("probation.customMonths", "required when probation.type is Custom")
	}

	return nil
}

func (in EmployeeInput) incrementEligibilityMonths() int {
	if in.IncrementEligibilityMonths > 0 {
		return in.IncrementEligibilityMonths
	}
	return 6
}

// mustDate parses a date string, returning the zero time if it is malformed.
// Validate() parses the joining, birth, relief and calculation-window dates;
// probation, promotion, grade, schedule-change, break and account-test dates
// are not parsed there and reach mustDate unchecked.
func mustDate(s string) time.Time {
	t, _ := ParseDate(s)
	return t
}
