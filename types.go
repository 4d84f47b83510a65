package payroll

import "time"

// PostRef identifies an employee's post, either from the reference-table
// catalogue or as a free-form custom name (spec.md §3).
type PostRef struct {
	PostID     string `yaml:"postId,omitempty" json:"postId,omitempty"`
	CustomName string `yaml:"customName,omitempty" json:"customName,omitempty"`
}

func (p PostRef) String() string {
	if p.CustomName != "" {
		return p.CustomName
	}
	return p.PostID
}

// IncrementCategory classifies which rule granted an increment, for the
// audit counters in spec.md §4.11.
type IncrementCategory int

const (
	IncrementRegular IncrementCategory = iota
	IncrementSelectionGrade
	IncrementSpecialGrade
	IncrementPromotion
	IncrementAccountTest
)

func (c IncrementCategory) String() string {
	switch c {
	case IncrementRegular:
		return "Regular"
	case IncrementSelectionGrade:
		return "Selection Grade"
	case IncrementSpecialGrade:
		return "Special Grade"
	case IncrementPromotion:
		return "Promotion"
	case IncrementAccountTest:
		return "Account Test"
	default:
		return "Unknown"
	}
}

// FixationSnapshot records the before/after pay at a commission transition
// (spec.md §4.5, §4.11).
type FixationSnapshot struct {
	EffectiveDate     time.Time
	FromCommission    int
	ToCommission      int
	InitialBasicPay   int
	InitialRevisedPay int
	Citation          string
}

// ScaleRevision records a scale, grade-pay or level change: a
// commission-transition fixation, a promotion, or a 5th-PC selection/special
// grade scale change.
type ScaleRevision struct {
	EffectiveDate time.Time
	Description   string
	FromValue     string
	ToValue       string
}

// PayrollPeriod is the single employee's pay components for a month, mirroring spec.md §4.10's monthly record.
type PayrollPeriod struct {
	Date        time.Time
	Commission  int
	Level       int // 0 when not on the 7th-PC pay matrix
	GradePay    int // 0 when not on the 6th-PC pay band
	PIPB        int // 0 when not on the 6th-PC pay band
	BasicPay    int64
	DAAmount    int64
	HRAAmount   int64
	CCAAmount   int64
	Medical     int64
	GrossPay    int64
	Deductions  Deductions
	NetPay      int64
	Remarks     []string
}

// Deductions holds the statutory deductions applied to a month's gross pay
// (spec.md §4.10).
type Deductions struct {
	ProvidentFund int64 // CPS or GPF, on (basic + DA)
	ProfessionTax int64
	GIS           int64
}

func (d Deductions) Total() int64 {
	return d.ProvidentFund + d.ProfessionTax + d.GIS
}

// IncrementAnalysis tallies how many increments of each category were
// granted across the simulation (spec.md §4.11).
type IncrementAnalysis struct {
	Regular        int
	SelectionGrade int
	SpecialGrade   int
	Promotion      int
	AccountTest    int
	Total          int
}

func (a *IncrementAnalysis) record(category IncrementCategory) {
	switch category {
	case IncrementRegular:
		a.Regular++
	case IncrementSelectionGrade:
		a.SelectionGrade++
	case IncrementSpecialGrade:
		a.SpecialGrade++
	case IncrementPromotion:
		a.Promotion++
	case IncrementAccountTest:
		a.AccountTest++
	}
	a.Total++
}

// YearlyPayroll groups a year's monthly periods for presentation
// (spec.md §4.11).
type YearlyPayroll struct {
	Year    int
	Periods []PayrollPeriod
}

// EmployeeMetadata carries formatted, presenter-facing identity fields.
type EmployeeMetadata struct {
	Name               string
	DateOfJoining      string
	RetirementDate     string
	JoiningPost        string
	CalculationStart   string
	CalculationEnd     string
}

// PayrollResult is the engine's sole output type (spec.md §6).
type PayrollResult struct {
	Employee           EmployeeMetadata
	Fixation4thPC      *FixationSnapshot
	Fixation5thPC      *FixationSnapshot
	Fixation6thPC      *FixationSnapshot
	Fixation7thPC      *FixationSnapshot
	YearlyCalculations []YearlyPayroll
	AppliedRevisions   []ScaleRevision
	IncrementAnalysis  IncrementAnalysis
}
