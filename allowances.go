package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// CityClass is the employee's posting-city classification, which determines
// HRA and CCA slabs (spec.md §3, §4.4).
type CityClass int

const (
	CityClassA CityClass = iota
	CityClassB
	CityClassC
)

func (c CityClass) String() string {
	switch c {
	case CityClassA:
		return "A"
	case CityClassB:
		return "B"
	case CityClassC:
		return "C"
	default:
		return "Unknown"
	}
}

// cityGrade maps a posting-city class to the HRA slab's grade column, per
// spec.md §4.4: "A→Grade I(a), B→Grade I(b), C→Grade II".
func (c CityClass) cityGrade() string {
	switch c {
	case CityClassA:
		return "Grade I(a)"
	case CityClassB:
		return "Grade I(b)"
	default:
		return "Grade II"
	}
}

// DARate is one entry of the dearness-allowance rate table: the rate in
// effect for a commission era from EffectiveFrom onward, expressed as a
// percentage of basic pay.
type DARate struct {
	EffectiveFrom time.Time
	Commission    int
	RatePercent   float64
}

// lookupDARate selects the most recent DA rate whose effective date is on
// or before date and whose commission matches, per spec.md §4.4. Pre-6th
// commissions (3,4,5) share a single pre-2006 DA series, so their rows are
// stored with Commission 0 ("pre-6th") and matched for any commission < 6.
func lookupDARate(rates []DARate, commission int, date time.Time) float64 {
	lookupCommission := commission
	if commission < 6 {
		lookupCommission = 0
	}

	best := -1
	for i, r := range rates {
		rowCommission := r.Commission
		if rowCommission != lookupCommission {
			continue
		}
		if r.EffectiveFrom.After(date) {
			continue
		}
		if best == -1 || r.EffectiveFrom.After(rates[best].EffectiveFrom) {
			best = i
		}
	}
	if best == -1 {
		return 0
	}
	return rates[best].RatePercent
}

// DAAmount returns the monthly DA in whole rupees for basicPay under the
// given commission/date, honoring an optional override (spec.md §4.4).
func DAAmount(rates []DARate, commission int, date time.Time, basicPay int, override *float64) int64 {
	rate := lookupDARate(rates, commission, date)
	if override != nil {
		rate = *override
	}
	return roundRupees(decimal.NewFromInt(int64(basicPay)).Mul(decimal.NewFromFloat(rate)).Div(decimal.NewFromInt(100)))
}

// HRASlab is one row of an era's HRA slab table: the monthly HRA amount for
// each city grade when basic pay falls in [PayFrom, PayTo).
type HRASlab struct {
	Era              string // "3rd", "4th", "5th", "6th-pre-2009", "6th-post-2009", "7th"
	PayFrom          int
	PayTo            int // 0 means unbounded
	GradeIA          int
	GradeIB          int
	GradeII          int
	Unclassified     int
}

// hraEra returns the slab-table era key for a commission/date combination,
// per spec.md §4.4's era boundaries.
func hraEra(commission int, date time.Time) string {
	switch {
	case commission == 7 || !date.Before(MustParseDate("2016-01-01")):
		return "7th"
	case commission == 6:
		if date.Before(MustParseDate("2009-06-01")) {
			return "6th-pre-2009"
		}
		return "6th-post-2009"
	case commission == 5:
		return "5th"
	case commission == 4:
		return "4th"
	default:
		return "3rd"
	}
}

// HRAAmount looks up the monthly HRA for basicPay under the appropriate era
// slab table and city class, falling back to "Unclassified" if the city
// grade column is zero in that row (spec.md §4.4).
func HRAAmount(slabs []HRASlab, commission int, date time.Time, basicPay int, city CityClass) int64 {
	era := hraEra(commission, date)
	for _, s := range slabs {
		if s.Era != era {
			continue
		}
		if basicPay < s.PayFrom {
			continue
		}
		if s.PayTo > 0 && basicPay >= s.PayTo {
			continue
		}
		switch city {
		case CityClassA:
			if s.GradeIA > 0 {
				return int64(s.GradeIA)
			}
		case CityClassB:
			if s.GradeIB > 0 {
				return int64(s.GradeIB)
			}
		default:
			if s.GradeII > 0 {
				return int64(s.GradeII)
			}
		}
		return int64(s.Unclassified)
	}
	return 0
}

// CCAAmount returns the monthly city compensatory allowance: zero from the
// 7th PC onward (merged into pay), otherwise a flat rate per city class
// (spec.md §4.4).
func CCAAmount(rates map[CityClass]int, commission int, city CityClass) int64 {
	if commission >= 7 {
		return 0
	}
	return int64(rates[city])
}
