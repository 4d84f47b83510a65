package payroll

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// payMatrixStageCount is the number of discrete stages generated per level.
// The real 7th Pay Commission matrix runs to 40+ stages per level; this
// module generates a representative span sufficient to cover a full
// 1980-onward career simulation (spec.md §4.2, §9's generation note).
const payMatrixStageCount = 40

// nearestHundred rounds a decimal value to the nearest ₹100, the rounding
// convention the actual 7th CPC matrix build used for its index-linked
// stages above level entry pay.
func nearestHundred(d decimal.Decimal) int {
	hundred := decimal.NewFromInt(100)
	return int(d.Div(hundred).Round(0).Mul(hundred).IntPart())
}

// buildLevelStages generates one level's ordered pay stages from its entry
// pay: stage 1 is entryPay, and each subsequent stage compounds by 3%
// rounded to the nearest ₹100 — the same index-linkage rule that produced
// the real matrix, and a far more auditable reference table than a literal
// array of numbers (spec.md §4.2).
func buildLevelStages(entryPay int) []int {
	stages := make([]int, payMatrixStageCount)
	stages[0] = entryPay
	rate := decimal.NewFromFloat(1.03)
	cur := decimal.NewFromInt(int64(entryPay))
	for i := 1; i < payMatrixStageCount; i++ {
		cur = cur.Mul(rate)
		stages[i] = nearestHundred(cur)
		if stages[i] <= stages[i-1] {
			stages[i] = stages[i-1] + 100
		}
	}
	return stages
}

// PayMatrix maps a 7th-PC level to its ordered, ascending pay stages.
type PayMatrix map[int][]int

// FitIntoLevel returns the least stage in level that is >= pay; if pay
// exceeds every stage, the level's maximum stage (spec.md §4.2).
func (m PayMatrix) FitIntoLevel(pay int, level int) (int, error) {
	stages, ok := m[level]
	if !ok || len(stages) == 0 {
		return 0, newMappingError("FitIntoLevel", levelKey(level))
	}
	for _, st := range stages {
		if st >= pay {
			return st, nil
		}
	}
	return stages[len(stages)-1], nil
}

// Increment7th advances pay by n stages within level, per spec.md §4.2:
// if pay is itself a stage, index = indexOf(pay) + n; otherwise locate the
// first stage greater than pay and treat its index - 1 as the base index.
// The result is clamped to the last stage.
func (m PayMatrix) Increment7th(pay int, level int, n int) (int, error) {
	stages, ok := m[level]
	if !ok || len(stages) == 0 {
		return 0, newMappingError("Increment7th", levelKey(level))
	}

	idx := -1
	for i, st := range stages {
		if st == pay {
			idx = i
			break
		}
	}
	if idx == -1 {
		for i, st := range stages {
			if st > pay {
				idx = i - 1
				break
			}
		}
		if idx == -1 {
			idx = len(stages) - 1
		}
	}

	target := idx + n
	if target >= len(stages) {
		target = len(stages) - 1
	}
	if target < 0 {
		target = 0
	}
	return stages[target], nil
}

// StageIndex returns the zero-based index of pay within level's stages, or
// -1 if pay is not an exact stage value. Used by selection/special-grade
// fixation benefit assertions (spec.md §8 boundary scenario 4).
func (m PayMatrix) StageIndex(pay int, level int) int {
	stages, ok := m[level]
	if !ok {
		return -1
	}
	for i, st := range stages {
		if st == pay {
			return i
		}
	}
	return -1
}

func levelKey(level int) string {
	return "level " + strconv.Itoa(level)
}
