package payroll

import "time"

// applyGradeEvent applies a selection- or special-grade award per spec.md
// §4.6 and tallies the appropriate increment-analysis counter. It sets the
// caller's "an increment-like event already fired this month" flag.
func applyGradeEvent(state *simState, refs *ReferenceTables, grade *GradeEvent, special bool, date time.Time) error {
	category := IncrementSelectionGrade
	label := "selection grade"
	citationKey := "selection-grade"
	if special {
		category = IncrementSpecialGrade
		label = "special grade"
		citationKey = "special-grade"
	}

	switch {
	case state.commission == 7:
		steps := 1
		if grade.ApplyFixation {
			steps = 2
		}
		newPay, err := refs.PayMatrix().Increment7th(state.basicPay, state.level, steps)
		if err != nil {
			return err
		}
		state.basicPay = newPay

	case state.commission == 6:
		steps := 1
		if grade.ApplyFixation {
			steps = 2
		}
		band, _ := refs.PayBandForGradePay(state.gradePay)
		state.pipb = Increment6th(state.pipb, state.gradePay, steps, band)
		state.basicPay = state.pipb + state.gradePay

	case state.commission == 5 && grade.ApplyFixation:
		mapped, ok := refs.SelectionOrSpecialGradeScale(state.scaleID, special)
		if ok {
			newScale, scaleOK := refs.Scale(mapped)
			if !scaleOK {
				return newMappingError("applyGradeEvent", mapped)
			}
			oldPay := state.basicPay
			priorScaleID := state.scaleID
			state.scaleID = mapped
			state.basicPay = newScale.FitNextHigher(oldPay)
			state.revisions = append(state.revisions, ScaleRevision{
				EffectiveDate: date, Description: label + " fixation", FromValue: priorScaleID, ToValue: mapped,
			})
		} else {
			sc, scOK := refs.Scale(state.scaleID)
			if !scOK {
				return newMappingError("applyGradeEvent", state.scaleID)
			}
			state.basicPay = sc.Increment(state.basicPay, 1)
		}

	default:
		sc, ok := refs.Scale(state.scaleID)
		if !ok {
			return newMappingError("applyGradeEvent", state.scaleID)
		}
		state.basicPay = sc.Increment(state.basicPay, 1)
	}

	state.analysis.record(category)
	state.remarksThisMonth = append(state.remarksThisMonth, "Granted "+label+" ("+refs.GOCitation(citationKey)+")")
	state.incrementHandledThisMonth = true
	return nil
}
