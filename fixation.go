package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fixation multipliers named in spec.md §4.5.
var (
	fixationMultiplier186 = decimal.NewFromFloat(1.86)
	fixationMultiplier257 = decimal.NewFromFloat(2.57)
)

// applyCommissionTransition runs the fixation arithmetic for one of the
// four commission transitions in spec.md §4.5 and mutates state in place,
// recording the before/after snapshot and an applied revision.
func applyCommissionTransition(state *simState, refs *ReferenceTables, from, to int, date time.Time) error {
	switch {
	case from == 3 && to == 4:
		return fixThirdToFourth(state, refs, date)
	case from == 4 && to == 5:
		return fixFourthToFifth(state, refs, date)
	case from == 5 && to == 6:
		return fixFifthToSixth(state, refs, date)
	case from == 6 && to == 7:
		return fixSixthToSeventh(state, refs, date)
	}
	return nil
}

func fixThirdToFourth(state *simState, refs *ReferenceTables, date time.Time) error {
	oldPay := state.basicPay
	daPortion := DAAmount(refs.DARates(), 0, date, oldPay, nil)
	total := oldPay + int(daPortion)

	newScaleID, ok := refs.CrosswalkTo(state.scaleID)
	if !ok {
		return newMappingError("fixThirdToFourth", state.scaleID)
	}
	newScale, ok := refs.Scale(newScaleID)
	if !ok {
		return newMappingError("fixThirdToFourth", newScaleID)
	}

	fitted := newScale.FitNextHigher(total)
	priorScaleID := state.scaleID
	state.scaleID = newScaleID
	state.basicPay = fitted
	state.commission = 4

	state.fixations[4] = &FixationSnapshot{
		EffectiveDate: date, FromCommission: 3, ToCommission: 4,
		InitialBasicPay: oldPay, InitialRevisedPay: fitted,
		Citation: refs.GOCitation("transition-3-4"),
	}
	state.revisions = append(state.revisions, ScaleRevision{
		EffectiveDate: date, Description: "3rd to 4th PC fixation", FromValue: priorScaleID, ToValue: newScaleID,
	})
	return nil
}

func fixFourthToFifth(state *simState, refs *ReferenceTables, date time.Time) error {
	oldPay := state.basicPay
	total := oldPay + 958 + 100

	newScaleID, ok := refs.CrosswalkTo(state.scaleID)
	if !ok {
		return newMappingError("fixFourthToFifth", state.scaleID)
	}
	newScale, ok := refs.Scale(newScaleID)
	if !ok {
		return newMappingError("fixFourthToFifth", newScaleID)
	}

	fitted := newScale.FitNextHigher(total)
	priorScaleID := state.scaleID
	state.scaleID = newScaleID
	state.basicPay = fitted
	state.commission = 5

	state.fixations[5] = &FixationSnapshot{
		EffectiveDate: date, FromCommission: 4, ToCommission: 5,
		InitialBasicPay: oldPay, InitialRevisedPay: fitted,
		Citation: refs.GOCitation("transition-4-5"),
	}
	state.revisions = append(state.revisions, ScaleRevision{
		EffectiveDate: date, Description: "4th to 5th PC fixation", FromValue: priorScaleID, ToValue: newScaleID,
	})
	return nil
}

func fixFifthToSixth(state *simState, refs *ReferenceTables, date time.Time) error {
	oldPay := state.basicPay

	newScaleID, ok := refs.CrosswalkTo(state.scaleID)
	if !ok {
		return newMappingError("fixFifthToSixth", state.scaleID)
	}
	gradePay, ok := refs.GradePay(newScaleID)
	if !ok {
		return newMappingError("fixFifthToSixth", newScaleID)
	}

	pipb := scaleRupees(int64(oldPay), fixationMultiplier186)
	basicPay := int(pipb) + gradePay

	if band, ok := refs.PayBandForGradePay(gradePay); ok {
		if band.Max > 0 && int(pipb) > band.Max {
			pipb = int64(band.Max)
		}
		if int(pipb) < band.Min {
			pipb = int64(band.Min)
		}
		basicPay = int(pipb) + gradePay
	}

	priorScaleID := state.scaleID
	state.scaleID = newScaleID
	state.pipb = int(pipb)
	state.gradePay = gradePay
	state.basicPay = basicPay
	state.commission = 6

	state.fixations[6] = &FixationSnapshot{
		EffectiveDate: date, FromCommission: 5, ToCommission: 6,
		InitialBasicPay: oldPay, InitialRevisedPay: basicPay,
		Citation: refs.GOCitation("transition-5-6"),
	}
	state.revisions = append(state.revisions, ScaleRevision{
		EffectiveDate: date, Description: "5th to 6th PC fixation", FromValue: priorScaleID, ToValue: newScaleID,
	})
	return nil
}

func fixSixthToSeventh(state *simState, refs *ReferenceTables, date time.Time) error {
	oldPay := state.basicPay

	level, ok := refs.LevelForGradePay(state.gradePay)
	if !ok {
		return newMappingError("fixSixthToSeventh", levelKey(state.gradePay))
	}
	mult := int(scaleRupees(int64(oldPay), fixationMultiplier257))
	fitted, err := refs.PayMatrix().FitIntoLevel(mult, level)
	if err != nil {
		return err
	}

	priorGP := state.gradePay
	state.level = level
	state.basicPay = fitted
	state.pipb = 0
	state.gradePay = 0
	state.scaleID = ""
	state.commission = 7

	state.fixations[7] = &FixationSnapshot{
		EffectiveDate: date, FromCommission: 6, ToCommission: 7,
		InitialBasicPay: oldPay, InitialRevisedPay: fitted,
		Citation: refs.GOCitation("transition-6-7"),
	}
	state.revisions = append(state.revisions, ScaleRevision{
		EffectiveDate: date, Description: "6th to 7th PC fixation",
		FromValue: levelKey(priorGP), ToValue: levelKey(level),
	})
	return nil
}
