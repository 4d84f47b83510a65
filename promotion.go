package payroll

// applyPromotion applies a career promotion per spec.md §4.7: a notional
// one-step increment in the current structure, then re-fixed into the new
// structure. Pre-6th-PC promotions carry forward only the notional
// in-scale increment, a documented limitation (spec.md §9) since the input
// has no mechanism to name a target scale for that era.
func applyPromotion(state *simState, refs *ReferenceTables, promo *Promotion) error {
	switch {
	case state.commission == 7:
		if _, ok := refs.PayMatrix()[promo.NewLevel]; !ok {
			return newValidationError("promotions.newLevel", levelKey(promo.NewLevel)+" is not a pay-matrix level")
		}
		notional, err := refs.PayMatrix().Increment7th(state.basicPay, state.level, 1)
		if err != nil {
			return err
		}
		fitted, err := refs.PayMatrix().FitIntoLevel(notional, promo.NewLevel)
		if err != nil {
			return err
		}
		priorLevel := state.level
		state.level = promo.NewLevel
		state.basicPay = fitted
		state.revisions = append(state.revisions, ScaleRevision{
			Description: "promotion to " + promo.TargetPost,
			FromValue:   levelKey(priorLevel), ToValue: levelKey(promo.NewLevel),
		})

	case state.commission == 6:
		band, _ := refs.PayBandForGradePay(state.gradePay)
		notionalPIPB := Increment6th(state.pipb, state.gradePay, 1, band)

		newBand, ok := refs.PayBandForGradePay(promo.NewGradePay)
		if !ok {
			return newMappingError("applyPromotion", levelKey(promo.NewGradePay))
		}
		if notionalPIPB < newBand.Min {
			notionalPIPB = newBand.Min
		}

		priorGP := state.gradePay
		state.gradePay = promo.NewGradePay
		state.pipb = notionalPIPB
		state.basicPay = state.pipb + state.gradePay
		state.revisions = append(state.revisions, ScaleRevision{
			Description: "promotion to " + promo.TargetPost,
			FromValue:   levelKey(priorGP), ToValue: levelKey(promo.NewGradePay),
		})

	default:
		sc, ok := refs.Scale(state.scaleID)
		if !ok {
			return newMappingError("applyPromotion", state.scaleID)
		}
		state.basicPay = sc.Increment(state.basicPay, 1)
		state.remarksThisMonth = append(state.remarksThisMonth,
			"Promotion to "+promo.TargetPost+" recorded; scale unchanged (pre-6th PC promotion scale mapping not specified)")
	}

	state.analysis.record(IncrementPromotion)
	state.remarksThisMonth = append(state.remarksThisMonth, "Promoted to "+promo.TargetPost)
	state.incrementHandledThisMonth = true
	return nil
}
