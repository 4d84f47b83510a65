package payroll

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed reftables.yaml
var embeddedReferenceYAML string

// rawScaleEntry is one pre-7th-PC scale as it appears in reftables.yaml.
type rawScaleEntry struct {
	ID       string `yaml:"id"`
	Scale    string `yaml:"scale,omitempty"`    // commissions 3,4,5
	GradePay int    `yaml:"gradePay,omitempty"` // commission 6
	PayBand  string `yaml:"payBand,omitempty"`  // commission 6
}

type rawScaleCrosswalkEntry struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type rawPayBand struct {
	ID  string `yaml:"id"`
	Min int    `yaml:"min"`
	Max int    `yaml:"max"`
}

type rawGradePayLevel struct {
	GradePay int `yaml:"gradePay"`
	Level    int `yaml:"level"`
}

type rawLevelEntryPay struct {
	Level int `yaml:"level"`
	Entry int `yaml:"entry"`
}

type rawSGSpGEntry struct {
	OrdinaryScale string `yaml:"ordinaryScale"`
	Selection     string `yaml:"selection,omitempty"`
	Special       string `yaml:"special,omitempty"`
}

type rawDARate struct {
	EffectiveFrom string  `yaml:"effectiveFrom"`
	Commission    int     `yaml:"commission"` // 0 = shared pre-6th series
	RatePercent   float64 `yaml:"ratePercent"`
}

type rawHRASlab struct {
	Era          string `yaml:"era"`
	PayFrom      int    `yaml:"payFrom"`
	PayTo        int    `yaml:"payTo"`
	GradeIA      int    `yaml:"gradeIA"`
	GradeIB      int    `yaml:"gradeIB"`
	GradeII      int    `yaml:"gradeII"`
	Unclassified int    `yaml:"unclassified"`
}

type rawCCARates struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
	C int `yaml:"c"`
}

type referenceDocument struct {
	Scales          map[string][]rawScaleEntry `yaml:"scales"` // keyed by commission "3".."6"
	ScaleCrosswalk  []rawScaleCrosswalkEntry   `yaml:"scaleCrosswalk"`
	PayBands        []rawPayBand               `yaml:"payBands"`
	GradePayToLevel []rawGradePayLevel         `yaml:"gradePayToLevel"`
	LevelEntryPay   []rawLevelEntryPay         `yaml:"levelEntryPay"`
	SelectionSpecialGrade []rawSGSpGEntry      `yaml:"selectionSpecialGrade"`
	DARates         []rawDARate                `yaml:"daRates"`
	HRASlabs        []rawHRASlab               `yaml:"hraSlabs"`
	CCARates        rawCCARates                `yaml:"ccaRates"`
	GOCitations     map[string]string          `yaml:"goCitations"`
}

// ReferenceTables is the fully parsed, ready-to-query form of the static
// reference data described in spec.md §2/§6: pay scales, pay matrix, DA/HRA/
// CCA tables, grade-pay/level mapping, pay bands, the 5th-PC selection/
// special-grade scale map, the explicit scale crosswalk, and GO citation
// strings.
type ReferenceTables struct {
	scalesByID        map[string]Scale
	scalesByCommission map[int][]string // commission -> scale IDs in document order
	scaleCrosswalk    map[string]string // from-ID -> to-ID
	gradePayForScale   map[string]int   // 6th-PC scale ID -> grade pay
	payBandForScale    map[string]PayBand
	payBandForGradePay map[int]PayBand
	gradePayToLevel    map[int]int
	payMatrix          PayMatrix
	sgSpG              map[string]rawSGSpGEntry // ordinary scale ID -> mapping
	daRates            []DARate
	hraSlabs           []HRASlab
	ccaRates           map[CityClass]int
	goCitations        map[string]string
}

var (
	refsOnce sync.Once
	refs     *ReferenceTables
	refsErr  error
)

// Reference returns the package's singleton reference-table set, building it
// from the embedded YAML document on first use (spec.md §5: read-only,
// built once, safe to share across independent simulations).
func Reference() (*ReferenceTables, error) {
	refsOnce.Do(func() {
		refs, refsErr = buildReferenceTables(embeddedReferenceYAML)
	})
	return refs, refsErr
}

func buildReferenceTables(doc string) (*ReferenceTables, error) {
	var raw referenceDocument
	if err := yaml.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, err
	}

	rt := &ReferenceTables{
		scalesByID:          make(map[string]Scale),
		scalesByCommission:  make(map[int][]string),
		scaleCrosswalk:      make(map[string]string),
		gradePayForScale:    make(map[string]int),
		payBandForScale:     make(map[string]PayBand),
		payBandForGradePay:  make(map[int]PayBand),
		gradePayToLevel:     make(map[int]int),
		sgSpG:               make(map[string]rawSGSpGEntry),
		ccaRates:            make(map[CityClass]int),
		goCitations:         raw.GOCitations,
	}

	payBandsByID := make(map[string]PayBand)
	for _, pb := range raw.PayBands {
		payBandsByID[pb.ID] = PayBand{Min: pb.Min, Max: pb.Max}
	}

	for commissionStr, entries := range raw.Scales {
		commission := commissionFromKey(commissionStr)
		for _, e := range entries {
			rt.scalesByCommission[commission] = append(rt.scalesByCommission[commission], e.ID)
			if commission == 6 {
				rt.gradePayForScale[e.ID] = e.GradePay
				if band, ok := payBandsByID[e.PayBand]; ok {
					rt.payBandForScale[e.ID] = band
					rt.payBandForGradePay[e.GradePay] = band
				}
				continue
			}
			sc, err := ParseScale(e.ID, e.Scale)
			if err != nil {
				return nil, err
			}
			rt.scalesByID[e.ID] = sc
		}
	}

	for _, x := range raw.ScaleCrosswalk {
		rt.scaleCrosswalk[x.From] = x.To
	}

	for _, g := range raw.GradePayToLevel {
		rt.gradePayToLevel[g.GradePay] = g.Level
	}

	matrix := make(PayMatrix)
	for _, l := range raw.LevelEntryPay {
		matrix[l.Level] = buildLevelStages(l.Entry)
	}
	rt.payMatrix = matrix

	for _, sg := range raw.SelectionSpecialGrade {
		rt.sgSpG[sg.OrdinaryScale] = sg
	}

	for _, d := range raw.DARates {
		t, err := ParseDate(d.EffectiveFrom)
		if err != nil {
			return nil, err
		}
		rt.daRates = append(rt.daRates, DARate{EffectiveFrom: t, Commission: d.Commission, RatePercent: d.RatePercent})
	}

	for _, h := range raw.HRASlabs {
		rt.hraSlabs = append(rt.hraSlabs, HRASlab{
			Era: h.Era, PayFrom: h.PayFrom, PayTo: h.PayTo,
			GradeIA: h.GradeIA, GradeIB: h.GradeIB, GradeII: h.GradeII, Unclassified: h.Unclassified,
		})
	}

	rt.ccaRates[CityClassA] = raw.CCARates.A
	rt.ccaRates[CityClassB] = raw.CCARates.B
	rt.ccaRates[CityClassC] = raw.CCARates.C

	return rt, nil
}

func commissionFromKey(key string) int {
	switch key {
	case "3":
		return 3
	case "4":
		return 4
	case "5":
		return 5
	case "6":
		return 6
	default:
		return 0
	}
}

// Scale looks up a parsed scale (commissions 3-5) by its reference-table ID.
func (rt *ReferenceTables) Scale(id string) (Scale, bool) {
	sc, ok := rt.scalesByID[id]
	return sc, ok
}

// CrosswalkTo returns the explicit mapping target for a scale ID across a
// commission transition, per spec.md §4.5's note that this module uses an
// explicit table rather than an identifier-suffix heuristic.
func (rt *ReferenceTables) CrosswalkTo(fromID string) (string, bool) {
	to, ok := rt.scaleCrosswalk[fromID]
	return to, ok
}

// SixthPCScaleForGradePay returns the 6th-PC scale ID whose grade pay
// matches gp. The engine's promotion logic looks up the target pay band by
// grade pay directly (PayBandForGradePay) and does not call this.
func (rt *ReferenceTables) SixthPCScaleForGradePay(gp int) (string, bool) {
	for id, g := range rt.gradePayForScale {
		if g == gp {
			return id, true
		}
	}
	return "", false
}

// GradePay returns the grade pay carried by a 6th-PC scale ID.
func (rt *ReferenceTables) GradePay(scaleID string) (int, bool) {
	gp, ok := rt.gradePayForScale[scaleID]
	return gp, ok
}

// PayBandForScale returns the pay band associated with a 6th-PC scale ID.
func (rt *ReferenceTables) PayBandForScale(scaleID string) (PayBand, bool) {
	b, ok := rt.payBandForScale[scaleID]
	return b, ok
}

// PayBandForGradePay returns the pay band associated with a grade pay value.
func (rt *ReferenceTables) PayBandForGradePay(gp int) (PayBand, bool) {
	b, ok := rt.payBandForGradePay[gp]
	return b, ok
}

// LevelForGradePay maps a 6th-PC grade pay to its 7th-PC level, per
// spec.md §4.5's 6→7 fixation rule.
func (rt *ReferenceTables) LevelForGradePay(gp int) (int, bool) {
	l, ok := rt.gradePayToLevel[gp]
	return l, ok
}

// PayMatrix returns the generated 7th-PC pay matrix.
func (rt *ReferenceTables) PayMatrix() PayMatrix {
	return rt.payMatrix
}

// SelectionOrSpecialGradeScale returns the mapped scale ID for an ordinary
// 5th-PC scale's selection- or special-grade promotion.
func (rt *ReferenceTables) SelectionOrSpecialGradeScale(ordinaryScaleID string, special bool) (string, bool) {
	entry, ok := rt.sgSpG[ordinaryScaleID]
	if !ok {
		return "", false
	}
	if special {
		if entry.Special == "" {
			return "", false
		}
		return entry.Special, true
	}
	if entry.Selection == "" {
		return "", false
	}
	return entry.Selection, true
}

// DARates returns the full DA rate table.
func (rt *ReferenceTables) DARates() []DARate {
	return rt.daRates
}

// HRASlabs returns the full HRA slab table.
func (rt *ReferenceTables) HRASlabs() []HRASlab {
	return rt.hraSlabs
}

// CCARates returns the flat CCA rate table.
func (rt *ReferenceTables) CCARates() map[CityClass]int {
	return rt.ccaRates
}

// GOCitation returns the government-order citation string for a named
// event (e.g. "transition-6-7"), used verbatim inside remarks.
func (rt *ReferenceTables) GOCitation(key string) string {
	return rt.goCitations[key]
}
