package payroll

import (
	"strconv"
	"strings"
)

// ScaleStage is one piecewise-increment range of a pre-6th-PC pay scale:
// pay in [From, To) increments by Step each year.
type ScaleStage struct {
	From int
	To   int
	Step int
}

// Scale is an ordered sequence of stages parsed from a compact string such
// as "1200-30-1440-40-1800", per spec.md §4.1.
type Scale struct {
	ID     string
	Raw    string
	Stages []ScaleStage
}

// ParseScale parses a scale string of the form
// "<start>-<step1>-<bound1>-<step2>-<bound2>-...-<max>" into stages.
func ParseScale(id, raw string) (Scale, error) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) < 3 || len(parts)%2 == 0 {
		return Scale{}, newValidationError("scaleString", "malformed scale \""+raw+"\"")
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Scale{}, newValidationError("scaleString", "non-numeric component in \""+raw+"\"")
		}
		nums[i] = n
	}

	var stages []ScaleStage
	for i := 1; i+1 < len(nums); i += 2 {
		stages = append(stages, ScaleStage{
			From: nums[i-1],
			To:   nums[i+1],
			Step: nums[i],
		})
	}

	return Scale{ID: id, Raw: raw, Stages: stages}, nil
}

// Start returns the scale's minimum (entry) pay.
func (s Scale) Start() int {
	if len(s.Stages) == 0 {
		return 0
	}
	return s.Stages[0].From
}

// Max returns the scale's ceiling pay.
func (s Scale) Max() int {
	if len(s.Stages) == 0 {
		return 0
	}
	return s.Stages[len(s.Stages)-1].To
}

// stageFor locates the stage governing the step size at the given pay: the
// first stage whose upper bound exceeds pay, falling back to the last
// stage's step when pay has run past every stage's upper bound (spec.md
// §4.1's "if none matches... use the last stage's inc").
func (s Scale) stageFor(pay int) ScaleStage {
	for _, st := range s.Stages {
		if st.To > pay {
			return st
		}
	}
	return s.Stages[len(s.Stages)-1]
}

// Increment applies n successive annual increments to pay within the scale,
// clamping at Max.
func (s Scale) Increment(pay int, n int) int {
	if len(s.Stages) == 0 {
		return pay
	}
	for i := 0; i < n; i++ {
		max := s.Max()
		if pay >= max {
			pay = max
			break
		}
		pay += s.stageFor(pay).Step
	}
	if pay > s.Max() {
		pay = s.Max()
	}
	return pay
}

// FitNextHigher returns the least stage value strictly greater than pay
// (Start when pay is below Start, Max when pay is at or above Max), used when fixing pay into a new scale on a commission transition or
// selection/special grade event (spec.md §4.1).
func (s Scale) FitNextHigher(pay int) int {
	if len(s.Stages) == 0 {
		return pay
	}
	max := s.Max()
	if pay >= max {
		return max
	}
	if pay < s.Start() {
		return s.Start()
	}
	running := s.Start()
	for running <= pay {
		next := running + s.stageFor(running).Step
		if next == running {
			break
		}
		running = next
	}
	if running > max {
		running = max
	}
	return running
}
