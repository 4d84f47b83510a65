package payroll

import "testing"

func TestBuildLevelStages(t *testing.T) {
	stages := buildLevelStages(44900)
	if stages[0] != 44900 {
		t.Fatalf("stage 0 should equal entry pay, got %d", stages[0])
	}
	for i := 1; i < len(stages); i++ {
		if stages[i] <= stages[i-1] {
			t.Fatalf("stage %d (%d) not strictly greater than stage %d (%d)", i, stages[i], i-1, stages[i-1])
		}
		if stages[i]%100 != 0 {
			t.Fatalf("stage %d (%d) not rounded to nearest 100", i, stages[i])
		}
	}
}

func TestPayMatrix_FitIntoLevel(t *testing.T) {
	m := PayMatrix{7: buildLevelStages(44900)}

	got, err := m.FitIntoLevel(44900, 7)
	if err != nil || got != 44900 {
		t.Fatalf("FitIntoLevel(44900,7) = %d, %v", got, err)
	}

	got, err = m.FitIntoLevel(45000, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got <= 45000 {
		t.Fatalf("expected a stage >= 45000, got %d", got)
	}

	if _, err := m.FitIntoLevel(1000, 99); err == nil {
		t.Fatal("expected mapping error for unknown level")
	}
}

func TestPayMatrix_Increment7th(t *testing.T) {
	stages := buildLevelStages(44900)
	m := PayMatrix{7: stages}

	got, err := m.Increment7th(stages[0], 7, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != stages[1] {
		t.Fatalf("Increment7th(stage0, +1) = %d, want %d", got, stages[1])
	}

	// Clamps at the last stage.
	last := stages[len(stages)-1]
	got, _ = m.Increment7th(last, 7, 5)
	if got != last {
		t.Fatalf("Increment7th at last stage should clamp, got %d", got)
	}
}
