package payroll

import "testing"

func TestIncrement6th(t *testing.T) {
	band := PayBand{Min: 9300, Max: 34800}

	// round((9300+4200)*0.03) = round(405) = 405
	got := Increment6th(9300, 4200, 1, band)
	if got != 9705 {
		t.Errorf("Increment6th(9300,4200,1) = %d, want 9705", got)
	}
}

func TestIncrement6th_ClampsAtBandMax(t *testing.T) {
	band := PayBand{Min: 9300, Max: 9400}
	got := Increment6th(9300, 4200, 3, band)
	if got != 9400 {
		t.Errorf("Increment6th should clamp at band max, got %d", got)
	}
}

func TestIncrement6th_ZeroStepsAtBandMin(t *testing.T) {
	band := PayBand{Min: 9300, Max: 34800}
	got := Increment6th(9300, 4200, 0, band)
	if got != 9300 {
		t.Errorf("zero increments should leave PIPB unchanged, got %d", got)
	}
}
