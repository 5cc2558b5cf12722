package sweep

import (
	"math"
	"testing"
)

func TestSinCosSweep(t *testing.T) {
	rows := SinCos()

	if len(rows) != 256 {
		t.Fatalf("len(rows) = %d, want 256", len(rows))
	}

	// Spot-check the pinned kernel values carried into the rows.
	if rows[0].SinRaw != 0 || rows[64].SinRaw != 256 || rows[192].SinRaw != -256 {
		t.Errorf("pinned sine values wrong: %d, %d, %d", rows[0].SinRaw, rows[64].SinRaw, rows[192].SinRaw)
	}
	if rows[0].CosRaw != 256 {
		t.Errorf("rows[0].CosRaw = %d, want 256", rows[0].CosRaw)
	}

	// Kernel error bound: 7 raw units, 7/256 unscaled.
	for _, r := range rows {
		if math.Abs(r.SinErr) > 7.0/256 || math.Abs(r.CosErr) > 7.0/256 {
			t.Errorf("angle %d: sin_err %v, cos_err %v exceed bound", r.Angle, r.SinErr, r.CosErr)
		}
	}
}

func TestAtan2Grid(t *testing.T) {
	rows := Atan2Grid(-2, 2, 1)

	if len(rows) != 25 {
		t.Fatalf("len(rows) = %d, want 25", len(rows))
	}

	for _, r := range rows {
		if r.X == 0 && r.Y == 0 {
			if r.Angle != 0 || r.Err != 0 {
				t.Errorf("origin row: angle %d, err %v, want 0, 0", r.Angle, r.Err)
			}
			continue
		}
		// The linear estimate never strays more than half a sector.
		if math.Abs(r.Err) > 32 {
			t.Errorf("(%d, %d): err %v units exceeds 32", r.Y, r.X, r.Err)
		}
	}
}

func TestAtan2GridStepClamped(t *testing.T) {
	// A non-positive step falls back to 1 instead of looping forever.
	rows := Atan2Grid(0, 1, 0)
	if len(rows) != 4 {
		t.Errorf("len(rows) = %d, want 4", len(rows))
	}
}

func TestCircularDistance(t *testing.T) {
	tests := []struct {
		name     string
		got, ref float64
		want     float64
	}{
		{"zero", 10, 10, 0},
		{"plain", 192, 190, 2},
		{"wrap up", 2, 250, 8},
		{"wrap down", 250, 2, -8},
		{"half circle", 128, 0, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := circularDistance(tt.got, tt.ref); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("circularDistance(%v, %v) = %v, want %v", tt.got, tt.ref, got, tt.want)
			}
		})
	}
}
