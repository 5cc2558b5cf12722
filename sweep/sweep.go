// Package sweep exercises the fixed-point kernel over full input ranges
// and quantifies its approximation error against float64 references.
// It is host-side tooling: the kernel itself never depends on it.
package sweep

import (
	"math"

	"github.com/pthm-cable/fixmath/fixed"
)

// SinCosRow is one angle step of a full-circle sine/cosine sweep.
type SinCosRow struct {
	Angle   uint8   `csv:"angle"`
	Degrees float64 `csv:"degrees"`
	SinRaw  int16   `csv:"sin_q8_8"`
	CosRaw  int16   `csv:"cos_q8_8"`
	Sin     float64 `csv:"sin"`
	Cos     float64 `csv:"cos"`
	SinErr  float64 `csv:"sin_err"`
	CosErr  float64 `csv:"cos_err"`
}

// SinCos sweeps all 256 angles and records the kernel output next to the
// float64 reference. Errors are in unscaled units (1.0 = full amplitude).
func SinCos() []SinCosRow {
	rows := make([]SinCosRow, 256)
	for a := 0; a < 256; a++ {
		angle := fixed.Angle(a)
		rad := float64(a) * 2 * math.Pi / 256
		s, c := fixed.Sin(angle), fixed.Cos(angle)
		rows[a] = SinCosRow{
			Angle:   uint8(a),
			Degrees: angle.Degrees(),
			SinRaw:  int16(s),
			CosRaw:  int16(c),
			Sin:     s.Float(),
			Cos:     c.Float(),
			SinErr:  s.Float() - math.Sin(rad),
			CosErr:  c.Float() - math.Cos(rad),
		}
	}
	return rows
}

// Atan2Row is one grid point of an atan2 sweep.
type Atan2Row struct {
	Y       int16   `csv:"y"`
	X       int16   `csv:"x"`
	Angle   uint8   `csv:"angle"`
	Degrees float64 `csv:"degrees"`
	Ref     float64 `csv:"ref_degrees"`
	Err     float64 `csv:"err_units"`
}

// Atan2Grid sweeps y and x over [min, max] with the given step and
// records the heading estimate against math.Atan2. Err is the circular
// distance in binary-angle units, so a wrap near 0/256 does not read as
// a full-turn error.
func Atan2Grid(min, max, step int) []Atan2Row {
	if step <= 0 {
		step = 1
	}
	var rows []Atan2Row
	for y := min; y <= max; y += step {
		for x := min; x <= max; x += step {
			got := fixed.Atan2(int16(y), int16(x))
			ref := math.Atan2(float64(y), float64(x)) // (-pi, pi]
			refUnits := ref * 256 / (2 * math.Pi)
			if refUnits < 0 {
				refUnits += 256
			}
			rows = append(rows, Atan2Row{
				Y:       int16(y),
				X:       int16(x),
				Angle:   uint8(got),
				Degrees: got.Degrees(),
				Ref:     refUnits * 360 / 256,
				Err:     circularDistance(float64(got), refUnits),
			})
		}
	}
	return rows
}

// circularDistance returns the signed distance from ref to got on the
// 256-unit circle, in (-128, 128].
func circularDistance(got, ref float64) float64 {
	d := math.Mod(got-ref, 256)
	if d > 128 {
		d -= 256
	}
	if d <= -128 {
		d += 256
	}
	return d
}
