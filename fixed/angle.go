// Package fixed implements Q8.8 fixed-point trigonometry for targets
// without a floating-point unit. A full turn maps onto the uint8 range,
// so angle arithmetic wraps modulo 256 by construction and every bit
// pattern is a valid angle.
package fixed

import "math"

// Angle is a binary angle: 256 steps per full turn, 1 step = 1.40625 degrees.
// Addition and subtraction wrap modulo 256; there is no invalid Angle.
type Angle uint8

// Quarter is a quarter turn (90 degrees) in binary-angle units.
const Quarter Angle = 64

// Degrees converts a to degrees. Display helper; the kernel itself never
// touches floating point.
func (a Angle) Degrees() float64 {
	return float64(a) * 360.0 / 256.0
}

// AngleFromDegrees converts degrees to the nearest binary angle.
// Values outside [0, 360) wrap.
func AngleFromDegrees(deg float64) Angle {
	return Angle(int64(math.Round(deg*256.0/360.0)) & 0xFF)
}

// Q8 is a signed Q8.8 fixed-point scalar: the low 8 bits are fractional,
// real value = raw/256. Range is about [-128.0, 127.996].
type Q8 int16

// One is 1.0 in Q8.8.
const One Q8 = 256

// Float converts q to a float64. Display helper.
func (q Q8) Float() float64 {
	return float64(q) / 256.0
}

// FromFloat converts v to the nearest Q8.8 value. Out-of-range inputs
// truncate to int16; used by tooling and tests, not the kernel.
func FromFloat(v float64) Q8 {
	return Q8(int16(math.Round(v * 256.0)))
}
