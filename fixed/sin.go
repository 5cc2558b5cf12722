package fixed

// sineTable holds round(sin(i*90/64 degrees) * 256) for the first quadrant.
// The other three quadrants are derived by symmetry in Sin. Read-only after
// initialization, so it is safe to share across goroutines without locking.
var sineTable = [64]Q8{
	0, 6, 13, 19, 25, 31, 38, 44,
	50, 56, 62, 68, 74, 80, 86, 92,
	98, 104, 109, 115, 121, 126, 132, 137,
	142, 147, 152, 157, 162, 167, 172, 177,
	181, 185, 190, 194, 198, 202, 206, 209,
	213, 216, 220, 223, 226, 229, 231, 234,
	237, 239, 241, 243, 245, 247, 248, 250,
	251, 252, 253, 254, 255, 255, 256, 256,
}

// Sin returns sin(a) in Q8.8. Accuracy is the table quantization only;
// there is no interpolation between entries.
func Sin(a Angle) Q8 {
	quadrant := a >> 6 // a / 64
	index := a & 0x3F  // a % 64

	switch quadrant {
	case 0:
		return sineTable[index]
	case 1:
		return sineTable[63-index]
	case 2:
		return -sineTable[index]
	default:
		return -sineTable[63-index]
	}
}

// Cos returns cos(a) in Q8.8 as Sin(a + 64): cos(x) = sin(x + 90 degrees).
// The addition wraps modulo 256, which is what makes the phase shift
// correct for angles in the last quadrant.
func Cos(a Angle) Q8 {
	return Sin(a + Quarter)
}
