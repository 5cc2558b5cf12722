package fixed

// Atan2 returns the binary angle of the vector (x, y), quadrant-correct
// for all sign combinations. It uses a single-term linear approximation
// of arctangent (angle ~ ratio/4 in binary-angle units), so treat the
// result as a rough heading estimate, not precision geometry.
// Atan2(0, 0) is defined as 0.
func Atan2(y, x int16) Angle {
	if x == 0 && y == 0 {
		return 0
	}

	absY := int32(y)
	if absY < 0 {
		absY = -absY
	}
	absX := int32(x)
	if absX < 0 {
		absX = -absX
	}

	// Ratio of the smaller magnitude to the larger, in Q8.8. The divisor
	// is the larger of the two, so it is nonzero once the all-zero case
	// is handled above.
	var z int32
	invert := false
	if absY > absX {
		z = (absX << 8) / absY
		invert = true
	} else {
		z = (absY << 8) / absX
	}

	// angle ~ z * (pi/4), and pi/4 is 64/256 of a turn, so z/4.
	base := Angle(z >> 2)
	if invert {
		base = Quarter - base
	}

	switch {
	case x >= 0 && y >= 0:
		return base
	case x < 0 && y >= 0:
		return 128 - base
	case x < 0 && y < 0:
		return 128 + base
	default:
		// 256 - base; wraps to 0 when base is 0.
		return -base
	}
}
