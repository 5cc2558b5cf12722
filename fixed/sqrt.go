package fixed

// Sqrt16 returns floor(sqrt(x)) exactly. Unlike the trig functions this
// has no approximation error.
//
// Digit-by-digit binary search from bit 14 down: bit 15 would overflow
// a 16-bit square, and the compare squares in 32 bits. Always runs the
// same 15 iterations.
func Sqrt16(x uint16) uint16 {
	var res uint16
	for bit := uint16(1 << 14); bit > 0; bit >>= 1 {
		trial := res | bit
		if uint32(trial)*uint32(trial) <= uint32(x) {
			res = trial
		}
	}
	return res
}
