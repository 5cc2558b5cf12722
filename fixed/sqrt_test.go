package fixed

import "testing"

func TestSqrt16PinnedValues(t *testing.T) {
	tests := []struct {
		x    uint16
		want uint16
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{255, 15},
		{256, 16},
		{6400, 80},
		{65024, 254},
		{65025, 255}, // 255^2
		{65535, 255},
	}

	for _, tt := range tests {
		if got := Sqrt16(tt.x); got != tt.want {
			t.Errorf("Sqrt16(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestSqrt16FloorProperty(t *testing.T) {
	// Exhaustive: r = Sqrt16(x) must satisfy r^2 <= x < (r+1)^2.
	for x := 0; x <= 65535; x++ {
		r := uint32(Sqrt16(uint16(x)))
		if r*r > uint32(x) || (r+1)*(r+1) <= uint32(x) {
			t.Fatalf("Sqrt16(%d) = %d, violates floor property", x, r)
		}
	}
}
