package sweep

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the absolute error of a sweep column.
type Stats struct {
	Max  float64
	Mean float64
	RMS  float64
}

// Summarize computes error statistics over a slice of signed errors.
// Returns the zero value for an empty slice.
func Summarize(errs []float64) Stats {
	if len(errs) == 0 {
		return Stats{}
	}

	abs := make([]float64, len(errs))
	sq := make([]float64, len(errs))
	for i, e := range errs {
		abs[i] = math.Abs(e)
		sq[i] = e * e
	}

	return Stats{
		Max:  floats.Max(abs),
		Mean: stat.Mean(abs, nil),
		RMS:  math.Sqrt(stat.Mean(sq, nil)),
	}
}

// SinCosStats summarizes a sine/cosine sweep. The two columns share one
// table, so they are pooled into a single error population.
func SinCosStats(rows []SinCosRow) Stats {
	errs := make([]float64, 0, 2*len(rows))
	for _, r := range rows {
		errs = append(errs, r.SinErr, r.CosErr)
	}
	return Summarize(errs)
}

// Atan2Stats summarizes an atan2 grid sweep, excluding the origin row
// (its result is a defined convention, not an estimate).
func Atan2Stats(rows []Atan2Row) Stats {
	errs := make([]float64, 0, len(rows))
	for _, r := range rows {
		if r.X == 0 && r.Y == 0 {
			continue
		}
		errs = append(errs, r.Err)
	}
	return Summarize(errs)
}
