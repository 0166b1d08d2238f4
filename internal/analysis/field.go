package analysis

import (
	"math"

	"github.com/san-kum/cfdsteps/internal/grid"
	"gonum.org/v1/gonum/floats"
)

// Max returns the largest value, or NaN for empty data.
func Max(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	return floats.Max(data)
}

// Min returns the smallest value, or NaN for empty data.
func Min(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	return floats.Min(data)
}

func Mean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	return floats.Sum(data) / float64(len(data))
}

// L2Deviation is the root-mean-square distance of data from its mean.
func L2Deviation(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	m := Mean(data)
	var ss float64
	for _, v := range data {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(data)))
}

// RelativeL1 returns Σ|a-b| / Σ|b|. Two zero fields give 0; any change away
// from an all-zero base gives +Inf.
func RelativeL1(a, b []float64) float64 {
	diff := floats.Distance(a, b, 1)
	base := floats.Norm(b, 1)
	if base == 0 {
		if diff == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return diff / base
}

// Divergence returns the largest |∂u/∂x + ∂v/∂y| over the interior, using
// central differences.
func Divergence(u, v grid.View) float64 {
	nx, ny := u.Size()
	dx, dy := u.Spacing()
	var worst float64
	for j := 1; j < ny-1; j++ {
		for i := 1; i < nx-1; i++ {
			d := (u.At(i+1, j)-u.At(i-1, j))/(2*dx) +
				(v.At(i, j+1)-v.At(i, j-1))/(2*dy)
			worst = math.Max(worst, math.Abs(d))
		}
	}
	return worst
}

// KineticEnergy returns ½·mean(u²+v²).
func KineticEnergy(u, v []float64) float64 {
	if len(u) == 0 {
		return 0
	}
	return 0.5 * (floats.Dot(u, u) + floats.Dot(v, v)) / float64(len(u))
}
