package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the travel time assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and never return a
// negative value.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [lo, hi). With a nil rng it yields
// DefaultEdgeWeight. Panics if lo < 0 or hi < lo.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// MinutesWeightFn samples whole minutes uniformly in [lo, hi]. It suits
// timetable-like fixtures where travel times are integral.
// Panics if lo < 0 or hi < lo.
func MinutesWeightFn(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("MinutesWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// NormalWeightFn samples N(mean, stddev), rounded to the nearest integer
// and clipped at 0. With a nil rng it yields DefaultEdgeWeight.
// Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Max(0, math.Round(rng.NormFloat64()*stddev+mean))
	}
}

// WithConstantWeight sets a fixed edge weight.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[lo,hi).
func WithUniformWeight(lo, hi float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithMinutesWeight sets integral weights in [lo,hi].
func WithMinutesWeight(lo, hi int) BuilderOption {
	return WithWeightFn(MinutesWeightFn(lo, hi))
}
