package domain

import (
	"fmt"
	"math"
)

// Summary is the computed result for one workout. It is built once by
// Summarize and never modified afterwards.
type Summary struct {
	Kind     Kind    `json:"kind"`
	Duration float64 `json:"duration"` // hours
	Distance float64 `json:"distance"` // km
	Speed    float64 `json:"speed"`    // km/h
	Calories float64 `json:"calories"` // kcal
}

// Summarize computes distance, mean speed and calories for w.
// Readings that would divide by zero or produce a non-finite value
// return ErrComputationFault instead of an infinite summary.
func Summarize(w Workout) (Summary, error) {
	t := w.training()
	if !(t.Duration > 0) || math.IsInf(t.Duration, 0) {
		return Summary{}, fmt.Errorf("%w: duration must be positive, got %v", ErrComputationFault, t.Duration)
	}
	if walk, ok := w.(Walking); ok && !(walk.Height > 0) {
		return Summary{}, fmt.Errorf("%w: height must be positive, got %v", ErrComputationFault, walk.Height)
	}

	s := Summary{
		Kind:     w.Kind(),
		Duration: t.Duration,
		Distance: w.Distance(),
		Speed:    w.MeanSpeed(),
		Calories: w.SpentCalories(),
	}
	for _, v := range []float64{s.Distance, s.Speed, s.Calories} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Summary{}, fmt.Errorf("%w: %s produced a non-finite value", ErrComputationFault, s.Kind)
		}
	}
	return s, nil
}

// floorDiv floors a/b from the exact remainder instead of the rounded
// quotient, so 48841 / 22.1 floors to 2209 even though a/b rounds to 2210.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor += 1
	}
	return floor
}
