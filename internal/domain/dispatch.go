package domain

import (
	"fmt"
	"math"
)

// Activity codes as sent by the tracker.
const (
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
	CodeSwimming = "SWM"
)

// Reading is a raw package from the tracker: an activity code followed by
// positional parameters whose meaning depends on the code.
type Reading struct {
	Code   string    `json:"code"`
	Params []float64 `json:"params"`
}

// ActivityCode describes one supported code and the order of its parameters.
type ActivityCode struct {
	Code   string   `json:"code"`
	Kind   Kind     `json:"kind"`
	Params []string `json:"params"`
}

var activityCodes = []ActivityCode{
	{Code: CodeRunning, Kind: KindRunning, Params: []string{"action", "duration", "weight"}},
	{Code: CodeWalking, Kind: KindWalking, Params: []string{"action", "duration", "weight", "height"}},
	{Code: CodeSwimming, Kind: KindSwimming, Params: []string{"action", "duration", "weight", "lengthPool", "countPool"}},
}

// ActivityCodes returns the supported activity codes in a stable order.
func ActivityCodes() []ActivityCode {
	out := make([]ActivityCode, len(activityCodes))
	for i, c := range activityCodes {
		c.Params = append([]string(nil), c.Params...)
		out[i] = c
	}
	return out
}

// BuildWorkout maps an activity code to its workout kind and fills it from params
// in positional order.
func BuildWorkout(code string, params []float64) (Workout, error) {
	switch code {
	case CodeRunning:
		t, err := buildTraining(code, params, 3)
		if err != nil {
			return nil, err
		}
		return Running{Training: t}, nil
	case CodeWalking:
		t, err := buildTraining(code, params, 4)
		if err != nil {
			return nil, err
		}
		return Walking{Training: t, Height: params[3]}, nil
	case CodeSwimming:
		t, err := buildTraining(code, params, 5)
		if err != nil {
			return nil, err
		}
		length, err := wholeNumber("lengthPool", params[3])
		if err != nil {
			return nil, err
		}
		count, err := wholeNumber("countPool", params[4])
		if err != nil {
			return nil, err
		}
		return Swimming{Training: t, LengthPool: length, CountPool: count}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivityCode, code)
	}
}

func buildTraining(code string, params []float64, arity int) (Training, error) {
	if len(params) != arity {
		return Training{}, fmt.Errorf("%w: %s expects %d, got %d", ErrArityMismatch, code, arity, len(params))
	}
	action, err := wholeNumber("action", params[0])
	if err != nil {
		return Training{}, err
	}
	return Training{Action: action, Duration: params[1], Weight: params[2]}, nil
}

// wholeNumber rejects negative, fractional and non-finite counters.
func wholeNumber(name string, v float64) (int, error) {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be a whole non-negative number, got %v", ErrInvalidParameter, name, v)
	}
	return int(v), nil
}
