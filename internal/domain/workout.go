package domain

// Kind names the activity a workout describes.
type Kind string

// Define constants for activity kinds
const (
	KindRunning  Kind = "Running"
	KindWalking  Kind = "Walking"
	KindSwimming Kind = "Swimming"
)

// Shared by every workout kind.
const (
	mInKm   = 1000
	minInH  = 60
	lenStep = 0.65 // metres per step on land
)

// Workout is one of Running, Walking or Swimming.
// The unexported method keeps the set of variants closed to this package.
type Workout interface {
	Kind() Kind
	Distance() float64      // km
	MeanSpeed() float64     // km/h
	SpentCalories() float64 // kcal
	training() Training
}

// Training holds the readings every workout kind shares.
type Training struct {
	Action   int     `json:"action"`   // steps or strokes
	Duration float64 `json:"duration"` // hours
	Weight   float64 `json:"weight"`   // kg
}

func (t Training) training() Training { return t }

func (t Training) distance(stepLen float64) float64 {
	return float64(t.Action) * stepLen / mInKm
}

func (t Training) meanSpeed(stepLen float64) float64 {
	return t.distance(stepLen) / t.Duration
}

// Running is a run counted in steps.
type Running struct {
	Training
}

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20
)

func (r Running) Kind() Kind { return KindRunning }

func (r Running) Distance() float64 { return r.distance(lenStep) }

func (r Running) MeanSpeed() float64 { return r.meanSpeed(lenStep) }

func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift) *
		r.Weight / mInKm * r.Duration * minInH
}

// Walking is a sports walk; calories also depend on the walker's height.
type Walking struct {
	Training
	Height float64 `json:"height"` // cm
}

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

func (w Walking) Kind() Kind { return KindWalking }

func (w Walking) Distance() float64 { return w.distance(lenStep) }

func (w Walking) MeanSpeed() float64 { return w.meanSpeed(lenStep) }

// SpentCalories floors speed²/height. Existing reports were produced that way,
// so the quotient is not a real-valued division.
func (w Walking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingCaloriesWeightMultiplier*w.Weight +
		floorDiv(speed*speed, w.Height)*walkingSpeedHeightMultiplier*w.Weight) *
		w.Duration * minInH
}

// Swimming is a pool swim counted in strokes.
type Swimming struct {
	Training
	LengthPool int `json:"lengthPool"` // metres
	CountPool  int `json:"countPool"`  // laps
}

const (
	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

func (s Swimming) Kind() Kind { return KindSwimming }

func (s Swimming) Distance() float64 { return s.distance(swimmingLenStep) }

// MeanSpeed uses the pool geometry, not the stroke count.
func (s Swimming) MeanSpeed() float64 {
	return float64(s.LengthPool) * float64(s.CountPool) / mInKm / s.Duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.Weight
}
