package difficulty

import "math"

const (
	MinLevel = 1.0
	MaxLevel = 20.0
)

// Config is the full parameter set the generator derives from a numeric
// difficulty level. It is recomputed per run, never persisted.
type Config struct {
	ThresholdMultiplier float64 // Scales the per-section energy gate
	MinGap              float64 // Seconds between generated events
	MaxPolyphony        int     // Simultaneous note ceiling, 1..4
	AllowedCost         float64 // Ergonomic cost budget per placement
	PatternChance       float64 // Probability of attempting an injection
}

// Profile maps a difficulty level onto generation parameters. Total over
// all reals; out-of-range levels are clamped, never rejected.
func Profile(level float64) Config {
	l := Clamp(level)
	t := (l - 1) / 19

	cfg := Config{
		ThresholdMultiplier: lerp(2.0, 0.15, t),
		// The 0.7 exponent front-loads the spacing decrease so mid
		// difficulties already feel fast
		MinGap:        lerp(0.40, 0.02, math.Pow(t, 0.7)),
		AllowedCost:   lerp(1.5, 30.0, t),
		PatternChance: lerp(0.1, 1.0, t),
	}

	switch {
	case l < 5:
		cfg.MaxPolyphony = 1
	case l < 10:
		cfg.MaxPolyphony = 2
	case l < 16:
		cfg.MaxPolyphony = 3
	default:
		cfg.MaxPolyphony = 4
	}
	return cfg
}

func Clamp(level float64) float64 {
	return math.Min(MaxLevel, math.Max(MinLevel, level))
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
