package scoring

// Band is the authoritative triage classification of a priority score. It is
// distinct from the sentiment band set used on the analyze path (see the
// classify package); the two schemes must not be conflated.
type Band string

const (
	BandHigh    Band = "high"
	BandMedium  Band = "medium"
	BandLow     Band = "low"
	BandVeryLow Band = "very_low"
)

// Triage band thresholds. Single authoritative mapping for priority scores.
const (
	bandHighThreshold   = 0.65
	bandMediumThreshold = 0.45
	bandLowThreshold    = 0.25
)

// Priority combines the four signal scores into one weighted scalar.
func (e *Engine) Priority(severity, frequency, urgency, timeFactor float64) float64 {
	cfg, _ := e.snapshot()
	w := cfg.Weights
	score := w.Severity*severity +
		w.Frequency*frequency +
		w.Urgency*urgency +
		w.TimeFactor*timeFactor
	return clamp01(round3(score))
}

// TriageBand classifies a priority score for display and escalation routing.
func TriageBand(score float64) Band {
	switch {
	case score >= bandHighThreshold:
		return BandHigh
	case score >= bandMediumThreshold:
		return BandMedium
	case score >= bandLowThreshold:
		return BandLow
	default:
		return BandVeryLow
	}
}
