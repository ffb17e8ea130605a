package scoring

import "time"

// TimeFactor scores how long a complaint has been left pending, attenuated by
// its handling status. Resolved complaints carry no pending urgency at all.
// The caller supplies now; the engine never reads the wall clock.
func (e *Engine) TimeFactor(createdAt time.Time, status string, now time.Time) float64 {
	if status == StatusResolved {
		return 0.0
	}
	cfg, _ := e.snapshot()

	days := int(now.Sub(createdAt).Hours() / 24)
	if days < 0 {
		days = 0
	}

	score := cfg.AgeCeiling
	for _, step := range cfg.AgeSteps {
		if days <= step.MaxDays {
			score = step.Score
			break
		}
	}

	if factor, ok := cfg.StatusAttenuation[status]; ok {
		score *= factor
	}
	return round3(score)
}
