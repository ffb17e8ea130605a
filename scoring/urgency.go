package scoring

import (
	"strings"
	"time"
)

// Urgency scores time-sensitivity from language cues, category baseline, and
// time of day. Unlike severity, urgency keywords do not accumulate: the
// strongest matched cue wins, then the category baseline and the night-hours
// boost are added on top.
func (e *Engine) Urgency(text, category string, createdAt time.Time) float64 {
	cfg, _ := e.snapshot()
	lower := strings.ToLower(text)

	keyword := 0.0
	for word, score := range cfg.UrgencyKeywords {
		if strings.Contains(lower, word) && score > keyword {
			keyword = score
		}
	}

	urgency := keyword + cfg.CategoryUrgency[category]

	hour := createdAt.Hour()
	if hour >= cfg.NightStartHour || hour <= cfg.NightEndHour {
		urgency += cfg.NightBoost
	}

	return clamp01(round3(urgency))
}
