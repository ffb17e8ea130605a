package scoring

import "strings"

// Severity scores the intrinsic danger of a complaint: per-category base plus
// additive boosts for risk keywords, duration mentions, and affected scope.
// Boosts are not mutually exclusive; every match adds. Matching is
// case-insensitive substring (keywords, scope) or regexp (durations).
func (e *Engine) Severity(text, category string) float64 {
	cfg, durations := e.snapshot()
	lower := strings.ToLower(text)

	severity, ok := cfg.BaseSeverity[category]
	if !ok {
		severity = cfg.DefaultSeverity
	}

	for word, boost := range cfg.RiskKeywords {
		if strings.Contains(lower, word) {
			severity += boost
		}
	}
	for _, p := range durations {
		if p.re.MatchString(lower) {
			severity += p.boost
		}
	}
	for phrase, boost := range cfg.ScopeKeywords {
		if strings.Contains(lower, phrase) {
			severity += boost
		}
	}

	return clamp01(round3(severity))
}
