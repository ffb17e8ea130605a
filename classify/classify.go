// Package classify provides deterministic keyword-based category prediction
// and the sentiment band mapping for the analyze endpoint. It stands in for
// externally hosted classifier/sentiment models; their outputs may also be
// supplied directly by callers.
package classify

import (
	"math"
	"strings"
)

// Canonical complaint categories. CategoryGeneral is the fallback for text
// that matches nothing; the scoring engine applies its default weights to it.
const (
	CategorySafety      = "safety"
	CategoryElectrical  = "electrical"
	CategoryPlumbing    = "plumbing"
	CategoryWifi        = "wifi"
	CategoryCleanliness = "cleanliness"
	CategoryGeneral     = "general"
)

// categoryOrder fixes tie-breaking precedence: the more safety-relevant
// category wins when keyword hits are equal.
var categoryOrder = []string{
	CategorySafety,
	CategoryElectrical,
	CategoryPlumbing,
	CategoryWifi,
	CategoryCleanliness,
}

var categoryKeywords = map[string][]string{
	CategorySafety:      {"fire", "theft", "stolen", "unsafe", "danger", "injured", "intruder", "gas", "security", "harass"},
	CategoryElectrical:  {"electric", "power", "socket", "switchboard", "wiring", "shock", "fan", "light", "bulb", "voltage"},
	CategoryPlumbing:    {"water", "leak", "tap", "pipe", "drain", "flush", "toilet", "washroom", "sewage", "geyser"},
	CategoryWifi:        {"wifi", "wi-fi", "internet", "network", "router", "connection", "signal", "lan"},
	CategoryCleanliness: {"dirty", "clean", "garbage", "dust", "smell", "stink", "trash", "sweep", "cockroach", "mess"},
}

// synonyms maps free-form category labels onto the canonical set.
var synonyms = map[string]string{
	"internet":        CategoryWifi,
	"wi-fi":           CategoryWifi,
	"network":         CategoryWifi,
	"water":           CategoryPlumbing,
	"water supply":    CategoryPlumbing,
	"sanitation":      CategoryPlumbing,
	"electricity":     CategoryElectrical,
	"electric":        CategoryElectrical,
	"power":           CategoryElectrical,
	"security":        CategorySafety,
	"housekeeping":    CategoryCleanliness,
	"cleaning":        CategoryCleanliness,
	"room furniture":  CategoryGeneral,
	"administration":  CategoryGeneral,
	"other":           CategoryGeneral,
}

// Categorize predicts a category for free text by counting keyword hits per
// category, returning the winner and a confidence share in [0,1]. Text with
// no hits falls back to CategoryGeneral with zero confidence.
func Categorize(text string) (string, float64) {
	lower := strings.ToLower(text)

	total := 0
	hits := make(map[string]int, len(categoryKeywords))
	for category, words := range categoryKeywords {
		for _, w := range words {
			if strings.Contains(lower, w) {
				hits[category]++
				total++
			}
		}
	}
	if total == 0 {
		return CategoryGeneral, 0
	}

	best := ""
	bestHits := 0
	for _, category := range categoryOrder {
		if hits[category] > bestHits {
			best = category
			bestHits = hits[category]
		}
	}
	confidence := math.Round(float64(bestHits)/float64(total)*1000) / 1000
	return best, confidence
}

// NormalizeCategory maps a free-form category label into the canonical set.
// Unknown labels pass through trimmed and lower-cased so the scoring engine
// can fail-soft to its default weights.
func NormalizeCategory(raw string) string {
	label := strings.ToLower(strings.TrimSpace(raw))
	if label == "" {
		return ""
	}
	for _, canonical := range categoryOrder {
		if label == canonical {
			return canonical
		}
	}
	if canonical, ok := synonyms[label]; ok {
		return canonical
	}
	return label
}
