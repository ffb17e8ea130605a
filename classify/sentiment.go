package classify

// Sentiment severity bands for the analyze endpoint. The thresholds here are
// intentionally different from the triage bands applied to composite priority
// scores; sentiment reflects emotional intensity, not dispatch order.
const (
	SentimentCritical = "critical"
	SentimentHigh     = "high"
	SentimentMedium   = "medium"
	SentimentLow      = "low"
)

// SentimentBand maps an externally supplied sentiment intensity in [0,1]
// onto a severity label.
func SentimentBand(score float64) string {
	switch {
	case score > 0.75:
		return SentimentCritical
	case score > 0.55:
		return SentimentHigh
	case score > 0.35:
		return SentimentMedium
	default:
		return SentimentLow
	}
}
