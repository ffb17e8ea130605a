package scoring

import "time"

// ScoreRequest carries everything the pipeline needs. Now must be supplied by
// the caller so results stay deterministic; PastTexts must already be limited
// to the relevant history window.
type ScoreRequest struct {
	Text      string
	Category  string
	CreatedAt time.Time
	PastTexts []string
	Status    string
	Now       time.Time
}

// Record is the immutable output of one pipeline run. All numeric fields are
// clamped to [0,1] and rounded to 3 digits.
type Record struct {
	Severity      float64 `json:"severity"`
	Frequency     float64 `json:"frequency"`
	Urgency       float64 `json:"urgency"`
	TimeFactor    float64 `json:"time_factor"`
	PriorityScore float64 `json:"priority_score"`
	Category      string  `json:"category"`
	Status        string  `json:"status"`
	Band          Band    `json:"priority_band"`
	Explanation   string  `json:"explanation"`
}

// Score runs the four scorers independently, aggregates them into the
// priority score, and derives the explanation. It is a total function: any
// text (including empty) and any category or status produce a valid record.
func (e *Engine) Score(req ScoreRequest) Record {
	rec := Record{
		Severity:   e.Severity(req.Text, req.Category),
		Frequency:  e.Frequency(req.Text, req.PastTexts),
		Urgency:    e.Urgency(req.Text, req.Category, req.CreatedAt),
		TimeFactor: e.TimeFactor(req.CreatedAt, req.Status, req.Now),
		Category:   req.Category,
		Status:     req.Status,
	}
	rec.PriorityScore = e.Priority(rec.Severity, rec.Frequency, rec.Urgency, rec.TimeFactor)
	rec.Band = TriageBand(rec.PriorityScore)
	rec.Explanation = explanation(rec)
	return rec
}
