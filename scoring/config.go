package scoring

// Complaint lifecycle statuses recognized by the time-decay scorer.
const (
	StatusOpen            = "open"
	StatusInProgress      = "in_progress"
	StatusPendingApproval = "pending_approval"
	StatusResolved        = "resolved"
)

// Weights holds the fixed-weight linear combination of the four signals.
type Weights struct {
	Severity   float64 `json:"severity" yaml:"severity"`
	Frequency  float64 `json:"frequency" yaml:"frequency"`
	Urgency    float64 `json:"urgency" yaml:"urgency"`
	TimeFactor float64 `json:"time_factor" yaml:"time_factor"`
}

// PatternBoost pairs a regular expression with its additive severity boost.
type PatternBoost struct {
	Pattern string  `json:"pattern" yaml:"pattern"`
	Boost   float64 `json:"boost" yaml:"boost"`
}

// CountStep maps a similar-complaint count ceiling to a frequency score.
type CountStep struct {
	MaxCount int     `json:"max_count" yaml:"max_count"`
	Score    float64 `json:"score" yaml:"score"`
}

// DayStep maps a pending-days ceiling to a time-decay score.
type DayStep struct {
	MaxDays int     `json:"max_days" yaml:"max_days"`
	Score   float64 `json:"score" yaml:"score"`
}

// Config carries every tunable table used by the scorers. Instances are
// treated as immutable once handed to an Engine; swapping tables goes through
// Engine.SetConfig. The fields can be customized via config.yaml under the
// "scoring" key (see config.LoadScoringConfig).
type Config struct {
	// Severity tables.
	BaseSeverity     map[string]float64 `json:"base_severity" yaml:"base_severity"`
	DefaultSeverity  float64            `json:"default_severity" yaml:"default_severity"`
	RiskKeywords     map[string]float64 `json:"risk_keywords" yaml:"risk_keywords"`
	DurationPatterns []PatternBoost     `json:"duration_patterns" yaml:"duration_patterns"`
	ScopeKeywords    map[string]float64 `json:"scope_keywords" yaml:"scope_keywords"`

	// Urgency tables.
	UrgencyKeywords map[string]float64 `json:"urgency_keywords" yaml:"urgency_keywords"`
	CategoryUrgency map[string]float64 `json:"category_urgency" yaml:"category_urgency"`
	NightBoost      float64            `json:"night_boost" yaml:"night_boost"`
	NightStartHour  int                `json:"night_start_hour" yaml:"night_start_hour"`
	NightEndHour    int                `json:"night_end_hour" yaml:"night_end_hour"`

	// Frequency tuning.
	SimilarityThreshold float64     `json:"similarity_threshold" yaml:"similarity_threshold"`
	FrequencyFloor      float64     `json:"frequency_floor" yaml:"frequency_floor"`
	NgramMin            int         `json:"ngram_min" yaml:"ngram_min"`
	NgramMax            int         `json:"ngram_max" yaml:"ngram_max"`
	FrequencySteps      []CountStep `json:"frequency_steps" yaml:"frequency_steps"`
	FrequencyCeiling    float64     `json:"frequency_ceiling" yaml:"frequency_ceiling"`

	// Time-decay tuning.
	AgeSteps          []DayStep          `json:"age_steps" yaml:"age_steps"`
	AgeCeiling        float64            `json:"age_ceiling" yaml:"age_ceiling"`
	StatusAttenuation map[string]float64 `json:"status_attenuation" yaml:"status_attenuation"`

	Weights Weights `json:"weights" yaml:"weights"`
}

// DefaultConfig returns the baked-in scoring tables. Severity dominates the
// weight split because it is the primary safety-relevant signal.
func DefaultConfig() Config {
	return Config{
		BaseSeverity: map[string]float64{
			"cleanliness": 0.15,
			"wifi":        0.35,
			"plumbing":    0.55,
			"electrical":  0.75,
			"safety":      0.95,
		},
		DefaultSeverity: 0.3,
		RiskKeywords: map[string]float64{
			"fire":           0.5,
			"shock":          0.45,
			"gas":            0.5,
			"leakage":        0.25,
			"leaking":        0.25,
			"broken":         0.15,
			"emergency":      0.35,
			"water shortage": 0.3,
			"no water":       0.35,
			"power cut":      0.2,
			"injured":        0.5,
			"hurt":           0.4,
			"stink":          0.15,
			"pest":           0.3,
			"mosquito":       0.2,
			"rats":           0.35,
		},
		DurationPatterns: []PatternBoost{
			{Pattern: `today`, Boost: 0.0},
			{Pattern: `yesterday`, Boost: 0.08},
			{Pattern: `\b2\s*days?\b`, Boost: 0.15},
			{Pattern: `\b3\s*days?\b`, Boost: 0.25},
			{Pattern: `\b[4-6]\s*days?\b`, Boost: 0.4},
			{Pattern: `\b\d+\s*days?\b`, Boost: 0.35},
			{Pattern: `week`, Boost: 0.5},
			{Pattern: `weeks`, Boost: 0.6},
			{Pattern: `month`, Boost: 0.8},
		},
		ScopeKeywords: map[string]float64{
			"my room":       0.0,
			"our room":      0.05,
			"floor":         0.3,
			"entire hostel": 0.5,
			"whole hostel":  0.5,
			"common area":   0.35,
			"kitchen":       0.4,
			"washroom":      0.25,
			"all rooms":     0.5,
		},
		UrgencyKeywords: map[string]float64{
			"immediately": 1.0,
			"urgent":      0.85,
			"asap":        0.75,
			"emergency":   0.8,
			"critical":    0.9,
			"soon":        0.5,
			"right now":   0.9,
			"now":         0.7,
		},
		CategoryUrgency: map[string]float64{
			"safety":      0.4,
			"electrical":  0.3,
			"plumbing":    0.25,
			"wifi":        0.15,
			"cleanliness": 0.05,
		},
		NightBoost:     0.2,
		NightStartHour: 22,
		NightEndHour:   6,

		SimilarityThreshold: 0.25,
		FrequencyFloor:      0.05,
		NgramMin:            3,
		NgramMax:            5,
		FrequencySteps: []CountStep{
			{MaxCount: 0, Score: 0.05},
			{MaxCount: 1, Score: 0.2},
			{MaxCount: 2, Score: 0.35},
			{MaxCount: 3, Score: 0.5},
			{MaxCount: 5, Score: 0.65},
			{MaxCount: 8, Score: 0.8},
		},
		FrequencyCeiling: 1.0,

		AgeSteps: []DayStep{
			{MaxDays: 0, Score: 0.0},
			{MaxDays: 1, Score: 0.1},
			{MaxDays: 3, Score: 0.25},
			{MaxDays: 6, Score: 0.5},
			{MaxDays: 10, Score: 0.75},
		},
		AgeCeiling: 1.0,
		StatusAttenuation: map[string]float64{
			StatusInProgress:      0.6,
			StatusPendingApproval: 0.8,
		},

		Weights: Weights{
			Severity:   0.45,
			Frequency:  0.25,
			Urgency:    0.2,
			TimeFactor: 0.1,
		},
	}
}
