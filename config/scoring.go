package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"complaint_triage/scoring"
)

// LoadScoringConfig reads the scoring section of a YAML/JSON file and merges
// it with the baked-in defaults (JSON is also accepted because it is a subset
// of YAML 1.2).
func LoadScoringConfig(path string) (scoring.Config, error) {
	cfg := scoring.DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if len(data) == 0 {
		return cfg, errors.New("empty config file")
	}
	var parsed struct {
		Scoring scoring.Config `json:"scoring" yaml:"scoring"`
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &parsed); err != nil {
			return cfg, err
		}
	default:
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return cfg, err
		}
	}
	return MergeScoringConfig(cfg, parsed.Scoring), nil
}

// MergeScoringConfig overlays set fields onto the base config. Maps and
// slices replace wholesale when present so operators can tune a table without
// inheriting stale entries; absent sections keep the defaults.
func MergeScoringConfig(base scoring.Config, override scoring.Config) scoring.Config {
	if len(override.BaseSeverity) > 0 {
		base.BaseSeverity = override.BaseSeverity
	}
	if override.DefaultSeverity > 0 {
		base.DefaultSeverity = override.DefaultSeverity
	}
	if len(override.RiskKeywords) > 0 {
		base.RiskKeywords = override.RiskKeywords
	}
	if len(override.DurationPatterns) > 0 {
		base.DurationPatterns = override.DurationPatterns
	}
	if len(override.ScopeKeywords) > 0 {
		base.ScopeKeywords = override.ScopeKeywords
	}
	if len(override.UrgencyKeywords) > 0 {
		base.UrgencyKeywords = override.UrgencyKeywords
	}
	if len(override.CategoryUrgency) > 0 {
		base.CategoryUrgency = override.CategoryUrgency
	}
	if override.NightBoost > 0 {
		base.NightBoost = override.NightBoost
	}
	if override.NightStartHour > 0 {
		base.NightStartHour = override.NightStartHour
	}
	if override.NightEndHour > 0 {
		base.NightEndHour = override.NightEndHour
	}
	if override.SimilarityThreshold > 0 {
		base.SimilarityThreshold = override.SimilarityThreshold
	}
	if override.FrequencyFloor > 0 {
		base.FrequencyFloor = override.FrequencyFloor
	}
	if override.NgramMin > 0 {
		base.NgramMin = override.NgramMin
	}
	if override.NgramMax > 0 {
		base.NgramMax = override.NgramMax
	}
	if len(override.FrequencySteps) > 0 {
		base.FrequencySteps = override.FrequencySteps
	}
	if override.FrequencyCeiling > 0 {
		base.FrequencyCeiling = override.FrequencyCeiling
	}
	if len(override.AgeSteps) > 0 {
		base.AgeSteps = override.AgeSteps
	}
	if override.AgeCeiling > 0 {
		base.AgeCeiling = override.AgeCeiling
	}
	if len(override.StatusAttenuation) > 0 {
		base.StatusAttenuation = override.StatusAttenuation
	}
	if override.Weights != (scoring.Weights{}) {
		base.Weights = override.Weights
	}
	return base
}
