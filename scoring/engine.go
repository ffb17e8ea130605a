package scoring

import (
	"fmt"
	"math"
	"regexp"
	"sync"
)

type durationPattern struct {
	re    *regexp.Regexp
	boost float64
}

// Engine evaluates complaints against an injected set of scoring tables.
// Score calls are pure functions of their inputs plus the tables; the tables
// can be swapped at runtime via SetConfig, and reads are safe under
// concurrent Score calls.
type Engine struct {
	mu        sync.RWMutex
	cfg       Config
	durations []durationPattern
}

// NewEngine compiles the configured duration patterns and returns a ready
// engine. An invalid pattern is a construction-time error, never a per-call
// failure.
func NewEngine(cfg Config) (*Engine, error) {
	e := &Engine{}
	if err := e.SetConfig(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// SetConfig atomically replaces the scoring tables. In-flight Score calls
// keep the snapshot they started with.
func (e *Engine) SetConfig(cfg Config) error {
	durations := make([]durationPattern, 0, len(cfg.DurationPatterns))
	for _, p := range cfg.DurationPatterns {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			return fmt.Errorf("compile duration pattern %q: %w", p.Pattern, err)
		}
		durations = append(durations, durationPattern{re: re, boost: p.Boost})
	}
	e.mu.Lock()
	e.cfg = cfg
	e.durations = durations
	e.mu.Unlock()
	return nil
}

// Config returns the currently installed tables.
func (e *Engine) Config() Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg
}

func (e *Engine) snapshot() (Config, []durationPattern) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg, e.durations
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
