package scoring

import "testing"

func TestPriorityDefaultWeights(t *testing.T) {
	e := newTestEngine(t)
	if got := e.Priority(1, 1, 1, 1); got != 1.0 {
		t.Fatalf("expected 1.0, got %v", got)
	}
	// 0.45*0.15 + 0.25*0.05 + 0.2*0.05 + 0.1*0 = 0.09
	if got := e.Priority(0.15, 0.05, 0.05, 0); got != 0.09 {
		t.Fatalf("expected 0.09, got %v", got)
	}
}

func TestPriorityClampedWithOverweightConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = Weights{Severity: 2, Frequency: 0, Urgency: 0, TimeFactor: 0}
	e, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	if got := e.Priority(1, 0, 0, 0); got != 1.0 {
		t.Fatalf("expected clamp to 1.0, got %v", got)
	}
}

func TestTriageBands(t *testing.T) {
	cases := []struct {
		score float64
		want  Band
	}{
		{0.9, BandHigh},
		{0.65, BandHigh},
		{0.649, BandMedium},
		{0.45, BandMedium},
		{0.449, BandLow},
		{0.25, BandLow},
		{0.249, BandVeryLow},
		{0, BandVeryLow},
	}
	for _, tc := range cases {
		if got := TriageBand(tc.score); got != tc.want {
			t.Fatalf("score %v: expected %s, got %s", tc.score, tc.want, got)
		}
	}
}

func TestSetConfigRejectsBadPatternAndKeepsOld(t *testing.T) {
	e := newTestEngine(t)
	bad := DefaultConfig()
	bad.DurationPatterns = []PatternBoost{{Pattern: `[`, Boost: 0.5}}
	if err := e.SetConfig(bad); err == nil {
		t.Fatalf("expected error for invalid pattern")
	}
	// Old tables must remain active after the rejected swap.
	if got := e.Severity("dusty corridor since 4 days", "cleanliness"); got != 0.9 {
		t.Fatalf("expected previous config to stay installed, got %v", got)
	}
}
