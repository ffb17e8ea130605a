package scoring

import (
	"testing"
	"time"
)

func TestTimeFactorResolvedIsZero(t *testing.T) {
	e := newTestEngine(t)
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	created := now.AddDate(0, 0, -30)
	if got := e.TimeFactor(created, StatusResolved, now); got != 0.0 {
		t.Fatalf("resolved must score 0, got %v", got)
	}
}

func TestTimeFactorDaySteps(t *testing.T) {
	e := newTestEngine(t)
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		daysAgo int
		want    float64
	}{
		{0, 0.0},
		{1, 0.1},
		{2, 0.25},
		{3, 0.25},
		{5, 0.5},
		{7, 0.75},
		{10, 0.75},
		{12, 1.0},
	}
	for _, tc := range cases {
		got := e.TimeFactor(now.AddDate(0, 0, -tc.daysAgo), StatusOpen, now)
		if got != tc.want {
			t.Fatalf("%d days pending: expected %v, got %v", tc.daysAgo, tc.want, got)
		}
	}
}

func TestTimeFactorStatusAttenuation(t *testing.T) {
	e := newTestEngine(t)
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	created := now.AddDate(0, 0, -1)

	if got := e.TimeFactor(created, StatusInProgress, now); got != 0.06 {
		t.Fatalf("in_progress: expected 0.1*0.6 = 0.06, got %v", got)
	}
	if got := e.TimeFactor(created, StatusPendingApproval, now); got != 0.08 {
		t.Fatalf("pending_approval: expected 0.1*0.8 = 0.08, got %v", got)
	}
	// Unrecognized statuses decay like open complaints.
	if got := e.TimeFactor(created, "escalated", now); got != 0.1 {
		t.Fatalf("unknown status: expected 0.1, got %v", got)
	}
}

func TestTimeFactorFutureCreationClampsToZeroDays(t *testing.T) {
	e := newTestEngine(t)
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	if got := e.TimeFactor(now.Add(2*time.Hour), StatusOpen, now); got != 0.0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
