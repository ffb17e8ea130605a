package scoring

import (
	"testing"
	"time"
)

func dayHour(hour int) time.Time {
	return time.Date(2025, time.March, 10, hour, 30, 0, 0, time.UTC)
}

func TestUrgencyTakesMaximumKeyword(t *testing.T) {
	e := newTestEngine(t)
	// "urgent" (0.85) and "soon" (0.5) both match; the max wins, they do
	// not add.
	got := e.Urgency("urgent, please fix this soon", "unlisted", dayHour(15))
	if got != 0.85 {
		t.Fatalf("expected 0.85, got %v", got)
	}
}

func TestUrgencyAddsCategoryBaseline(t *testing.T) {
	e := newTestEngine(t)
	got := e.Urgency("light flickering in corridor", "electrical", dayHour(15))
	if got != 0.3 {
		t.Fatalf("expected electrical baseline 0.3, got %v", got)
	}
}

func TestUrgencyNightBoost(t *testing.T) {
	e := newTestEngine(t)
	cases := []struct {
		hour int
		want float64
	}{
		{23, 0.5}, // night window start side
		{6, 0.5},  // inclusive of 06:00
		{7, 0.3},  // daytime
		{21, 0.3},
	}
	for _, tc := range cases {
		got := e.Urgency("light flickering in corridor", "electrical", dayHour(tc.hour))
		if got != tc.want {
			t.Fatalf("hour %d: expected %v, got %v", tc.hour, tc.want, got)
		}
	}
}

func TestUrgencyUnknownCategoryNoBaseline(t *testing.T) {
	e := newTestEngine(t)
	if got := e.Urgency("light flickering in corridor", "laundry", dayHour(15)); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestUrgencyClampedToOne(t *testing.T) {
	e := newTestEngine(t)
	got := e.Urgency("immediately!", "safety", dayHour(23))
	if got != 1.0 {
		t.Fatalf("expected clamp to 1.0, got %v", got)
	}
}
