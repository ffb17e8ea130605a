package store

import (
	"errors"
	"testing"
	"time"

	"complaint_triage/scoring"
)

func mkComplaint(id, category, status string, createdAt time.Time, priority float64, band scoring.Band) Complaint {
	c := Complaint{
		ID:          id,
		Category:    category,
		Description: "desc " + id,
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	if priority >= 0 {
		c.Score = &scoring.Record{PriorityScore: priority, Band: band, Category: category, Status: status}
	}
	return c
}

func TestInsertAndGet(t *testing.T) {
	s := New()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c := mkComplaint("c-1", "plumbing", scoring.StatusOpen, now, 0.5, scoring.BandMedium)
	if err := s.Insert(c); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	got, err := s.Get("c-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Category != "plumbing" || got.Score == nil || got.Score.PriorityScore != 0.5 {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestInsertRejectsDuplicates(t *testing.T) {
	s := New()
	now := time.Now()
	c := mkComplaint("dup", "wifi", scoring.StatusOpen, now, -1, "")
	if err := s.Insert(c); err != nil {
		t.Fatalf("first Insert failed: %v", err)
	}
	if err := s.Insert(c); err == nil {
		t.Fatal("expected duplicate Insert to fail")
	}
}

func TestGetUnknownReturnsNotFound(t *testing.T) {
	s := New()
	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListOrdersByPriorityDescending(t *testing.T) {
	s := New()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s.Insert(mkComplaint("low", "wifi", scoring.StatusOpen, base, 0.2, scoring.BandVeryLow))
	s.Insert(mkComplaint("high", "safety", scoring.StatusOpen, base, 0.9, scoring.BandHigh))
	s.Insert(mkComplaint("mid", "plumbing", scoring.StatusOpen, base, 0.5, scoring.BandMedium))
	s.Insert(mkComplaint("unscored", "wifi", scoring.StatusOpen, base, -1, ""))

	list, total := s.List(ListFilter{})
	if total != 4 {
		t.Fatalf("total = %d, want 4", total)
	}
	wantOrder := []string{"high", "mid", "low", "unscored"}
	for i, want := range wantOrder {
		if list[i].ID != want {
			t.Fatalf("list[%d] = %s, want %s", i, list[i].ID, want)
		}
	}
}

func TestListFilters(t *testing.T) {
	s := New()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s.Insert(mkComplaint("a", "wifi", scoring.StatusOpen, base, 0.3, scoring.BandLow))
	s.Insert(mkComplaint("b", "wifi", scoring.StatusResolved, base, 0.3, scoring.BandLow))
	s.Insert(mkComplaint("c", "safety", scoring.StatusOpen, base, 0.8, scoring.BandHigh))

	list, total := s.List(ListFilter{Category: "wifi", Status: scoring.StatusOpen})
	if total != 1 || list[0].ID != "a" {
		t.Fatalf("category+status filter: total=%d list=%v", total, list)
	}

	list, total = s.List(ListFilter{Band: "high"})
	if total != 1 || list[0].ID != "c" {
		t.Fatalf("band filter: total=%d list=%v", total, list)
	}
}

func TestListPaging(t *testing.T) {
	s := New()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ids := []string{"p1", "p2", "p3", "p4", "p5"}
	for i, id := range ids {
		s.Insert(mkComplaint(id, "wifi", scoring.StatusOpen, base, float64(9-i)/10, scoring.BandMedium))
	}

	page1, total := s.List(ListFilter{Page: 1, PageSize: 2})
	if total != 5 || len(page1) != 2 || page1[0].ID != "p1" {
		t.Fatalf("page1: total=%d list=%v", total, page1)
	}
	page3, _ := s.List(ListFilter{Page: 3, PageSize: 2})
	if len(page3) != 1 || page3[0].ID != "p5" {
		t.Fatalf("page3: list=%v", page3)
	}
	pageEmpty, _ := s.List(ListFilter{Page: 4, PageSize: 2})
	if len(pageEmpty) != 0 {
		t.Fatalf("past-the-end page should be empty, got %v", pageEmpty)
	}
}

func TestUpdateStatus(t *testing.T) {
	s := New()
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s.Insert(mkComplaint("c-1", "wifi", scoring.StatusOpen, created, -1, ""))

	later := created.Add(2 * time.Hour)
	got, err := s.UpdateStatus("c-1", scoring.StatusInProgress, later)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if got.Status != scoring.StatusInProgress || !got.UpdatedAt.Equal(later) {
		t.Fatalf("unexpected record: %+v", got)
	}
	if _, err := s.UpdateStatus("missing", scoring.StatusResolved, later); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAttachScoreOverwrites(t *testing.T) {
	s := New()
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s.Insert(mkComplaint("c-1", "wifi", scoring.StatusOpen, created, 0.2, scoring.BandVeryLow))

	rec := scoring.Record{PriorityScore: 0.7, Band: scoring.BandHigh}
	if err := s.AttachScore("c-1", rec, created.Add(time.Hour)); err != nil {
		t.Fatalf("AttachScore failed: %v", err)
	}
	got, _ := s.Get("c-1")
	if got.Score.PriorityScore != 0.7 || got.Score.Band != scoring.BandHigh {
		t.Fatalf("score not replaced: %+v", got.Score)
	}
}

func TestRecentTextsWindowAndExclusion(t *testing.T) {
	s := New()
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	s.Insert(mkComplaint("fresh", "wifi", scoring.StatusOpen, now.Add(-24*time.Hour), -1, ""))
	s.Insert(mkComplaint("edge", "wifi", scoring.StatusOpen, now.Add(-7*24*time.Hour), -1, ""))
	s.Insert(mkComplaint("stale", "wifi", scoring.StatusOpen, now.Add(-8*24*time.Hour), -1, ""))
	s.Insert(mkComplaint("self", "wifi", scoring.StatusOpen, now, -1, ""))

	texts := s.RecentTexts(now, 7*24*time.Hour, "self")
	if len(texts) != 2 {
		t.Fatalf("texts = %v, want fresh and edge only", texts)
	}
	for _, text := range texts {
		if text == "desc stale" || text == "desc self" {
			t.Fatalf("unexpected text in window: %q", text)
		}
	}
}

func TestPendingSkipsResolved(t *testing.T) {
	s := New()
	now := time.Now()
	s.Insert(mkComplaint("open", "wifi", scoring.StatusOpen, now, -1, ""))
	s.Insert(mkComplaint("done", "wifi", scoring.StatusResolved, now, -1, ""))

	pending := s.Pending()
	if len(pending) != 1 || pending[0].ID != "open" {
		t.Fatalf("pending = %v", pending)
	}
}

func TestCopiesAreIsolated(t *testing.T) {
	s := New()
	now := time.Now()
	s.Insert(mkComplaint("c-1", "wifi", scoring.StatusOpen, now, 0.4, scoring.BandLow))

	got, _ := s.Get("c-1")
	got.Score.PriorityScore = 0.99
	got.Status = "mangled"

	fresh, _ := s.Get("c-1")
	if fresh.Score.PriorityScore != 0.4 || fresh.Status != scoring.StatusOpen {
		t.Fatalf("store leaked internal state: %+v", fresh)
	}
}
