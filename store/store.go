// Package store keeps the in-memory complaint registry. Records are held for
// the lifetime of the process; callers that need durability are expected to
// sit in front of this service, not behind it.
package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"complaint_triage/scoring"
)

// ErrNotFound is returned when a complaint ID has no record.
var ErrNotFound = errors.New("complaint not found")

// Complaint is one submitted grievance plus its latest score.
type Complaint struct {
	ID          string          `json:"id"`
	StudentName string          `json:"student_name,omitempty"`
	HostelBlock string          `json:"hostel_block,omitempty"`
	RoomNumber  string          `json:"room_number,omitempty"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Score       *scoring.Record `json:"score,omitempty"`
}

// ListFilter narrows and pages List results. Zero values mean "no filter";
// PageSize 0 falls back to the store default.
type ListFilter struct {
	Category string
	Status   string
	Band     string
	Page     int
	PageSize int
}

const defaultPageSize = 50

// Store is a concurrency-safe map of complaints keyed by ID.
type Store struct {
	mu         sync.RWMutex
	complaints map[string]*Complaint
}

func New() *Store {
	return &Store{complaints: make(map[string]*Complaint)}
}

// Insert adds a new complaint. Duplicate IDs are rejected.
func (s *Store) Insert(c Complaint) error {
	if c.ID == "" {
		return errors.New("complaint ID is empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.complaints[c.ID]; exists {
		return fmt.Errorf("complaint %s already exists", c.ID)
	}
	stored := c
	s.complaints[c.ID] = &stored
	return nil
}

// Get returns a copy of the complaint with the given ID.
func (s *Store) Get(id string) (Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.complaints[id]
	if !ok {
		return Complaint{}, ErrNotFound
	}
	return cloneComplaint(c), nil
}

// List returns complaints matching the filter ordered by priority score
// descending, plus the total match count before paging. Unscored complaints
// sort last; ties break on newest first.
func (s *Store) List(filter ListFilter) ([]Complaint, int) {
	s.mu.RLock()
	matched := make([]Complaint, 0, len(s.complaints))
	for _, c := range s.complaints {
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Band != "" && (c.Score == nil || string(c.Score.Band) != filter.Band) {
			continue
		}
		matched = append(matched, cloneComplaint(c))
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		si, sj := matched[i].Score, matched[j].Score
		switch {
		case si == nil && sj == nil:
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		case si == nil:
			return false
		case sj == nil:
			return true
		case si.PriorityScore != sj.PriorityScore:
			return si.PriorityScore > sj.PriorityScore
		default:
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
	})

	total := len(matched)
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= total {
		return []Complaint{}, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return matched[start:end], total
}

// UpdateStatus transitions a complaint to the given status and stamps
// UpdatedAt.
func (s *Store) UpdateStatus(id, status string, now time.Time) (Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.complaints[id]
	if !ok {
		return Complaint{}, ErrNotFound
	}
	c.Status = status
	c.UpdatedAt = now
	return cloneComplaint(c), nil
}

// AttachScore replaces the stored score for a complaint.
func (s *Store) AttachScore(id string, rec scoring.Record, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.complaints[id]
	if !ok {
		return ErrNotFound
	}
	score := rec
	c.Score = &score
	c.UpdatedAt = now
	return nil
}

// RecentTexts returns descriptions of complaints created within the window
// before now, excluding the given ID. The result feeds frequency scoring.
func (s *Store) RecentTexts(now time.Time, window time.Duration, excludeID string) []string {
	cutoff := now.Add(-window)
	s.mu.RLock()
	defer s.mu.RUnlock()
	texts := make([]string, 0, len(s.complaints))
	for _, c := range s.complaints {
		if c.ID == excludeID {
			continue
		}
		if c.CreatedAt.Before(cutoff) {
			continue
		}
		texts = append(texts, c.Description)
	}
	return texts
}

// All returns copies of every complaint in no particular order.
func (s *Store) All() []Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Complaint, 0, len(s.complaints))
	for _, c := range s.complaints {
		out = append(out, cloneComplaint(c))
	}
	return out
}

// Pending returns every complaint that is not resolved. Rescore sweeps use
// this to skip records whose scores are pinned at zero decay anyway.
func (s *Store) Pending() []Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Complaint, 0, len(s.complaints))
	for _, c := range s.complaints {
		if c.Status == scoring.StatusResolved {
			continue
		}
		out = append(out, cloneComplaint(c))
	}
	return out
}

// Len reports the number of stored complaints.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.complaints)
}

func cloneComplaint(c *Complaint) Complaint {
	out := *c
	if c.Score != nil {
		score := *c.Score
		out.Score = &score
	}
	return out
}
