// Package rescore periodically recomputes priority scores so that time decay
// and new frequency evidence keep the triage queue ordered without waiting
// for fresh submissions.
package rescore

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"complaint_triage/metrics"
	"complaint_triage/queue"
	"complaint_triage/scoring"
	"complaint_triage/store"
)

const (
	enqueueWindow   = 5 * time.Second
	enqueueInterval = 250 * time.Millisecond
)

// RunResult summarizes one rescore sweep.
type RunResult struct {
	Candidates int `json:"candidates"`
	Enqueued   int `json:"enqueued"`
	Dropped    int `json:"dropped"`
}

// Service schedules and executes rescore sweeps over the complaint store.
type Service struct {
	store    *store.Store
	engine   *scoring.Engine
	queue    *queue.Queue
	metrics  *metrics.Metrics
	window   time.Duration
	schedule string
	now      func() time.Time
}

func New(st *store.Store, engine *scoring.Engine, q *queue.Queue, m *metrics.Metrics, historyWindow time.Duration, schedule string) *Service {
	return &Service{
		store:    st,
		engine:   engine,
		queue:    q,
		metrics:  m,
		window:   historyWindow,
		schedule: schedule,
		now:      time.Now,
	}
}

// Start runs the cron loop until the context is cancelled. The schedule is a
// standard 5-field cron expression.
func (s *Service) Start(ctx context.Context) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(s.schedule)
	if err != nil {
		return fmt.Errorf("parse rescore schedule %q: %w", s.schedule, err)
	}

	go func() {
		for {
			next := sched.Next(s.now())
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Until(next)):
			}
			result := s.Recompute(ctx, s.now())
			log.Printf("rescore sweep: candidates=%d enqueued=%d dropped=%d", result.Candidates, result.Enqueued, result.Dropped)
		}
	}()
	return nil
}

// Recompute enqueues a scoring job for every unresolved complaint. It returns
// immediately; the worker pool performs the actual scoring.
func (s *Service) Recompute(ctx context.Context, now time.Time) RunResult {
	pending := s.store.Pending()
	result := RunResult{Candidates: len(pending)}
	for _, c := range pending {
		id := c.ID
		job := queue.Job{
			ID:   id,
			Kind: "rescore",
			Work: func(context.Context) error {
				return s.RescoreOne(id, now)
			},
		}
		enqueued, _ := s.queue.EnqueueWithRetry(ctx, job, enqueueWindow, enqueueInterval)
		if enqueued {
			result.Enqueued++
		} else {
			result.Dropped++
		}
	}
	s.metrics.RecordRescoreRun(now.Unix())
	return result
}

// RescoreOne recomputes and stores the score for a single complaint.
func (s *Service) RescoreOne(id string, now time.Time) error {
	c, err := s.store.Get(id)
	if err != nil {
		return err
	}
	history := s.store.RecentTexts(now, s.window, id)
	rec := s.engine.Score(scoring.ScoreRequest{
		Text:      c.Description,
		Category:  c.Category,
		CreatedAt: c.CreatedAt,
		PastTexts: history,
		Status:    c.Status,
		Now:       now,
	})
	if err := s.store.AttachScore(id, rec, now); err != nil {
		s.metrics.RecordScore(err)
		return err
	}
	s.metrics.RecordScore(nil)
	return nil
}
