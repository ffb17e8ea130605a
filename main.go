package main

import (
	"context"
	"embed"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"complaint_triage/config"
	"complaint_triage/metrics"
	"complaint_triage/queue"
	"complaint_triage/rescore"
	"complaint_triage/scoring"
	"complaint_triage/store"
)

//go:embed static/*
var embeddedStatic embed.FS

type server struct {
	cfg       config.Config
	store     *store.Store
	engine    *scoring.Engine
	queue     *queue.Queue
	metrics   *metrics.Metrics
	rescorer  *rescore.Service
	now       func() time.Time
	startedAt time.Time
}

func main() {
	config.LoadDotEnv(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	scoringCfg, err := config.LoadScoringConfig(cfg.ScoringConfigPath)
	if err != nil {
		if cfg.StrictConfig {
			log.Fatalf("scoring config load failed (%s): %v", cfg.ScoringConfigPath, err)
		}
		log.Printf("scoring config load failed (%s): %v (using defaults)", cfg.ScoringConfigPath, err)
	}
	engine, err := scoring.NewEngine(scoringCfg)
	if err != nil {
		log.Fatalf("scoring engine: %v", err)
	}

	m := metrics.New()
	q := queue.New(cfg.JobQueueSize, cfg.WorkerCount, time.Duration(cfg.JobTimeoutSec)*time.Second, m)
	st := store.New()
	historyWindow := time.Duration(cfg.HistoryWindowDays) * 24 * time.Hour
	rescorer := rescore.New(st, engine, q, m, historyWindow, cfg.RescoreSchedule)

	s := &server{
		cfg:       cfg,
		store:     st,
		engine:    engine,
		queue:     q,
		metrics:   m,
		rescorer:  rescorer,
		now:       time.Now,
		startedAt: time.Now(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	q.Start(ctx)
	if err := rescorer.Start(ctx); err != nil {
		log.Fatalf("rescore scheduler: %v", err)
	}
	go s.watchScoringConfig(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/complaints", s.handleComplaints)
	mux.HandleFunc("/api/complaints/", s.handleComplaint)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/ops/status", s.handleOpsStatus)
	mux.HandleFunc("/ops/health", s.handleOpsHealth)
	mux.HandleFunc("/ops/rescore", s.handleOpsRescore)
	mux.HandleFunc("/", s.handleRoot)

	httpServer := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		ctxTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(ctxTimeout)
		q.Stop(ctxTimeout)
	}()

	log.Printf("server listening on %s", httpServer.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}

// watchScoringConfig reloads the scoring tables when the config file changes.
// The parent directory is watched because editors typically replace the file
// rather than write it in place.
func (s *server) watchScoringConfig(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("scoring config watcher: %v", err)
		return
	}
	defer watcher.Close()

	dir := filepath.Dir(s.cfg.ScoringConfigPath)
	if err := watcher.Add(dir); err != nil {
		log.Printf("scoring config watch add (%s): %v", dir, err)
		return
	}
	target := filepath.Clean(s.cfg.ScoringConfigPath)

	log.Printf("watching %s for scoring config changes", target)
	for {
		select {
		case evt, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(evt.Name) != target {
				continue
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			cfg, err := config.LoadScoringConfig(target)
			if err != nil {
				log.Printf("scoring config reload failed: %v (keeping current tables)", err)
				continue
			}
			if err := s.engine.SetConfig(cfg); err != nil {
				log.Printf("scoring config rejected: %v (keeping current tables)", err)
				continue
			}
			log.Printf("scoring config reloaded from %s", target)
		case err := <-watcher.Errors:
			log.Printf("scoring config watch error: %v", err)
		case <-ctx.Done():
			return
		}
	}
}
