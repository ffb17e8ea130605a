package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"complaint_triage/classify"
	"complaint_triage/scoring"
	"complaint_triage/store"
)

type complaintRequest struct {
	StudentName string `json:"student_name"`
	HostelBlock string `json:"hostel_block"`
	RoomNumber  string `json:"room_number"`
	Category    string `json:"category"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type analyzeRequest struct {
	Text           string   `json:"text"`
	SentimentScore *float64 `json:"sentiment_score"`
}

type similarComplaint struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

var validStatuses = map[string]struct{}{
	scoring.StatusOpen:            {},
	scoring.StatusInProgress:      {},
	scoring.StatusPendingApproval: {},
	scoring.StatusResolved:        {},
}

func (s *server) handleComplaints(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleSubmit(w, r)
	case http.MethodGet:
		s.handleList(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req complaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	description := classify.NormalizeText(req.Description)
	if description == "" {
		http.Error(w, "description is required", http.StatusBadRequest)
		return
	}

	category := classify.NormalizeCategory(req.Category)
	if category == "" {
		category, _ = classify.Categorize(description)
	}

	now := s.now()
	createdAt := now
	if strings.TrimSpace(req.CreatedAt) != "" {
		parsed, err := time.Parse(time.RFC3339, req.CreatedAt)
		if err != nil {
			http.Error(w, "created_at must be RFC3339", http.StatusBadRequest)
			return
		}
		createdAt = parsed
	}

	// History is captured before insert so the new complaint does not count
	// itself as a repeat.
	history := s.store.RecentTexts(now, s.historyWindow(), "")
	rec := s.engine.Score(scoring.ScoreRequest{
		Text:      description,
		Category:  category,
		CreatedAt: createdAt,
		PastTexts: history,
		Status:    scoring.StatusOpen,
		Now:       now,
	})

	c := store.Complaint{
		ID:          uuid.NewString(),
		StudentName: strings.TrimSpace(req.StudentName),
		HostelBlock: strings.TrimSpace(req.HostelBlock),
		RoomNumber:  strings.TrimSpace(req.RoomNumber),
		Category:    category,
		Description: description,
		Status:      scoring.StatusOpen,
		CreatedAt:   createdAt,
		UpdatedAt:   now,
		Score:       &rec,
	}
	if err := s.store.Insert(c); err != nil {
		http.Error(w, "failed to store complaint", http.StatusInternalServerError)
		return
	}
	s.metrics.RecordSubmission()
	s.metrics.RecordScore(nil)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

func (s *server) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.ListFilter{
		Category: classify.NormalizeCategory(q.Get("category")),
		Status:   strings.TrimSpace(q.Get("status")),
		Band:     strings.TrimSpace(q.Get("band")),
	}
	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Page = n
		}
	}
	if v := q.Get("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.PageSize = n
		}
	}

	complaints, total := s.store.List(filter)
	respondJSON(w, map[string]interface{}{
		"complaints": complaints,
		"total":      total,
	})
}

func (s *server) handleComplaint(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/complaints/")
	if path == "" {
		http.NotFound(w, r)
		return
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")
	id := parts[0]
	if id == "" {
		http.NotFound(w, r)
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		c, err := s.store.Get(id)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		respondJSON(w, c)
	case len(parts) == 2 && parts[1] == "status" && r.Method == http.MethodPost:
		s.handleStatusUpdate(w, r, id)
	case len(parts) == 2 && parts[1] == "similar" && r.Method == http.MethodGet:
		s.handleSimilar(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (s *server) handleStatusUpdate(w http.ResponseWriter, r *http.Request, id string) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	status := strings.TrimSpace(req.Status)
	if _, ok := validStatuses[status]; !ok {
		http.Error(w, "unknown status", http.StatusBadRequest)
		return
	}

	now := s.now()
	if _, err := s.store.UpdateStatus(id, status, now); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "failed to update status", http.StatusInternalServerError)
		return
	}
	// Status changes move the time-decay attenuation, so the score is
	// recomputed inline rather than waiting for the next sweep.
	if err := s.rescorer.RescoreOne(id, now); err != nil {
		log.Printf("rescore after status change (%s): %v", id, err)
	}
	c, err := s.store.Get(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	respondJSON(w, c)
}

func (s *server) handleSimilar(w http.ResponseWriter, r *http.Request, id string) {
	c, err := s.store.Get(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	others := s.store.All()
	texts := make([]string, 0, len(others))
	candidates := make([]store.Complaint, 0, len(others))
	for _, other := range others {
		if other.ID == id {
			continue
		}
		texts = append(texts, other.Description)
		candidates = append(candidates, other)
	}
	if len(texts) == 0 {
		respondJSON(w, []similarComplaint{})
		return
	}

	scores, err := s.engine.Similarities(c.Description, texts)
	if err != nil {
		respondJSON(w, []similarComplaint{})
		return
	}
	sims := make([]similarComplaint, 0, len(scores))
	for i, score := range scores {
		sims = append(sims, similarComplaint{ID: candidates[i].ID, Score: score})
	}
	sort.Slice(sims, func(i, j int) bool { return sims[i].Score > sims[j].Score })
	if len(sims) > 5 {
		sims = sims[:5]
	}
	respondJSON(w, sims)
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	text := classify.NormalizeText(req.Text)
	if text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	category, confidence := classify.Categorize(text)
	out := map[string]interface{}{
		"category":   category,
		"confidence": confidence,
	}
	if req.SentimentScore != nil {
		out["sentiment_score"] = *req.SentimentScore
		out["sentiment_band"] = classify.SentimentBand(*req.SentimentScore)
	}
	respondJSON(w, out)
}

func (s *server) handleOpsRescore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	result := s.rescorer.Recompute(r.Context(), s.now())
	respondJSON(w, result)
}

func (s *server) handleOpsStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	version := strings.TrimSpace(os.Getenv("GIT_SHA"))
	if version == "" {
		version = "dev"
	}

	qStats := s.queue.Stats()
	s.metrics.UpdateQueue(qStats.Length, qStats.Capacity, qStats.WorkerCount)
	mSnap := s.metrics.Snapshot()

	summary := map[string]interface{}{
		"version":    version,
		"uptime_sec": int64(s.now().Sub(s.startedAt).Seconds()),
		"config": map[string]interface{}{
			"WORKER_COUNT":        s.cfg.WorkerCount,
			"JOB_QUEUE_SIZE":      s.cfg.JobQueueSize,
			"HISTORY_WINDOW_DAYS": s.cfg.HistoryWindowDays,
			"RESCORE_SCHEDULE":    s.cfg.RescoreSchedule,
		},
		"queue": map[string]interface{}{
			"queued":       qStats.Length,
			"capacity":     qStats.Capacity,
			"worker_count": qStats.WorkerCount,
			"succeeded":    mSnap.ProcessedJobs - mSnap.FailedJobs,
			"failed":       mSnap.FailedJobs,
		},
		"pipeline": map[string]interface{}{
			"complaints_total":           s.store.Len(),
			"complaints_submitted_total": mSnap.ComplaintsSubmitted,
			"complaints_scored_total":    mSnap.ComplaintsScored,
			"score_failures_total":       mSnap.ScoreFailures,
			"rescore_runs_total":         mSnap.RescoreRuns,
			"last_rescore_unix":          mSnap.LastRescoreUnix,
		},
	}
	respondJSON(w, summary)
}

func (s *server) handleOpsHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !s.queue.Healthy() {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": false})
		return
	}
	respondJSON(w, map[string]interface{}{"ok": true})
}

func (s *server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		http.NotFound(w, r)
		return
	}
	switch {
	case r.URL.Path == "/":
		data, err := embeddedStatic.ReadFile("static/index.html")
		if err != nil {
			http.Error(w, "missing UI", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(data)
	case strings.HasPrefix(r.URL.Path, "/static/"):
		http.FileServer(http.FS(embeddedStatic)).ServeHTTP(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (s *server) historyWindow() time.Duration {
	return time.Duration(s.cfg.HistoryWindowDays) * 24 * time.Hour
}

func respondJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
