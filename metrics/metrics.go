package metrics

import "sync/atomic"

// Metrics captures shared operational stats for the scoring pipeline and the
// worker pool behind it.
type Metrics struct {
	queueLength   int64
	queueCapacity int64
	workerCount   int64

	processedJobs int64
	failedJobs    int64

	complaintsSubmitted int64
	complaintsScored    int64
	scoreFailures       int64
	rescoreRuns         int64
	lastRescoreUnix     int64
}

// Snapshot provides a consistent view of the current metrics.
type Snapshot struct {
	QueueLength   int   `json:"queue_length"`
	QueueCapacity int   `json:"queue_capacity"`
	WorkerCount   int   `json:"worker_count"`
	ProcessedJobs int64 `json:"processed_jobs"`
	FailedJobs    int64 `json:"failed_jobs"`

	ComplaintsSubmitted int64 `json:"complaints_submitted"`
	ComplaintsScored    int64 `json:"complaints_scored"`
	ScoreFailures       int64 `json:"score_failures"`
	RescoreRuns         int64 `json:"rescore_runs"`
	LastRescoreUnix     int64 `json:"last_rescore_unix"`
}

// New creates a zeroed Metrics instance.
func New() *Metrics {
	return &Metrics{}
}

// UpdateQueue records the current queue stats.
func (m *Metrics) UpdateQueue(length, capacity, workers int) {
	atomic.StoreInt64(&m.queueLength, int64(length))
	atomic.StoreInt64(&m.queueCapacity, int64(capacity))
	atomic.StoreInt64(&m.workerCount, int64(workers))
}

// RecordJobCompletion increments processed/failed counters based on outcome.
func (m *Metrics) RecordJobCompletion(err error) {
	atomic.AddInt64(&m.processedJobs, 1)
	if err != nil {
		atomic.AddInt64(&m.failedJobs, 1)
	}
}

// RecordSubmission counts one accepted complaint.
func (m *Metrics) RecordSubmission() {
	atomic.AddInt64(&m.complaintsSubmitted, 1)
}

// RecordScore counts one scoring attempt.
func (m *Metrics) RecordScore(err error) {
	atomic.AddInt64(&m.complaintsScored, 1)
	if err != nil {
		atomic.AddInt64(&m.scoreFailures, 1)
	}
}

// RecordRescoreRun stamps a completed rescore sweep.
func (m *Metrics) RecordRescoreRun(unix int64) {
	atomic.AddInt64(&m.rescoreRuns, 1)
	atomic.StoreInt64(&m.lastRescoreUnix, unix)
}

// Snapshot returns a read-only view of metrics.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		QueueLength:   int(atomic.LoadInt64(&m.queueLength)),
		QueueCapacity: int(atomic.LoadInt64(&m.queueCapacity)),
		WorkerCount:   int(atomic.LoadInt64(&m.workerCount)),
		ProcessedJobs: atomic.LoadInt64(&m.processedJobs),
		FailedJobs:    atomic.LoadInt64(&m.failedJobs),

		ComplaintsSubmitted: atomic.LoadInt64(&m.complaintsSubmitted),
		ComplaintsScored:    atomic.LoadInt64(&m.complaintsScored),
		ScoreFailures:       atomic.LoadInt64(&m.scoreFailures),
		RescoreRuns:         atomic.LoadInt64(&m.rescoreRuns),
		LastRescoreUnix:     atomic.LoadInt64(&m.lastRescoreUnix),
	}
}
