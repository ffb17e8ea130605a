package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds service configuration derived from a config file and
// environment variables.
type Config struct {
	HTTPPort          string
	JobQueueSize      int
	WorkerCount       int
	JobTimeoutSec     int
	HistoryWindowDays int
	RescoreSchedule   string
	ScoringConfigPath string
	StrictConfig      bool
}

type fileConfig struct {
	HTTPPort          string `json:"http_port" yaml:"http_port"`
	HistoryWindowDays *int   `json:"history_window_days" yaml:"history_window_days"`
	RescoreSchedule   string `json:"rescore_schedule" yaml:"rescore_schedule"`
}

const (
	defaultPort              = ":8000"
	minQueueSize             = 1
	defaultQueueSize         = 100
	maxQueueSize             = 1024
	defaultWorkerCount       = 4
	defaultJobTimeoutSec     = 30
	defaultHistoryWindowDays = 7
	defaultRescoreSchedule   = "0 * * * *"
)

// Load reads configuration from the config file and environment variables
// and applies sane defaults. Malformed values fail soft unless STRICT_CONFIG
// is set.
func Load() (Config, error) {
	cfg := Config{
		JobQueueSize:      defaultQueueSize,
		WorkerCount:       defaultWorkerCount,
		JobTimeoutSec:     defaultJobTimeoutSec,
		HistoryWindowDays: defaultHistoryWindowDays,
		RescoreSchedule:   defaultRescoreSchedule,
		StrictConfig:      parseBoolEnv("STRICT_CONFIG"),
	}

	configPath := getEnv("CONFIG_PATH", filepath.Join("config", "config.yaml"))
	cfg.ScoringConfigPath = getEnv("SCORING_CONFIG_PATH", configPath)

	fileCfg, fileErr := loadFileConfig(configPath)
	if fileErr != nil {
		if cfg.StrictConfig {
			return cfg, fmt.Errorf("config load failed (%s): %w", configPath, fileErr)
		}
		log.Printf("config load failed (%s): %v (using defaults)", configPath, fileErr)
	}

	if fileCfg.HistoryWindowDays != nil && *fileCfg.HistoryWindowDays > 0 {
		cfg.HistoryWindowDays = *fileCfg.HistoryWindowDays
	}
	if strings.TrimSpace(fileCfg.RescoreSchedule) != "" {
		cfg.RescoreSchedule = strings.TrimSpace(fileCfg.RescoreSchedule)
	}

	cfg.HTTPPort = firstNonEmpty(os.Getenv("HTTP_PORT"), fileCfg.HTTPPort, defaultPort)
	if legacyPort := os.Getenv("PORT"); legacyPort != "" && cfg.HTTPPort == defaultPort {
		cfg.HTTPPort = legacyPort
	}
	if !strings.HasPrefix(cfg.HTTPPort, ":") {
		cfg.HTTPPort = ":" + cfg.HTTPPort
	}

	if v := os.Getenv("WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid WORKER_COUNT=%q, using default %d", v, defaultWorkerCount)
			n = defaultWorkerCount
		}
		if n <= 0 {
			log.Printf("WORKER_COUNT must be positive, using default %d", defaultWorkerCount)
			n = defaultWorkerCount
		}
		cfg.WorkerCount = n
	}

	if v := os.Getenv("JOB_QUEUE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid JOB_QUEUE_SIZE=%q, using default %d", v, defaultQueueSize)
			n = defaultQueueSize
		}
		if n < minQueueSize {
			log.Printf("JOB_QUEUE_SIZE raised to minimum %d (was %d)", minQueueSize, n)
			n = minQueueSize
		}
		if n > maxQueueSize {
			log.Printf("JOB_QUEUE_SIZE capped at %d (was %d)", maxQueueSize, n)
			n = maxQueueSize
		}
		cfg.JobQueueSize = n
	}

	if cfg.JobQueueSize < cfg.WorkerCount {
		log.Printf("JOB_QUEUE_SIZE must be >= WORKER_COUNT; using default %d", defaultQueueSize)
		cfg.JobQueueSize = max(defaultQueueSize, cfg.WorkerCount)
	}

	if v := os.Getenv("JOB_TIMEOUT_SEC"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid JOB_TIMEOUT_SEC: %w", err)
		}
		if n <= 0 {
			return cfg, fmt.Errorf("JOB_TIMEOUT_SEC must be positive")
		}
		cfg.JobTimeoutSec = n
	}

	if v, ok, err := parseIntEnv("HISTORY_WINDOW_DAYS"); err != nil {
		if cfg.StrictConfig {
			return cfg, fmt.Errorf("invalid HISTORY_WINDOW_DAYS: %w", err)
		}
		log.Printf("invalid HISTORY_WINDOW_DAYS: %v (using default)", err)
	} else if ok && v > 0 {
		cfg.HistoryWindowDays = v
	}

	if v := strings.TrimSpace(os.Getenv("RESCORE_SCHEDULE")); v != "" {
		cfg.RescoreSchedule = v
	}

	if err := validateConfig(cfg); err != nil {
		if cfg.StrictConfig {
			return cfg, err
		}
		log.Printf("config validation failed: %v (continuing)", err)
	}

	return cfg, nil
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if len(data) == 0 {
		return cfg, errors.New("empty config file")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.HTTPPort) == "" {
		return errors.New("HTTP_PORT is required")
	}
	if cfg.HistoryWindowDays <= 0 {
		return errors.New("history window days must be positive")
	}
	if len(strings.Fields(cfg.RescoreSchedule)) != 5 {
		return fmt.Errorf("rescore schedule must have 5 cron fields (got %q)", cfg.RescoreSchedule)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, val := range values {
		if strings.TrimSpace(val) != "" {
			return val
		}
	}
	return ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func parseBoolEnv(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "1" || v == "true" || v == "yes" || v == "on" {
		return true
	}
	return false
}

func parseIntEnv(key string) (int, bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, false, nil
	}
	val, err := strconv.Atoi(raw)
	return val, true, err
}
