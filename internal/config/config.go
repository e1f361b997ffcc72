// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package config

import "time"

// Config holds all application configuration loaded from defaults, an
// optional YAML config file, and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: AFFECTUS_* variables override any setting
//
// Configuration Categories:
//
//  1. Serving:
//     - Server: HTTP server (port, host, timeout, environment mode)
//     - API: Request limits, rate limiting, CORS
//
//  2. Suggestion Pipeline:
//     - Ensemble: Combination method, provider weights, top-k bounds
//     - Providers: Remote sentiment/semantic classifier endpoints
//     - Personalization: Preference store, decay, blend weight, retention
//
//  3. Operations:
//     - Monitor: Prediction log, metrics store, drift threshold
//     - Maintenance: Background flush, rollup, and cleanup cadence
//     - Logging: Log levels and output formats
//
// Example - Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	// cfg.Server.Port, cfg.Ensemble.Weights, etc. are now populated
//
// Validation:
// Load() validates every section and returns an error when values are
// malformed (out-of-range port, negative weights, unknown log level,
// enabled provider without a URL).
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access
// from multiple goroutines.
type Config struct {
	Server          ServerConfig          `koanf:"server"`
	API             APIConfig             `koanf:"api"`
	Ensemble        EnsembleConfig        `koanf:"ensemble"`
	Providers       ProvidersConfig       `koanf:"providers"`
	Personalization PersonalizationConfig `koanf:"personalization"`
	Monitor         MonitorConfig         `koanf:"monitor"`
	Maintenance     MaintenanceConfig     `koanf:"maintenance"`
	Logging         LoggingConfig         `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - AFFECTUS_HTTP_PORT: Listen port (default: 8000)
//   - AFFECTUS_HTTP_HOST: Bind address (default: 0.0.0.0)
//   - AFFECTUS_HTTP_TIMEOUT: Read/write timeout (default: 30s)
//   - AFFECTUS_ENVIRONMENT: "development", "staging", "production" (default: development)
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// APIConfig holds request limits and rate limiting settings.
//
// Environment Variables:
//   - AFFECTUS_API_MAX_TEXT_LENGTH: Max input text length in characters (default: 500)
//   - AFFECTUS_API_MAX_BATCH_SIZE: Max texts per batch request (default: 100)
//   - AFFECTUS_RATE_LIMIT_REQUESTS: Requests allowed per window per client (default: 100)
//   - AFFECTUS_RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
//   - AFFECTUS_DISABLE_RATE_LIMIT: Disable rate limiting entirely (default: false)
//   - AFFECTUS_CORS_ORIGINS: Comma-separated allowed origins (default: *)
type APIConfig struct {
	// MaxTextLength bounds a single input text in characters.
	// Default: 500.
	MaxTextLength int `koanf:"max_text_length"`

	// MaxBatchSize bounds the number of texts in one batch request.
	// Default: 100.
	MaxBatchSize int `koanf:"max_batch_size"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// CORSOrigins lists allowed origins. The wildcard "*" is rejected
	// when Server.Environment is "production".
	CORSOrigins []string `koanf:"cors_origins"`
}

// EnsembleConfig holds suggestion combiner settings.
//
// Environment Variables:
//   - AFFECTUS_ENSEMBLE_METHOD: "voting" or "weighted" (default: weighted)
//   - AFFECTUS_ENSEMBLE_KEYWORD_WEIGHT: Keyword provider weight (default: 0.25)
//   - AFFECTUS_ENSEMBLE_SENTIMENT_WEIGHT: Sentiment provider weight (default: 0.35)
//   - AFFECTUS_ENSEMBLE_SEMANTIC_WEIGHT: Semantic provider weight (default: 0.40)
//   - AFFECTUS_ENSEMBLE_DEFAULT_TOP_K: Suggestions returned by default (default: 3)
//   - AFFECTUS_ENSEMBLE_MAX_TOP_K: Per-request suggestion cap (default: 10)
//   - AFFECTUS_PROVIDER_TIMEOUT: Per-provider call budget inside one request (default: 2s)
type EnsembleConfig struct {
	DefaultMethod   string        `koanf:"default_method"`
	Weights         WeightsConfig `koanf:"weights"`
	DefaultTopK     int           `koanf:"default_top_k"`
	MaxTopK         int           `koanf:"max_top_k"`
	ProviderTimeout time.Duration `koanf:"provider_timeout"`
}

// WeightsConfig holds per-provider ensemble weights. Weights are
// normalized at runtime, so they don't need to sum to 1.0.
type WeightsConfig struct {
	Keyword   float64 `koanf:"keyword"`
	Sentiment float64 `koanf:"sentiment"`
	Semantic  float64 `koanf:"semantic"`
}

// ProvidersConfig holds remote classifier endpoint settings. The keyword
// provider is in-process and always available; sentiment and semantic
// are optional HTTP services.
type ProvidersConfig struct {
	Sentiment RemoteProviderConfig `koanf:"sentiment"`
	Semantic  RemoteProviderConfig `koanf:"semantic"`
}

// RemoteProviderConfig holds one remote classifier endpoint.
//
// Environment Variables (SENTIMENT shown; SEMANTIC is symmetric):
//   - AFFECTUS_SENTIMENT_ENABLED: Enable the provider (default: false)
//   - AFFECTUS_SENTIMENT_URL: Suggest endpoint, e.g. http://sentiment:8000/suggest
//   - AFFECTUS_SENTIMENT_TIMEOUT: Per-call timeout (default: 5s)
//   - AFFECTUS_SENTIMENT_RATE_LIMIT: Outbound requests per second, 0 = unlimited (default: 0)
//   - AFFECTUS_SENTIMENT_BURST: Outbound burst allowance (default: 10)
type RemoteProviderConfig struct {
	Enabled   bool          `koanf:"enabled"`
	URL       string        `koanf:"url"`
	Timeout   time.Duration `koanf:"timeout"`
	RateLimit float64       `koanf:"rate_limit"`
	Burst     int           `koanf:"burst"`
}

// PersonalizationConfig holds preference store and re-ranking settings.
//
// Environment Variables:
//   - AFFECTUS_PERSONALIZATION_STORE_PATH: Preference store file (default: data/user_preferences.json)
//   - AFFECTUS_PERSONALIZATION_DECAY_RATE: Daily exponential decay rate (default: 0.1)
//   - AFFECTUS_PERSONALIZATION_WEIGHT: Blend weight in [0, 1] (default: 0.4)
//   - AFFECTUS_PERSONALIZATION_HISTORY_DAYS: Interaction retention in days (default: 30)
//   - AFFECTUS_PERSONALIZATION_FLUSH_EVERY: Persist after N interactions per user (default: 5)
type PersonalizationConfig struct {
	StorePath      string  `koanf:"store_path"`
	DecayRate      float64 `koanf:"decay_rate"`
	Weight         float64 `koanf:"weight"`
	MaxHistoryDays int     `koanf:"max_history_days"`
	FlushEvery     int     `koanf:"flush_every"`
}

// MonitorConfig holds prediction logging and drift detection settings.
//
// Environment Variables:
//   - AFFECTUS_MONITOR_LOG_PATH: NDJSON prediction log (default: data/logs/predictions.jsonl)
//   - AFFECTUS_MONITOR_METRICS_PATH: Aggregated metrics store (default: data/logs/metrics.json)
//   - AFFECTUS_MONITOR_BUFFER_SIZE: Entries buffered before flush (default: 10)
//   - AFFECTUS_MONITOR_DRIFT_THRESHOLD: Relative day-over-day change that raises an alert (default: 0.15)
type MonitorConfig struct {
	LogPath        string  `koanf:"log_path"`
	MetricsPath    string  `koanf:"metrics_path"`
	BufferSize     int     `koanf:"buffer_size"`
	DriftThreshold float64 `koanf:"drift_threshold"`
}

// MaintenanceConfig holds background service cadence settings.
//
// Environment Variables:
//   - AFFECTUS_MAINTENANCE_FLUSH_INTERVAL: Monitor buffer flush cadence (default: 30s)
//   - AFFECTUS_MAINTENANCE_ROLLUP_INTERVAL: Daily snapshot + drift check cadence (default: 1h)
//   - AFFECTUS_MAINTENANCE_CLEANUP_INTERVAL: Preference retention prune cadence (default: 24h)
type MaintenanceConfig struct {
	FlushInterval   time.Duration `koanf:"flush_interval"`
	RollupInterval  time.Duration `koanf:"rollup_interval"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - AFFECTUS_LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - AFFECTUS_LOG_FORMAT: json, console (default: json)
//   - AFFECTUS_LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production (structured, machine-parseable).
	// Console is human-readable for development.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Adds slight performance overhead.
	// Default: false
	Caller bool `koanf:"caller"`
}
