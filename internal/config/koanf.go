// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/affectus/config.yaml",
	"/etc/affectus/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// envPrefix namespaces all configuration environment variables.
const envPrefix = "AFFECTUS_"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8000,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development", // Set AFFECTUS_ENVIRONMENT=production for production checks
		},
		API: APIConfig{
			MaxTextLength:     500,
			MaxBatchSize:      100,
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Ensemble: EnsembleConfig{
			DefaultMethod: "weighted",
			Weights: WeightsConfig{
				Keyword:   0.25,
				Sentiment: 0.35,
				Semantic:  0.40,
			},
			DefaultTopK:     3,
			MaxTopK:         10,
			ProviderTimeout: 2 * time.Second,
		},
		Providers: ProvidersConfig{
			// Remote classifiers are optional - keyword-only mode by default
			Sentiment: RemoteProviderConfig{
				Enabled:   false,
				URL:       "",
				Timeout:   5 * time.Second,
				RateLimit: 0, // Unlimited
				Burst:     10,
			},
			Semantic: RemoteProviderConfig{
				Enabled:   false,
				URL:       "",
				Timeout:   5 * time.Second,
				RateLimit: 0, // Unlimited
				Burst:     10,
			},
		},
		Personalization: PersonalizationConfig{
			StorePath:      "data/user_preferences.json",
			DecayRate:      0.1,
			Weight:         0.4,
			MaxHistoryDays: 30,
			FlushEvery:     5,
		},
		Monitor: MonitorConfig{
			LogPath:        "data/logs/predictions.jsonl",
			MetricsPath:    "data/logs/metrics.json",
			BufferSize:     10,
			DriftThreshold: 0.15,
		},
		Maintenance: MaintenanceConfig{
			FlushInterval:   30 * time.Second,
			RollupInterval:  1 * time.Hour,
			CleanupInterval: 24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// This function provides:
//   - Type-safe configuration unmarshaling
//   - Clear precedence: ENV > File > Defaults
//   - Support for nested configuration via koanf struct tags
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// Transform environment variable names to koanf paths:
	// AFFECTUS_HTTP_PORT -> server.port
	// AFFECTUS_MONITOR_LOG_PATH -> monitor.log_path
	envProvider := env.Provider(envPrefix, ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	// Unmarshal into Config struct
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	// Check environment variable first
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	// Search default paths
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"api.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// This is necessary because env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// If it's already a slice (from YAML file), skip
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		// If it's a string, split by comma
		if strVal, ok := val.(string); ok {
			if strVal == "" {
				continue
			}
			parts := strings.Split(strVal, ",")
			trimmed := make([]string, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p != "" {
					trimmed = append(trimmed, p)
				}
			}
			if len(trimmed) > 0 {
				if err := k.Set(path, trimmed); err != nil {
					return fmt.Errorf("failed to set %s: %w", path, err)
				}
			}
		}
	}
	return nil
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Only variables with the AFFECTUS_ prefix and an explicit mapping are
// accepted.
//
// Examples:
//   - AFFECTUS_HTTP_PORT -> server.port
//   - AFFECTUS_ENSEMBLE_KEYWORD_WEIGHT -> ensemble.weights.keyword
//   - AFFECTUS_SENTIMENT_URL -> providers.sentiment.url
//   - AFFECTUS_LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

	envMappings := map[string]string{
		// Server mappings
		"http_port":    "server.port",
		"http_host":    "server.host",
		"http_timeout": "server.timeout",
		"environment":  "server.environment",

		// API mappings
		"api_max_text_length": "api.max_text_length",
		"api_max_batch_size":  "api.max_batch_size",
		"rate_limit_requests": "api.rate_limit_reqs",
		"rate_limit_window":   "api.rate_limit_window",
		"disable_rate_limit":  "api.rate_limit_disabled",
		"cors_origins":        "api.cors_origins",

		// Ensemble mappings
		"ensemble_method":           "ensemble.default_method",
		"ensemble_keyword_weight":   "ensemble.weights.keyword",
		"ensemble_sentiment_weight": "ensemble.weights.sentiment",
		"ensemble_semantic_weight":  "ensemble.weights.semantic",
		"ensemble_default_top_k":    "ensemble.default_top_k",
		"ensemble_max_top_k":        "ensemble.max_top_k",
		"provider_timeout":          "ensemble.provider_timeout",

		// Provider mappings
		"sentiment_enabled":    "providers.sentiment.enabled",
		"sentiment_url":        "providers.sentiment.url",
		"sentiment_timeout":    "providers.sentiment.timeout",
		"sentiment_rate_limit": "providers.sentiment.rate_limit",
		"sentiment_burst":      "providers.sentiment.burst",
		"semantic_enabled":     "providers.semantic.enabled",
		"semantic_url":         "providers.semantic.url",
		"semantic_timeout":     "providers.semantic.timeout",
		"semantic_rate_limit":  "providers.semantic.rate_limit",
		"semantic_burst":       "providers.semantic.burst",

		// Personalization mappings
		"personalization_store_path":   "personalization.store_path",
		"personalization_decay_rate":   "personalization.decay_rate",
		"personalization_weight":       "personalization.weight",
		"personalization_history_days": "personalization.max_history_days",
		"personalization_flush_every":  "personalization.flush_every",

		// Monitor mappings
		"monitor_log_path":        "monitor.log_path",
		"monitor_metrics_path":    "monitor.metrics_path",
		"monitor_buffer_size":     "monitor.buffer_size",
		"monitor_drift_threshold": "monitor.drift_threshold",

		// Maintenance mappings
		"maintenance_flush_interval":   "maintenance.flush_interval",
		"maintenance_rollup_interval":  "maintenance.rollup_interval",
		"maintenance_cleanup_interval": "maintenance.cleanup_interval",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}

// WatchConfigFile sets up a file watcher for hot-reload capability.
// Note: The caller is responsible for mutex protection when accessing
// configuration during reloads.
//
// Example usage:
//
//	err := WatchConfigFile(configPath, func() {
//	    newCfg, err := config.Load()
//	    if err != nil {
//	        logging.Error().Err(err).Msg("config reload failed")
//	        return
//	    }
//	    logging.SetLevelString(newCfg.Logging.Level)
//	})
func WatchConfigFile(path string, callback func()) error {
	provider := file.Provider(path)

	// Start watching the file for changes
	return provider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
