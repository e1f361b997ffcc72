// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package config

import (
	"fmt"
	"net/url"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateEnsemble(); err != nil {
		return err
	}

	if err := c.validateProviders(); err != nil {
		return err
	}

	if err := c.validatePersonalization(); err != nil {
		return err
	}

	if err := c.validateMonitor(); err != nil {
		return err
	}

	if err := c.validateMaintenance(); err != nil {
		return err
	}

	return c.validateLogging()
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("AFFECTUS_HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("AFFECTUS_HTTP_TIMEOUT must be positive")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateAPI validates request limits, rate limiting, and CORS
func (c *Config) validateAPI() error {
	if c.API.MaxTextLength < 1 {
		return fmt.Errorf("AFFECTUS_API_MAX_TEXT_LENGTH must be at least 1")
	}
	if c.API.MaxBatchSize < 1 {
		return fmt.Errorf("AFFECTUS_API_MAX_BATCH_SIZE must be at least 1")
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateCORS()
}

// validateRateLimits validates rate limiting configuration bounds.
// Ensures rate limit values are within sensible ranges to prevent
// misconfiguration that could lead to DoS or ineffective protection.
func (c *Config) validateRateLimits() error {
	if c.API.RateLimitDisabled {
		return nil
	}

	if c.API.RateLimitReqs < minRateLimitRequests || c.API.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("AFFECTUS_RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.API.RateLimitWindow < minRateLimitWindow || c.API.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("AFFECTUS_RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateCORS rejects wildcard CORS in production mode. A public origin
// list must be stated explicitly there so a reverse proxy misconfiguration
// cannot silently expose the API to every site.
func (c *Config) validateCORS() error {
	if len(c.API.CORSOrigins) == 0 {
		return fmt.Errorf("AFFECTUS_CORS_ORIGINS must list at least one origin")
	}
	if c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("AFFECTUS_CORS_ORIGINS=* (wildcard) is not allowed in production. " +
			"Set specific origins: AFFECTUS_CORS_ORIGINS=https://yourdomain.com,https://app.yourdomain.com " +
			"or use AFFECTUS_ENVIRONMENT=development for testing purposes")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.API.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// validEnsembleMethods defines the allowed combination methods
var validEnsembleMethods = map[string]bool{
	"voting":   true,
	"weighted": true,
}

// validateEnsemble validates combiner configuration
func (c *Config) validateEnsemble() error {
	if !validEnsembleMethods[c.Ensemble.DefaultMethod] {
		return fmt.Errorf("AFFECTUS_ENSEMBLE_METHOD must be one of: voting, weighted")
	}

	if c.Ensemble.Weights.Keyword < 0 {
		return fmt.Errorf("AFFECTUS_ENSEMBLE_KEYWORD_WEIGHT must not be negative")
	}
	if c.Ensemble.Weights.Sentiment < 0 {
		return fmt.Errorf("AFFECTUS_ENSEMBLE_SENTIMENT_WEIGHT must not be negative")
	}
	if c.Ensemble.Weights.Semantic < 0 {
		return fmt.Errorf("AFFECTUS_ENSEMBLE_SEMANTIC_WEIGHT must not be negative")
	}

	if c.Ensemble.DefaultTopK < 1 {
		return fmt.Errorf("AFFECTUS_ENSEMBLE_DEFAULT_TOP_K must be at least 1")
	}
	if c.Ensemble.MaxTopK < c.Ensemble.DefaultTopK {
		return fmt.Errorf("AFFECTUS_ENSEMBLE_MAX_TOP_K must be >= AFFECTUS_ENSEMBLE_DEFAULT_TOP_K")
	}

	if c.Ensemble.ProviderTimeout <= 0 {
		return fmt.Errorf("AFFECTUS_PROVIDER_TIMEOUT must be positive")
	}
	return nil
}

// validateProviders validates remote classifier endpoints (only if enabled)
func (c *Config) validateProviders() error {
	if err := validateRemoteProvider(&c.Providers.Sentiment, "SENTIMENT"); err != nil {
		return err
	}
	return validateRemoteProvider(&c.Providers.Semantic, "SEMANTIC")
}

// validateRemoteProvider validates a single remote provider section.
// envName is the environment variable infix ("SENTIMENT", "SEMANTIC").
func validateRemoteProvider(p *RemoteProviderConfig, envName string) error {
	if !p.Enabled {
		return nil // Remote providers are optional - no validation needed when disabled
	}

	if p.URL == "" {
		return fmt.Errorf("AFFECTUS_%s_URL is required when AFFECTUS_%s_ENABLED=true", envName, envName)
	}
	if err := validateEndpointURL(p.URL, "AFFECTUS_"+envName+"_URL"); err != nil {
		return err
	}

	if p.Timeout <= 0 {
		return fmt.Errorf("AFFECTUS_%s_TIMEOUT must be positive", envName)
	}
	if p.RateLimit < 0 {
		return fmt.Errorf("AFFECTUS_%s_RATE_LIMIT must not be negative", envName)
	}
	if p.Burst < 1 {
		return fmt.Errorf("AFFECTUS_%s_BURST must be at least 1", envName)
	}
	return nil
}

// validateEndpointURL validates that a URL is properly formatted for an
// HTTP/HTTPS endpoint. Paths are allowed: provider URLs point at the
// suggest route, not a base address.
func validateEndpointURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	return nil
}

// validatePersonalization validates preference store configuration
func (c *Config) validatePersonalization() error {
	if c.Personalization.StorePath == "" {
		return fmt.Errorf("AFFECTUS_PERSONALIZATION_STORE_PATH must not be empty")
	}
	if c.Personalization.DecayRate < 0 {
		return fmt.Errorf("AFFECTUS_PERSONALIZATION_DECAY_RATE must not be negative")
	}
	if c.Personalization.Weight < 0 || c.Personalization.Weight > 1 {
		return fmt.Errorf("AFFECTUS_PERSONALIZATION_WEIGHT must be between 0 and 1")
	}
	if c.Personalization.MaxHistoryDays < 1 {
		return fmt.Errorf("AFFECTUS_PERSONALIZATION_HISTORY_DAYS must be at least 1")
	}
	if c.Personalization.FlushEvery < 1 {
		return fmt.Errorf("AFFECTUS_PERSONALIZATION_FLUSH_EVERY must be at least 1")
	}
	return nil
}

// validateMonitor validates prediction logging configuration
func (c *Config) validateMonitor() error {
	if c.Monitor.LogPath == "" {
		return fmt.Errorf("AFFECTUS_MONITOR_LOG_PATH must not be empty")
	}
	if c.Monitor.MetricsPath == "" {
		return fmt.Errorf("AFFECTUS_MONITOR_METRICS_PATH must not be empty")
	}
	if c.Monitor.BufferSize < 1 {
		return fmt.Errorf("AFFECTUS_MONITOR_BUFFER_SIZE must be at least 1")
	}
	if c.Monitor.DriftThreshold <= 0 {
		return fmt.Errorf("AFFECTUS_MONITOR_DRIFT_THRESHOLD must be positive")
	}
	return nil
}

// validateMaintenance validates background service cadence
func (c *Config) validateMaintenance() error {
	if c.Maintenance.FlushInterval <= 0 {
		return fmt.Errorf("AFFECTUS_MAINTENANCE_FLUSH_INTERVAL must be positive")
	}
	if c.Maintenance.RollupInterval <= 0 {
		return fmt.Errorf("AFFECTUS_MAINTENANCE_ROLLUP_INTERVAL must be positive")
	}
	if c.Maintenance.CleanupInterval <= 0 {
		return fmt.Errorf("AFFECTUS_MAINTENANCE_CLEANUP_INTERVAL must be positive")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("AFFECTUS_LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format == "" {
		return nil
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("AFFECTUS_LOG_FORMAT must be one of: json, console")
	}
	return nil
}
