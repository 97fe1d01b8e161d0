package main

import "errors"

// KnownMetrics is the set of metric names exported by flashlist plus the
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"flashlist_http_request_duration_seconds": true,
	"flashlist_http_requests_total":           true,
	"flashlist_http_panics_total":             true,

	// Health metrics.
	"flashlist_healthz_up": true,
	"flashlist_readyz_up":  true,

	// Publish metrics.
	"flashlist_publish_attempts_total":     true,
	"flashlist_publish_step_retries_total": true,
	"flashlist_publish_duration_seconds":   true,
	"flashlist_listings_created_total":     true,

	// Account and category metrics.
	"flashlist_token_refreshes_total":          true,
	"flashlist_category_resolutions_total":     true,
	"flashlist_category_cache_refreshes_total": true,
	"flashlist_deletion_notifications_total":   true,
	"flashlist_notification_duration_seconds":  true,

	// eBay API metrics.
	"flashlist_ebay_api_calls_total":        true,
	"flashlist_ebay_api_errors_total":       true,
	"flashlist_ebay_daily_usage":            true,
	"flashlist_ebay_daily_limit_hits_total": true,

	// Recording rules.
	"flashlist:http_requests:rate5m":          true,
	"flashlist:http_errors:rate5m":            true,
	"flashlist:publish_attempts:rate5m":       true,
	"flashlist:publish_failures:rate5m":       true,
	"flashlist:token_refresh_failures:rate5m": true,
	"flashlist:ebay_api_calls:rate5m":         true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
