// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Auth          AuthConfig          `yaml:"auth"`
	Ebay          EbayConfig          `yaml:"ebay"`
	Webhook       WebhookConfig       `yaml:"webhook"`
	Categories    CategoriesConfig    `yaml:"categories"`
	Encryption    EncryptionConfig    `yaml:"encryption"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Observability ObservabilityConfig `yaml:"observability"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// AuthConfig defines bearer token verification.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	Issuer    string        `yaml:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl"` // lifetime of tokens minted by `flashlist token`
}

// EbayConfig defines eBay API settings.
type EbayConfig struct {
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	RedirectURI  string   `yaml:"redirect_uri"` // eBay RuName
	Marketplace  string   `yaml:"marketplace"`
	Scopes       []string `yaml:"scopes"`

	AuthURL      string `yaml:"auth_url"`
	TokenURL     string `yaml:"token_url"`
	APIBaseURL   string `yaml:"api_base_url"`
	IdentityURL  string `yaml:"identity_url"`
	AnalyticsURL string `yaml:"analytics_url"`

	Timeout         time.Duration         `yaml:"timeout"`
	RateLimit       RateLimitConfig       `yaml:"rate_limit"`
	Retry           RetryConfig           `yaml:"retry"`
	Policies        PoliciesConfig        `yaml:"policies"`
	DefaultLocation DefaultLocationConfig `yaml:"default_location"`
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// RetryConfig defines the retry policy for inventory and offer writes.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	BaseDelay   time.Duration `yaml:"base_delay"`
}

// PoliciesConfig controls seller business policy handling.
type PoliciesConfig struct {
	AutoCreate bool `yaml:"auto_create"` // default: false
}

// DefaultLocationConfig is the merchant location created when a seller has
// none and the listing carries no address.
type DefaultLocationConfig struct {
	Key        string `yaml:"key"`
	City       string `yaml:"city"`
	State      string `yaml:"state"`
	PostalCode string `yaml:"postal_code"`
	Country    string `yaml:"country"`
}

// WebhookConfig defines marketplace account deletion notification settings.
type WebhookConfig struct {
	VerificationToken string `yaml:"verification_token"`
	EndpointURL       string `yaml:"endpoint_url"`
}

// CategoriesConfig defines category cache behavior.
type CategoriesConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	Schedule        time.Duration `yaml:"schedule"` // how often the scheduler checks staleness
	DefaultID       string        `yaml:"default_id"`
	PlantID         string        `yaml:"plant_id"`
	ProbeRate       float64       `yaml:"probe_rate"` // probes per second
}

// EncryptionConfig defines at-rest encryption of OAuth tokens.
type EncryptionConfig struct {
	TokenKey string `yaml:"token_key"` // base64, 32 bytes; empty stores tokens in the clear
}

// NotificationsConfig defines operator notification settings.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// ObservabilityConfig groups tracing settings.
type ObservabilityConfig struct {
	OTel OTelConfig `yaml:"otel"`
}

// OTelConfig defines the OTLP exporter.
type OTelConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// TokenKeyBytes decodes the configured token encryption key. A nil key
// means encryption is disabled.
func (e *EncryptionConfig) TokenKeyBytes() ([]byte, error) {
	if e.TokenKey == "" {
		return nil, nil
	}
	key, err := base64.StdEncoding.DecodeString(e.TokenKey)
	if err != nil {
		return nil, fmt.Errorf("decoding encryption.token_key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption.token_key must decode to 32 bytes (got %d)", len(key))
	}
	return key, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyAuthDefaults(&cfg.Auth)
	applyEbayDefaults(&cfg.Ebay)
	applyCategoriesDefaults(&cfg.Categories)
	applyOTelDefaults(&cfg.Observability.OTel)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		// a publish may spend up to three 30s calls plus backoff
		s.WriteTimeout = 3 * time.Minute
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyAuthDefaults(a *AuthConfig) {
	if a.Issuer == "" {
		a.Issuer = "flashlist"
	}
	if a.TokenTTL == 0 {
		a.TokenTTL = 24 * time.Hour
	}
}

func applyEbayDefaults(e *EbayConfig) {
	if e.Marketplace == "" {
		e.Marketplace = "EBAY_US"
	}
	if len(e.Scopes) == 0 {
		e.Scopes = []string{
			"https://api.ebay.com/oauth/api_scope",
			"https://api.ebay.com/oauth/api_scope/sell.inventory",
			"https://api.ebay.com/oauth/api_scope/sell.account",
			"https://api.ebay.com/oauth/api_scope/commerce.identity.readonly",
		}
	}
	if e.AuthURL == "" {
		e.AuthURL = "https://auth.ebay.com/oauth2/authorize"
	}
	if e.TokenURL == "" {
		e.TokenURL = "https://api.ebay.com/identity/v1/oauth2/token"
	}
	if e.APIBaseURL == "" {
		e.APIBaseURL = "https://api.ebay.com"
	}
	if e.IdentityURL == "" {
		e.IdentityURL = "https://apiz.ebay.com/commerce/identity/v1/user/"
	}
	if e.AnalyticsURL == "" {
		e.AnalyticsURL = "https://api.ebay.com/developer/analytics/v1_beta/rate_limit/"
	}
	if e.Timeout == 0 {
		e.Timeout = 30 * time.Second
	}
	applyRateLimitDefaults(&e.RateLimit)
	applyRetryDefaults(&e.Retry)
	applyDefaultLocationDefaults(&e.DefaultLocation)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applyRetryDefaults(r *RetryConfig) {
	if r.MaxAttempts == 0 {
		r.MaxAttempts = 3
	}
	if r.BaseDelay == 0 {
		r.BaseDelay = time.Second
	}
}

func applyDefaultLocationDefaults(l *DefaultLocationConfig) {
	if l.Key == "" {
		l.Key = "default-location"
	}
	if l.Country == "" {
		l.Country = "US"
	}
	// A partial address is kept as given and fails location creation on
	// its own terms.
	if l.City == "" && l.State == "" && l.PostalCode == "" {
		l.City = "San Jose"
		l.State = "CA"
		l.PostalCode = "95125"
	}
}

func applyCategoriesDefaults(c *CategoriesConfig) {
	if c.RefreshInterval == 0 {
		c.RefreshInterval = 7 * 24 * time.Hour
	}
	if c.Schedule == 0 {
		c.Schedule = 6 * time.Hour
	}
	if c.DefaultID == "" {
		c.DefaultID = "220"
	}
	if c.PlantID == "" {
		c.PlantID = "165362"
	}
	if c.ProbeRate == 0 {
		c.ProbeRate = 1
	}
}

func applyOTelDefaults(o *OTelConfig) {
	if o.ServiceName == "" {
		o.ServiceName = "flashlist"
	}
	if o.SampleRatio == 0 {
		o.SampleRatio = 1.0
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}
	if cfg.Auth.JWTSecret == "" {
		errs = append(errs, fmt.Errorf("auth.jwt_secret is required"))
	}
	if cfg.Ebay.ClientID == "" || cfg.Ebay.ClientSecret == "" {
		errs = append(errs, fmt.Errorf("ebay.client_id and ebay.client_secret are required"))
	}
	if cfg.Ebay.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("ebay.retry.max_attempts must be at least 1"))
	}
	if cfg.Webhook.VerificationToken != "" {
		n := len(cfg.Webhook.VerificationToken)
		if n < 32 || n > 80 {
			errs = append(errs, fmt.Errorf(
				"webhook.verification_token must be 32-80 characters (got %d)", n,
			))
		}
		if cfg.Webhook.EndpointURL == "" {
			errs = append(errs, fmt.Errorf(
				"webhook.endpoint_url is required when webhook.verification_token is set",
			))
		}
	}
	if _, err := cfg.Encryption.TokenKeyBytes(); err != nil {
		errs = append(errs, err)
	}
	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, fmt.Errorf(
			"notifications.discord.webhook_url is required when discord is enabled",
		))
	}
	if cfg.Observability.OTel.Enabled && cfg.Observability.OTel.Endpoint == "" {
		errs = append(errs, fmt.Errorf("observability.otel.endpoint is required when otel is enabled"))
	}

	return errors.Join(errs...)
}
