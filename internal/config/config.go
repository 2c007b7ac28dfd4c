package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete wavelink-auth configuration
type Config struct {
	// Log configuration
	Log LogConfig `yaml:"log" validate:"required"`

	// Credentials configuration
	Credentials CredentialsConfig `yaml:"credentials" validate:"required"`

	// JWT configuration
	JWT JWTConfig `yaml:"jwt"`

	// Metrics configuration
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing configuration
	Tracing TracingConfig `yaml:"tracing"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the log level (debug, info, warn, error)
	Level string `yaml:"level" validate:"required,oneof=debug info warn error"`

	// Format is the log format (json, console)
	Format string `yaml:"format" validate:"required,oneof=json console"`
}

// CredentialsConfig holds the API credential fields. This is the layer
// that enforces presence of the key and secret; the credentials core
// itself is deliberately permissive.
type CredentialsConfig struct {
	// APIKey is the Wavelink API key
	APIKey string `yaml:"api_key" validate:"required"`

	// APISecret is the Wavelink API secret
	APISecret string `yaml:"api_secret" validate:"required"`

	// ApplicationID is the default application id for JWT generation
	ApplicationID string `yaml:"application_id"`

	// PrivateKey is a path to a PEM file or inline PEM text
	PrivateKey string `yaml:"private_key"`

	// SignatureSecret is the shared secret for request signing
	SignatureSecret string `yaml:"signature_secret"`

	// SignatureMethod is the digest method for request signing
	SignatureMethod string `yaml:"signature_method" validate:"omitempty,oneof=md5hash md5 sha1 sha256 sha512"`
}

// JWTConfig holds JWT generation configuration
type JWTConfig struct {
	// TTL is the generated token lifetime
	TTL time.Duration `yaml:"ttl" validate:"min=0"`
}

// UnmarshalYAML accepts Go duration syntax ("30m", "1h") for the ttl
// field, which yaml has no native representation for.
func (c *JWTConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		TTL string `yaml:"ttl"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.TTL == "" {
		return nil
	}

	ttl, err := time.ParseDuration(raw.TTL)
	if err != nil {
		return err
	}
	c.TTL = ttl
	return nil
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	// Enabled determines if Prometheus instrumentation is enabled
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric namespace
	Namespace string `yaml:"namespace"`
}

// TracingConfig holds tracing configuration
type TracingConfig struct {
	// Enabled determines if OTLP trace export is enabled
	Enabled bool `yaml:"enabled"`

	// Endpoint is the OTLP collector endpoint
	Endpoint string `yaml:"endpoint"`

	// SamplingRatio is the ratio of traces to sample
	SamplingRatio float64 `yaml:"sampling_ratio" validate:"min=0,max=1"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		JWT: JWTConfig{
			TTL: 15 * time.Minute,
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: "wavelink_auth",
		},
		Tracing: TracingConfig{
			Enabled:       false,
			Endpoint:      "localhost:4317",
			SamplingRatio: 1.0,
		},
	}
}

// Merge merges the given config into this config.
// Non-zero values from other take precedence.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}

	if other.Credentials.APIKey != "" {
		c.Credentials.APIKey = other.Credentials.APIKey
	}
	if other.Credentials.APISecret != "" {
		c.Credentials.APISecret = other.Credentials.APISecret
	}
	if other.Credentials.ApplicationID != "" {
		c.Credentials.ApplicationID = other.Credentials.ApplicationID
	}
	if other.Credentials.PrivateKey != "" {
		c.Credentials.PrivateKey = other.Credentials.PrivateKey
	}
	if other.Credentials.SignatureSecret != "" {
		c.Credentials.SignatureSecret = other.Credentials.SignatureSecret
	}
	if other.Credentials.SignatureMethod != "" {
		c.Credentials.SignatureMethod = other.Credentials.SignatureMethod
	}

	if other.JWT.TTL > 0 {
		c.JWT.TTL = other.JWT.TTL
	}

	if other.Metrics.Enabled {
		c.Metrics.Enabled = true
	}
	if other.Metrics.Namespace != "" {
		c.Metrics.Namespace = other.Metrics.Namespace
	}

	if other.Tracing.Enabled {
		c.Tracing.Enabled = true
	}
	if other.Tracing.Endpoint != "" {
		c.Tracing.Endpoint = other.Tracing.Endpoint
	}
	if other.Tracing.SamplingRatio > 0 {
		c.Tracing.SamplingRatio = other.Tracing.SamplingRatio
	}
}
