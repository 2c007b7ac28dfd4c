package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wavelink-comms/wavelink-auth/pkg/errors"
)

// LoadOption is a functional option for loading configuration
type LoadOption func(*loadOptions)

type loadOptions struct {
	configFile string
	fromEnv    bool
	overrides  *Config
}

// WithConfigFile specifies the config file path
func WithConfigFile(path string) LoadOption {
	return func(o *loadOptions) {
		o.configFile = path
	}
}

// WithEnv enables environment variable overrides
func WithEnv() LoadOption {
	return func(o *loadOptions) {
		o.fromEnv = true
	}
}

// WithOverrides merges the given config last, after file and
// environment sources. Used for command-line flag overrides.
func WithOverrides(overrides *Config) LoadOption {
	return func(o *loadOptions) {
		o.overrides = overrides
	}
}

// Load loads configuration with the given options
func Load(opts ...LoadOption) (*Config, error) {
	options := &loadOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Start with default config
	config := DefaultConfig()

	// Load from file if specified
	if options.configFile != "" {
		fileConfig, err := loadFromFile(options.configFile)
		if err != nil {
			return nil, err
		}
		config.Merge(fileConfig)
	}

	// Override with environment variables if enabled
	if options.fromEnv {
		config.Merge(loadFromEnv())
	}

	// Flag overrides win over file and environment
	if options.overrides != nil {
		config.Merge(options.overrides)
	}

	// Validate final configuration
	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(
			errors.ErrConfigLoadFailed,
			err,
			"failed to read config file",
		).WithField("path", path)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(
			errors.ErrConfigInvalid,
			err,
			"failed to parse config file",
		).WithField("path", path)
	}

	return &config, nil
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv() *Config {
	return &Config{
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", ""),
			Format: getEnv("LOG_FORMAT", ""),
		},
		Credentials: CredentialsConfig{
			APIKey:          getEnv("WAVELINK_API_KEY", ""),
			APISecret:       getEnv("WAVELINK_API_SECRET", ""),
			ApplicationID:   getEnv("WAVELINK_APPLICATION_ID", ""),
			PrivateKey:      getEnv("WAVELINK_PRIVATE_KEY", ""),
			SignatureSecret: getEnv("WAVELINK_SIGNATURE_SECRET", ""),
			SignatureMethod: getEnv("WAVELINK_SIGNATURE_METHOD", ""),
		},
		JWT: JWTConfig{
			TTL: getDurationEnv("WAVELINK_JWT_TTL", 0),
		},
		Metrics: MetricsConfig{
			Enabled:   getBoolEnv("METRICS_ENABLED", false),
			Namespace: getEnv("METRICS_NAMESPACE", ""),
		},
		Tracing: TracingConfig{
			Enabled:       getBoolEnv("TRACING_ENABLED", false),
			Endpoint:      getEnv("TRACING_ENDPOINT", ""),
			SamplingRatio: getFloatEnv("TRACING_SAMPLING_RATIO", 0),
		},
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBoolEnv gets a boolean environment variable with a default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// getFloatEnv gets a float environment variable with a default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// getDurationEnv gets a duration environment variable with a default
// value. Accepts Go duration syntax, e.g. "15m" or "1h".
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
