package common

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wavelink-comms/wavelink-auth/internal/config"
	"github.com/wavelink-comms/wavelink-auth/internal/credentials"
	"github.com/wavelink-comms/wavelink-auth/internal/generators"
	"github.com/wavelink-comms/wavelink-auth/pkg/logger"
)

type Flags struct {
	LogLevel   string
	LogFormat  string
	ConfigFile string

	APIKey          string
	APISecret       string
	ApplicationID   string
	PrivateKey      string
	SignatureSecret string
	SignatureMethod string
	TokenTTL        string
}

func CreateLogger(flags *Flags) (logger.Logger, error) {
	var level logger.Level
	switch flags.LogLevel {
	case "debug":
		level = logger.DebugLevel
	case "info":
		level = logger.InfoLevel
	case "warn":
		level = logger.WarnLevel
	case "error":
		level = logger.ErrorLevel
	default:
		level = logger.InfoLevel
	}

	var format logger.Format
	switch flags.LogFormat {
	case "json":
		format = logger.JSONFormat
	case "console":
		format = logger.ConsoleFormat
	default:
		format = logger.JSONFormat
	}

	// Log to stderr, stdout is reserved for the result envelope
	return logger.New(logger.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
	})
}

// LoadConfig assembles the effective configuration from defaults, the
// optional config file, environment variables, and command-line flags,
// in that order of precedence.
func LoadConfig(flags *Flags) (*config.Config, error) {
	overrides := &config.Config{
		Credentials: config.CredentialsConfig{
			APIKey:          flags.APIKey,
			APISecret:       flags.APISecret,
			ApplicationID:   flags.ApplicationID,
			PrivateKey:      flags.PrivateKey,
			SignatureSecret: flags.SignatureSecret,
			SignatureMethod: flags.SignatureMethod,
		},
	}

	if flags.TokenTTL != "" {
		ttl, err := time.ParseDuration(flags.TokenTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid token TTL format: %w (examples: 1h, 30m, 900s)", err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("token TTL must be positive")
		}
		overrides.JWT.TTL = ttl
	}

	opts := []config.LoadOption{config.WithEnv(), config.WithOverrides(overrides)}
	if flags.ConfigFile != "" {
		opts = append([]config.LoadOption{config.WithConfigFile(flags.ConfigFile)}, opts...)
	}

	return config.Load(opts...)
}

// BuildCredentials constructs Credentials from the effective
// configuration. The JWT generator is bound eagerly so the configured
// token TTL takes effect.
func BuildCredentials(cfg *config.Config, log logger.Logger) (*credentials.Credentials, error) {
	opts := []credentials.Option{
		credentials.WithLogger(log),
	}

	if cfg.JWT.TTL > 0 {
		opts = append(opts, credentials.WithJWTGenerator(
			generators.NewJWT(generators.WithTTL(cfg.JWT.TTL)),
		))
	}

	return credentials.FromConfig(credentials.Config{
		APIKey:          cfg.Credentials.APIKey,
		APISecret:       cfg.Credentials.APISecret,
		ApplicationID:   cfg.Credentials.ApplicationID,
		PrivateKey:      cfg.Credentials.PrivateKey,
		SignatureSecret: cfg.Credentials.SignatureSecret,
		SignatureMethod: cfg.Credentials.SignatureMethod,
	}, opts...)
}

func SetupSignalHandler() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx, cancel
}
