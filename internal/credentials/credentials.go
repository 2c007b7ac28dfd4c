package credentials

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/wavelink-comms/wavelink-auth/internal/generators"
	"github.com/wavelink-comms/wavelink-auth/pkg/logger"
	"github.com/wavelink-comms/wavelink-auth/pkg/metrics"
	"github.com/wavelink-comms/wavelink-auth/pkg/tracing"
)

const tracerName = "github.com/wavelink-comms/wavelink-auth/internal/credentials"

// JWTGenerator produces a signed JWT from private key bytes and claims.
// The claims map always carries at least "application_id".
type JWTGenerator interface {
	Generate(privateKey []byte, claims map[string]interface{}) (string, error)
}

// SignatureGenerator produces a request signature from a shared secret,
// a digest method and the request parameters, in that argument order.
type SignatureGenerator interface {
	Generate(secret, method string, params map[string]string) (string, error)
}

// Credentials is the canonical credential value for the Wavelink API.
// API key, API secret, application id and the materialized private key
// are immutable after construction; the two generator slots are the only
// mutable state.
type Credentials struct {
	apiKey          string
	apiSecret       string
	applicationID   string
	privateKey      []byte
	signatureSecret string
	signatureMethod string

	// guards the generator slots; lazy default binding must not race
	mu     sync.Mutex
	jwtGen JWTGenerator
	sigGen SignatureGenerator

	logger  logger.Logger
	metrics *metrics.Metrics
}

type options struct {
	applicationID   string
	privateKeyRef   interface{}
	signatureSecret string
	signatureMethod string
	jwtGen          JWTGenerator
	sigGen          SignatureGenerator
	logger          logger.Logger
	metrics         *metrics.Metrics
}

// Option configures optional Credentials fields at construction
type Option func(*options)

// WithApplicationID sets the default application id for JWT generation
func WithApplicationID(id string) Option {
	return func(o *options) {
		o.applicationID = id
	}
}

// WithPrivateKey sets the private key reference from a string. The string
// is tried as a filesystem path first; when no file exists there it is
// taken as literal key content, e.g. inline PEM text.
func WithPrivateKey(key string) Option {
	return func(o *options) {
		o.privateKeyRef = key
	}
}

// WithPrivateKeyBytes sets the private key from already-canonical bytes
func WithPrivateKeyBytes(key []byte) Option {
	return func(o *options) {
		o.privateKeyRef = key
	}
}

// WithSignatureSecret sets the default secret for signature generation
func WithSignatureSecret(secret string) Option {
	return func(o *options) {
		o.signatureSecret = secret
	}
}

// WithSignatureMethod sets the default digest method for signature generation
func WithSignatureMethod(method string) Option {
	return func(o *options) {
		o.signatureMethod = method
	}
}

// WithJWTGenerator binds the JWT generator slot at construction,
// pre-empting the lazy default
func WithJWTGenerator(g JWTGenerator) Option {
	return func(o *options) {
		o.jwtGen = g
	}
}

// WithSignatureGenerator binds the signature generator slot at
// construction, pre-empting the lazy default
func WithSignatureGenerator(g SignatureGenerator) Option {
	return func(o *options) {
		o.sigGen = g
	}
}

// WithLogger sets the logger (default is a no-op logger)
func WithLogger(log logger.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}

// WithMetrics enables Prometheus instrumentation of generation calls
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// New constructs Credentials from positional arguments plus options.
// The private key, if referenced, is fully materialized before New
// returns; a key reference that cannot be resolved is a construction
// error and no instance is produced.
//
// apiKey and apiSecret are deliberately not validated here. Presence
// checks belong to the configuration layer; the API itself rejects
// requests made with empty credentials.
func New(apiKey, apiSecret string, opts ...Option) (*Credentials, error) {
	o := &options{logger: logger.Nop()}
	for _, opt := range opts {
		opt(o)
	}

	key, source, err := materializePrivateKey(o.privateKeyRef)
	if err != nil {
		return nil, err
	}

	c := &Credentials{
		apiKey:          apiKey,
		apiSecret:       apiSecret,
		applicationID:   o.applicationID,
		privateKey:      key,
		signatureSecret: o.signatureSecret,
		signatureMethod: o.signatureMethod,
		jwtGen:          o.jwtGen,
		sigGen:          o.sigGen,
		logger:          o.logger,
		metrics:         o.metrics,
	}

	if key != nil {
		c.metrics.RecordKeyMaterialization(source)
	}

	c.logger.Debug("credentials constructed",
		logger.String("api_key", apiKey),
		logger.String("application_id", c.applicationID),
		logger.Bool("has_private_key", key != nil),
		logger.String("private_key_source", source),
		logger.Bool("has_signature_secret", c.signatureSecret != ""),
	)

	return c, nil
}

// APIKey returns the API key
func (c *Credentials) APIKey() string { return c.apiKey }

// APISecret returns the API secret
func (c *Credentials) APISecret() string { return c.apiSecret }

// ApplicationID returns the default application id, if any
func (c *Credentials) ApplicationID() string { return c.applicationID }

// PrivateKey returns the materialized private key bytes, or nil
func (c *Credentials) PrivateKey() []byte { return c.privateKey }

// SignatureSecret returns the default signature secret, if any
func (c *Credentials) SignatureSecret() string { return c.signatureSecret }

// SignatureMethod returns the default signature method, if any
func (c *Credentials) SignatureMethod() string { return c.signatureMethod }

// JWTOptions carries per-call overrides for GenerateJWT. Zero values fall
// back to the stored defaults.
type JWTOptions struct {
	// ApplicationID overrides the stored application id
	ApplicationID string

	// PrivateKey overrides the stored private key
	PrivateKey []byte
}

// SignatureOptions carries per-call overrides for GenerateSignature.
// Zero values fall back to the stored defaults.
type SignatureOptions struct {
	// Method overrides the stored signature method
	Method string

	// Secret overrides the stored signature secret
	Secret string
}

// GenerateJWT generates a JWT through the bound JWT generator, binding
// the default generator first if the slot is still unset. The private key
// and application id resolve override-first, stored-second. Key presence
// is not pre-validated; an absent key fails inside the generator. Whatever
// the generator produces is returned untouched, and generator errors
// propagate untranslated.
func (c *Credentials) GenerateJWT(ctx context.Context, opts JWTOptions) (string, error) {
	start := time.Now()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "credentials.generate_jwt")
	defer span.End()

	key := c.privateKey
	if opts.PrivateKey != nil {
		key = opts.PrivateKey
	}
	applicationID := c.applicationID
	if opts.ApplicationID != "" {
		applicationID = opts.ApplicationID
	}

	claims := map[string]interface{}{
		"application_id": applicationID,
	}

	token, err := c.jwtGenerator().Generate(key, claims)
	c.metrics.RecordTokenGeneration(err, time.Since(start))
	if err != nil {
		tracing.RecordError(ctx, err)
		c.logger.Error("JWT generation failed",
			logger.String("application_id", applicationID),
			logger.Error(err),
		)
		return "", err
	}

	tracing.SetAttributes(ctx, attribute.String("application_id", applicationID))
	c.logger.Debug("JWT generated",
		logger.String("application_id", applicationID),
		logger.Duration("duration_ms", time.Since(start).Milliseconds()),
	)

	return token, nil
}

// GenerateSignature signs the given request parameters through the bound
// signature generator, binding the default generator first if the slot is
// still unset. Method and secret resolve override-first, stored-second.
// Params are handed to the generator unmodified, and the generator is
// called with (secret, method, params) in exactly that order.
func (c *Credentials) GenerateSignature(ctx context.Context, params map[string]string, opts SignatureOptions) (string, error) {
	start := time.Now()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "credentials.generate_signature")
	defer span.End()

	method := c.signatureMethod
	if opts.Method != "" {
		method = opts.Method
	}
	secret := c.signatureSecret
	if opts.Secret != "" {
		secret = opts.Secret
	}

	signature, err := c.signatureGenerator().Generate(secret, method, params)
	c.metrics.RecordSignatureGeneration(method, err, time.Since(start))
	if err != nil {
		tracing.RecordError(ctx, err)
		c.logger.Error("signature generation failed",
			logger.String("method", method),
			logger.Error(err),
		)
		return "", err
	}

	tracing.SetAttributes(ctx, attribute.String("method", method))
	c.logger.Debug("signature generated",
		logger.String("method", method),
		logger.Int("num_params", len(params)),
	)

	return signature, nil
}

// SetJWTGenerator re-binds the JWT generator slot. The replacement takes
// effect on the next GenerateJWT call; no shape validation is performed.
func (c *Credentials) SetJWTGenerator(g JWTGenerator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jwtGen = g
}

// SetSignatureGenerator re-binds the signature generator slot
func (c *Credentials) SetSignatureGenerator(g SignatureGenerator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sigGen = g
}

// jwtGenerator returns the bound JWT generator, binding the default
// exactly once if the slot is unset
func (c *Credentials) jwtGenerator() JWTGenerator {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.jwtGen == nil {
		c.jwtGen = generators.NewJWT()
	}
	return c.jwtGen
}

// signatureGenerator returns the bound signature generator, binding the
// default exactly once if the slot is unset
func (c *Credentials) signatureGenerator() SignatureGenerator {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sigGen == nil {
		c.sigGen = generators.NewHash()
	}
	return c.sigGen
}
