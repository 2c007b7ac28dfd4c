package credentials

import (
	"fmt"

	"github.com/wavelink-comms/wavelink-auth/pkg/errors"
)

// Config is the object form of credential construction input. The yaml
// tags match the CLI configuration file, the json tags match the wire
// form used by SDK callers.
type Config struct {
	APIKey          string `yaml:"api_key" json:"apiKey"`
	APISecret       string `yaml:"api_secret" json:"apiSecret"`
	ApplicationID   string `yaml:"application_id" json:"applicationId"`
	PrivateKey      string `yaml:"private_key" json:"privateKey"`
	SignatureSecret string `yaml:"signature_secret" json:"signatureSecret"`
	SignatureMethod string `yaml:"signature_method" json:"signatureMethod"`
}

// FromConfig constructs Credentials from the object form. The private key
// field, when set, is routed through key materialization like any string
// key reference.
func FromConfig(cfg Config, opts ...Option) (*Credentials, error) {
	all := make([]Option, 0, len(opts)+4)
	if cfg.ApplicationID != "" {
		all = append(all, WithApplicationID(cfg.ApplicationID))
	}
	if cfg.PrivateKey != "" {
		all = append(all, WithPrivateKey(cfg.PrivateKey))
	}
	if cfg.SignatureSecret != "" {
		all = append(all, WithSignatureSecret(cfg.SignatureSecret))
	}
	if cfg.SignatureMethod != "" {
		all = append(all, WithSignatureMethod(cfg.SignatureMethod))
	}
	all = append(all, opts...)
	return New(cfg.APIKey, cfg.APISecret, all...)
}

// Parse normalizes any supported construction input into Credentials.
// The input is classified once, by type:
//
//   - *Credentials is already canonical and returned unchanged, with no
//     re-materialization and no generator assignment (opts are ignored)
//   - Config (or *Config) uses the object form
//   - map[string]interface{} uses the object form with the recognized
//     keys apiKey, apiSecret, applicationId, privateKey, signatureSecret
//     and signatureMethod; unrecognized keys are ignored
//
// Anything else is an invalid argument.
func Parse(input interface{}, opts ...Option) (*Credentials, error) {
	switch v := input.(type) {
	case *Credentials:
		return v, nil
	case Config:
		return FromConfig(v, opts...)
	case *Config:
		if v == nil {
			return nil, errors.New(errors.ErrInvalidArgument, "credential config is nil")
		}
		return FromConfig(*v, opts...)
	case map[string]interface{}:
		return fromMap(v, opts...)
	default:
		return nil, errors.New(
			errors.ErrInvalidArgument,
			fmt.Sprintf("unsupported credential input type %T", input),
		)
	}
}

// fromMap builds Credentials from the plain-map object form. A privateKey
// entry may be a string (path or literal) or raw bytes.
func fromMap(m map[string]interface{}, opts ...Option) (*Credentials, error) {
	all := make([]Option, 0, len(opts)+4)

	if v, ok := m["applicationId"].(string); ok && v != "" {
		all = append(all, WithApplicationID(v))
	}
	switch pk := m["privateKey"].(type) {
	case string:
		if pk != "" {
			all = append(all, WithPrivateKey(pk))
		}
	case []byte:
		all = append(all, WithPrivateKeyBytes(pk))
	}
	if v, ok := m["signatureSecret"].(string); ok && v != "" {
		all = append(all, WithSignatureSecret(v))
	}
	if v, ok := m["signatureMethod"].(string); ok && v != "" {
		all = append(all, WithSignatureMethod(v))
	}
	all = append(all, opts...)

	apiKey, _ := m["apiKey"].(string)
	apiSecret, _ := m["apiSecret"].(string)
	return New(apiKey, apiSecret, all...)
}
