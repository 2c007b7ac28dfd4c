package errors

// ErrorCode represents an application-specific error code
type ErrorCode string

const (
	// Generic errors
	ErrUnknown         ErrorCode = "ERR_UNKNOWN"
	ErrInternal        ErrorCode = "ERR_INTERNAL"
	ErrInvalidArgument ErrorCode = "ERR_INVALID_ARGUMENT"

	// Credential errors
	ErrCredentialInvalid    ErrorCode = "ERR_CREDENTIAL_INVALID"
	ErrCredentialMalformed  ErrorCode = "ERR_CREDENTIAL_MALFORMED"
	ErrPrivateKeyUnreadable ErrorCode = "ERR_PRIVATE_KEY_UNREADABLE"

	// Generation errors
	ErrTokenGenerationFailed     ErrorCode = "ERR_TOKEN_GENERATION_FAILED"
	ErrSignatureGenerationFailed ErrorCode = "ERR_SIGNATURE_GENERATION_FAILED"
	ErrSignatureMethodUnsupported ErrorCode = "ERR_SIGNATURE_METHOD_UNSUPPORTED"

	// Configuration errors
	ErrConfigInvalid      ErrorCode = "ERR_CONFIG_INVALID"
	ErrConfigLoadFailed   ErrorCode = "ERR_CONFIG_LOAD_FAILED"
	ErrConfigMissingField ErrorCode = "ERR_CONFIG_MISSING_FIELD"

	// Validation errors
	ErrValidationFailed ErrorCode = "ERR_VALIDATION_FAILED"
	ErrMissingRequired  ErrorCode = "ERR_MISSING_REQUIRED"

	// Output errors
	ErrOutputFailed  ErrorCode = "ERR_OUTPUT_FAILED"
	ErrOutputInvalid ErrorCode = "ERR_OUTPUT_INVALID"
)

// ErrorInfo contains metadata about an error code
type ErrorInfo struct {
	Code   ErrorCode
	Type   string
	Status int
	Title  string
}

// errorInfoMap maps error codes to their metadata
var errorInfoMap = map[ErrorCode]ErrorInfo{
	ErrUnknown: {
		Code:   ErrUnknown,
		Type:   "https://wavelink.dev/errors/unknown",
		Status: 500,
		Title:  "Unknown Error",
	},
	ErrInternal: {
		Code:   ErrInternal,
		Type:   "https://wavelink.dev/errors/internal",
		Status: 500,
		Title:  "Internal Error",
	},
	ErrInvalidArgument: {
		Code:   ErrInvalidArgument,
		Type:   "https://wavelink.dev/errors/invalid-argument",
		Status: 400,
		Title:  "Invalid Argument",
	},
	ErrCredentialInvalid: {
		Code:   ErrCredentialInvalid,
		Type:   "https://wavelink.dev/errors/credential-invalid",
		Status: 401,
		Title:  "Invalid Credential",
	},
	ErrCredentialMalformed: {
		Code:   ErrCredentialMalformed,
		Type:   "https://wavelink.dev/errors/credential-malformed",
		Status: 500,
		Title:  "Malformed Credential",
	},
	ErrPrivateKeyUnreadable: {
		Code:   ErrPrivateKeyUnreadable,
		Type:   "https://wavelink.dev/errors/private-key-unreadable",
		Status: 500,
		Title:  "Private Key Unreadable",
	},
	ErrTokenGenerationFailed: {
		Code:   ErrTokenGenerationFailed,
		Type:   "https://wavelink.dev/errors/token-generation-failed",
		Status: 500,
		Title:  "Token Generation Failed",
	},
	ErrSignatureGenerationFailed: {
		Code:   ErrSignatureGenerationFailed,
		Type:   "https://wavelink.dev/errors/signature-generation-failed",
		Status: 500,
		Title:  "Signature Generation Failed",
	},
	ErrSignatureMethodUnsupported: {
		Code:   ErrSignatureMethodUnsupported,
		Type:   "https://wavelink.dev/errors/signature-method-unsupported",
		Status: 400,
		Title:  "Signature Method Unsupported",
	},
	ErrConfigInvalid: {
		Code:   ErrConfigInvalid,
		Type:   "https://wavelink.dev/errors/config-invalid",
		Status: 500,
		Title:  "Invalid Configuration",
	},
	ErrConfigLoadFailed: {
		Code:   ErrConfigLoadFailed,
		Type:   "https://wavelink.dev/errors/config-load-failed",
		Status: 500,
		Title:  "Configuration Load Failed",
	},
	ErrConfigMissingField: {
		Code:   ErrConfigMissingField,
		Type:   "https://wavelink.dev/errors/config-missing-field",
		Status: 500,
		Title:  "Missing Configuration Field",
	},
	ErrValidationFailed: {
		Code:   ErrValidationFailed,
		Type:   "https://wavelink.dev/errors/validation-failed",
		Status: 400,
		Title:  "Validation Failed",
	},
	ErrMissingRequired: {
		Code:   ErrMissingRequired,
		Type:   "https://wavelink.dev/errors/missing-required",
		Status: 400,
		Title:  "Missing Required Field",
	},
	ErrOutputFailed: {
		Code:   ErrOutputFailed,
		Type:   "https://wavelink.dev/errors/output-failed",
		Status: 500,
		Title:  "Output Failed",
	},
	ErrOutputInvalid: {
		Code:   ErrOutputInvalid,
		Type:   "https://wavelink.dev/errors/output-invalid",
		Status: 500,
		Title:  "Invalid Output",
	},
}

// GetErrorInfo returns metadata for an error code
func GetErrorInfo(code ErrorCode) ErrorInfo {
	if info, ok := errorInfoMap[code]; ok {
		return info
	}
	return errorInfoMap[ErrUnknown]
}
