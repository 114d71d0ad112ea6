package errors

import (
	"github.com/mezonai/starnotary/jsonx"
)

// LedgerErrorCode represents standardized error codes for ledger operations
type LedgerErrorCode string

const (
	// General errors
	ErrCodeInternal LedgerErrorCode = "internal_error"

	// Request validation errors
	ErrCodeInvalidRequest LedgerErrorCode = "invalid_request"
	ErrCodeInvalidAddress LedgerErrorCode = "invalid_address"
	ErrCodeParse          LedgerErrorCode = "parse_error"

	// Ownership protocol errors
	ErrCodeValidationWindowExpired     LedgerErrorCode = "validation_window_expired"
	ErrCodeSignatureVerificationFailed LedgerErrorCode = "signature_verification_failed"

	// Structural errors
	ErrCodeChainIntegrity LedgerErrorCode = "chain_integrity_error"
)

// LedgerError represents a standardized ledger error. ChainIntegrity errors
// carry the full ordered list of validation failures in Details.
type LedgerError struct {
	Code    LedgerErrorCode `json:"code"`
	Message string          `json:"message"`
	Details []string        `json:"details,omitempty"`
}

// Error implements the error interface
func (e *LedgerError) Error() string {
	err, _ := jsonx.Marshal(e)
	return string(err)
}

// Error message constants - user-friendly and concise
const (
	ErrMsgInvalidRequest              = "Request format is invalid"
	ErrMsgInvalidAddress              = "Wallet address is invalid"
	ErrMsgMalformedChallenge          = "Challenge message is malformed"
	ErrMsgValidationWindowExpired     = "Challenge message has expired, request a new one"
	ErrMsgSignatureVerificationFailed = "Unable to verify message signature"
	ErrMsgChainIntegrity              = "Chain failed integrity validation"
	ErrMsgInternal                    = "Server error, please try again"
)

// NewError creates a new LedgerError and returns it as error interface
func NewError(code LedgerErrorCode, message string) error {
	return &LedgerError{
		Code:    code,
		Message: message,
	}
}

// NewChainIntegrityError wraps the ordered output of a chain validation sweep.
func NewChainIntegrityError(details []string) error {
	return &LedgerError{
		Code:    ErrCodeChainIntegrity,
		Message: ErrMsgChainIntegrity,
		Details: details,
	}
}

// CodeOf extracts the ledger error code from err, or ErrCodeInternal when err
// is not a LedgerError.
func CodeOf(err error) LedgerErrorCode {
	if le, ok := err.(*LedgerError); ok {
		return le.Code
	}
	return ErrCodeInternal
}
