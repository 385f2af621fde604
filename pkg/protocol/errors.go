package protocol

import (
	"errors"
	"fmt"

	"github.com/fzdarsky/srp6a/pkg/srp"
)

// ErrorCode represents a standardized error code reported to callers.
type ErrorCode string

// Error codes.
const (
	// ErrCodeAuthenticationFailed indicates a proof did not verify.
	ErrCodeAuthenticationFailed ErrorCode = "AUTHENTICATION_FAILED"
	// ErrCodeIllegalParameter indicates the peer sent an unacceptable value.
	ErrCodeIllegalParameter ErrorCode = "ILLEGAL_PARAMETER"
	// ErrCodeInvalidRequest indicates a message could not be decoded.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeTransportError indicates the transport failed to deliver a message.
	ErrCodeTransportError ErrorCode = "TRANSPORT_ERROR"
	// ErrCodeSystemError indicates a local failure such as missing randomness.
	ErrCodeSystemError ErrorCode = "SYSTEM_ERROR"
	// ErrCodeConfigurationError indicates a configuration error.
	ErrCodeConfigurationError ErrorCode = "CONFIGURATION_ERROR"
)

// ErrorResponse represents a standardized error.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *ErrorResponse) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a new ErrorResponse.
func NewError(code ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// NewErrorWithDetails creates a new ErrorResponse with details.
func NewErrorWithDetails(code ErrorCode, message, details string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewAuthenticationFailedError creates an authentication failed error.
func NewAuthenticationFailedError(details string) *ErrorResponse {
	return NewErrorWithDetails(ErrCodeAuthenticationFailed, "Authentication failed", details)
}

// NewIllegalParameterError creates an illegal parameter error.
func NewIllegalParameterError(param string) *ErrorResponse {
	return NewErrorWithDetails(ErrCodeIllegalParameter, "Illegal parameter", param)
}

// NewInvalidRequestError creates an invalid request error.
func NewInvalidRequestError(details string) *ErrorResponse {
	return NewErrorWithDetails(ErrCodeInvalidRequest, "Invalid request", details)
}

// NewTransportError creates a transport error.
func NewTransportError(details string) *ErrorResponse {
	return NewErrorWithDetails(ErrCodeTransportError, "Transport error", details)
}

// NewSystemError creates a system error.
func NewSystemError(details string) *ErrorResponse {
	return NewErrorWithDetails(ErrCodeSystemError, "System error", details)
}

// NewConfigurationError creates a configuration error.
func NewConfigurationError(details string) *ErrorResponse {
	return NewErrorWithDetails(ErrCodeConfigurationError, "Configuration error", details)
}

// FromError converts err into an ErrorResponse. SRP protocol errors keep
// their meaning; an existing ErrorResponse is returned as is; anything else
// becomes a system error.
func FromError(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	var resp *ErrorResponse
	if errors.As(err, &resp) {
		return resp
	}

	var srpErr *srp.Error
	if errors.As(err, &srpErr) {
		switch srpErr.Code {
		case srp.ErrCodeIllegalParameter:
			return NewIllegalParameterError(srpErr.Param)
		case srp.ErrCodeBadRecordMAC:
			return NewAuthenticationFailedError(fmt.Sprintf("incorrect %s proof", srpErr.Param))
		}
	}

	return NewSystemError(err.Error())
}
