package srp

import "fmt"

// ErrorCode identifies the kind of SRP failure.
type ErrorCode string

// SRP error codes, named after the TLS alerts RFC 5054 raises for them.
const (
	// ErrCodeIllegalParameter indicates a peer-supplied value was rejected.
	ErrCodeIllegalParameter ErrorCode = "illegal_parameter"
	// ErrCodeBadRecordMAC indicates a peer proof did not match.
	ErrCodeBadRecordMAC ErrorCode = "bad_record_mac"
)

// Error is returned for protocol failures. Param names the offending
// field ("b_pub") or the party whose proof failed ("server").
type Error struct {
	Code  ErrorCode
	Param string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeIllegalParameter:
		return fmt.Sprintf("%s: bad '%s' value", e.Code, e.Param)
	case ErrCodeBadRecordMAC:
		return fmt.Sprintf("%s: incorrect '%s' proof", e.Code, e.Param)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Param)
	}
}

// Is reports whether target is an *Error with the same code.
// This lets callers match with errors.Is(err, srp.ErrBadRecordMAC).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for errors.Is matching.
var (
	ErrIllegalParameter = &Error{Code: ErrCodeIllegalParameter}
	ErrBadRecordMAC     = &Error{Code: ErrCodeBadRecordMAC}
)

// NewIllegalParameterError creates an illegal parameter error for the named field.
func NewIllegalParameterError(param string) *Error {
	return &Error{Code: ErrCodeIllegalParameter, Param: param}
}

// NewBadRecordMACError creates a bad record MAC error for the named party.
func NewBadRecordMACError(party string) *Error {
	return &Error{Code: ErrCodeBadRecordMAC, Param: party}
}
