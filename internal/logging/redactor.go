package logging

import (
	"math/big"
	"strings"
)

const redactedValue = "[REDACTED]"

// Redactor replaces the values of sensitive fields before they are written.
// Key matching is exact and case-insensitive.
type Redactor struct {
	sensitiveKeys map[string]bool
}

// NewRedactor creates a Redactor with the SRP secrets preconfigured.
func NewRedactor() *Redactor {
	return &Redactor{
		sensitiveKeys: map[string]bool{
			// Credentials
			"password":      true,
			"identity_hash": true,
			"x":             true,

			// SRP protocol values
			"salt":        true,
			"verifier":    true,
			"a":           true, // client ephemeral private
			"b":           true, // server ephemeral private
			"premaster":   true,
			"key":         true,
			"session_key": true,
			"proof":       true,
			"m1":          true,
			"m2":          true,

			// Issued after authentication
			"token":         true,
			"session_token": true,
		},
	}
}

// AddSensitiveKey adds a custom key to the redaction list.
func (r *Redactor) AddSensitiveKey(key string) {
	r.sensitiveKeys[strings.ToLower(key)] = true
}

// RedactFields returns a copy of fields with sensitive values replaced.
// Values of sensitive keys, raw byte strings and big integers are replaced.
// Nested maps are redacted recursively.
func (r *Redactor) RedactFields(fields map[string]any) map[string]any {
	if fields == nil {
		return nil
	}

	redacted := make(map[string]any, len(fields))
	for k, v := range fields {
		switch {
		case r.isSensitiveKey(k), isRawSecret(v):
			redacted[k] = redactedValue
		case isMap(v):
			redacted[k] = r.RedactFields(v.(map[string]any))
		default:
			redacted[k] = v
		}
	}

	return redacted
}

// RedactString redacts the whole string when it looks like it carries a
// sensitive key ("key=value", "key: value" or a JSON "key":).
func (r *Redactor) RedactString(s string) string {
	lower := strings.ToLower(s)
	for key := range r.sensitiveKeys {
		for _, pattern := range []string{key + "=", key + ": ", "\"" + key + "\":"} {
			if strings.Contains(lower, pattern) {
				return redactedValue
			}
		}
	}

	return s
}

func (r *Redactor) isSensitiveKey(key string) bool {
	return r.sensitiveKeys[strings.ToLower(key)]
}

// isRawSecret reports whether v is an unencoded protocol value. Byte strings
// and big integers are never logged, whatever their key.
func isRawSecret(v any) bool {
	switch v.(type) {
	case []byte, *big.Int:
		return true
	default:
		return false
	}
}

func isMap(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}
