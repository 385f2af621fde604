// Package protocol defines the messages a network driver exchanges during an
// SRP-6a handshake and the error codes it reports.
package protocol

import (
	"encoding/base64"
	"fmt"
)

// SRPInitRequest represents the initial SRP-6a authentication request.
type SRPInitRequest struct {
	Username string `json:"username"`
	A        string `json:"A"` // Base64-encoded ephemeral public key
}

// SRPInitResponse represents the response to SRP init request.
type SRPInitResponse struct {
	SessionID string `json:"session_id,omitempty"` // Server handle for the pending exchange
	Salt      string `json:"salt"`                 // Base64-encoded salt
	B         string `json:"b"`                    // Base64-encoded server ephemeral public key
}

// SRPVerifyRequest represents the SRP verification request.
type SRPVerifyRequest struct {
	SessionID string `json:"session_id,omitempty"`
	M1        string `json:"M1"` // Base64-encoded client proof
}

// SRPVerifyResponse represents the response to SRP verify request.
type SRPVerifyResponse struct {
	M2           string `json:"M2"`                      // Base64-encoded server proof
	SessionToken string `json:"session_token,omitempty"` // Opaque token issued by the server
}

// VerifierRecord is the registration artifact a server stores for a user.
type VerifierRecord struct {
	Username string `json:"username"`
	Salt     string `json:"salt"`     // Base64-encoded
	Verifier string `json:"verifier"` // Base64-encoded big-endian v
	Group    string `json:"group"`
	Hash     string `json:"hash"`
}

// EncodeBytes encodes a protocol value for transmission.
func EncodeBytes(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBytes decodes a transmitted protocol value. field names the value
// in the returned error.
func DecodeBytes(field, s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s encoding: %w", field, err)
	}
	return b, nil
}
