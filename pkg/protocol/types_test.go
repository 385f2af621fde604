package protocol_test

import (
	"encoding/json"
	"testing"

	"github.com/fzdarsky/srp6a/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSRPRequests_JSON(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{
			name: "SRP init request",
			input: protocol.SRPInitRequest{
				Username: "alice",
				A:        "dGVzdEFwaGVtZXJhbA==",
			},
			expected: `{"username":"alice","A":"dGVzdEFwaGVtZXJhbA=="}`,
		},
		{
			name: "SRP init response",
			input: protocol.SRPInitResponse{
				Salt: "c29tZXJhbmRvbXNhbHQ=",
				B:    "dGVzdEJwaGVtZXJhbA==",
			},
			expected: `{"salt":"c29tZXJhbmRvbXNhbHQ=","b":"dGVzdEJwaGVtZXJhbA=="}`,
		},
		{
			name: "SRP verify request",
			input: protocol.SRPVerifyRequest{
				M1: "dGVzdE0xUHJvb2Y=",
			},
			expected: `{"M1":"dGVzdE0xUHJvb2Y="}`,
		},
		{
			name: "SRP init response with session",
			input: protocol.SRPInitResponse{
				SessionID: "abc123",
				Salt:      "c29tZXJhbmRvbXNhbHQ=",
				B:         "dGVzdEJwaGVtZXJhbA==",
			},
			expected: `{"session_id":"abc123","salt":"c29tZXJhbmRvbXNhbHQ=","b":"dGVzdEJwaGVtZXJhbA=="}`,
		},
		{
			name: "SRP verify request with session",
			input: protocol.SRPVerifyRequest{
				SessionID: "abc123",
				M1:        "dGVzdE0xUHJvb2Y=",
			},
			expected: `{"session_id":"abc123","M1":"dGVzdE0xUHJvb2Y="}`,
		},
		{
			name: "SRP verify response",
			input: protocol.SRPVerifyResponse{
				M2:           "dGVzdE0yUHJvb2Y=",
				SessionToken: "dG9rZW5faWQ.c2lnbmF0dXJl",
			},
			expected: `{"M2":"dGVzdE0yUHJvb2Y=","session_token":"dG9rZW5faWQ.c2lnbmF0dXJl"}`,
		},
		{
			name: "SRP verify response without token",
			input: protocol.SRPVerifyResponse{
				M2: "dGVzdE0yUHJvb2Y=",
			},
			expected: `{"M2":"dGVzdE0yUHJvb2Y="}`,
		},
		{
			name: "verifier record",
			input: protocol.VerifierRecord{
				Username: "alice",
				Salt:     "c2FsdA==",
				Verifier: "dg==",
				Group:    "rfc5054-2048",
				Hash:     "sha256",
			},
			expected: `{"username":"alice","salt":"c2FsdA==","verifier":"dg==","group":"rfc5054-2048","hash":"sha256"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.input)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestEncodeDecodeBytes(t *testing.T) {
	value := []byte{0x00, 0x01, 0xfe, 0xff}

	encoded := protocol.EncodeBytes(value)
	assert.Equal(t, "AAH+/w==", encoded)

	decoded, err := protocol.DecodeBytes("B", encoded)
	require.NoError(t, err)
	assert.Equal(t, value, decoded)
}

func TestDecodeBytes_Invalid(t *testing.T) {
	_, err := protocol.DecodeBytes("M2", "!!!invalid!!!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid M2 encoding")
}
