package handshake

import (
	"context"

	"github.com/fzdarsky/srp6a/pkg/protocol"
)

// Transport delivers handshake messages to the server.
// Implementations must honour context cancellation.
type Transport interface {
	// Init sends the username and public ephemeral A, returning the salt and B.
	Init(ctx context.Context, req protocol.SRPInitRequest) (*protocol.SRPInitResponse, error)

	// Verify sends the client proof M1, returning the server proof M2.
	Verify(ctx context.Context, req protocol.SRPVerifyRequest) (*protocol.SRPVerifyResponse, error)
}
