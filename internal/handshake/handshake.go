package handshake

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/fzdarsky/srp6a/internal/logging"
	"github.com/fzdarsky/srp6a/pkg/protocol"
	"github.com/fzdarsky/srp6a/pkg/srp"
)

// DefaultEphemeralLength is the size of the ephemeral secret a, in bytes.
const DefaultEphemeralLength = 32

// Credentials identify the user to the server.
type Credentials struct {
	Username string
	Password []byte
}

// Options configure a handshake. Zero values select the defaults: the
// RFC 5054 2048-bit group, SHA-256, a 32-byte ephemeral, crypto/rand and a
// discarding logger.
type Options struct {
	Group           *srp.Group
	Hash            srp.HashFunc
	EphemeralLength int
	Random          io.Reader
	Logger          *logging.Logger
}

func (o Options) withDefaults() Options {
	if o.Group == nil {
		o.Group = srp.Group2048()
	}
	if o.Hash == nil {
		o.Hash = srp.SHA256
	}
	if o.EphemeralLength <= 0 {
		o.EphemeralLength = DefaultEphemeralLength
	}
	if o.Random == nil {
		o.Random = rand.Reader
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	return o
}

// Result is the outcome of a mutually authenticated handshake.
type Result struct {
	proof        *srp.Proof
	SessionToken string
}

// SessionKey returns the shared session key K.
func (r *Result) SessionKey() []byte {
	return r.proof.SessionKey()
}

// Wipe zeroes the session key.
func (r *Result) Wipe() {
	r.proof.Wipe()
}

// Run performs a complete SRP-6a exchange: it sends A, processes the
// server's salt and B, sends M1 and checks the server's M2.
//
// Protocol failures are returned as *srp.Error so callers can match them
// with errors.Is. Malformed server messages are reported as
// protocol.ErrCodeInvalidRequest. Any failure ends the attempt.
func Run(ctx context.Context, transport Transport, creds Credentials, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	if creds.Username == "" {
		return nil, protocol.NewInvalidRequestError("username is required")
	}

	log := opts.Logger.WithFields(map[string]any{
		"username":   creds.Username,
		"group_bits": opts.Group.Bits(),
	})

	client := srp.NewClient(opts.Group, opts.Hash)

	a := make([]byte, opts.EphemeralLength)
	defer clear(a)
	if _, err := io.ReadFull(opts.Random, a); err != nil {
		log.Error("failed to generate ephemeral secret", map[string]any{"error": err.Error()})
		return nil, protocol.NewSystemError(fmt.Sprintf("failed to generate ephemeral secret: %v", err))
	}

	aPub := client.ComputePublicEphemeral(a)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug("sending SRP init")
	initResp, err := transport.Init(ctx, protocol.SRPInitRequest{
		Username: creds.Username,
		A:        protocol.EncodeBytes(aPub),
	})
	if err != nil {
		log.Warn("SRP init failed", map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("SRP init failed: %w", err)
	}

	salt, err := protocol.DecodeBytes("salt", initResp.Salt)
	if err != nil {
		return nil, protocol.NewInvalidRequestError(err.Error())
	}
	bPub, err := protocol.DecodeBytes("B", initResp.B)
	if err != nil {
		return nil, protocol.NewInvalidRequestError(err.Error())
	}

	proof, err := client.ProcessReply(a, []byte(creds.Username), creds.Password, salt, bPub)
	if err != nil {
		log.Warn("server reply rejected", map[string]any{"error": err.Error()})
		return nil, err
	}

	result, err := verify(ctx, transport, log, initResp.SessionID, proof)
	if err != nil {
		proof.Wipe()
		return nil, err
	}

	log.Info("SRP handshake complete")
	return result, nil
}

func verify(ctx context.Context, transport Transport, log *logging.ContextLogger, sessionID string, proof *srp.Proof) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug("sending SRP verify")
	verifyResp, err := transport.Verify(ctx, protocol.SRPVerifyRequest{
		SessionID: sessionID,
		M1:        protocol.EncodeBytes(proof.ClientProof()),
	})
	if err != nil {
		log.Warn("SRP verify failed", map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("SRP verify failed: %w", err)
	}

	m2, err := protocol.DecodeBytes("M2", verifyResp.M2)
	if err != nil {
		return nil, protocol.NewInvalidRequestError(err.Error())
	}

	if err := proof.VerifyServer(m2); err != nil {
		log.Warn("server proof rejected")
		return nil, err
	}

	return &Result{
		proof:        proof,
		SessionToken: verifyResp.SessionToken,
	}, nil
}
