package srp

import (
	"bytes"
	"crypto/subtle"
)

// Proof holds the result of a successful ProcessReply: the session key K,
// the client proof M1 and the expected server proof M2.
// Accessors return copies; the holder itself is never modified except by Wipe.
type Proof struct {
	m1  []byte
	m2  []byte
	key []byte
}

// SessionKey returns the session key K = H(S).
func (p *Proof) SessionKey() []byte {
	return bytes.Clone(p.key)
}

// ClientProof returns M1, to be sent to the server.
func (p *Proof) ClientProof() []byte {
	return bytes.Clone(p.m1)
}

// VerifyServer checks the server proof M2 in constant time.
// A mismatch returns a bad record MAC error naming "server".
func (p *Proof) VerifyServer(reply []byte) error {
	if len(p.m2) == 0 || subtle.ConstantTimeCompare(p.m2, reply) != 1 {
		return NewBadRecordMACError("server")
	}
	return nil
}

// Wipe zeroes the session key and proofs. The Proof must not be used afterwards.
func (p *Proof) Wipe() {
	for _, b := range [][]byte{p.key, p.m1, p.m2} {
		for i := range b {
			b[i] = 0
		}
	}
	p.key = nil
	p.m1 = nil
	p.m2 = nil
}
