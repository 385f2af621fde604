// Package srptest provides a reference SRP-6a server computation for tests.
package srptest

import (
	"crypto/subtle"
	"fmt"
	"math/big"

	"github.com/fzdarsky/srp6a/pkg/srp"
)

// Server is the server side of one SRP-6a exchange. It mirrors what a real
// server does with a stored verifier and is used to check key agreement.
type Server struct {
	group    *srp.Group
	hash     srp.HashFunc
	username []byte
	salt     []byte
	verifier *big.Int
	b        *big.Int // Server ephemeral private value
	B        *big.Int // Server ephemeral public value
	A        *big.Int // Client ephemeral public value
	S        *big.Int // Premaster secret
	K        []byte   // Session key
	M1       []byte   // Expected client proof
}

// NewServer creates a server holding the verifier for username and salt.
func NewServer(group *srp.Group, h srp.HashFunc, username, salt, verifier []byte) *Server {
	return &Server{
		group:    group,
		hash:     h,
		username: username,
		salt:     salt,
		verifier: new(big.Int).SetBytes(verifier),
	}
}

// Salt returns the salt the verifier was computed with.
func (s *Server) Salt() []byte {
	return s.salt
}

// Init receives the client's A, uses b as the ephemeral private value and
// returns B = (k*v + g^b) % N. It also computes S and K.
//
//nolint:gocritic // aPub follows the A naming of RFC 5054
func (s *Server) Init(aPub, b []byte) ([]byte, error) {
	N, g := s.group.N(), s.group.G()

	s.A = new(big.Int).SetBytes(aPub)
	if new(big.Int).Mod(s.A, N).Sign() == 0 {
		return nil, fmt.Errorf("invalid A: A mod N == 0")
	}

	s.b = new(big.Int).SetBytes(b)
	k := srp.ComputeK(s.hash, s.group)

	// B = (k*v + g^b) % N
	kv := new(big.Int).Mul(k, s.verifier)
	kv.Mod(kv, N)
	gb := new(big.Int).Exp(g, s.b, N)
	s.B = new(big.Int).Add(kv, gb)
	s.B.Mod(s.B, N)

	s.computeSharedSecret()

	return s.B.Bytes(), nil
}

// computeSharedSecret computes S = (A * v^u)^b % N and K = H(S).
func (s *Server) computeSharedSecret() {
	N := s.group.N()
	u := srp.ComputeU(s.hash, s.A.Bytes(), s.B.Bytes())

	vu := new(big.Int).Exp(s.verifier, u, N)
	avu := new(big.Int).Mul(s.A, vu)
	avu.Mod(avu, N)
	s.S = new(big.Int).Exp(avu, s.b, N)

	d := s.hash()
	_, _ = d.Write(s.S.Bytes())
	s.K = d.Sum(nil)

	s.M1 = srp.ComputeM1(s.hash, s.A.Bytes(), s.B.Bytes(), s.K, s.username, s.salt, s.group)
}

// Verify checks the client's M1 and returns M2 = H(A | M1 | K).
func (s *Server) Verify(m1 []byte) ([]byte, error) {
	if s.K == nil {
		return nil, fmt.Errorf("init must be called before verify")
	}

	if subtle.ConstantTimeCompare(m1, s.M1) != 1 {
		return nil, fmt.Errorf("authentication failed: invalid proof M1")
	}

	return srp.ComputeM2(s.hash, s.A.Bytes(), m1, s.K), nil
}

// PremasterSecret returns S as computed by the server.
func (s *Server) PremasterSecret() *big.Int {
	return s.S
}

// SessionKey returns K as computed by the server.
func (s *Server) SessionKey() []byte {
	return s.K
}
