package srp

import (
	"math/big"
)

// Client is the client side of an SRP-6a exchange bound to a group and a
// hash function. It holds no secret material; every method is a pure
// function of its arguments. Create one per authentication attempt.
type Client struct {
	group *Group
	hash  HashFunc
}

// NewClient creates a client engine for the given group and hash function.
func NewClient(group *Group, h HashFunc) *Client {
	return &Client{
		group: group,
		hash:  h,
	}
}

// Group returns the group the client is bound to.
func (c *Client) Group() *Group {
	return c.group
}

// PublicFromPrivate computes A = g^a mod N.
func (c *Client) PublicFromPrivate(a *big.Int) *big.Int {
	return new(big.Int).Exp(c.group.g, a, c.group.n)
}

// IdentityHash computes H(username | ":" | password).
func (c *Client) IdentityHash(username, password []byte) []byte {
	return digest(c.hash, username, []byte(":"), password)
}

// XFromIdentity computes x = H(salt | identityHash).
func (c *Client) XFromIdentity(identityHash, salt []byte) *big.Int {
	return ComputeX(c.hash, identityHash, salt)
}

// PremasterSecret computes the client premaster secret
// S = (B - k*g^x)^(a + u*x) mod N.
//
//nolint:gocritic // bPub follows the B naming of RFC 5054
func (c *Client) PremasterSecret(bPub, k, x, a, u *big.Int) *big.Int {
	n := c.group.n

	// k*g^x mod N
	base := new(big.Int).Exp(c.group.g, x, n)
	base.Mul(k, base)
	base.Mod(base, n)

	// (N + B - k*g^x) mod N keeps the intermediate non-negative
	diff := new(big.Int).Add(n, bPub)
	diff.Sub(diff, base)
	diff.Mod(diff, n)

	// a + u*x
	exponent := new(big.Int).Mul(u, x)
	exponent.Add(exponent, a)

	return new(big.Int).Exp(diff, exponent, n)
}

// VerifierValue computes v = g^x mod N.
func (c *Client) VerifierValue(x *big.Int) *big.Int {
	return new(big.Int).Exp(c.group.g, x, c.group.n)
}

// ComputeVerifier computes the registration verifier v = g^x mod N with
// x = H(salt | H(username | ":" | password)), as big-endian bytes.
//
// The username given here is hashed into x. ProcessReply hashes an empty
// username instead, so a verifier that a server will accept for
// ProcessReply must be computed with an empty username.
func (c *Client) ComputeVerifier(username, password, salt []byte) []byte {
	identityHash := c.IdentityHash(username, password)
	x := c.XFromIdentity(identityHash, salt)
	return c.VerifierValue(x).Bytes()
}

// ComputePublicEphemeral computes A = g^a mod N from the big-endian
// ephemeral secret a and returns it as big-endian bytes.
func (c *Client) ComputePublicEphemeral(a []byte) []byte {
	return c.PublicFromPrivate(new(big.Int).SetBytes(a)).Bytes()
}

// ProcessReply processes the server's salt and public value B and returns
// the proofs and session key. The ephemeral secret a must be the one passed
// to ComputePublicEphemeral for this exchange.
//
// B is rejected with an illegal parameter error naming "b_pub" when
// B mod N == 0, before anything else is computed.
//
// x is derived from H(":" | password), without the username; the username
// only enters the client proof M1. This matches SRP deployments that keep
// the username out of x, and differs from RFC 5054, which includes it.
//
//nolint:gocritic // bPub follows the B naming of RFC 5054
func (c *Client) ProcessReply(a, username, password, salt, bPub []byte) (*Proof, error) {
	aInt := new(big.Int).SetBytes(a)
	aPub := c.PublicFromPrivate(aInt)
	bInt := new(big.Int).SetBytes(bPub)

	if new(big.Int).Mod(bInt, c.group.n).Sign() == 0 {
		return nil, NewIllegalParameterError("b_pub")
	}

	aBytes := aPub.Bytes()
	bBytes := bInt.Bytes()

	u := ComputeU(c.hash, aBytes, bBytes)
	k := ComputeK(c.hash, c.group)

	identityHash := c.IdentityHash(nil, password)
	x := c.XFromIdentity(identityHash, salt)

	premaster := c.PremasterSecret(bInt, k, x, aInt, u)
	key := digest(c.hash, premaster.Bytes())
	premaster.SetInt64(0)

	m1 := ComputeM1(c.hash, aBytes, bBytes, key, username, salt, c.group)
	m2 := ComputeM2(c.hash, aBytes, m1, key)

	return &Proof{
		m1:  m1,
		m2:  m2,
		key: key,
	}, nil
}
