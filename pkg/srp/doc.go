// Package srp implements the client side of the SRP-6a password-authenticated
// key exchange (RFC 5054 group parameters and k, u, M1, M2 derivations).
//
// A typical exchange:
//
//	c := srp.NewClient(srp.Group2048(), srp.SHA256)
//	A := c.ComputePublicEphemeral(a)            // send username and A
//	proof, err := c.ProcessReply(a, user, pass, salt, B)
//	// send proof.ClientProof(), receive M2
//	err = proof.VerifyServer(M2)
//	key := proof.SessionKey()
//
// Variant note: ProcessReply derives x = H(salt | H(":" | password)), leaving
// the username out of x, while M1 still commits to H(username). A server
// talking to this package must store a verifier computed the same way, e.g.
// ComputeVerifier(nil, password, salt).
//
// The caller supplies the ephemeral secret a from a cryptographically secure
// source; this package does no I/O and keeps no state between calls.
package srp
