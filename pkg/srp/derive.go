package srp

import "math/big"

// PadToGroup left-pads b with zero bytes to the byte length of the group modulus.
// Inputs already at least that long are returned unchanged.
func PadToGroup(group *Group, b []byte) []byte {
	size := group.Len()
	if len(b) >= size {
		return b
	}

	padded := make([]byte, size)
	copy(padded[size-len(b):], b)
	return padded
}

// ComputeU computes the scrambling parameter u = H(A | B).
// A and B are hashed as given, without padding.
//
//nolint:gocritic // aPub and bPub follow the A/B naming of RFC 5054
func ComputeU(h HashFunc, aPub, bPub []byte) *big.Int {
	return new(big.Int).SetBytes(digest(h, aPub, bPub))
}

// ComputeK computes the SRP-6a multiplier k = H(N | PAD(g)).
func ComputeK(h HashFunc, group *Group) *big.Int {
	nBytes := group.n.Bytes()
	gBytes := PadToGroup(group, group.g.Bytes())

	return new(big.Int).SetBytes(digest(h, nBytes, gBytes))
}

// ComputeX computes the private key x = H(salt | identityHash).
func ComputeX(h HashFunc, identityHash, salt []byte) *big.Int {
	return new(big.Int).SetBytes(digest(h, salt, identityHash))
}

// ComputeM1 computes the client proof
// M1 = H(H(N) XOR H(PAD(g)) | H(username) | salt | A | B | K).
func ComputeM1(h HashFunc, aPub, bPub, key, username, salt []byte, group *Group) []byte {
	hashN := digest(h, group.n.Bytes())
	hashG := digest(h, PadToGroup(group, group.g.Bytes()))

	// Both digests have the hash's fixed output size.
	mixer := make([]byte, len(hashG))
	for i := range hashG {
		mixer[i] = hashG[i] ^ hashN[i]
	}

	return digest(h, mixer, digest(h, username), salt, aPub, bPub, key)
}

// ComputeM2 computes the server proof M2 = H(A | M1 | K).
func ComputeM2(h HashFunc, aPub, m1, key []byte) []byte {
	return digest(h, aPub, m1, key)
}
