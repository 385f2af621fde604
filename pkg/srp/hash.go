package srp

import (
	"crypto"
	"fmt"
	"strings"

	"github.com/bytemare/hash"
)

// Hasher is an incremental hash with a fixed output size.
// Any standard library hash.Hash satisfies it.
type Hasher interface {
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
	Size() int
}

// HashFunc returns a fresh Hasher. Client and server must use the same
// hash function for the whole exchange.
type HashFunc func() Hasher

// Hash names accepted by LookupHash.
const (
	HashNameSHA256 = "sha256"
	HashNameSHA512 = "sha512"
)

var (
	// SHA256 hashes with SHA-256.
	SHA256 = FromCrypto(crypto.SHA256)

	// SHA512 hashes with SHA-512.
	SHA512 = FromCrypto(crypto.SHA512)
)

// FromCrypto returns a HashFunc for a crypto.Hash identifier.
func FromCrypto(id crypto.Hash) HashFunc {
	return func() Hasher {
		return hash.FromCrypto(id).GetHashFunction()
	}
}

// LookupHash returns a HashFunc by name.
func LookupHash(name string) (HashFunc, error) {
	switch strings.ToLower(name) {
	case HashNameSHA256:
		return SHA256, nil
	case HashNameSHA512:
		return SHA512, nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q", name)
	}
}

// HashNames lists the names accepted by LookupHash.
func HashNames() []string {
	return []string{HashNameSHA256, HashNameSHA512}
}

// digest hashes the concatenation of parts.
func digest(h HashFunc, parts ...[]byte) []byte {
	d := h()
	for _, p := range parts {
		_, _ = d.Write(p)
	}
	return d.Sum(nil)
}
