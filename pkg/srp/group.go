package srp

import (
	_ "embed"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"sync"
)

// RFC 5054 Appendix A group moduli, stored as raw big-endian bytes.
var (
	//go:embed groups/1024.bin
	rfc5054Modulus1024 []byte

	//go:embed groups/2048.bin
	rfc5054Modulus2048 []byte
)

// Built-in group names accepted by LookupGroup.
const (
	GroupName1024 = "rfc5054-1024"
	GroupName2048 = "rfc5054-2048"
)

// Group holds the SRP group parameters: a safe prime modulus N and a
// generator g. A Group is immutable and safe to share between sessions.
type Group struct {
	n *big.Int
	g *big.Int
}

// NewGroup creates a group from big-endian modulus and generator bytes.
// The parameters are not validated; primality of N and primitivity of g
// are the caller's responsibility.
func NewGroup(modulus, generator []byte) *Group {
	return &Group{
		n: new(big.Int).SetBytes(modulus),
		g: new(big.Int).SetBytes(generator),
	}
}

// NewGroupFromHex creates a group from a hex-encoded modulus. Whitespace in
// modulusHex is ignored so that RFC-formatted constants can be pasted as is.
func NewGroupFromHex(modulusHex string, generator int64) (*Group, error) {
	cleaned := strings.Join(strings.Fields(modulusHex), "")
	modulus, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid modulus encoding: %w", err)
	}
	if len(modulus) == 0 {
		return nil, fmt.Errorf("modulus is empty")
	}
	if generator < 2 {
		return nil, fmt.Errorf("generator must be at least 2, got %d", generator)
	}

	return &Group{
		n: new(big.Int).SetBytes(modulus),
		g: big.NewInt(generator),
	}, nil
}

var (
	group1024 = sync.OnceValue(func() *Group {
		return NewGroup(rfc5054Modulus1024, []byte{2})
	})
	group2048 = sync.OnceValue(func() *Group {
		return NewGroup(rfc5054Modulus2048, []byte{2})
	})
)

// Group1024 returns the RFC 5054 1024-bit group (g = 2).
// It is kept for interoperability and test vectors; prefer Group2048.
func Group1024() *Group {
	return group1024()
}

// Group2048 returns the RFC 5054 2048-bit group (g = 2).
// The group is built on first use and the same instance is returned afterwards.
func Group2048() *Group {
	return group2048()
}

// LookupGroup returns a built-in group by name.
func LookupGroup(name string) (*Group, error) {
	switch strings.ToLower(name) {
	case GroupName1024:
		return Group1024(), nil
	case GroupName2048:
		return Group2048(), nil
	default:
		return nil, fmt.Errorf("unknown SRP group %q", name)
	}
}

// GroupNames lists the names accepted by LookupGroup.
func GroupNames() []string {
	return []string{GroupName1024, GroupName2048}
}

// N returns a copy of the group modulus.
func (p *Group) N() *big.Int {
	return new(big.Int).Set(p.n)
}

// G returns a copy of the group generator.
func (p *Group) G() *big.Int {
	return new(big.Int).Set(p.g)
}

// Len returns the byte length of the modulus.
func (p *Group) Len() int {
	return (p.n.BitLen() + 7) / 8
}

// Bits returns the bit length of the modulus.
func (p *Group) Bits() int {
	return p.n.BitLen()
}
