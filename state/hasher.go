package state

import "github.com/benbjohnson/immutable"

// PathHasher hashes and compares paths by value.
type PathHasher[T comparable] struct{}

// Hash computes the uint32 hash of p.
func (PathHasher[T]) Hash(p Path[T]) uint32 { return p.Hash() }

// Equal checks that a and b hold the same tokens.
func (PathHasher[T]) Equal(a, b Path[T]) bool { return a.Equal(b) }

var _ immutable.Hasher[Path[string]] = PathHasher[string]{}

// NewPathMap creates an immutable map keyed by path value.
func NewPathMap[T comparable, V any]() *immutable.Map[Path[T], V] {
	return immutable.NewMap[Path[T], V](PathHasher[T]{})
}

// HashCombine mixes hash values in order using the boost combine step.
func HashCombine(hs ...uint32) (seed uint32) {
	for _, v := range hs {
		seed ^= v + 0x9e3779b9 + (seed << 6) + (seed >> 2)
	}

	return
}
