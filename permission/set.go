package permission

import (
	"errors"
	"strings"
)

// Set is a fixed-shape capability set backed by a uint64 bitmask, one
// bit per declared [Capability]. Because the mask always carries a bit
// for every capability, a Set can never be a partial object: every
// declared capability has a defined value.
type Set uint64

// ErrIncompleteGrants is returned by [NewSet] when the grants map does
// not cover every declared capability.
var ErrIncompleteGrants = errors.New("grants map must cover every declared capability")

// NewSet builds a Set from an exhaustive grants map. The map must hold
// an entry for every declared capability and nothing else; missing or
// unknown keys fail construction rather than defaulting to false.
func NewSet(grants map[Capability]bool) (Set, error) {
	if len(grants) != int(capCount) {
		return 0, ErrIncompleteGrants
	}

	var s Set
	for c, granted := range grants {
		if !c.Valid() {
			return 0, errors.New("grants map contains unknown capability")
		}
		if granted {
			s |= 1 << c
		}
	}
	return s, nil
}

// NewSetFromList builds a Set granting exactly the listed capabilities.
// Every listed capability must be a declared one.
func NewSetFromList(caps ...Capability) (Set, error) {
	var s Set
	for _, c := range caps {
		if !c.Valid() {
			return 0, errors.New("capability list contains unknown capability")
		}
		s |= 1 << c
	}
	return s, nil
}

// Has reports whether the capability is granted. Out-of-range values
// read as false so a corrupted capability can never widen access.
func (s Set) Has(c Capability) bool {
	if !c.Valid() {
		return false
	}
	return s&(1<<c) != 0
}

// With returns a copy of s with the capability granted. Unknown
// capabilities leave the set unchanged.
func (s Set) With(c Capability) Set {
	if !c.Valid() {
		return s
	}
	return s | 1<<c
}

// Without returns a copy of s with the capability revoked.
func (s Set) Without(c Capability) Set {
	if !c.Valid() {
		return s
	}
	return s &^ (1 << c)
}

// Raw exposes the underlying bitmask for token encoding.
func (s Set) Raw() uint64 {
	return uint64(s)
}

// FromRaw rebuilds a Set from a persisted bitmask, discarding bits
// outside the declared capability range.
func FromRaw(raw uint64) Set {
	mask := uint64(1)<<capCount - 1
	return Set(raw & mask)
}

// String lists the granted capability names, comma separated.
func (s Set) String() string {
	var names []string
	for c := Capability(0); c < capCount; c++ {
		if s.Has(c) {
			names = append(names, c.String())
		}
	}
	return strings.Join(names, ",")
}
