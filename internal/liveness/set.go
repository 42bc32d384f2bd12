package liveness

import (
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Universe interns variable names to dense bit indexes.
// One Universe is shared by all sets of a single analysis run.
type Universe struct {
	index map[string]uint
	names []string
}

// NewUniverse creates an empty Universe.
func NewUniverse() *Universe {
	return &Universe{index: make(map[string]uint)}
}

// Intern returns the index of name, assigning one if needed.
func (u *Universe) Intern(name string) uint {
	if i, ok := u.index[name]; ok {
		return i
	}
	i := uint(len(u.names))
	u.index[name] = i
	u.names = append(u.names, name)
	return i
}

// Lookup returns the index of name if it has been interned.
func (u *Universe) Lookup(name string) (uint, bool) {
	i, ok := u.index[name]
	return i, ok
}

// Name returns the name interned at index i.
func (u *Universe) Name(i uint) string {
	return u.names[i]
}

// Len returns the number of interned names.
func (u *Universe) Len() int {
	return len(u.names)
}

// VarSet is a read-only set of variable names.
//
// The zero value is the empty set. A VarSet obtained from Facts is a
// snapshot: later solver sweeps never modify it.
type VarSet struct {
	u    *Universe
	bits *bitset.BitSet
}

func newVarSet(u *Universe, bits *bitset.BitSet) VarSet {
	return VarSet{u: u, bits: bits}
}

// Has reports whether name is in the set.
func (s VarSet) Has(name string) bool {
	if s.bits == nil {
		return false
	}
	i, ok := s.u.Lookup(name)
	return ok && s.bits.Test(i)
}

// Len returns the number of names in the set.
func (s VarSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Names returns the members in sorted order.
func (s VarSet) Names() []string {
	if s.bits == nil {
		return nil
	}
	names := make([]string, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		names = append(names, s.u.Name(i))
	}
	sort.Strings(names)
	return names
}

// Equal reports whether s and o have the same members.
func (s VarSet) Equal(o VarSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	if s.Len() == 0 {
		return true
	}
	if s.u == o.u {
		return sameBits(s.bits, o.bits)
	}
	return equalNames(s.Names(), o.Names())
}

// IsSuperSet reports whether every member of o is in s.
func (s VarSet) IsSuperSet(o VarSet) bool {
	if o.Len() == 0 {
		return true
	}
	if s.bits != nil && s.u == o.u {
		return s.bits.IsSuperSet(o.bits)
	}
	for _, name := range o.Names() {
		if !s.Has(name) {
			return false
		}
	}
	return true
}

// String formats the set as "{a, b}".
func (s VarSet) String() string {
	return "{" + strings.Join(s.Names(), ", ") + "}"
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sameBits reports whether a and b have the same members regardless of
// their allocated lengths (bitset.Equal also compares lengths).
func sameBits(a, b *bitset.BitSet) bool {
	return a.SymmetricDifferenceCardinality(b) == 0
}
