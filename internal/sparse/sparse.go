// Package sparse provides a sparse set of offsets with O(1) insert, membership
// and clear.
//
// The matcher uses it to collect the offsets eliminated during one step of a
// stage. The universe (the length of the combined sequence) is fixed for a
// search, so a single set is allocated per search and cleared between steps
// without touching its backing arrays.
package sparse

import "github.com/coregx/strmatch/internal/conv"

// Set is a set of offsets in [0, capacity).
//
// dense holds the members in insertion order; sparse maps a member to its
// index in dense. An entry of sparse is only trusted when dense points back at
// it, so neither array needs zeroing on Clear.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// New creates an empty set able to hold offsets in [0, capacity).
func New(capacity int) *Set {
	c := conv.IntToUint32(capacity)
	return &Set{
		sparse: make([]uint32, c),
		dense:  make([]uint32, 0, c),
	}
}

// Insert adds v and reports whether it was absent.
// Panics if v is outside [0, Cap()).
func (s *Set) Insert(v int) bool {
	if s.Contains(v) {
		return false
	}
	u := conv.IntToUint32(v)
	s.sparse[u] = conv.IntToUint32(len(s.dense))
	s.dense = append(s.dense, u)
	return true
}

// Contains reports whether v is in the set. Out-of-range values are never members.
func (s *Set) Contains(v int) bool {
	if v < 0 || v >= len(s.sparse) {
		return false
	}
	idx := s.sparse[v]
	return int(idx) < len(s.dense) && int(s.dense[idx]) == v
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.dense)
}

// Cap returns the size of the universe.
func (s *Set) Cap() int {
	return len(s.sparse)
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

// Clear removes every member in O(1).
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Each calls f for every member in insertion order.
func (s *Set) Each(f func(v int)) {
	for _, v := range s.dense {
		f(int(v))
	}
}
