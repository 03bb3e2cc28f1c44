package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

var _ Hashable = &FrozenIntSet{}

// FrozenIntSet is an immutable, sorted set of NFA states together with the DFA state it became
// during subset construction.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

// NewFrozenIntSet freezes values, which must be sorted and free of duplicates.
func NewFrozenIntSet(values []int, state int) *FrozenIntSet {
	hashCode := uint64(len(values))
	for _, v := range values {
		hashCode += uint64(mix(v))
	}
	return &FrozenIntSet{values: values, state: state, hashCode: hashCode}
}

func newFrozenIntSetFromBits(bits *bitset.BitSet, state int) *FrozenIntSet {
	return NewFrozenIntSet(members(bits), state)
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

func (f *FrozenIntSet) Equals(other Hashable) bool {
	o, ok := other.(*FrozenIntSet)
	if !ok {
		return false
	}
	if f == nil || o == nil {
		return f == o
	}
	return f.hashCode == o.hashCode && slices.Equal(f.values, o.values)
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// State Returns the DFA state this set was assigned.
func (f *FrozenIntSet) State() int {
	return f.state
}
