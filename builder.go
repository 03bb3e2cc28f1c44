package automaton

import (
	"fmt"
	"maps"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// NFABuilder Records states and transitions, in any order, and creates an NFA from them. State
// identifiers are handed out by CreateState in strictly increasing order and never reused, so
// sub-automata built on one builder can be joined without renumbering. A builder must not be
// used after Finish.
type NFABuilder struct {
	nextState int
	states    *bitset.BitSet
	start     int
	isAccept  *bitset.BitSet
	alphabet  map[Symbol]struct{}
	edges     map[int]map[Symbol]*bitset.BitSet
}

func NewNFABuilder() *NFABuilder {
	return &NFABuilder{
		states:   bitset.New(16),
		isAccept: bitset.New(16),
		alphabet: make(map[Symbol]struct{}),
		edges:    make(map[int]map[Symbol]*bitset.BitSet),
	}
}

// CreateState Create a new state.
func (b *NFABuilder) CreateState() int {
	state := b.nextState
	b.nextState++
	b.states.Set(uint(state))
	return state
}

// NumStates How many states this builder has created.
func (b *NFABuilder) NumStates() int {
	return int(b.states.Count())
}

// SetStart Set the initial state. Defaults to 0.
func (b *NFABuilder) SetStart(state int) {
	b.start = state
}

// SetAccept Set or clear this state as an accept state.
func (b *NFABuilder) SetAccept(state int, accept bool) {
	b.isAccept.SetTo(uint(state), accept)
}

// AddTransition Add a new transition from source to dest on label. Epsilon is allowed.
func (b *NFABuilder) AddTransition(source int, label Symbol, dest int) error {
	if label < Epsilon {
		return fmt.Errorf("%w: invalid symbol %d", ErrInvalidAutomaton, label)
	}
	if !b.hasState(source) || !b.hasState(dest) {
		return fmt.Errorf("%w: transition %d -%v-> %d references an unknown state",
			ErrInvalidAutomaton, source, label, dest)
	}

	bySymbol, ok := b.edges[source]
	if !ok {
		bySymbol = make(map[Symbol]*bitset.BitSet)
		b.edges[source] = bySymbol
	}
	dests, ok := bySymbol[label]
	if !ok {
		dests = bitset.New(b.states.Len())
		bySymbol[label] = dests
	}
	dests.Set(uint(dest))

	if label != Epsilon {
		b.alphabet[label] = struct{}{}
	}
	return nil
}

// AddEpsilon Add an epsilon transition between source and dest.
func (b *NFABuilder) AddEpsilon(source, dest int) error {
	return b.AddTransition(source, Epsilon, dest)
}

func (b *NFABuilder) hasState(state int) bool {
	return state >= 0 && b.states.Test(uint(state))
}

// Finish Returns the NFA. Preconditions on the start state are checked by Validate and Determinize.
func (b *NFABuilder) Finish() *NFA {
	n := &NFA{
		states:   b.states,
		alphabet: slices.Sorted(maps.Keys(b.alphabet)),
		start:    b.start,
		isAccept: b.isAccept,
		edges:    b.edges,
	}
	*b = *NewNFABuilder()
	return n
}

// DFABuilder Records states and transitions and creates a DFA from them. It refuses a second,
// different destination for the same state and symbol. A builder must not be used after Finish.
type DFABuilder struct {
	start    int
	isAccept *bitset.BitSet
	alphabet map[Symbol]struct{}
	members  [][]int
	edges    []map[Symbol]int
}

func NewDFABuilder() *DFABuilder {
	return &DFABuilder{
		isAccept: bitset.New(16),
		alphabet: make(map[Symbol]struct{}),
	}
}

// CreateState Create a new state. States are numbered 0, 1, 2, ...
func (b *DFABuilder) CreateState() int {
	state := len(b.members)
	b.members = append(b.members, nil)
	b.edges = append(b.edges, nil)
	return state
}

// NumStates How many states this builder has created.
func (b *DFABuilder) NumStates() int {
	return len(b.members)
}

// SetStart Set the initial state. Defaults to 0.
func (b *DFABuilder) SetStart(state int) {
	b.start = state
}

// SetAccept Set or clear this state as an accept state.
func (b *DFABuilder) SetAccept(state int, accept bool) {
	b.isAccept.SetTo(uint(state), accept)
}

// SetMembers Records the composite a state stands for. States without members stand for
// themselves.
func (b *DFABuilder) SetMembers(state int, members []int) {
	if state < 0 || state >= len(b.members) {
		return
	}
	sorted := slices.Clone(members)
	slices.Sort(sorted)
	b.members[state] = sorted
}

// AddSymbol Adds label to the alphabet even if no transition uses it.
func (b *DFABuilder) AddSymbol(label Symbol) error {
	if label < 0 {
		return fmt.Errorf("%w: symbol %d cannot be part of an alphabet", ErrInvalidAutomaton, label)
	}
	b.alphabet[label] = struct{}{}
	return nil
}

// AddTransition Add a new transition from source to dest on label.
func (b *DFABuilder) AddTransition(source int, label Symbol, dest int) error {
	if err := b.AddSymbol(label); err != nil {
		return err
	}
	if source < 0 || source >= len(b.members) || dest < 0 || dest >= len(b.members) {
		return fmt.Errorf("%w: transition %d -%v-> %d references an unknown state",
			ErrInvalidAutomaton, source, label, dest)
	}

	if b.edges[source] == nil {
		b.edges[source] = make(map[Symbol]int)
	}
	if prev, ok := b.edges[source][label]; ok && prev != dest {
		return fmt.Errorf("%w: state %d already goes to %d on %v, not %d",
			ErrInvalidAutomaton, source, prev, label, dest)
	}
	b.edges[source][label] = dest
	return nil
}

// Finish Returns the DFA. Preconditions on the start state are checked by Validate and Minimize.
func (b *DFABuilder) Finish() *DFA {
	alphabet := slices.Sorted(maps.Keys(b.alphabet))
	symbols := make(map[Symbol]int, len(alphabet))
	for i, label := range alphabet {
		symbols[label] = i
	}

	k := len(alphabet)
	table := grow(make([]int, 0, len(b.members)*k), len(b.members)*k)
	for i := range table {
		table[i] = -1
	}
	for s, bySymbol := range b.edges {
		for label, dest := range bySymbol {
			table[s*k+symbols[label]] = dest
		}
	}

	for s := range b.members {
		if b.members[s] == nil {
			b.members[s] = []int{s}
		}
	}

	d := &DFA{
		alphabet: alphabet,
		symbols:  symbols,
		start:    b.start,
		isAccept: b.isAccept,
		table:    table,
		members:  b.members,
	}
	*b = *NewDFABuilder()
	return d
}
