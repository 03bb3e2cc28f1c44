package automaton

import (
	"cmp"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// NFA Represents a nondeterministic automaton with epsilon transitions. State identifiers are unique
// but not necessarily dense. An NFA never changes once built; use NFABuilder or Compile to make one.
type NFA struct {
	states *bitset.BitSet

	// Sorted, without Epsilon.
	alphabet []Symbol

	start int

	isAccept *bitset.BitSet

	// edges[source][label] holds every destination of source on label, Epsilon included.
	edges map[int]map[Symbol]*bitset.BitSet
}

// NumStates How many states this automaton has.
func (n *NFA) NumStates() int {
	return int(n.states.Count())
}

// States Returns the state identifiers in ascending order.
func (n *NFA) States() []int {
	return members(n.states)
}

// HasState Returns true if state belongs to this automaton.
func (n *NFA) HasState(state int) bool {
	return state >= 0 && n.states.Test(uint(state))
}

// Start Returns the initial state.
func (n *NFA) Start() int {
	return n.start
}

// IsAccept Returns true if this state is an accept state.
func (n *NFA) IsAccept(state int) bool {
	return state >= 0 && n.isAccept.Test(uint(state))
}

// AcceptStates Returns the accept states in ascending order.
func (n *NFA) AcceptStates() []int {
	return members(n.isAccept)
}

// Alphabet Returns the sorted alphabet. Epsilon is never included.
func (n *NFA) Alphabet() []Symbol {
	return slices.Clone(n.alphabet)
}

// Destinations Returns the states reachable from state by one transition labelled label.
func (n *NFA) Destinations(state int, label Symbol) []int {
	dests, ok := n.edges[state][label]
	if !ok {
		return nil
	}
	return members(dests)
}

// Transitions Returns all transitions sorted by source, then symbol (epsilon first), then dest.
func (n *NFA) Transitions() []Transition {
	out := make([]Transition, 0)
	for source, bySymbol := range n.edges {
		for label, dests := range bySymbol {
			for _, dest := range members(dests) {
				out = append(out, Transition{Source: source, Symbol: label, Dest: dest})
			}
		}
	}
	slices.SortFunc(out, func(a, b Transition) int {
		return cmp.Or(
			cmp.Compare(a.Source, b.Source),
			cmp.Compare(a.Symbol, b.Symbol),
			cmp.Compare(a.Dest, b.Dest),
		)
	})
	return out
}

// Closure Returns the epsilon-closure of the given states: every state reachable from them using
// zero or more epsilon transitions. Seeds that are not states of n are ignored.
func (n *NFA) Closure(seeds ...int) []int {
	set := bitset.New(n.states.Len())
	for _, s := range seeds {
		if n.HasState(s) {
			set.Set(uint(s))
		}
	}
	n.closure(set)
	return members(set)
}

// closure extends set in place with everything reachable over epsilon edges.
func (n *NFA) closure(set *bitset.BitSet) {
	stack := members(set)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		dests, ok := n.edges[s][Epsilon]
		if !ok {
			continue
		}
		for d, ok := dests.NextSet(0); ok; d, ok = dests.NextSet(d + 1) {
			if !set.Test(d) {
				set.Set(d)
				stack = append(stack, int(d))
			}
		}
	}
}

// move returns the union of the label destinations of every state in set, without closing it.
func (n *NFA) move(set []int, label Symbol) *bitset.BitSet {
	next := bitset.New(n.states.Len())
	for _, s := range set {
		if dests, ok := n.edges[s][label]; ok {
			next.InPlaceUnion(dests)
		}
	}
	return next
}

// acceptsAny reports whether set contains an accept state.
func (n *NFA) acceptsAny(set *bitset.BitSet) bool {
	return set.IntersectionCardinality(n.isAccept) > 0
}
