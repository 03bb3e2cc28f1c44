package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Symbol is a single input symbol of an automaton alphabet.
type Symbol rune

const (
	// Epsilon labels a transition taken without consuming input. It is never part of an alphabet.
	Epsilon Symbol = -1

	// Postfix operators understood by Compile.
	OpConcat Symbol = '.'
	OpUnion  Symbol = '|'
	OpStar   Symbol = '*'
)

func (s Symbol) String() string {
	if s == Epsilon {
		return "ε"
	}
	return string(rune(s))
}

// Transition is one edge of an automaton, as reported by the Transitions methods.
type Transition struct {
	Source int
	Symbol Symbol
	Dest   int
}

// DFA Represents a deterministic automaton. States are dense integers 0..NumStates()-1; every state
// carries the composite it stands for (see Members). For each state and symbol there is at most one
// destination; a missing destination is an implicit, non-accepting dead state. A DFA never changes
// once built.
type DFA struct {
	alphabet []Symbol

	// Index of each alphabet symbol in alphabet.
	symbols map[Symbol]int

	start int

	isAccept *bitset.BitSet

	// One row of len(alphabet) destinations per state; -1 marks a missing transition.
	table []int

	// Sorted composite of each state: NFA states after determinization, prior DFA states after
	// minimization.
	members [][]int
}

// NumStates How many states this automaton has.
func (d *DFA) NumStates() int {
	return len(d.members)
}

// Start Returns the initial state.
func (d *DFA) Start() int {
	return d.start
}

// IsAccept Returns true if this state is an accept state.
func (d *DFA) IsAccept(state int) bool {
	return d.isAccept.Test(uint(state))
}

// AcceptStates Returns the accept states in ascending order.
func (d *DFA) AcceptStates() []int {
	return members(d.isAccept)
}

// Alphabet Returns the sorted alphabet.
func (d *DFA) Alphabet() []Symbol {
	return slices.Clone(d.alphabet)
}

// Members Returns the composite the state stands for.
func (d *DFA) Members(state int) []int {
	if state < 0 || state >= len(d.members) {
		return nil
	}
	return slices.Clone(d.members[state])
}

// Step Performs lookup in transitions.
// Returns: destination state, -1 if no matching outgoing transition
func (d *DFA) Step(state int, label Symbol) int {
	if state < 0 || state >= len(d.members) {
		return -1
	}
	idx, ok := d.symbols[label]
	if !ok {
		return -1
	}
	return d.table[state*len(d.alphabet)+idx]
}

// NumTransitions How many transitions this automaton has.
func (d *DFA) NumTransitions() int {
	count := 0
	for _, dest := range d.table {
		if dest != -1 {
			count++
		}
	}
	return count
}

// Transitions Returns all transitions sorted by source, then symbol.
func (d *DFA) Transitions() []Transition {
	k := len(d.alphabet)
	out := make([]Transition, 0, d.NumTransitions())
	for s := 0; s < d.NumStates(); s++ {
		for i, label := range d.alphabet {
			if dest := d.table[s*k+i]; dest != -1 {
				out = append(out, Transition{Source: s, Symbol: label, Dest: dest})
			}
		}
	}
	return out
}

// members lists the set bits of b in ascending order.
func members(b *bitset.BitSet) []int {
	out := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}
