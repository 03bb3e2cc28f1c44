package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Determinize Determinizes the given automaton by subset construction. Each DFA state stands for
// the epsilon-closure of a set of NFA states (see DFA.Members); it accepts iff that set contains an
// NFA accept state. When no NFA state moves on a symbol, no transition is recorded.
//
// Worst case complexity: exponential in number of states. WithDeterminizeWorkLimit caps the number
// of DFA states; exceeding it returns ErrTooComplex.
func Determinize(n *NFA, opts ...Option) (*DFA, error) {
	if err := ValidateNFA(n); err != nil {
		return nil, err
	}
	o := newOptions(opts...)

	b := NewDFABuilder()
	for _, label := range n.alphabet {
		if err := b.AddSymbol(label); err != nil {
			return nil, err
		}
	}

	newState := NewHashMap[*FrozenIntSet](WithCapacity(16))
	worklist := make([]*FrozenIntSet, 0)

	intern := func(set *bitset.BitSet) (*FrozenIntSet, error) {
		key := newFrozenIntSetFromBits(set, -1)
		if seen, ok := newState.Get(key); ok {
			return seen, nil
		}
		if o.determinizeWorkLimit > 0 && b.NumStates() >= o.determinizeWorkLimit {
			return nil, fmt.Errorf("%w: more than %d states", ErrTooComplex, o.determinizeWorkLimit)
		}
		key.state = b.CreateState()
		b.SetMembers(key.state, key.values)
		b.SetAccept(key.state, n.acceptsAny(set))
		newState.Set(key, key)
		worklist = append(worklist, key)
		return key, nil
	}

	initial := bitset.New(n.states.Len())
	initial.Set(uint(n.start))
	n.closure(initial)
	if _, err := intern(initial); err != nil {
		return nil, err
	}

	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]

		for _, label := range n.alphabet {
			next := n.move(current.values, label)
			if next.None() {
				continue
			}
			n.closure(next)

			dest, err := intern(next)
			if err != nil {
				return nil, err
			}
			if err := b.AddTransition(current.state, label, dest.state); err != nil {
				return nil, err
			}
		}
	}

	b.SetStart(0)
	d := b.Finish()
	o.log.V(1).Info("determinized nfa", "nfaStates", n.NumStates(), "dfaStates", d.NumStates(),
		"transitions", d.NumTransitions())
	return d, nil
}

// getLiveStatesFromInitial Returns the states reachable from the start state.
func getLiveStatesFromInitial(d *DFA) *bitset.BitSet {
	numStates := d.NumStates()
	live := bitset.New(uint(numStates))
	if numStates == 0 || d.start < 0 || d.start >= numStates {
		return live
	}

	workList := []int{d.start}
	live.Set(uint(d.start))

	k := len(d.alphabet)
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for i := 0; i < k; i++ {
			dest := d.table[s*k+i]
			if dest != -1 && !live.Test(uint(dest)) {
				live.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}

	return live
}

// IsEmpty Returns true if the given automaton accepts no strings.
func IsEmpty(d *DFA) bool {
	if d == nil || d.NumStates() == 0 {
		return true
	}
	live := getLiveStatesFromInitial(d)
	return live.IntersectionCardinality(d.isAccept) == 0
}
