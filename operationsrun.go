package automaton

import "github.com/bits-and-blooms/bitset"

// Run Returns true if the DFA accepts s. The walk stops at the first symbol without a transition.
func Run(a *DFA, s string) bool {
	if a == nil || a.NumStates() == 0 {
		return false
	}
	state := a.Start()
	for _, v := range s {
		nextState := a.Step(state, Symbol(v))
		if nextState == -1 {
			return false
		}
		state = nextState
	}
	return a.IsAccept(state)
}

// RunNFA Returns true if the NFA accepts s, simulating all paths at once over epsilon-closures.
func RunNFA(n *NFA, s string) bool {
	if n == nil || !n.HasState(n.start) {
		return false
	}
	current := bitset.New(n.states.Len())
	current.Set(uint(n.start))
	n.closure(current)

	for _, v := range s {
		next := n.move(members(current), Symbol(v))
		if next.None() {
			return false
		}
		n.closure(next)
		current = next
	}
	return n.acceptsAny(current)
}
