package automaton

import (
	"fmt"

	"go.uber.org/multierr"
)

// ValidateNFA Reports every structural problem of n. Each reported error wraps ErrInvalidAutomaton;
// the result is nil for a well-formed NFA.
func ValidateNFA(n *NFA) error {
	if n == nil {
		return fmt.Errorf("%w: nil NFA", ErrInvalidAutomaton)
	}
	if n.NumStates() == 0 {
		return fmt.Errorf("%w: NFA has no states", ErrInvalidAutomaton)
	}

	var err error
	if !n.HasState(n.start) {
		err = multierr.Append(err, fmt.Errorf("%w: start state %d is not a state", ErrInvalidAutomaton, n.start))
	}
	for _, s := range n.AcceptStates() {
		if !n.HasState(s) {
			err = multierr.Append(err, fmt.Errorf("%w: accept state %d is not a state", ErrInvalidAutomaton, s))
		}
	}
	for _, t := range n.Transitions() {
		if !n.HasState(t.Source) || !n.HasState(t.Dest) {
			err = multierr.Append(err, fmt.Errorf("%w: transition %d -%v-> %d references an unknown state",
				ErrInvalidAutomaton, t.Source, t.Symbol, t.Dest))
		}
	}
	for _, label := range n.alphabet {
		if label < 0 {
			err = multierr.Append(err, fmt.Errorf("%w: symbol %d in alphabet", ErrInvalidAutomaton, label))
		}
	}
	return err
}

// ValidateDFA Reports every structural problem of d. Each reported error wraps ErrInvalidAutomaton;
// the result is nil for a well-formed DFA.
func ValidateDFA(d *DFA) error {
	if d == nil {
		return fmt.Errorf("%w: nil DFA", ErrInvalidAutomaton)
	}
	numStates := d.NumStates()
	if numStates == 0 {
		return fmt.Errorf("%w: DFA has no states", ErrInvalidAutomaton)
	}

	var err error
	if d.start < 0 || d.start >= numStates {
		err = multierr.Append(err, fmt.Errorf("%w: start state %d is not a state", ErrInvalidAutomaton, d.start))
	}
	for _, s := range d.AcceptStates() {
		if s >= numStates {
			err = multierr.Append(err, fmt.Errorf("%w: accept state %d is not a state", ErrInvalidAutomaton, s))
		}
	}
	if len(d.table) != numStates*len(d.alphabet) {
		err = multierr.Append(err, fmt.Errorf("%w: transition table has %d entries, want %d",
			ErrInvalidAutomaton, len(d.table), numStates*len(d.alphabet)))
		return err
	}
	for i, dest := range d.table {
		if dest < -1 || dest >= numStates {
			err = multierr.Append(err, fmt.Errorf("%w: transition %d -%v-> %d references an unknown state",
				ErrInvalidAutomaton, i/len(d.alphabet), d.alphabet[i%len(d.alphabet)], dest))
		}
	}
	return err
}
