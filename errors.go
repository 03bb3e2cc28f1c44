package automaton

import "errors"

var (
	// ErrMalformedExpression is returned by Compile when an operator finds too few operands on the
	// construction stack, or when the tokens do not reduce to exactly one automaton.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrInvalidAutomaton is returned when an automaton violates a precondition: no states, a start
	// state that is not one of its states, or a transition to an unknown state.
	ErrInvalidAutomaton = errors.New("invalid automaton")

	// ErrTooComplex is returned by Determinize when the subset construction needs more states than
	// the configured work limit.
	ErrTooComplex = errors.New("automaton too complex to determinize")
)
