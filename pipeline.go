package automaton

// Result holds the automaton of every pipeline stage.
type Result struct {
	NFA     *NFA
	DFA     *DFA
	Minimal *DFA
}

// Build Compiles postfix tokens, determinizes the NFA and minimizes the DFA. The first failing stage
// ends the run; no partial result is returned.
func Build(tokens []Symbol, opts ...Option) (*Result, error) {
	n, err := Compile(tokens, opts...)
	if err != nil {
		return nil, err
	}
	d, err := Determinize(n, opts...)
	if err != nil {
		return nil, err
	}
	m, err := Minimize(d, opts...)
	if err != nil {
		return nil, err
	}
	return &Result{NFA: n, DFA: d, Minimal: m}, nil
}
