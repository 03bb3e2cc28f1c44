package automaton

// fragment is a partially built NFA with a single entry and a single exit state.
type fragment struct {
	start, accept int
}

// automata makes Thompson fragments for one compilation. All fragments live in the same builder,
// so every state any fragment introduces gets a fresh identifier from a single counter, and
// joining two fragments only adds epsilon edges between states that already exist.
type automata struct {
	b *NFABuilder
}

func newAutomata() *automata {
	return &automata{b: NewNFABuilder()}
}

// makeChar
// Returns a fragment that accepts the single symbol c.
func (a *automata) makeChar(c Symbol) (fragment, error) {
	s := a.b.CreateState()
	f := a.b.CreateState()
	if err := a.b.AddTransition(s, c, f); err != nil {
		return fragment{}, err
	}
	return fragment{start: s, accept: f}, nil
}

// makeConcatenation
// Returns a fragment accepting a string of f1 followed by a string of f2.
func (a *automata) makeConcatenation(f1, f2 fragment) (fragment, error) {
	if err := a.b.AddEpsilon(f1.accept, f2.start); err != nil {
		return fragment{}, err
	}
	return fragment{start: f1.start, accept: f2.accept}, nil
}

// makeUnion
// Returns a fragment accepting the strings of either f1 or f2.
func (a *automata) makeUnion(f1, f2 fragment) (fragment, error) {
	s := a.b.CreateState()
	f := a.b.CreateState()
	for _, e := range [][2]int{
		{s, f1.start},
		{s, f2.start},
		{f1.accept, f},
		{f2.accept, f},
	} {
		if err := a.b.AddEpsilon(e[0], e[1]); err != nil {
			return fragment{}, err
		}
	}
	return fragment{start: s, accept: f}, nil
}

// makeRepeat
// Returns a fragment accepting zero or more repetitions of f.
func (a *automata) makeRepeat(f1 fragment) (fragment, error) {
	s := a.b.CreateState()
	f := a.b.CreateState()
	for _, e := range [][2]int{
		{s, f1.start},
		{s, f},
		{f1.accept, f},
		{f1.accept, f1.start},
	} {
		if err := a.b.AddEpsilon(e[0], e[1]); err != nil {
			return fragment{}, err
		}
	}
	return fragment{start: s, accept: f}, nil
}

// finish turns the last remaining fragment into the NFA.
func (a *automata) finish(f fragment) *NFA {
	a.b.SetStart(f.start)
	a.b.SetAccept(f.accept, true)
	return a.b.Finish()
}
