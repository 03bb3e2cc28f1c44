package automaton

import (
	"github.com/bits-and-blooms/bitset"
)

// Minimize
// Minimizes the given DFA with the table-filling algorithm. States unreachable from the start are
// dropped first. Missing transitions behave as an implicit non-accepting sink that takes part in
// the distinguishability table; reachable states equivalent to it merge into one trap state, which
// is kept. A transition is recorded whenever the class representative has one.
//
// Each state of the result stands for one equivalence class; DFA.Members lists the original states
// it merges. Classes are numbered by their smallest member, and the result does not depend on map
// iteration order.
func Minimize(d *DFA, opts ...Option) (*DFA, error) {
	if err := ValidateDFA(d); err != nil {
		return nil, err
	}
	o := newOptions(opts...)

	reach := members(getLiveStatesFromInitial(d))
	local := make([]int, d.NumStates())
	for i := range local {
		local[i] = -1
	}
	for i, s := range reach {
		local[s] = i
	}

	// Local states are 0..n-1 in ascending original order; n is the sink.
	n := len(reach)
	sink := n
	size := n + 1
	k := len(d.alphabet)

	next := make([]int, size*k)
	for i, s := range reach {
		for a := 0; a < k; a++ {
			if dest := d.table[s*k+a]; dest == -1 {
				next[i*k+a] = sink
			} else {
				next[i*k+a] = local[dest]
			}
		}
	}
	for a := 0; a < k; a++ {
		next[sink*k+a] = sink
	}

	accepting := func(i int) bool {
		return i < n && d.IsAccept(reach[i])
	}

	pair := func(p, q int) uint {
		if p > q {
			p, q = q, p
		}
		return uint(p*size + q)
	}

	distinct := bitset.New(uint(size * size))
	for p := 0; p < size; p++ {
		for q := p + 1; q < size; q++ {
			if accepting(p) != accepting(q) {
				distinct.Set(pair(p, q))
			}
		}
	}

	passes := 0
	for changed := true; changed; {
		changed = false
		passes++
		for p := 0; p < size; p++ {
			for q := p + 1; q < size; q++ {
				if distinct.Test(pair(p, q)) {
					continue
				}
				for a := 0; a < k; a++ {
					np, nq := next[p*k+a], next[q*k+a]
					if np != nq && distinct.Test(pair(np, nq)) {
						distinct.Set(pair(p, q))
						changed = true
						break
					}
				}
			}
		}
	}

	classes := newDisjointSet(size)
	for p := 0; p < size; p++ {
		for q := p + 1; q < size; q++ {
			if !distinct.Test(pair(p, q)) {
				classes.union(p, q)
			}
		}
	}

	b := NewDFABuilder()
	for _, label := range d.alphabet {
		if err := b.AddSymbol(label); err != nil {
			return nil, err
		}
	}

	// Roots are class minimums, so every class holding a reachable state has a reachable root.
	state := make(map[int]int)
	grouped := make(map[int][]int)
	for i := 0; i < n; i++ {
		root := classes.find(i)
		if _, ok := state[root]; !ok {
			state[root] = b.CreateState()
			b.SetAccept(state[root], accepting(root))
		}
		grouped[root] = append(grouped[root], reach[i])
	}
	for root, s := range state {
		b.SetMembers(s, grouped[root])
	}

	for root, s := range state {
		for a := 0; a < k; a++ {
			target := next[root*k+a]
			if target == sink {
				continue
			}
			if err := b.AddTransition(s, d.alphabet[a], state[classes.find(target)]); err != nil {
				return nil, err
			}
		}
	}

	b.SetStart(state[classes.find(local[d.start])])
	result := b.Finish()
	_, trap := state[classes.find(sink)]
	o.log.V(1).Info("minimized dfa", "states", d.NumStates(), "reachable", n, "classes", result.NumStates(),
		"passes", passes, "trap", trap)
	return result, nil
}

// disjointSet is a union-find forest whose roots are always the smallest element of their set.
type disjointSet struct {
	parent []int
}

func newDisjointSet(size int) *disjointSet {
	parent := make([]int, size)
	for i := range parent {
		parent[i] = i
	}
	return &disjointSet{parent: parent}
}

func (s *disjointSet) find(x int) int {
	root := x
	for s.parent[root] != root {
		root = s.parent[root]
	}
	for s.parent[x] != root {
		s.parent[x], x = root, s.parent[x]
	}
	return root
}

func (s *disjointSet) union(x, y int) {
	rx, ry := s.find(x), s.find(y)
	if rx == ry {
		return
	}
	if rx < ry {
		s.parent[ry] = rx
	} else {
		s.parent[rx] = ry
	}
}
