package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	automaton "github.com/geange/go-automaton"
)

// NFADot writes n as a Graphviz digraph. Nodes are n<state>; epsilon edges are labelled ε.
func NFADot(w io.Writer, n *automaton.NFA) error {
	var b strings.Builder
	writeHeader(&b)
	for _, s := range n.States() {
		writeNode(&b, "n", s, n.IsAccept(s))
	}
	for _, t := range n.Transitions() {
		writeEdge(&b, "n", t)
	}
	if n.HasState(n.Start()) {
		fmt.Fprintf(&b, "    _start [shape=point]; _start -> n%d;\n", n.Start())
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// DFADot writes d as a Graphviz digraph. Nodes are q<state>, with the composite each state stands
// for as a tooltip.
func DFADot(w io.Writer, d *automaton.DFA) error {
	var b strings.Builder
	writeHeader(&b)
	for s := 0; s < d.NumStates(); s++ {
		writeNode(&b, "q", s, d.IsAccept(s))
	}
	for _, t := range d.Transitions() {
		writeEdge(&b, "q", t)
	}
	if d.NumStates() > 0 {
		fmt.Fprintf(&b, "    _start [shape=point]; _start -> q%d;\n", d.Start())
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeHeader(b *strings.Builder) {
	b.WriteString("digraph G {\n")
	b.WriteString("    rankdir=LR;\n")
}

func writeNode(b *strings.Builder, prefix string, state int, accept bool) {
	shape := "circle"
	if accept {
		shape = "doublecircle"
	}
	fmt.Fprintf(b, "    %s%d [shape=%s];\n", prefix, state, shape)
}

func writeEdge(b *strings.Builder, prefix string, t automaton.Transition) {
	fmt.Fprintf(b, "    %s%d -> %s%d [label=%s];\n", prefix, t.Source, prefix, t.Dest,
		strconv.Quote(t.Symbol.String()))
}
