// Package render prints automata for people: transition tables for the terminal and Graphviz
// digraphs for dot(1).
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	automaton "github.com/geange/go-automaton"
)

// NFATable writes the transition table of n, one row per state and one column per symbol, with a
// final ε column. A cell holds the destination set, or "-" when there is none. Row labels carry
// ">" for the start state and "*" for accept states.
func NFATable(w io.Writer, n *automaton.NFA) error {
	tw := newTabWriter(w)
	alphabet := n.Alphabet()

	header := []string{"state"}
	for _, label := range alphabet {
		header = append(header, label.String())
	}
	header = append(header, automaton.Epsilon.String())
	writeRow(tw, header)

	columns := append(alphabet, automaton.Epsilon)
	for _, s := range n.States() {
		row := []string{stateLabel(s, s == n.Start(), n.IsAccept(s))}
		for _, label := range columns {
			row = append(row, setCell(n.Destinations(s, label)))
		}
		writeRow(tw, row)
	}
	return tw.Flush()
}

// DFATable writes the transition table of d, like NFATable, with a last column listing the
// composite each state stands for.
func DFATable(w io.Writer, d *automaton.DFA) error {
	tw := newTabWriter(w)
	alphabet := d.Alphabet()

	header := []string{"state"}
	for _, label := range alphabet {
		header = append(header, label.String())
	}
	header = append(header, "members")
	writeRow(tw, header)

	for s := 0; s < d.NumStates(); s++ {
		row := []string{stateLabel(s, s == d.Start(), d.IsAccept(s))}
		for _, label := range alphabet {
			if dest := d.Step(s, label); dest == -1 {
				row = append(row, "-")
			} else {
				row = append(row, strconv.Itoa(dest))
			}
		}
		row = append(row, setCell(d.Members(s)))
		writeRow(tw, row)
	}
	return tw.Flush()
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func writeRow(tw *tabwriter.Writer, cells []string) {
	fmt.Fprintln(tw, strings.Join(cells, "\t"))
}

func stateLabel(state int, start, accept bool) string {
	var b strings.Builder
	if start {
		b.WriteByte('>')
	}
	if accept {
		b.WriteByte('*')
	}
	b.WriteString(strconv.Itoa(state))
	return b.String()
}

func setCell(states []int) string {
	if len(states) == 0 {
		return "-"
	}
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = strconv.Itoa(s)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
