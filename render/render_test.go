package render

import (
	"bytes"
	"strings"
	"testing"

	automaton "github.com/geange/go-automaton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNFADot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NFADot(&buf, automaton.MustCompileString("ab|")))

	want := `digraph G {
    rankdir=LR;
    n0 [shape=circle];
    n1 [shape=circle];
    n2 [shape=circle];
    n3 [shape=circle];
    n4 [shape=circle];
    n5 [shape=doublecircle];
    n0 -> n1 [label="a"];
    n1 -> n5 [label="ε"];
    n2 -> n3 [label="b"];
    n3 -> n5 [label="ε"];
    n4 -> n0 [label="ε"];
    n4 -> n2 [label="ε"];
    _start [shape=point]; _start -> n4;
}
`
	assert.Equal(t, want, buf.String())
}

func TestDFADot(t *testing.T) {
	res, err := automaton.Build(automaton.Tokens("ab|"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, DFADot(&buf, res.Minimal))

	want := `digraph G {
    rankdir=LR;
    q0 [shape=circle];
    q1 [shape=doublecircle];
    q0 -> q1 [label="a"];
    q0 -> q1 [label="b"];
    _start [shape=point]; _start -> q0;
}
`
	assert.Equal(t, want, buf.String())
}

func TestNFATable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NFATable(&buf, automaton.MustCompileString("ab|")))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, []string{"state", "a", "b", "ε"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "{1}", "-", "-"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{">4", "-", "-", "{0,2}"}, strings.Fields(lines[5]))
	assert.Equal(t, []string{"*5", "-", "-", "-"}, strings.Fields(lines[6]))
}

func TestDFATable(t *testing.T) {
	d, err := automaton.Determinize(automaton.MustCompileString("ab|"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, DFATable(&buf, d))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"state", "a", "b", "members"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{">0", "1", "2", "{0,2,4}"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"*1", "-", "-", "{1,5}"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"*2", "-", "-", "{3,5}"}, strings.Fields(lines[3]))
}

func TestStartAndAcceptMarkers(t *testing.T) {
	res, err := automaton.Build(automaton.Tokens("a*"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, DFATable(&buf, res.Minimal))
	assert.Contains(t, buf.String(), ">*0")
}
