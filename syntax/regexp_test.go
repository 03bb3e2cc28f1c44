package syntax

import (
	"testing"

	automaton "github.com/geange/go-automaton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

func TestParse(t *testing.T) {
	tests := []struct {
		expr    string
		postfix string
		infix   string
	}{
		{"a", "a", "a"},
		{"ab", "ab.", "(ab)"},
		{"abc", "ab.c.", "((ab)c)"},
		{"a|b", "ab|", "(a|b)"},
		{"a|b|c", "ab|c|", "((a|b)|c)"},
		{"ab|c", "ab.c|", "((ab)|c)"},
		{"a|bc", "abc.|", "(a|(bc))"},
		{"ab*", "ab*.", "(ab*)"},
		{"(ab)*", "ab.*", "(ab)*"},
		{"a**", "a**", "a**"},
		{"(a|b)*abb", "ab|*a.b.b.", "((((a|b)*a)b)b)"},
		{"a(b|c)*d", "abc|*.d.", "((a(b|c)*)d)"},
		{" a b | c ", "ab.c|", "((ab)|c)"},
		{"x1", "x1.", "(x1)"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			r, err := Parse(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.postfix, r.PostfixString())
			assert.Equal(t, automaton.Tokens(tt.postfix), r.Postfix())
			assert.Equal(t, tt.infix, r.String())
		})
	}
}

func TestParseKind(t *testing.T) {
	assert.Equal(t, REGEXP_CHAR, MustParse("a").Kind())
	assert.Equal(t, REGEXP_CONCATENATION, MustParse("ab").Kind())
	assert.Equal(t, REGEXP_UNION, MustParse("a|b").Kind())
	assert.Equal(t, REGEXP_REPEAT, MustParse("(a|b)*").Kind())
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"(",
		")",
		"()",
		"a)",
		"(a",
		"a|",
		"|a",
		"*a",
		"a+",
		"a.b",
	}
	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			r, err := Parse(expr)
			assert.ErrorIs(t, err, ErrSyntax)
			assert.Nil(t, r)
		})
	}
	assert.Panics(t, func() { MustParse("(") })
}

func TestCompile(t *testing.T) {
	n, err := Compile("a|b")
	require.NoError(t, err)
	assert.Equal(t, 6, n.NumStates())

	_, err = Compile("a|")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestBuild(t *testing.T) {
	res, err := Build("(a|b)*abb")
	require.NoError(t, err)
	assert.Equal(t, 4, res.Minimal.NumStates())
	assert.True(t, automaton.Run(res.Minimal, "babb"))
	assert.False(t, automaton.Run(res.Minimal, "bab"))

	_, err = Build("((a)")
	assert.ErrorIs(t, err, ErrSyntax)
}

// lexmachineMatches reports whether lexmachine's longest match of pattern at the start of s covers
// all of s.
func lexmachineMatches(t *testing.T, lexer *lexmachine.Lexer, s string) bool {
	t.Helper()
	scanner, err := lexer.Scanner([]byte(s))
	require.NoError(t, err)
	tok, err, eof := scanner.Next()
	if err != nil || eof {
		return false
	}
	return tok.(string) == s
}

func TestAgainstLexmachine(t *testing.T) {
	patterns := []string{
		"a(b|c)*d",
		"(a|b)*abb",
		"ab|ba",
		"a(ab)*b*",
		"(ab|b)(a|b)",
		"(a|bc)*d",
	}
	inputs := wordsUpTo("abcd", 5)

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			lexer := lexmachine.NewLexer()
			lexer.Add([]byte(pattern), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
				return string(m.Bytes), nil
			})
			require.NoError(t, lexer.Compile())

			res, err := Build(pattern)
			require.NoError(t, err)

			for _, in := range inputs {
				want := lexmachineMatches(t, lexer, in)
				assert.Equalf(t, want, automaton.Run(res.Minimal, in), "%s on %q", pattern, in)
				assert.Equalf(t, want, automaton.RunNFA(res.NFA, in), "%s nfa on %q", pattern, in)
			}
		})
	}
}

func wordsUpTo(alphabet string, n int) []string {
	var out []string
	prev := []string{""}
	for i := 0; i < n; i++ {
		next := make([]string, 0, len(prev)*len(alphabet))
		for _, w := range prev {
			for _, c := range alphabet {
				next = append(next, w+string(c))
			}
		}
		out = append(out, next...)
		prev = next
	}
	return out
}
