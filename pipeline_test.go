package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// words returns every string over alphabet of length at most n.
func words(alphabet string, n int) []string {
	out := []string{""}
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

func TestBuildPreservesLanguage(t *testing.T) {
	tests := []string{
		"a",
		"ab.",
		"ab|",
		"a*",
		"ab|*",
		"ab|*a.b.b.",
		"ab.ab.|*",
		"aa.*b.",
		"a*b*.",
		"ab.*a.",
		"ab|ab|.",
	}
	for _, postfix := range tests {
		t.Run(postfix, func(t *testing.T) {
			res, err := Build(Tokens(postfix))
			require.NoError(t, err)
			assert.LessOrEqual(t, res.Minimal.NumStates(), res.DFA.NumStates())
			assertDeterministic(t, res.DFA)
			assertDeterministic(t, res.Minimal)

			for _, w := range words("abc", 5) {
				want := RunNFA(res.NFA, w)
				assert.Equalf(t, want, Run(res.DFA, w), "dfa on %q", w)
				assert.Equalf(t, want, Run(res.Minimal, w), "minimal dfa on %q", w)
			}
		})
	}
}

func TestBuildMinimalSizes(t *testing.T) {
	tests := []struct {
		postfix string
		want    int
	}{
		{"a", 2},
		{"ab.", 3},
		{"ab|", 2},
		{"a*", 1},
		{"ab|*", 1},
		{"ab|*a.b.b.", 4},
		{"aa*.", 2},
	}
	for _, tt := range tests {
		t.Run(tt.postfix, func(t *testing.T) {
			res, err := Build(Tokens(tt.postfix))
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Minimal.NumStates())
		})
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(Tokens("a|"))
	assert.ErrorIs(t, err, ErrMalformedExpression)

	_, err = Build(Tokens("ab|*a.b.b."), WithDeterminizeWorkLimit(1))
	assert.ErrorIs(t, err, ErrTooComplex)
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		postfix string
		accept  []string
		reject  []string
	}{
		{"ab.", []string{"ab"}, []string{"a", "b", "ba", ""}},
		{"ab|", []string{"a", "b"}, []string{"ab", ""}},
		{"a*", []string{"", "a", "aaaa"}, []string{"b", "ab"}},
	}
	for _, tt := range tests {
		t.Run(tt.postfix, func(t *testing.T) {
			n, err := Compile(Tokens(tt.postfix))
			require.NoError(t, err)
			d, err := Determinize(n)
			require.NoError(t, err)

			for _, s := range tt.accept {
				assert.Truef(t, Run(d, s), "%q should be accepted", s)
			}
			for _, s := range tt.reject {
				assert.Falsef(t, Run(d, s), "%q should be rejected", s)
			}
		})
	}
}
