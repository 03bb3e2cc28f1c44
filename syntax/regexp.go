// Package syntax turns regular expressions written in the usual infix form, such as "a(b|c)*d",
// into the postfix token stream consumed by automaton.Compile.
//
// Letters and digits are literals, juxtaposition is concatenation, '|' is alternation, '*' is Kleene
// star and parentheses group. Star binds tighter than concatenation, which binds tighter than
// alternation; both binary operators associate to the left. White space is ignored.
package syntax

import (
	"errors"
	"fmt"
	"strings"

	automaton "github.com/geange/go-automaton"
)

// ErrSyntax is returned when an expression does not follow the grammar.
var ErrSyntax = errors.New("syntax error")

type Kind int

const (
	REGEXP_UNION         = Kind(iota) // The union of two expressions
	REGEXP_CONCATENATION              // A sequence of two expressions
	REGEXP_REPEAT                     // An expression that repeats
	REGEXP_CHAR                       // A Character
)

// RegExp is a parsed regular expression.
type RegExp struct {
	kind       Kind
	exp1, exp2 *RegExp
	c          rune
}

// Parse parses an infix regular expression.
func Parse(s string) (*RegExp, error) {
	ast, err := regExpParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if len(ast.Alternatives) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	return ast.toRegExp(), nil
}

// MustParse is like Parse but panics if the expression cannot be parsed.
func MustParse(s string) *RegExp {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Compile parses s and compiles it to an NFA.
func Compile(s string, opts ...automaton.Option) (*automaton.NFA, error) {
	r, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return automaton.Compile(r.Postfix(), opts...)
}

// Build parses s and runs the whole pipeline on it.
func Build(s string, opts ...automaton.Option) (*automaton.Result, error) {
	r, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return automaton.Build(r.Postfix(), opts...)
}

func makeUnion(exp1, exp2 *RegExp) *RegExp {
	return &RegExp{kind: REGEXP_UNION, exp1: exp1, exp2: exp2}
}

func makeConcatenation(exp1, exp2 *RegExp) *RegExp {
	return &RegExp{kind: REGEXP_CONCATENATION, exp1: exp1, exp2: exp2}
}

func makeRepeat(exp *RegExp) *RegExp {
	return &RegExp{kind: REGEXP_REPEAT, exp1: exp}
}

func makeChar(c rune) *RegExp {
	return &RegExp{kind: REGEXP_CHAR, c: c}
}

func (r *RegExp) Kind() Kind {
	return r.kind
}

// Postfix returns the expression as postfix tokens, with concatenation made explicit.
func (r *RegExp) Postfix() []automaton.Symbol {
	tokens := make([]automaton.Symbol, 0)
	return r.appendPostfix(tokens)
}

func (r *RegExp) appendPostfix(tokens []automaton.Symbol) []automaton.Symbol {
	switch r.kind {
	case REGEXP_UNION:
		tokens = r.exp1.appendPostfix(tokens)
		tokens = r.exp2.appendPostfix(tokens)
		return append(tokens, automaton.OpUnion)
	case REGEXP_CONCATENATION:
		tokens = r.exp1.appendPostfix(tokens)
		tokens = r.exp2.appendPostfix(tokens)
		return append(tokens, automaton.OpConcat)
	case REGEXP_REPEAT:
		tokens = r.exp1.appendPostfix(tokens)
		return append(tokens, automaton.OpStar)
	default:
		return append(tokens, automaton.Symbol(r.c))
	}
}

// PostfixString returns Postfix as a string, e.g. "abc|*." for "a(b|c)*".
func (r *RegExp) PostfixString() string {
	b := new(strings.Builder)
	for _, tok := range r.Postfix() {
		b.WriteRune(rune(tok))
	}
	return b.String()
}

// String returns the expression in infix form with every union and concatenation parenthesized.
func (r *RegExp) String() string {
	b := new(strings.Builder)
	r.toStringBuilder(b)
	return b.String()
}

func (r *RegExp) toStringBuilder(b *strings.Builder) {
	switch r.kind {
	case REGEXP_UNION:
		b.WriteString("(")
		r.exp1.toStringBuilder(b)
		b.WriteString("|")
		r.exp2.toStringBuilder(b)
		b.WriteString(")")
	case REGEXP_CONCATENATION:
		b.WriteString("(")
		r.exp1.toStringBuilder(b)
		r.exp2.toStringBuilder(b)
		b.WriteString(")")
	case REGEXP_REPEAT:
		r.exp1.toStringBuilder(b)
		b.WriteString("*")
	default:
		b.WriteRune(r.c)
	}
}
