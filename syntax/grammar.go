package syntax

import (
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// unionExp ::= concatExp ( '|' concatExp )*
type unionExp struct {
	Alternatives []*concatExp `parser:"@@ ( '|' @@ )*"`
}

// concatExp ::= repeatExp+
type concatExp struct {
	Items []*repeatExp `parser:"@@+"`
}

// repeatExp ::= simpleExp '*'*
type repeatExp struct {
	Simple *simpleExp `parser:"@@"`
	Stars  []string   `parser:"@'*'*"`
}

// simpleExp ::= Char | '(' unionExp ')'
type simpleExp struct {
	Char  *string   `parser:"  @Char"`
	Group *unionExp `parser:"| '(' @@ ')'"`
}

var regExpLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Char", Pattern: `[\p{L}\p{N}]`},
	{Name: "Operator", Pattern: `[|*()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var regExpParser = participle.MustBuild[unionExp](
	participle.Lexer(regExpLexer),
	participle.Elide("Whitespace"),
)

func (u *unionExp) toRegExp() *RegExp {
	e := u.Alternatives[0].toRegExp()
	for _, alt := range u.Alternatives[1:] {
		e = makeUnion(e, alt.toRegExp())
	}
	return e
}

func (c *concatExp) toRegExp() *RegExp {
	e := c.Items[0].toRegExp()
	for _, item := range c.Items[1:] {
		e = makeConcatenation(e, item.toRegExp())
	}
	return e
}

func (r *repeatExp) toRegExp() *RegExp {
	e := r.Simple.toRegExp()
	for range r.Stars {
		e = makeRepeat(e)
	}
	return e
}

func (s *simpleExp) toRegExp() *RegExp {
	if s.Group != nil {
		return s.Group.toRegExp()
	}
	c, _ := utf8.DecodeRuneInString(*s.Char)
	return makeChar(c)
}
