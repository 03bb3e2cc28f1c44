package automaton

import (
	"fmt"
	"unicode"
)

// Compile Builds an NFA from a postfix token sequence using Thompson's construction. Any symbol
// other than OpConcat, OpUnion and OpStar is a literal. Tokens are evaluated left to right on a
// stack of fragments; operator precedence and grouping are the caller's business.
//
// Returns ErrMalformedExpression if an operator finds too few operands, or if the tokens do not
// reduce to exactly one automaton (this includes the empty sequence).
func Compile(tokens []Symbol, opts ...Option) (*NFA, error) {
	o := newOptions(opts...)

	a := newAutomata()
	stack := make([]fragment, 0, len(tokens))
	for pos, tok := range tokens {
		var (
			f   fragment
			err error
		)
		switch tok {
		case OpConcat, OpUnion:
			if len(stack) < 2 {
				return nil, fmt.Errorf("%w: %q at position %d needs 2 operands, have %d",
					ErrMalformedExpression, rune(tok), pos, len(stack))
			}
			f1, f2 := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			if tok == OpConcat {
				f, err = a.makeConcatenation(f1, f2)
			} else {
				f, err = a.makeUnion(f1, f2)
			}
		case OpStar:
			if len(stack) < 1 {
				return nil, fmt.Errorf("%w: %q at position %d needs 1 operand, have 0",
					ErrMalformedExpression, rune(tok), pos)
			}
			f1 := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			f, err = a.makeRepeat(f1)
		default:
			if tok < 0 {
				return nil, fmt.Errorf("%w: invalid symbol %d at position %d", ErrMalformedExpression, tok, pos)
			}
			f, err = a.makeChar(tok)
		}
		if err != nil {
			return nil, err
		}
		stack = append(stack, f)
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d tokens leave %d automata on the stack, want 1",
			ErrMalformedExpression, len(tokens), len(stack))
	}

	n := a.finish(stack[0])
	o.log.V(1).Info("compiled nfa", "tokens", len(tokens), "states", n.NumStates(), "alphabet", len(n.alphabet))
	return n, nil
}

// CompileString Compiles a postfix expression written as a string, e.g. "ab.c|*". White space is
// skipped.
func CompileString(postfix string, opts ...Option) (*NFA, error) {
	return Compile(Tokens(postfix), opts...)
}

// Tokens Splits a postfix string into symbols, skipping white space.
func Tokens(postfix string) []Symbol {
	tokens := make([]Symbol, 0, len(postfix))
	for _, r := range postfix {
		if unicode.IsSpace(r) {
			continue
		}
		tokens = append(tokens, Symbol(r))
	}
	return tokens
}

// MustCompileString is like CompileString but panics if the expression is malformed.
func MustCompileString(postfix string, opts ...Option) *NFA {
	n, err := CompileString(postfix, opts...)
	if err != nil {
		panic(err)
	}
	return n
}
