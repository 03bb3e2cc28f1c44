// Package batch runs independent pipelines for many expressions at once.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-logr/logr"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	automaton "github.com/geange/go-automaton"
	"github.com/geange/go-automaton/syntax"
)

type config struct {
	parallelism int
	postfix     bool
	log         logr.Logger
	pipeline    []automaton.Option
}

type Option func(*config)

// WithParallelism bounds the number of pipelines running at once. Defaults to GOMAXPROCS.
var WithParallelism = func(n int) Option {
	return func(c *config) {
		c.parallelism = n
	}
}

// WithPostfix makes Compile read expressions as postfix token strings instead of infix syntax.
var WithPostfix = func(postfix bool) Option {
	return func(c *config) {
		c.postfix = postfix
	}
}

var WithLogr = func(log logr.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithPipelineOptions passes opts to every pipeline run.
var WithPipelineOptions = func(opts ...automaton.Option) Option {
	return func(c *config) {
		c.pipeline = append(c.pipeline, opts...)
	}
}

// Result is the outcome for one expression. Automata is nil when Err is set.
type Result struct {
	Expr     string
	Automata *automaton.Result
	Err      error
}

// Compile builds every expression in its own pipeline. Results are returned in input order, also
// for expressions that failed; the returned error combines every failure.
func Compile(ctx context.Context, exprs []string, opts ...Option) ([]Result, error) {
	c := &config{
		parallelism: runtime.GOMAXPROCS(0),
		log:         logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	results := make([]Result, len(exprs))
	grp, ctx := errgroup.WithContext(ctx)
	if c.parallelism > 0 {
		grp.SetLimit(c.parallelism)
	}

	for i, expr := range exprs {
		grp.Go(func() error {
			results[i] = c.build(ctx, expr)
			return nil
		})
	}
	_ = grp.Wait()

	var err error
	for i, r := range results {
		if r.Err != nil {
			err = multierr.Append(err, fmt.Errorf("expression %d %q: %w", i, r.Expr, r.Err))
		}
	}
	return results, err
}

func (c *config) build(ctx context.Context, expr string) Result {
	r := Result{Expr: expr}
	if err := ctx.Err(); err != nil {
		r.Err = err
		return r
	}

	log := c.log.WithValues("expr", expr)
	opts := append([]automaton.Option{automaton.WithLogger(log)}, c.pipeline...)

	if c.postfix {
		r.Automata, r.Err = automaton.Build(automaton.Tokens(expr), opts...)
	} else {
		r.Automata, r.Err = syntax.Build(expr, opts...)
	}

	if r.Err != nil {
		log.Error(r.Err, "pipeline failed")
		return r
	}
	log.V(1).Info("pipeline done", "nfaStates", r.Automata.NFA.NumStates(),
		"dfaStates", r.Automata.DFA.NumStates(), "minimalStates", r.Automata.Minimal.NumStates())
	return r
}
