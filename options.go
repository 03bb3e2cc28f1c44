package automaton

import "github.com/go-logr/logr"

type options struct {
	log logr.Logger

	// Maximum number of DFA states Determinize may create; 0 means no limit.
	determinizeWorkLimit int
}

type Option func(*options)

func newOptions(opts ...Option) *options {
	o := &options{
		log: logr.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger the pipeline stages report to. Stages log at V(1).
func WithLogger(log logr.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithDeterminizeWorkLimit bounds the number of states the subset construction may create.
func WithDeterminizeWorkLimit(limit int) Option {
	return func(o *options) {
		o.determinizeWorkLimit = limit
	}
}
