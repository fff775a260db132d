package engine

import (
	"log/slog"

	"github.com/cpcf/scaffold/postprocess"
	"github.com/cpcf/scaffold/render"
	"github.com/cpcf/scaffold/write"
)

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithWriter replaces the local filesystem writer.
func WithWriter(w write.Writer) Option {
	return func(e *Engine) {
		e.writer = w
	}
}

func WithFailureMode(mode FailureMode) Option {
	return func(e *Engine) {
		e.failMode = mode
	}
}

// WithAtomicWrites stages each file in a temporary sibling before moving it into place.
func WithAtomicWrites(atomic bool) Option {
	return func(e *Engine) {
		e.writeOptions.Atomic = atomic
	}
}

// WithDiscoveryRules replaces the default "*.template.*" rule.
func WithDiscoveryRules(rules ...render.DiscoveryRule) Option {
	return func(e *Engine) {
		e.rules = rules
	}
}

func WithPostProcessor(processor postprocess.Processor) Option {
	return func(e *Engine) {
		e.postprocessors.Add(processor)
	}
}
