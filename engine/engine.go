// Package engine runs template generation for an entity: it discovers
// templates, filters them by tag, substitutes the entity variables and
// writes every output that does not exist yet.
package engine

import (
	"log/slog"

	"github.com/cpcf/scaffold/postprocess"
	"github.com/cpcf/scaffold/render"
	"github.com/cpcf/scaffold/write"
)

type Engine struct {
	logger         *slog.Logger
	writer         write.Writer
	writeOptions   write.WriteOptions
	failMode       FailureMode
	rules          []render.DiscoveryRule
	postprocessors *postprocess.Chain
}

// FailureMode decides how per-template errors affect the result of Generate.
type FailureMode int

const (
	// BestEffort records per-template errors in the summary and never
	// returns them.
	BestEffort FailureMode = iota
	// FailAtEnd processes every template, then returns the collected errors.
	FailAtEnd
	// FailFast stops at the first per-template error.
	FailFast
)

func New(opts ...Option) *Engine {
	e := &Engine{
		logger:         slog.Default(),
		writer:         write.NewBaseWriter(),
		writeOptions:   write.DefaultOptions(),
		failMode:       BestEffort,
		rules:          []render.DiscoveryRule{render.DefaultRule()},
		postprocessors: postprocess.NewChain(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}
