package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cpcf/scaffold/engine"
)

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogConfig{})
	logger.Debug("hidden")
	logger.Info("file generated", "output", "out/a.txt")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "file generated")
	assert.Contains(t, out, "out/a.txt")

	buf.Reset()
	logger = NewLogger(&buf, LogConfig{Verbose: true})
	logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestFormatSummary(t *testing.T) {
	summary := &engine.Summary{
		Entity: "Product",
		Files: []engine.FileResult{
			{Template: "templates/a.template.txt", Output: "generated/Product.txt", Outcome: engine.Generated},
			{Template: "templates/b.template.txt", Outcome: engine.SkippedNoOutput},
			{Template: "templates/c.template.txt", Output: "c.txt", Outcome: engine.SkippedError, Err: errors.New("disk full")},
		},
	}

	out := FormatSummary(summary)
	assert.Contains(t, out, "generated/Product.txt")
	assert.Contains(t, out, "templates/b.template.txt")
	assert.Contains(t, out, "no output metadata")
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, "Generation completed for Product: 1 generated, 2 skipped")
}
