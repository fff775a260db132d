// Package processors holds post-processors for generated files.
package processors

import (
	"fmt"
	"go/format"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

// GoImports runs generated Go files through goimports, falling back to
// gofmt when import resolution fails. Other files pass through unchanged.
type GoImports struct {
	TabWidth  int
	TabIndent bool
	AllErrors bool
	Comments  bool
}

func NewGoImports() *GoImports {
	return &GoImports{
		TabWidth:  8,
		TabIndent: true,
		Comments:  true,
	}
}

func (g *GoImports) ProcessContent(outputPath string, content []byte) ([]byte, error) {
	if !isGoFile(outputPath) {
		return content, nil
	}

	options := &imports.Options{
		AllErrors: g.AllErrors,
		Comments:  g.Comments,
		TabIndent: g.TabIndent,
		TabWidth:  g.TabWidth,
	}

	formatted, err := imports.Process(outputPath, content, options)
	if err == nil {
		return formatted, nil
	}

	formatted, fmtErr := format.Source(content)
	if fmtErr != nil {
		return nil, fmt.Errorf("goimports: %w; gofmt: %v", err, fmtErr)
	}
	return formatted, nil
}

func isGoFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".go")
}
