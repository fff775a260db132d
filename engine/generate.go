package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/cpcf/scaffold/meta"
	"github.com/cpcf/scaffold/render"
)

// Generate renders every template under ctx.TemplateDir for entity. When
// tags is non-empty only templates carrying one of them take part.
//
// A configuration problem (blank entity, missing templates directory, no
// templates) is returned before anything is written. Problems with single
// templates are recorded in the summary; whether they are also returned
// depends on the engine's FailureMode.
func (e *Engine) Generate(ctx Context, entity string, tags []string) (*Summary, error) {
	if strings.TrimSpace(entity) == "" {
		return nil, ErrEntityNameRequired
	}

	if err := e.checkTemplateDir(ctx); err != nil {
		return nil, err
	}

	discovery := render.NewTemplateDiscovery(ctx.TmplFS, e.rules...)
	templates, err := discovery.DiscoverTemplates(ctx.TemplateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to discover templates in %s: %w", ctx.location(), err)
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTemplates, ctx.location())
	}

	logger := e.logger.With("run", uuid.NewString())
	logger.Info("generating code", "entity", entity, "templates", len(templates), "tags", tags)

	summary := &Summary{
		Entity:    entity,
		Variables: render.Derive(entity),
	}

	for _, tmpl := range templates {
		result := e.processTemplate(ctx, logger, tmpl.Path, summary.Variables, tags)
		summary.Files = append(summary.Files, result)

		if result.Outcome != SkippedError {
			continue
		}
		genErr := summary.Errors.Add(result.Template, "template failed", result.Err)
		if e.failMode == FailFast {
			return summary, genErr
		}
	}

	logger.Info("generation completed", "generated", summary.Generated(), "skipped", summary.Skipped())

	if e.failMode == FailAtEnd && summary.Errors.HasErrors() {
		return summary, &summary.Errors
	}
	return summary, nil
}

func (e *Engine) checkTemplateDir(ctx Context) error {
	info, err := fs.Stat(ctx.TmplFS, ctx.TemplateDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrTemplatesDirNotFound, ctx.location())
		}
		return fmt.Errorf("failed to access templates directory %s: %w", ctx.location(), err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrTemplatesDirNotFound, ctx.location())
	}
	return nil
}

func (e *Engine) processTemplate(ctx Context, logger *slog.Logger, path string, vars render.VariableSet, tags []string) FileResult {
	result := FileResult{Template: path}
	logger = logger.With("template", path)

	fail := func(output string, err error) FileResult {
		logger.Error("failed to process template", "error", err)
		result.Output = output
		result.Outcome = SkippedError
		result.Err = err
		return result
	}

	raw, err := fs.ReadFile(ctx.TmplFS, path)
	if err != nil {
		return fail("", fmt.Errorf("failed to read template: %w", err))
	}

	tmpl := meta.Parse(path, string(raw))
	for _, decl := range tmpl.Metadata.Ignored {
		logger.Warn("ignoring metadata declaration", "declaration", decl)
	}

	if !tmpl.Metadata.Valid() {
		logger.Warn("template has no output metadata, skipping")
		result.Outcome = SkippedNoOutput
		return result
	}

	if !meta.IsEligible(tmpl.Metadata, tags) {
		logger.Debug("template tags not requested, skipping", "template_tags", tmpl.Metadata.Tags)
		result.Outcome = SkippedTagMismatch
		return result
	}

	content := []byte(render.Render(tmpl.Body, vars))

	outputPath, err := resolveOutputPath(ctx.OutputRoot, render.Render(tmpl.Metadata.Output, vars))
	if err != nil {
		return fail("", err)
	}
	result.Output = outputPath

	exists, err := e.writer.Exists(outputPath)
	if err != nil {
		return fail(outputPath, fmt.Errorf("failed to check %s: %w", outputPath, err))
	}
	if exists {
		logger.Info("file already exists, skipping", "output", outputPath)
		result.Outcome = SkippedExists
		return result
	}

	if e.postprocessors.HasProcessors() {
		processed, err := e.postprocessors.Process(outputPath, content)
		if err != nil {
			logger.Warn("post-processing failed, writing unprocessed content", "output", outputPath, "error", err)
		} else {
			content = processed
		}
	}

	if err := e.writer.Write(outputPath, content, e.writeOptions); err != nil {
		if errors.Is(err, fs.ErrExist) {
			logger.Info("file already exists, skipping", "output", outputPath)
			result.Outcome = SkippedExists
			return result
		}
		return fail(outputPath, fmt.Errorf("failed to write %s: %w", outputPath, err))
	}

	logger.Info("file generated", "output", outputPath)
	result.Outcome = Generated
	return result
}

// resolveOutputPath joins a rendered output path onto root. Absolute paths
// and paths climbing out of root are rejected.
func resolveOutputPath(root, output string) (string, error) {
	output = filepath.FromSlash(strings.TrimSpace(output))
	if output == "" {
		return "", fmt.Errorf("%w: output path is empty after substitution", ErrUnsafeOutputPath)
	}
	if filepath.IsAbs(output) || strings.HasPrefix(output, string(filepath.Separator)) || filepath.VolumeName(output) != "" {
		return "", fmt.Errorf("%w: %s is absolute", ErrUnsafeOutputPath, output)
	}

	if root == "" {
		root = "."
	}
	joined := filepath.Join(root, output)

	rel, err := filepath.Rel(filepath.Clean(root), joined)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsafeOutputPath, err)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrUnsafeOutputPath, output)
	}

	return joined, nil
}
