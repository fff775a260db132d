package engine

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Context describes where a run reads templates from and writes to.
type Context struct {
	// TmplFS holds the templates; TemplateDir is the root searched within it.
	TmplFS      fs.FS
	TemplateDir string
	// OutputRoot is the directory output paths are resolved against.
	OutputRoot string
	// Location names the templates directory in messages.
	Location string
}

func NewContext(tmplFS fs.FS, templateDir, outputRoot string) Context {
	return Context{
		TmplFS:      tmplFS,
		TemplateDir: templateDir,
		OutputRoot:  outputRoot,
		Location:    templateDir,
	}
}

// NewDirContext reads templates from the templatesDir directory on disk.
func NewDirContext(templatesDir, outputRoot string) (Context, error) {
	abs, err := filepath.Abs(templatesDir)
	if err != nil {
		return Context{}, err
	}

	return Context{
		TmplFS:      os.DirFS(filepath.Dir(abs)),
		TemplateDir: filepath.Base(abs),
		OutputRoot:  outputRoot,
		Location:    templatesDir,
	}, nil
}

func (c Context) location() string {
	if c.Location != "" {
		return c.Location
	}
	return c.TemplateDir
}
