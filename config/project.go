package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cpcf/scaffold/render"
)

// ProjectFile is looked up in the working directory when no explicit
// configuration path is given.
const ProjectFile = ".scaffold.yaml"

// Project holds the settings a generation run starts from. Command-line
// flags take precedence over these values.
type Project struct {
	// Templates is the templates folder, relative to the output root unless absolute.
	Templates string `yaml:"templates"`
	// Output is the base directory generated paths are resolved against.
	Output string   `yaml:"output"`
	Tags   []string `yaml:"tags"`

	// Patterns select template files by base name.
	Patterns []string `yaml:"patterns"`
	Exclude  []string `yaml:"exclude"`

	Format bool `yaml:"format"`
	Atomic bool `yaml:"atomic"`
	Strict bool `yaml:"strict"`
}

func DefaultProject() Project {
	return Project{
		Templates: "templates",
		Patterns:  []string{render.DefaultPattern},
	}
}

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Templates) == "" {
		return errors.New("templates must not be empty")
	}
	for i, tag := range p.Tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("tags[%d] must not be empty", i)
		}
	}
	if len(p.Patterns) == 0 {
		return errors.New("at least one pattern is required")
	}
	for _, pattern := range append(append([]string{}, p.Patterns...), p.Exclude...) {
		if _, err := path.Match(pattern, ""); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
	}
	return nil
}

// DiscoveryRule converts the pattern settings into a recursive rule.
func (p *Project) DiscoveryRule() render.DiscoveryRule {
	rule := render.DefaultRule()
	rule.Patterns = p.Patterns
	rule.Exclude = p.Exclude
	return rule
}

// LoadProject reads the file at path on top of DefaultProject.
func LoadProject(path string) (*Project, error) {
	project := DefaultProject()
	if err := LoadYAML(path, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// FindProject loads ProjectFile from dir if present, otherwise it returns
// the defaults. The second result reports whether a file was read.
func FindProject(dir string) (*Project, bool, error) {
	candidate := filepath.Join(dir, ProjectFile)
	if _, err := os.Stat(candidate); err != nil {
		if os.IsNotExist(err) {
			project := DefaultProject()
			return &project, false, nil
		}
		return nil, false, fmt.Errorf("failed to stat %s: %w", candidate, err)
	}

	project, err := LoadProject(candidate)
	if err != nil {
		return nil, false, err
	}
	return project, true, nil
}
