package render

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// DefaultPattern matches template files such as "service.template.go".
const DefaultPattern = "*.template.*"

// DiscoveryRule selects template files by base-name pattern.
type DiscoveryRule struct {
	Name      string   `json:"name" yaml:"name"`
	Patterns  []string `json:"patterns" yaml:"patterns"`
	Exclude   []string `json:"exclude" yaml:"exclude"`
	Recursive bool     `json:"recursive" yaml:"recursive"`
}

// DefaultRule finds every "*.template.*" file below the root.
func DefaultRule() DiscoveryRule {
	return DiscoveryRule{
		Name:      "templates",
		Patterns:  []string{DefaultPattern},
		Recursive: true,
	}
}

type DiscoveredTemplate struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	Extension string `json:"extension"`
	Directory string `json:"directory"`
	RuleName  string `json:"rule_name"`
}

// TemplateDiscovery walks a filesystem for files matching its rules.
type TemplateDiscovery struct {
	templateFS fs.FS
	rules      []DiscoveryRule
}

func NewTemplateDiscovery(templateFS fs.FS, rules ...DiscoveryRule) *TemplateDiscovery {
	if len(rules) == 0 {
		rules = []DiscoveryRule{DefaultRule()}
	}
	return &TemplateDiscovery{
		templateFS: templateFS,
		rules:      rules,
	}
}

func (td *TemplateDiscovery) AddRule(rule DiscoveryRule) {
	td.rules = append(td.rules, rule)
}

func (td *TemplateDiscovery) Rules() []DiscoveryRule {
	return td.rules
}

// DiscoverTemplates returns the matching files under rootPath sorted by
// path. A file matched by several rules is reported once.
func (td *TemplateDiscovery) DiscoverTemplates(rootPath string) ([]DiscoveredTemplate, error) {
	var discovered []DiscoveredTemplate
	seen := make(map[string]bool)

	for _, rule := range td.rules {
		templates, err := td.discoverByRule(rootPath, rule)
		if err != nil {
			return nil, fmt.Errorf("discovery failed for rule %s: %w", rule.Name, err)
		}

		for _, tmpl := range templates {
			if !seen[tmpl.Path] {
				discovered = append(discovered, tmpl)
				seen[tmpl.Path] = true
			}
		}
	}

	sort.Slice(discovered, func(i, j int) bool {
		return discovered[i].Path < discovered[j].Path
	})
	return discovered, nil
}

func (td *TemplateDiscovery) discoverByRule(rootPath string, rule DiscoveryRule) ([]DiscoveredTemplate, error) {
	var discovered []DiscoveredTemplate

	if !rule.Recursive {
		entries, err := fs.ReadDir(td.templateFS, rootPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", rootPath, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			p := path.Join(rootPath, entry.Name())
			if matchesRule(p, rule) {
				discovered = append(discovered, newDiscoveredTemplate(p, rule))
			}
		}
		return discovered, nil
	}

	err := fs.WalkDir(td.templateFS, rootPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if matchesRule(p, rule) {
			discovered = append(discovered, newDiscoveredTemplate(p, rule))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", rootPath, err)
	}

	return discovered, nil
}

func matchesRule(p string, rule DiscoveryRule) bool {
	base := path.Base(p)

	for _, excludePattern := range rule.Exclude {
		if matched, _ := path.Match(excludePattern, base); matched {
			return false
		}
	}

	if len(rule.Patterns) == 0 {
		return true
	}
	for _, pattern := range rule.Patterns {
		if matched, _ := path.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

func newDiscoveredTemplate(p string, rule DiscoveryRule) DiscoveredTemplate {
	base := path.Base(p)
	ext := path.Ext(base)

	return DiscoveredTemplate{
		Path:      p,
		Name:      strings.TrimSuffix(base, ext),
		Extension: ext,
		Directory: path.Dir(p),
		RuleName:  rule.Name,
	}
}
