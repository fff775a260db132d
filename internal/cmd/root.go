package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cpcf/scaffold/config"
	"github.com/cpcf/scaffold/engine"
	"github.com/cpcf/scaffold/internal/output"
	"github.com/cpcf/scaffold/meta"
	"github.com/cpcf/scaffold/processors"
)

type rootOptions struct {
	entity     string
	templates  string
	tags       string
	configPath string
	outputDir  string
	format     bool
	atomic     bool
	strict     bool
	verbose    bool
}

// NewRootCmd creates the scaffold command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "scaffold [entity] [templates] [tags]",
		Short: "Generate files for an entity from annotated templates",
		Long: `scaffold renders every "*.template.*" file found under the templates folder
for the given entity and writes the result to the path declared by the
template's "// META: output=..." line. Existing files are never overwritten.

Templates may use {{EntityName}}, {{entityName}}, {{ENTITY_NAME}} and
{{entity-name}}. When tags are given, only templates declaring at least one
of them ("// META: tags=entity, service") are generated.`,
		Example: `  scaffold --entity Product
  scaffold -e Order -t my-templates
  scaffold -e Invoice -g entity,service,controller

  # positional form
  scaffold Order templates entity,service`,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(c, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.entity, "entity", "e", "", "Name of the entity to generate (e.g. Product)")
	flags.StringVarP(&opts.templates, "templates", "t", "", `Templates folder (default "templates")`)
	flags.StringVarP(&opts.tags, "tags", "g", "", "Comma-separated tags selecting templates")
	flags.StringVar(&opts.configPath, "config", "", "Project file (default "+config.ProjectFile+" if present)")
	flags.StringVarP(&opts.outputDir, "output", "o", "", "Base directory for generated files (default: working directory)")
	flags.BoolVar(&opts.format, "format", false, "Format generated Go files with goimports")
	flags.BoolVar(&opts.atomic, "atomic", false, "Write each file through a temporary file")
	flags.BoolVar(&opts.strict, "strict", false, "Exit with an error if any template fails")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

// runSettings is the merged result of project file, flags and arguments.
type runSettings struct {
	entity       string
	templatesDir string
	outputRoot   string
	tags         []string
	project      *config.Project
}

func runGenerate(c *cobra.Command, opts *rootOptions, args []string) error {
	logger := output.NewLogger(c.ErrOrStderr(), output.LogConfig{Verbose: opts.verbose})

	settings, err := resolveSettings(c, opts, args)
	if err != nil {
		return err
	}

	engineOpts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithAtomicWrites(settings.project.Atomic),
		engine.WithDiscoveryRules(settings.project.DiscoveryRule()),
	}
	if settings.project.Format {
		engineOpts = append(engineOpts, engine.WithPostProcessor(processors.NewGoImports()))
	}
	if settings.project.Strict {
		engineOpts = append(engineOpts, engine.WithFailureMode(engine.FailAtEnd))
	}

	ctx, err := engine.NewDirContext(settings.templatesDir, settings.outputRoot)
	if err != nil {
		return NewExitError(err, ExitGeneralError)
	}

	summary, err := engine.New(engineOpts...).Generate(ctx, settings.entity, settings.tags)
	if summary != nil {
		fmt.Fprint(c.OutOrStdout(), output.FormatSummary(summary))
	}
	if err != nil {
		return NewExitError(err, ExitCodeFromError(err))
	}
	return nil
}

func resolveSettings(c *cobra.Command, opts *rootOptions, args []string) (*runSettings, error) {
	flags := c.Flags()
	named := flags.Changed("entity") || flags.Changed("templates") || flags.Changed("tags")
	if named && len(args) > 0 {
		return nil, NewExitError(errors.New("positional arguments cannot be combined with --entity, --templates or --tags"), ExitUsageError)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, NewExitError(fmt.Errorf("failed to determine working directory: %w", err), ExitGeneralError)
	}

	project, err := loadProject(opts.configPath, workDir)
	if err != nil {
		return nil, NewExitError(err, ExitUsageError)
	}

	entity, templates, tagList := opts.entity, opts.templates, opts.tags
	if len(args) > 0 {
		entity = args[0]
	}
	if len(args) > 1 {
		templates = args[1]
	}
	if len(args) > 2 {
		tagList = args[2]
	}

	if strings.TrimSpace(entity) == "" {
		return nil, NewExitError(fmt.Errorf("%w; use --help for usage information", engine.ErrEntityNameRequired), ExitGeneralError)
	}

	if templates != "" {
		project.Templates = templates
	}
	if tagList != "" {
		project.Tags = meta.ParseTags(tagList)
	}
	if opts.outputDir != "" {
		project.Output = opts.outputDir
	}
	project.Format = project.Format || opts.format
	project.Atomic = project.Atomic || opts.atomic
	project.Strict = project.Strict || opts.strict

	return &runSettings{
		entity:       entity,
		templatesDir: resolvePath(workDir, project.Templates),
		outputRoot:   resolvePath(workDir, project.Output),
		tags:         project.Tags,
		project:      project,
	}, nil
}

func loadProject(configPath, workDir string) (*config.Project, error) {
	if configPath != "" {
		return config.LoadProject(configPath)
	}
	project, _, err := config.FindProject(workDir)
	return project, err
}

func resolvePath(base, p string) string {
	if p == "" {
		return base
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
