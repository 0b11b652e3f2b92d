// Package generate runs one modulefile generation from inputs to file.
package generate

import (
	"time"

	"github.com/rcops/mkmodule/pkg/config"
	"github.com/rcops/mkmodule/pkg/editor"
	"github.com/rcops/mkmodule/pkg/fields"
	"github.com/rcops/mkmodule/pkg/identity"
	"github.com/rcops/mkmodule/pkg/logging"
	"github.com/rcops/mkmodule/pkg/modulefile"
	"github.com/rcops/mkmodule/pkg/prompt"
	"github.com/rcops/mkmodule/pkg/render"
	"github.com/rcops/mkmodule/pkg/types"
)

// Options describes a single run
type Options struct {
	Overrides fields.Overrides
	Settings  config.Settings
	// Edit opens the written file in Settings.EditorCommand
	Edit bool
	// DryRun renders without writing anything
	DryRun bool
}

// Result reports what a run produced
type Result struct {
	Record  *fields.Record
	Path    string
	Content string
	DryRun  bool
	Edited  bool
}

// Dependencies are the host collaborators; nil members get host defaults
type Dependencies struct {
	Prompter  prompt.Prompter
	Session   identity.Session
	Directory identity.Directory
	FS        types.FS
	Launcher  editor.Launcher
	Now       func() time.Time
}

// Generator sequences field resolution, rendering and writing
type Generator struct {
	resolver *fields.Resolver
	store    *modulefile.Store
	launcher editor.Launcher
}

// New creates a generator
func New(deps Dependencies) *Generator {
	if deps.Prompter == nil {
		deps.Prompter = prompt.New()
	}
	if deps.Session == nil {
		deps.Session = identity.NewHostSession()
	}
	if deps.Directory == nil {
		deps.Directory = identity.NewHostDirectory()
	}
	if deps.Launcher == nil {
		deps.Launcher = editor.NewExecLauncher()
	}

	resolver := fields.NewResolver(deps.Prompter, identity.NewResolver(deps.Session, deps.Directory, deps.Prompter))
	if deps.Now != nil {
		resolver = resolver.WithClock(deps.Now)
	}

	return &Generator{
		resolver: resolver,
		store:    modulefile.NewStore(deps.FS),
		launcher: deps.Launcher,
	}
}

// Run resolves the fields, renders the template and writes the modulefile.
// Nothing is written unless every earlier step succeeded.
func (g *Generator) Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("generate")
	defer logging.LogOperationStart(logger, "generate")()

	settings := opts.Settings

	rec, err := g.resolver.Resolve(opts.Overrides, settings)
	if err != nil {
		return nil, err
	}

	templatePath := modulefile.TemplatePath(settings.OutputDirectory, settings.TemplatePath)
	template, err := g.store.ReadTemplate(templatePath)
	if err != nil {
		return nil, err
	}
	if unknown := render.Unrecognized(template); len(unknown) > 0 {
		logger.Info().Strs("tokens", unknown).Str("template", templatePath).Msg("template has unrecognized placeholders, leaving them as-is")
	}

	content := render.Render(template, rec)
	path := modulefile.Path(settings.OutputDirectory, rec.Name, rec.Version, settings.Extension)

	result := &Result{Record: rec, Path: path, Content: content, DryRun: opts.DryRun}
	if opts.DryRun {
		logger.Info().Str("path", path).Msg("dry run, nothing written")
		return result, nil
	}

	if result.Path, err = g.store.Write(settings.OutputDirectory, rec.Name, rec.Version, settings.Extension, content); err != nil {
		return nil, err
	}

	if opts.Edit {
		if err := g.launcher.Launch(settings.EditorCommand, result.Path); err != nil {
			logger.Warn().Err(err).Str("editor", settings.EditorCommand).Msg("could not open editor")
		} else {
			result.Edited = true
		}
	}

	return result, nil
}
