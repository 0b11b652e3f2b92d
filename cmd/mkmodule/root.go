package mkmodule

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rcops/mkmodule/pkg/config"
	"github.com/rcops/mkmodule/pkg/fields"
	"github.com/rcops/mkmodule/pkg/generate"
	"github.com/rcops/mkmodule/pkg/logging"
	"github.com/rcops/mkmodule/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootFlags holds the values bound to the root command's flags
type rootFlags struct {
	verbosity  int
	name       string
	version    string
	desc       string
	url        string
	asurite    string
	outputDir  string
	domain     string
	template   string
	configPath string
	ext        string
	edit       bool
	dryRun     bool
	noInput    bool
}

// NewRootCmd creates the root command wired to the host
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(generate.Dependencies{})
}

// NewRootCmdWithDeps creates the root command with the given collaborators.
// Nil members are replaced with host implementations.
func NewRootCmdWithDeps(deps generate.Dependencies) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "mkmodule",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags, deps)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	f := rootCmd.Flags()
	f.StringVarP(&flags.name, "name", "n", "", MsgFlagName)
	f.StringVarP(&flags.version, "version", "v", "", MsgFlagVersion)
	f.StringVarP(&flags.desc, "desc", "d", "", MsgFlagDesc)
	f.StringVarP(&flags.url, "url", "u", "", MsgFlagURL)
	f.StringVarP(&flags.asurite, "asurite", "a", "", MsgFlagAsurite)
	f.StringVarP(&flags.outputDir, "output-dir", "o", "", MsgFlagOutputDir)
	f.StringVar(&flags.domain, "domain", "", MsgFlagDomain)
	f.StringVarP(&flags.template, "template", "t", "", MsgFlagTemplate)
	f.StringVar(&flags.ext, "ext", "", MsgFlagExt)
	f.BoolVarP(&flags.edit, "edit", "e", false, MsgFlagEdit)
	f.BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	f.BoolVar(&flags.noInput, "no-input", false, MsgFlagNoInput)
	_ = rootCmd.MarkFlagDirname("output-dir")
	_ = rootCmd.MarkFlagFilename("template")

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "V", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", MsgFlagConfig)
	_ = rootCmd.MarkPersistentFlagFilename("config", "toml")

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenConfigCmd(flags))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// runGenerate loads settings, applies flag overrides and runs one generation
func runGenerate(cmd *cobra.Command, flags *rootFlags, deps generate.Dependencies) error {
	settings := loadSettings(flags)
	applySettingFlags(cmd, flags, &settings)

	opts := generate.Options{
		Overrides: fields.Overrides{
			Name:           flags.name,
			Version:        flags.version,
			Description:    flags.desc,
			URL:            flags.url,
			URLSet:         cmd.Flags().Changed("url"),
			AccountID:      flags.asurite,
			NonInteractive: flags.noInput,
		},
		Settings: settings,
		Edit:     flags.edit,
		DryRun:   flags.dryRun,
	}

	result, err := generate.New(deps).Run(opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.DryRun {
		fmt.Fprint(cmd.ErrOrStderr(), styled(cmd.ErrOrStderr(), "Muted", fmt.Sprintf(MsgDryRunNotice, result.Path)))
		fmt.Fprint(out, preview(out, result.Content, settings.Extension))
		return nil
	}

	fmt.Fprint(out, styled(out, "Success", fmt.Sprintf(MsgModuleCreated, result.Path)))
	if flags.edit && !result.Edited {
		fmt.Fprint(cmd.ErrOrStderr(), styled(cmd.ErrOrStderr(), "Warning", fmt.Sprintf(MsgEditorSkipped, result.Path, settings.EditorCommand)))
	}
	return nil
}

// loadSettings reads the configuration named by --config, or the default
// file next to the binary
func loadSettings(flags *rootFlags) config.Settings {
	path := flags.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// applySettingFlags overrides settings with the flags given on the command
// line. Values that are empty after trimming keep the configured setting.
func applySettingFlags(cmd *cobra.Command, flags *rootFlags, settings *config.Settings) {
	logger := logging.GetLogger("cli")
	override := func(flag, value string, target *string) {
		if !cmd.Flags().Changed(flag) {
			return
		}
		if value == "" {
			logger.Warn().Str("flag", flag).Str("kept", *target).Msg("empty value ignored, keeping configured setting")
			return
		}
		*target = value
	}

	override("output-dir", strings.TrimSpace(flags.outputDir), &settings.OutputDirectory)
	override("domain", strings.TrimSpace(flags.domain), &settings.EmailDomain)
	override("template", strings.TrimSpace(flags.template), &settings.TemplatePath)
	override("ext", strings.TrimLeft(strings.TrimSpace(flags.ext), "."), &settings.Extension)
}

// styled applies a named style when w is a color-capable terminal
func styled(w io.Writer, name, text string) string {
	if f, ok := w.(*os.File); ok {
		return style.Render(f, name, text)
	}
	return text
}

// preview renders dry-run content for w
func preview(w io.Writer, content, lang string) string {
	if f, ok := w.(*os.File); ok {
		return style.RenderPreview(f, content, lang)
	}
	return content
}
