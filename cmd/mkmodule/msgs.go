package mkmodule

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate an Lmod modulefile from a template"
	MsgVersionShort    = "Print version information"
	MsgGenConfigShort  = "Print a configuration file"
	MsgGenConfigLong   = "Print the effective settings as a configuration file. With --commented the built-in defaults are printed with every value commented out."
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgModuleCreated = "Module file created successfully: %s\n"
	MsgDryRunNotice  = "DRY RUN - would write %s\n"
	MsgEditorSkipped = "Could not open %s in %s\n"

	// Version output
	MsgVersionFormat = "mkmodule version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrGenConfig = "failed to generate configuration: %w"
	MsgErrManPages  = "failed to generate man pages: %w"

	// Flag descriptions
	MsgFlagName       = "Module name"
	MsgFlagVersion    = "Module version, used as the file name"
	MsgFlagDesc       = "Module description"
	MsgFlagURL        = "Module homepage URL"
	MsgFlagAsurite    = "Account id of the maintainer (default: the current login)"
	MsgFlagOutputDir  = "Modulefile tree root (default: from configuration)"
	MsgFlagDomain     = "Email domain appended to the account id (default: from configuration)"
	MsgFlagEdit       = "Open the generated file in the configured editor"
	MsgFlagTemplate   = "Template file (default: from configuration)"
	MsgFlagConfig     = "Configuration file (default: mkmodule.toml next to the binary)"
	MsgFlagExt        = "Output file extension (default: from configuration)"
	MsgFlagDryRun     = "Print the generated file instead of writing it"
	MsgFlagNoInput    = "Never prompt; missing values are errors"
	MsgFlagVerbose    = "Increase verbosity (-V INFO, -VV DEBUG, -VVV TRACE)"
	MsgFlagCommented  = "Print the defaults with values commented out"
	MsgFlagManDir     = "Directory to write man pages to"
	MsgDefaultManDir  = "."
)

// Embedded message files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
