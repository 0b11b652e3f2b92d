package config

// Settings holds the defaults a run falls back to when flags don't say otherwise
type Settings struct {
	// OutputDirectory is the root of the modulefile tree
	OutputDirectory string `koanf:"output_dir" toml:"output_dir"`
	// EmailDomain is appended to the account id after an @
	EmailDomain string `koanf:"domain" toml:"domain"`
	// TemplatePath is the modulefile template, relative paths live under <OutputDirectory>/template
	TemplatePath string `koanf:"module_template" toml:"module_template"`
	// EditorCommand is launched on the generated file when editing is requested
	EditorCommand string `koanf:"editor" toml:"editor"`
	// PrivilegedUsers are shared accounts that must be swapped for a personal id
	PrivilegedUsers []string `koanf:"privileged_users" toml:"privileged_users"`
	// Extension of the generated file, without the dot
	Extension string `koanf:"extension" toml:"extension"`
	// Width and Indent control description wrapping
	Width  int    `koanf:"width" toml:"width"`
	Indent string `koanf:"indent" toml:"indent"`
}

// Built-in values used when even the embedded defaults cannot be parsed
const (
	DefaultOutputDirectory = "/packages/modulefiles/apps"
	DefaultEmailDomain     = "asu.edu"
	DefaultTemplatePath    = "module.tmpl"
	DefaultEditorCommand   = "vim"
	DefaultExtension       = "lua"
	DefaultWidth           = 78
	DefaultIndent          = "  "
)

// DefaultPrivilegedUsers lists the shared accounts known out of the box
var DefaultPrivilegedUsers = []string{"root", "software"}

// builtinSettings returns the hard-coded defaults
func builtinSettings() Settings {
	return Settings{
		OutputDirectory: DefaultOutputDirectory,
		EmailDomain:     DefaultEmailDomain,
		TemplatePath:    DefaultTemplatePath,
		EditorCommand:   DefaultEditorCommand,
		PrivilegedUsers: append([]string(nil), DefaultPrivilegedUsers...),
		Extension:       DefaultExtension,
		Width:           DefaultWidth,
		Indent:          DefaultIndent,
	}
}

// PrivilegedSet returns the privileged users as a lookup set
func (s Settings) PrivilegedSet() map[string]bool {
	set := make(map[string]bool, len(s.PrivilegedUsers))
	for _, u := range s.PrivilegedUsers {
		if u != "" {
			set[u] = true
		}
	}
	return set
}

// IsPrivileged reports whether id is one of the configured privileged users
func (s Settings) IsPrivileged(id string) bool {
	return s.PrivilegedSet()[id]
}
