package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	s := Defaults()

	assert.Equal(t, "/packages/modulefiles/apps", s.OutputDirectory)
	assert.Equal(t, "asu.edu", s.EmailDomain)
	assert.Equal(t, "module.tmpl", s.TemplatePath)
	assert.Equal(t, "vim", s.EditorCommand)
	assert.Equal(t, []string{"root", "software"}, s.PrivilegedUsers)
	assert.Equal(t, "lua", s.Extension)
	assert.Equal(t, 78, s.Width)
	assert.Equal(t, "  ", s.Indent)
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	assert.Equal(t, builtinSettings(), Defaults())
}

func TestLoad(t *testing.T) {
	t.Run("missing_file_returns_defaults", func(t *testing.T) {
		s := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Equal(t, Defaults(), s)
	})

	t.Run("empty_path_returns_defaults", func(t *testing.T) {
		assert.Equal(t, Defaults(), Load(""))
	})

	t.Run("malformed_file_returns_defaults", func(t *testing.T) {
		path := writeConfig(t, "[Settings\noutput_dir = ")
		assert.Equal(t, Defaults(), Load(path))
	})

	t.Run("wrongly_typed_values_return_defaults", func(t *testing.T) {
		path := writeConfig(t, `
[Settings]
width = "wide"
`)
		assert.Equal(t, Defaults(), Load(path))
	})

	t.Run("file_overrides_defaults", func(t *testing.T) {
		path := writeConfig(t, `
[Settings]
output_dir = "/opt/modulefiles"
domain = "example.org"
module_template = "/etc/mkmodule/lua.tmpl"
editor = "nano"
privileged_users = ["admin", "svc"]
`)
		s := Load(path)

		assert.Equal(t, "/opt/modulefiles", s.OutputDirectory)
		assert.Equal(t, "example.org", s.EmailDomain)
		assert.Equal(t, "/etc/mkmodule/lua.tmpl", s.TemplatePath)
		assert.Equal(t, "nano", s.EditorCommand)
		assert.Equal(t, []string{"admin", "svc"}, s.PrivilegedUsers)
		// untouched keys keep their defaults
		assert.Equal(t, "lua", s.Extension)
		assert.Equal(t, 78, s.Width)
	})

	t.Run("partial_file_keeps_other_defaults", func(t *testing.T) {
		path := writeConfig(t, `
[Settings]
domain = "example.org"
`)
		s := Load(path)

		assert.Equal(t, "example.org", s.EmailDomain)
		assert.Equal(t, "/packages/modulefiles/apps", s.OutputDirectory)
		assert.Equal(t, []string{"root", "software"}, s.PrivilegedUsers)
	})

	t.Run("empty_values_fall_back", func(t *testing.T) {
		path := writeConfig(t, `
[Settings]
domain = ""
extension = ".tcl"
width = 0
`)
		s := Load(path)

		assert.Equal(t, "asu.edu", s.EmailDomain)
		assert.Equal(t, "tcl", s.Extension)
		assert.Equal(t, 78, s.Width)
	})

	t.Run("blank_domain_and_bare_dot_extension_fall_back", func(t *testing.T) {
		path := writeConfig(t, `
[Settings]
domain = "   "
extension = "."
`)
		s := Load(path)

		assert.Equal(t, "asu.edu", s.EmailDomain)
		assert.Equal(t, "lua", s.Extension)
	})

	t.Run("environment_overrides_file", func(t *testing.T) {
		path := writeConfig(t, `
[Settings]
domain = "example.org"
`)
		t.Setenv("MKMODULE_SETTINGS_DOMAIN", "env.example.net")
		t.Setenv("MKMODULE_SETTINGS_PRIVILEGED_USERS", "admin,builder")
		t.Setenv("MKMODULE_SETTINGS_WIDTH", "60")
		t.Setenv("MKMODULE_UNRELATED", "ignored")

		s := Load(path)

		assert.Equal(t, "env.example.net", s.EmailDomain)
		assert.Equal(t, []string{"admin", "builder"}, s.PrivilegedUsers)
		assert.Equal(t, 60, s.Width)
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "Settings.output_dir", envKey("MKMODULE_SETTINGS_OUTPUT_DIR"))
	assert.Equal(t, "Settings.domain", envKey("MKMODULE_SETTINGS_DOMAIN"))
	assert.Equal(t, "", envKey("MKMODULE_VERBOSE"))
}

func TestPrivilegedSet(t *testing.T) {
	s := Settings{PrivilegedUsers: []string{"root", "", "software"}}

	set := s.PrivilegedSet()
	assert.Len(t, set, 2)
	assert.True(t, s.IsPrivileged("root"))
	assert.True(t, s.IsPrivileged("software"))
	assert.False(t, s.IsPrivileged("jdoe"))
	assert.False(t, s.IsPrivileged(""))
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Equal(t, ConfigFileName, filepath.Base(path))
}
