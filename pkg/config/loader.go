package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rcops/mkmodule/pkg/errors"
	"github.com/rcops/mkmodule/pkg/logging"
)

const (
	// ConfigFileName is looked up next to the executable
	ConfigFileName = "mkmodule.toml"
	// SettingsGroup is the table holding all keys
	SettingsGroup = "Settings"
	// EnvPrefix marks environment overrides, e.g. MKMODULE_SETTINGS_DOMAIN
	EnvPrefix = "MKMODULE_"
)

// DefaultPath returns the configuration file location next to the running binary
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return ConfigFileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), ConfigFileName)
}

// Defaults returns the settings used when no configuration file is present
func Defaults() Settings {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return builtinSettings()
	}
	s, err := unmarshalSettings(k)
	if err != nil {
		return builtinSettings()
	}
	return s
}

// Load reads settings from path layered over the defaults. It never fails:
// an unreadable or malformed file is skipped and the defaults stay in place.
func Load(path string) Settings {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		logger.Debug().Err(err).Msg("embedded defaults unreadable, using built-in values")
		if err := k.Load(confmap.Provider(settingsToMap(builtinSettings()), "."), nil); err != nil {
			return builtinSettings()
		}
	}

	// 2. Configuration file
	if path != "" {
		if err := loadFile(k, path); err != nil {
			logger.Debug().
				Str("code", string(errors.GetErrorCode(err))).
				Err(err).
				Msg("configuration file skipped")
		} else {
			logger.Debug().Str("path", path).Msg("configuration file loaded")
		}
	}

	// 3. Environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		logger.Debug().Err(err).Msg("failed to load environment overrides")
	}

	s, err := unmarshalSettings(k)
	if err != nil {
		logger.Debug().Err(err).Msg("configuration could not be decoded, using defaults")
		return Defaults()
	}

	logger.Debug().
		Str("output_dir", s.OutputDirectory).
		Str("domain", s.EmailDomain).
		Str("template", s.TemplatePath).
		Strs("privileged_users", s.PrivilegedUsers).
		Msg("settings resolved")

	return s
}

// loadFile merges the file at path into k. The file is parsed into a scratch
// instance first so a malformed file leaves k untouched.
func loadFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrapf(err, errors.ErrConfigUnavailable, "configuration file %s not found", path)
	}

	tempK := koanf.New(".")
	if err := tempK.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigUnavailable, "failed to parse configuration file %s", path)
	}

	if _, err := unmarshalSettings(tempK); err != nil {
		return errors.Wrapf(err, errors.ErrConfigUnavailable, "invalid values in configuration file %s", path)
	}

	if err := k.Merge(tempK); err != nil {
		return errors.Wrapf(err, errors.ErrConfigUnavailable, "failed to merge configuration file %s", path)
	}
	return nil
}

// envKey maps MKMODULE_SETTINGS_OUTPUT_DIR to Settings.output_dir
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	group := strings.ToLower(SettingsGroup) + "_"
	if !strings.HasPrefix(key, group) {
		return ""
	}
	return SettingsGroup + "." + strings.TrimPrefix(key, group)
}

func unmarshalSettings(k *koanf.Koanf) (Settings, error) {
	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf(SettingsGroup, &s, unmarshalConf); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	fillMissing(&s)
	return s, nil
}

// fillMissing applies built-in values to keys that are present but empty
func fillMissing(s *Settings) {
	builtin := builtinSettings()
	if s.OutputDirectory == "" {
		s.OutputDirectory = builtin.OutputDirectory
	}
	s.EmailDomain = strings.TrimSpace(s.EmailDomain)
	if s.EmailDomain == "" {
		s.EmailDomain = builtin.EmailDomain
	}
	if s.TemplatePath == "" {
		s.TemplatePath = builtin.TemplatePath
	}
	if s.EditorCommand == "" {
		s.EditorCommand = builtin.EditorCommand
	}
	if s.PrivilegedUsers == nil {
		s.PrivilegedUsers = builtin.PrivilegedUsers
	}
	s.Extension = strings.TrimLeft(strings.TrimSpace(s.Extension), ".")
	if s.Extension == "" {
		s.Extension = builtin.Extension
	}
	if s.Width <= 0 {
		s.Width = builtin.Width
	}
	if s.Indent == "" {
		s.Indent = builtin.Indent
	}
}

// settingsToMap converts Settings to the nested map koanf expects
func settingsToMap(s Settings) map[string]interface{} {
	users := make([]interface{}, len(s.PrivilegedUsers))
	for i, u := range s.PrivilegedUsers {
		users[i] = u
	}
	return map[string]interface{}{
		SettingsGroup: map[string]interface{}{
			"output_dir":       s.OutputDirectory,
			"domain":           s.EmailDomain,
			"module_template":  s.TemplatePath,
			"editor":           s.EditorCommand,
			"privileged_users": users,
			"extension":        s.Extension,
			"width":            s.Width,
			"indent":           s.Indent,
		},
	}
}
