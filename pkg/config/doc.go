// Package config handles configuration management for mkmodule.
//
// Settings are layered with koanf: the embedded defaults first, then the
// TOML file found next to the binary (or given with --config), then
// MKMODULE_SETTINGS_* environment variables. The configuration file is
// strictly optional: a missing or malformed file leaves the defaults in
// place and never aborts a run.
package config
