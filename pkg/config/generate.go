package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// document is the on-disk shape of the configuration file
type document struct {
	Settings Settings `toml:"Settings"`
}

// Generate renders settings as a configuration file
func Generate(s Settings) ([]byte, error) {
	return toml.Marshal(document{Settings: s})
}

// GenerateCommented returns the embedded defaults with every value commented
// out, suitable as a starting point for a new configuration file
func GenerateCommented() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [Settings]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
