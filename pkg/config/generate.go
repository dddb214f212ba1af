package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/errors"
)

// GenerateConfigContent generates starter config file content: the
// effective defaults, marshaled to TOML with every value commented out so
// the file documents the knobs without overriding anything.
func GenerateConfigContent() (string, error) {
	raw, err := toml.Marshal(map[string]interface{}{
		"source_root": Default().SourceRoot,
		"target_name": Default().TargetName,
		"verbosity":   Default().Verbosity,
	})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal defaults")
	}

	header := "# datahook configuration. Uncomment a value to override it.\n" +
		"# Environment variables (DATAHOOK_SOURCE_ROOT, ...) take precedence.\n\n"
	return header + commentOutConfigValues(string(raw)), nil
}

// commentOutConfigValues takes TOML content and comments out all
// non-comment, non-blank lines that contain configuration values
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
