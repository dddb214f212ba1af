package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvSourceRoot overrides the dataset mount location
	EnvSourceRoot = "DATAHOOK_SOURCE_ROOT"

	// EnvConfigDir overrides the XDG config directory for the hook
	EnvConfigDir = "DATAHOOK_CONFIG_DIR"
)

// Default directories and files
const (
	// HookDirName is the directory name for hook-specific files
	HookDirName = "datahook"

	// ConfigFileName is the base name of the config file, without extension
	ConfigFileName = "datahook"

	// LogFileName is the name of the log file
	LogFileName = "datahook.log"
)

// ConfigDir returns the directory searched for the hook's config file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, HookDirName)
}

// StateDir returns the directory used for the hook's log file.
func StateDir() string {
	return filepath.Join(xdg.StateHome, HookDirName)
}

// ResolveTarget resolves a target name against the working directory at
// call time. Absolute paths are returned unchanged; the original hook runs
// with the user's home directory as CWD, so a bare "data" lands there.
func ResolveTarget(name string) (string, error) {
	if filepath.IsAbs(name) {
		return filepath.Clean(name), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, name), nil
}
