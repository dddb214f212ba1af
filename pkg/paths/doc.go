// Package paths provides centralized path handling for the data hook.
//
// It resolves the materialization target against the working directory at
// call time (the hook runs from the user's home directory under the
// notebook server) and exposes the XDG locations used for the config file
// and the log file.
//
// # Environment Variables
//
//   - DATAHOOK_SOURCE_ROOT: override the dataset mount location
//   - DATAHOOK_CONFIG_DIR: override the XDG config directory
package paths
