// Package config loads the hook's layered configuration.
//
// Values merge in order of increasing precedence:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. an optional config file: an explicit path, or datahook.toml /
//     datahook.yaml in the hook's config directory
//  3. DATAHOOK_-prefixed environment variables
//
// The result is unmarshaled into the Config struct.
package config
