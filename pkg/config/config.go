package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/errors"
	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/paths"
)

// Config holds the effective hook configuration
type Config struct {
	// SourceRoot is the read-only dataset mount to copy from
	SourceRoot string `koanf:"source_root"`

	// TargetName is the directory materialized in the working directory.
	// Relative names resolve against the CWD at call time.
	TargetName string `koanf:"target_name"`

	// Verbosity controls log level (0 warn, 1 info, 2 debug, 3+ trace)
	Verbosity int `koanf:"verbosity"`
}

// Default returns the embedded defaults without touching disk or the
// environment.
func Default() *Config {
	cfg, err := unmarshal(loadDefaults())
	if err != nil {
		// The embedded defaults are compiled in; a parse failure here is
		// a build defect, not a runtime condition.
		panic(err)
	}
	return cfg
}

// Load builds the effective configuration. configPath, when non-empty,
// names an explicit config file; otherwise datahook.toml / datahook.yaml
// are tried in the hook's config directory. Environment variables with
// the DATAHOOK_ prefix take highest precedence.
func Load(configPath string) (*Config, error) {
	k := loadDefaults()

	path, parser, err := findConfigFile(configPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load config from %s", path)
		}
	}

	// Keys are flat (source_root, target_name), so unlike nested configs
	// the underscores stay as-is.
	if err := k.Load(env.Provider("DATAHOOK_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DATAHOOK_"))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	return unmarshal(k)
}

// LoadFromMap merges overrides on top of the embedded defaults without
// consulting disk or environment. Used by callers that already hold their
// settings, and by tests.
func LoadFromMap(overrides map[string]interface{}) (*Config, error) {
	k := loadDefaults()
	if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
	}
	return unmarshal(k)
}

func loadDefaults() *koanf.Koanf {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic(errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults"))
	}
	return k
}

// findConfigFile returns the config file to load and the parser matching
// its extension. An explicit path must exist; the conventional locations
// are optional.
func findConfigFile(explicit string) (string, koanf.Parser, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"config file %s not readable", explicit)
		}
		return explicit, parserFor(explicit), nil
	}

	for _, name := range []string{
		paths.ConfigFileName + ".toml",
		paths.ConfigFileName + ".yaml",
	} {
		path := filepath.Join(paths.ConfigDir(), name)
		if _, err := os.Stat(path); err == nil {
			return path, parserFor(path), nil
		}
	}
	return "", nil, nil
}

func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return kyaml.Parser()
	default:
		return toml.Parser()
	}
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}
