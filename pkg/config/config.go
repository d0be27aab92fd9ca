// Package config loads factorygraph settings from defaults, an optional TOML
// file, FACTORYGRAPH_* environment variables and command-line flags, in that
// order of increasing priority.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	fgerrors "github.com/matzehuels/factorygraph/pkg/errors"
)

// DefaultFile is read when no config path is given. Unlike an explicit path
// it may be absent.
const DefaultFile = "factorygraph.toml"

// EnvPrefix prefixes environment overrides, e.g. FACTORYGRAPH_SERVER_ADDR.
const EnvPrefix = "FACTORYGRAPH_"

// Config holds all settings.
type Config struct {
	Data   Data   `koanf:"data"`
	Debug  Debug  `koanf:"debug"`
	Server Server `koanf:"server"`
}

// Data locates the input files.
type Data struct {
	Classes string `koanf:"classes"`
	Recipes string `koanf:"recipes"`
}

// Debug tunes the textual tree output.
type Debug struct {
	Depth     int `koanf:"depth"`
	MaxListed int `koanf:"max_listed"`
}

// Server configures the HTTP API.
type Server struct {
	Addr         string `koanf:"addr"`
	CacheEntries int    `koanf:"cache_entries"`
	MaxDepth     int    `koanf:"max_depth"`
}

// FlagKeys maps command-line flag names to config keys. Flags not listed
// here are not configuration and are ignored by [Load].
var FlagKeys = map[string]string{
	"classes":       "data.classes",
	"recipes":       "data.recipes",
	"depth":         "debug.depth",
	"max-listed":    "debug.max_listed",
	"addr":          "server.addr",
	"cache-entries": "server.cache_entries",
	"max-depth":     "server.max_depth",
}

func defaults() map[string]any {
	return map[string]any{
		"data": map[string]any{
			"classes": "data/classes.csv",
			"recipes": "data/recipes.json",
		},
		"debug": map[string]any{
			"depth":      1,
			"max_listed": 5,
		},
		"server": map[string]any{
			"addr":          ":8080",
			"cache_entries": 256,
			"max_depth":     8,
		},
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, _ := Load("", nil)
	return cfg
}

// Load builds the configuration. path names a TOML file; when empty,
// [DefaultFile] is used if it exists. flags may be nil. Only flags that were
// set explicitly override file and environment values.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(mapProvider(defaults()), nil); err != nil {
		return nil, fgerrors.Wrap(fgerrors.ErrCodeInternal, err, "load defaults")
	}

	// 2. Config file
	if err := loadFile(k, path); err != nil {
		return nil, err
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fgerrors.Wrap(fgerrors.ErrCodeInternal, err, "load environment")
	}

	// 4. Flags
	if flags != nil {
		p := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := FlagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		})
		if err := k.Load(p, nil); err != nil {
			return nil, fgerrors.Wrap(fgerrors.ErrCodeInvalidInput, err, "load flags")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fgerrors.Wrap(fgerrors.ErrCodeInvalidFormat, err, "decode config")
	}
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	err := k.Load(file.Provider(path), TOML())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		if !explicit {
			return nil
		}
		return fgerrors.Wrap(fgerrors.ErrCodeFileNotFound, err, "config file %s", path)
	default:
		return fgerrors.Wrap(fgerrors.ErrCodeInvalidFormat, err, "config file %s", path)
	}
}

// envKey maps FACTORYGRAPH_DEBUG_MAX_LISTED to debug.max_listed: the first
// underscore separates the section, the rest belong to the key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

type mapProvider map[string]any

func (p mapProvider) Read() (map[string]any, error) { return p, nil }

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("map provider does not support ReadBytes")
}
