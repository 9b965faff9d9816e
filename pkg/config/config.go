package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/tre/pkg/errors"
	"github.com/arthur-debert/tre/pkg/render"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "TRE_"

// Config is tre's effective configuration
type Config struct {
	Output Output `koanf:"output" toml:"output"`
	Alias  Alias  `koanf:"alias" toml:"alias"`
}

// Output controls what is listed and how
type Output struct {
	Color       string `koanf:"color" toml:"color"`
	All         bool   `koanf:"all" toml:"all"`
	Directories bool   `koanf:"directories" toml:"directories"`
	Limit       int    `koanf:"limit" toml:"limit"`
}

// Alias controls the generated edit aliases
type Alias struct {
	Editor string `koanf:"editor" toml:"editor"`
}

// LoadOptions selects the user config file
type LoadOptions struct {
	// ConfigFile overrides DefaultConfigPath
	ConfigFile string
	// Required turns a missing ConfigFile into an error
	Required bool
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/tre/config.toml
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "tre", "config.toml")
}

// Load merges defaults, the user config file and TRE_* variables
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load the user config if it exists
	path := opts.ConfigFile
	if path == "" {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
	} else if opts.Required {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path)
	}

	// 3. Environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps TRE_OUTPUT_COLOR to output.color. Only the first underscore
// separates section from key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

// Validate checks values koanf cannot type-check
func (c *Config) Validate() error {
	if _, err := render.ParseColorChoice(c.Output.Color); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.color")
	}
	if c.Output.Limit < 0 {
		return errors.Newf(errors.ErrConfigValid, "output.limit must not be negative, got %d", c.Output.Limit)
	}
	return nil
}

// ColorChoice returns the parsed output.color value
func (c *Config) ColorChoice() render.ColorChoice {
	choice, _ := render.ParseColorChoice(c.Output.Color)
	return choice
}

// TOML renders the configuration in the user config file format
func (c *Config) TOML() ([]byte, error) {
	return gotoml.Marshal(c)
}
