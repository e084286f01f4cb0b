// Package config loads the generator's run configuration: where the
// target files live, which regions to regenerate and how to log.
//
// Values come from, in increasing precedence: built-in defaults, an
// optional config file (TOML, YAML or JSON), VKGEN_* environment
// variables and finally command line flags bound by the caller.
package config

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "VKGEN"

// Config is the run configuration.
type Config struct {
	// Root is the repository root other relative paths are resolved against.
	Root string `mapstructure:"root"`
	// Header is the vk_helpers.h path.
	Header string `mapstructure:"header"`
	// Impl is the vk_helpers.c path.
	Impl string `mapstructure:"impl"`
	// Extensions enables the extension flag region in the header.
	Extensions bool `mapstructure:"extensions"`
	// Tables is an optional YAML file overriding built-in entry tables.
	Tables string `mapstructure:"tables"`
	// Regions replaces the default region list when non-empty.
	Regions []RegionConfig `mapstructure:"regions"`
	Log     LogConfig      `mapstructure:"log"`
}

// RegionConfig describes one generated region.
type RegionConfig struct {
	// Table is the entry table name (instance, device, extensions).
	Table string `mapstructure:"table"`
	// File is the target file, relative to Root unless absolute.
	File string `mapstructure:"file"`
	// Kind fills the sentinel template, e.g. "device loader".
	Kind string `mapstructure:"kind"`
	// Emitter is member, instance, device or extension.
	Emitter string `mapstructure:"emitter"`
}

// LogConfig configures the logger.
type LogConfig struct {
	JSON    bool `mapstructure:"json"`
	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("root", ".")
	v.SetDefault("header", "src/xrt/auxiliary/vk/vk_helpers.h")
	v.SetDefault("impl", "src/xrt/auxiliary/vk/vk_helpers.c")
	v.SetDefault("extensions", false)
	v.SetDefault("tables", "")
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbose", false)
}

// New returns a viper instance with defaults and environment binding.
// When configFile is not empty it is read as well.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	}

	return v, nil
}

// LoadWithViper unmarshals and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load is New followed by LoadWithViper.
func Load(configFile string) (*Config, error) {
	v, err := New(configFile)
	if err != nil {
		return nil, err
	}

	return LoadWithViper(v)
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Header == "" {
		return errors.New("config: header path is empty")
	}

	if c.Impl == "" {
		return errors.New("config: impl path is empty")
	}

	for i, r := range c.Regions {
		if r.Table == "" || r.File == "" || r.Kind == "" || r.Emitter == "" {
			return errors.Newf("config: region %d needs table, file, kind and emitter", i)
		}
	}

	return nil
}

// Resolve returns p relative to Root unless it is absolute.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(c.Root, p)
}

// TablesPath returns the resolved table override path, or "".
func (c *Config) TablesPath() string {
	return c.Resolve(c.Tables)
}
