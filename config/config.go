// Package config loads beanscan settings from beanscan.yaml, BEANSCAN_*
// environment variables and command line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dhamidi/beanscan/binding"
	"github.com/dhamidi/beanscan/property"
)

const (
	KeyPrivateProperties = "private_properties_enabled"
	KeyAdapters          = "adapters"
	KeyCacheSize         = "cache_size"
	KeyWorkers           = "workers"
	KeyClasspath         = "classpath"
	KeyVerbosity         = "log.verbosity"
	KeyLogFile           = "log.file"
)

// Flags maps command line flag names to configuration keys.
var Flags = map[string]string{
	"private-properties": KeyPrivateProperties,
	"adapters":           KeyAdapters,
	"cache-size":         KeyCacheSize,
	"workers":            KeyWorkers,
	"classpath":          KeyClasspath,
	"verbose":            KeyVerbosity,
	"log-file":           KeyLogFile,
}

type Config struct {
	PrivatePropertiesEnabled bool      `mapstructure:"private_properties_enabled"`
	Adapters                 []string  `mapstructure:"adapters"`
	CacheSize                int       `mapstructure:"cache_size"`
	Workers                  int       `mapstructure:"workers"`
	Classpath                []string  `mapstructure:"classpath"`
	Log                      LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Verbosity int    `mapstructure:"verbosity"`
	File      string `mapstructure:"file"`
}

// Load reads the configuration. An empty path looks for beanscan.yaml in
// the working directory and tolerates its absence; an explicit path must
// exist. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyPrivateProperties, true)
	v.SetDefault(KeyAdapters, binding.Names())
	v.SetDefault(KeyCacheSize, 256)
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyClasspath, []string{})
	v.SetDefault(KeyVerbosity, 0)
	v.SetDefault(KeyLogFile, "")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("beanscan")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("BEANSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range Flags {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := binding.NewSet(c.Adapters...); err != nil {
		return fmt.Errorf("adapters: %w", err)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// ResolverOptions translates the configuration for property.NewResolver.
func (c *Config) ResolverOptions() (property.Options, error) {
	set, err := binding.NewSet(c.Adapters...)
	if err != nil {
		return property.Options{}, err
	}
	return property.Options{
		PrivatePropertiesEnabled: c.PrivatePropertiesEnabled,
		Adapters:                 set,
		CacheSize:                c.CacheSize,
	}, nil
}
