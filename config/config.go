// Package config reads iconforge settings from defaults, TOML config files
// and ICONFORGE_* environment variables, in that precedence order. The
// project config is an iconforge.toml found by walking up from the working
// directory; a user-level config lives at ~/.iconforge/config.toml.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/teranos/iconforge/errors"
	"github.com/teranos/iconforge/registry"
)

// ProjectConfigName is the per-project config file searched for by walking
// up the directory tree.
const ProjectConfigName = "iconforge.toml"

// Config is the full iconforge configuration.
type Config struct {
	Output   OutputConfig   `mapstructure:"output" toml:"output"`
	Registry RegistryConfig `mapstructure:"registry" toml:"registry"`
}

// OutputConfig controls where generated files are written.
type OutputConfig struct {
	Dir string `mapstructure:"dir" toml:"dir"`
}

// RegistryConfig controls the Iconify API client.
type RegistryConfig struct {
	BaseURL           string `mapstructure:"base_url" toml:"base_url"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds" toml:"timeout_seconds"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute" toml:"requests_per_minute"`
}

// Timeout returns the registry request timeout as a duration.
func (r RegistryConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the configuration. The result is cached for the process.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	var config Config
	if err := initViper().Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file, bypassing discovery
// and environment binding.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}
	return &config, nil
}

// Reset clears the cached configuration (useful for testing).
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.dir", "src/icons")
	v.SetDefault("registry.base_url", registry.DefaultBaseURL)
	v.SetDefault("registry.timeout_seconds", 30)
	v.SetDefault("registry.requests_per_minute", 60)
}

// Default returns the configuration with only defaults applied.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var config Config
	// Defaults-only unmarshal cannot fail.
	_ = v.Unmarshal(&config)
	return &config
}

func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("ICONFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// findProjectConfig searches for iconforge.toml by walking up the directory
// tree from the working directory.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ProjectConfigName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges config files in precedence order, lowest first:
// user config, then project config. Merging at viper's config layer keeps
// environment variables above both.
func mergeConfigFiles(v *viper.Viper) {
	var configPaths []string

	if homeDir, err := os.UserHomeDir(); err == nil {
		configPaths = append(configPaths, filepath.Join(homeDir, ".iconforge", "config.toml"))
	}
	if projectConfig := findProjectConfig(); projectConfig != "" {
		configPaths = append(configPaths, projectConfig)
	}

	for _, configPath := range configPaths {
		if _, err := os.Stat(configPath); err != nil {
			continue
		}

		fileViper := viper.New()
		fileViper.SetConfigFile(configPath)
		fileViper.SetConfigType("toml")
		if err := fileViper.ReadInConfig(); err != nil {
			continue
		}
		if err := v.MergeConfigMap(fileViper.AllSettings()); err != nil {
			continue
		}
	}
}
