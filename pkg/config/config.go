/*
Package config manages TOML config for aliasdex services.

InitConfig handles automatic config file creation and loading with fallback to defaults.
LoadConfig and SaveConfig provide direct fs for runtime changes.
Update allows targeted parameter changes with persistence.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Catalog CatalogConfig `toml:"catalog"`
	CLI     CliConfig     `toml:"cli"`
}

// ServerConfig has IPC-facing query limits.
type ServerConfig struct {
	MaxEntries   int  `toml:"max_entries"`
	MinQueryLen  int  `toml:"min_query_len"`
	MaxQueryLen  int  `toml:"max_query_len"`
	EnableFilter bool `toml:"enable_filter"`
}

// CatalogConfig holds catalog-loading options.
type CatalogConfig struct {
	Dir string `toml:"dir"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit    int  `toml:"default_limit"`
	DefaultMinLen   int  `toml:"default_min_len"`
	DefaultMaxLen   int  `toml:"default_max_len"`
	DefaultNoFilter bool `toml:"default_no_filter"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxEntries:   64,
			MinQueryLen:  1,
			MaxQueryLen:  60,
			EnableFilter: true,
		},
		Catalog: CatalogConfig{
			Dir: "catalogs/",
		},
		CLI: CliConfig{
			DefaultLimit:    24,
			DefaultMinLen:   1,
			DefaultMaxLen:   24,
			DefaultNoFilter: false,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, err
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			return nil, err
		}
		log.Debugf("Created default config file at: ( %s )", configPath)
		return config, nil
	}
	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config, using defaults: %v", err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		log.Errorf("Failed to decode config file: %v", err)
		return nil, err
	}
	return &config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	file, err := os.Create(configPath)
	if err != nil {
		log.Errorf("Failed to create config file: %v", err)
		return err
	}
	defer file.Close()
	encoder := toml.NewEncoder(file)
	return encoder.Encode(config)
}

// Update changes the config values and saves to file
func (c *Config) Update(configPath string, maxEntries, minQueryLen, maxQueryLen *int, enableFilter *bool) error {
	server := &c.Server
	if maxEntries != nil {
		server.MaxEntries = *maxEntries
	}
	if minQueryLen != nil {
		server.MinQueryLen = *minQueryLen
	}
	if maxQueryLen != nil {
		server.MaxQueryLen = *maxQueryLen
	}
	if enableFilter != nil {
		server.EnableFilter = *enableFilter
	}
	return SaveConfig(c, configPath)
}
