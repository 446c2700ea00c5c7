package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Install InstallConfig `mapstructure:"install"`
}

// StoreConfig holds marketplace API configuration
type StoreConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	Timeout              int    `mapstructure:"timeout"`
	MaxWorkers           int    `mapstructure:"max_workers"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
	PageSize             int    `mapstructure:"page_size"`
	SearchPageSize       int    `mapstructure:"search_page_size"`
}

// CacheConfig holds the on-disk asset cache roots
type CacheConfig struct {
	PreviewDir  string `mapstructure:"preview_dir"`
	DownloadDir string `mapstructure:"download_dir"`
}

// InstallConfig holds the theme installation target root
type InstallConfig struct {
	// DataDir is the local-share root the per-category install
	// directories live under. Empty means $HOME/.local/share.
	DataDir string `mapstructure:"data_dir"`
}

// Load loads configuration from YAML file with environment variable
// overrides. Every key has a default, so a missing config.yaml is fine.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.Install.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("unable to resolve home directory: %w", err)
		}
		config.Install.DataDir = filepath.Join(home, ".local", "share")
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("store.base_url", "https://www.pling.com")
	viper.SetDefault("store.timeout", 30)
	viper.SetDefault("store.max_workers", 8)
	viper.SetDefault("store.max_requests_per_second", 5)
	viper.SetDefault("store.page_size", 10)
	viper.SetDefault("store.search_page_size", 30)

	viper.SetDefault("cache.preview_dir", "/tmp/themeinstaller/cache")
	viper.SetDefault("cache.download_dir", "/tmp/themedownloadfiles")

	viper.SetDefault("install.data_dir", "")
}
