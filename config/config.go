package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the server configuration.
type Config struct {
	Addr       string `toml:"addr"`
	DBPath     string `toml:"db_path"`
	StorageDir string `toml:"storage_dir"`
	LogLevel   string `toml:"log_level"`
}

// LoadConfig reads a toml config file. Missing fields fall back to the
// defaults below.
func LoadConfig(path string) (*Config, error) {
	configFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if _, err := toml.Decode(string(configFile), &config); err != nil {
		return nil, err
	}

	if config.Addr == "" {
		config.Addr = ":5000"
	}
	if config.DBPath == "" {
		config.DBPath = "/tmp/tweetapi.db"
	}
	if config.StorageDir == "" {
		config.StorageDir = "storage"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	return &config, nil
}
