package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/routerctl/routerctl/internal/log"
)

// Environment variables that override file-based settings.
const (
	EnvEndpoint = "ROUTERCTL_ENDPOINT"
	EnvToken    = "ROUTERCTL_TOKEN"
)

// DefaultPath returns the standard location of the routerctl config file,
// honoring the platform user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "routerctl.toml"
	}
	return filepath.Join(dir, "routerctl", "config.toml")
}

func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config._absConfigFilePath = configFile
	config.applyEnvOverrides()

	log.Debugf("Configuration file path: %s", configFile)

	return &config, nil
}

// applyEnvOverrides loads a .env file from the working directory if present
// and applies ROUTERCTL_* environment variables on top of the file-based
// settings.
func (c *Config) applyEnvOverrides() {
	if err := godotenv.Load(); err == nil {
		log.Debugf("Loaded environment overrides from .env")
	}

	if c.API == nil {
		return
	}
	if endpoint := os.Getenv(EnvEndpoint); endpoint != "" {
		c.API.Endpoint = endpoint
	}
	if token := os.Getenv(EnvToken); token != "" {
		c.API.Token = token
	}
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

// ConfigFilePath returns the absolute path the config was loaded from.
func (c *Config) ConfigFilePath() string {
	return c._absConfigFilePath
}
