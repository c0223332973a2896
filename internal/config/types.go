package config

import "time"

type Config struct {
	// API holds connection settings for the routers API.
	API *APIConfig `toml:"api" json:"api"`
	// Defaults holds fallback values for resource selection flags.
	Defaults *DefaultsConfig `toml:"defaults" json:"defaults,omitempty"`

	_absConfigFilePath string
}

type APIConfig struct {
	// Endpoint is the base URL of the routers API. The ROUTERCTL_ENDPOINT environment variable overrides it.
	Endpoint string `toml:"endpoint" json:"endpoint" validate:"required,url"`
	// Token is the bearer token sent with every request. The ROUTERCTL_TOKEN environment variable overrides it, which keeps secrets out of config files.
	Token string `toml:"token,omitempty" json:"token,omitempty"`
	// TimeoutSeconds bounds every API request (default: 30).
	TimeoutSeconds int `toml:"timeout_seconds" json:"timeout_seconds" validate:"gte=0,lte=600"`
}

type DefaultsConfig struct {
	// Project is the project to operate on when --project is not given.
	Project string `toml:"project" json:"project" validate:"omitempty,resource_name"`
	// Region is the region to operate on when --region is not given.
	Region string `toml:"region" json:"region" validate:"omitempty,resource_name"`
}

// Timeout returns the per-request API timeout.
func (a *APIConfig) Timeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Project returns the default project or "" when none is configured.
func (c *Config) Project() string {
	if c.Defaults == nil {
		return ""
	}
	return c.Defaults.Project
}

// Region returns the default region or "" when none is configured.
func (c *Config) Region() string {
	if c.Defaults == nil {
		return ""
	}
	return c.Defaults.Region
}
