package commands

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/routerctl/routerctl/internal/compute"
	"github.com/routerctl/routerctl/internal/config"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}

// newComputeClient builds an API client from the api section of the config.
// The config must have passed validation, so the endpoint is present.
func newComputeClient(cfg *config.Config) *compute.Client {
	httpClient := &http.Client{Timeout: cfg.API.Timeout()}
	return compute.NewClient(cfg.API.Endpoint, cfg.API.Token, httpClient)
}

// resolveProjectRegion combines the --project/--region flag values with the
// defaults section of the config. Flag values win.
func resolveProjectRegion(cfg *config.Config, project, region string) (string, string, error) {
	if project == "" {
		project = cfg.Project()
	}
	if region == "" {
		region = cfg.Region()
	}

	if project == "" {
		return "", "", fmt.Errorf("project is not set (use --project or defaults.project in the config file)")
	}
	if region == "" {
		return "", "", fmt.Errorf("region is not set (use --region or defaults.region in the config file)")
	}

	return project, region, nil
}

// visitedFlags returns the names of the flags that were explicitly provided
// on the command line. Distinguishes "flag not given" from "flag given with
// its default value".
func visitedFlags(fs *flag.FlagSet) map[string]bool {
	given := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		given[f.Name] = true
	})
	return given
}
