// Package commands implements CLI command handlers for routerctl.
//
// This package provides the command-line interface layer for the application,
// implementing subcommands like list, describe, set-advertisements,
// update-bgp-peer, emulator, and check. Each command implements the Runner
// interface and delegates the advertisement logic to the routers package and
// API access to the compute package.
//
// # Command Structure
//
// All commands follow a consistent pattern:
//   - Init(): Parse arguments and validate configuration
//   - Run(): Execute command against the routers API
//   - Name(): Return command name for routing
//
// # Available Commands
//
//   - list: List routers of a project region
//   - describe: Show one router, including its BGP configuration
//   - set-advertisements: Update the advertised routes of a router
//   - update-bgp-peer: Update one BGP peer of a router
//   - emulator: Run a local in-memory routers API
//   - check: Verify config file and API connectivity
//
// # Example Usage
//
// Creating and running a command:
//
//	cmd := commands.CreateListCommand()
//	ctx := &commands.AppContext{
//	    ConfigPath: "/etc/routerctl/config.toml",
//	    Verbose:    true,
//	}
//	if err := cmd.Init(args, ctx); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Commands are thin wrappers over the routers and compute packages, keeping
// CLI concerns separate from the advertisement logic.
package commands
