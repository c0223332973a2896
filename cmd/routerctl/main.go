package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/routerctl/routerctl/internal/commands"
	"github.com/routerctl/routerctl/internal/config"
	"github.com/routerctl/routerctl/internal/errors"
	"github.com/routerctl/routerctl/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", config.DefaultPath(), "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&ctx.Quiet, "quiet", false, "Disable interactive prompts and assume the default answer")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Cloud Router Advertisement Manager\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  list                    List routers of a project region\n")
		fmt.Fprintf(os.Stderr, "  describe                Show one router, including its BGP configuration\n")
		fmt.Fprintf(os.Stderr, "  set-advertisements      Update the advertised routes of a router\n")
		fmt.Fprintf(os.Stderr, "  update-bgp-peer         Update a BGP peer of a router\n")
		fmt.Fprintf(os.Stderr, "  emulator                Run a local routers API emulator\n")
		fmt.Fprintf(os.Stderr, "  check                   Verify config file and API connectivity\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateListCommand(),
		commands.CreateDescribeCommand(),
		commands.CreateSetAdvertisementsCommand(),
		commands.CreateUpdateBgpPeerCommand(),
		commands.CreateEmulatorCommand(),
		commands.CreateCheckCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				if errors.IsAborted(err) {
					log.Errorf("Aborted by user.")
					os.Exit(1)
				}
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
