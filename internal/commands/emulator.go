package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/routerctl/routerctl/internal/emulator"
	"github.com/routerctl/routerctl/internal/log"
)

func CreateEmulatorCommand() *EmulatorCommand {
	gc := &EmulatorCommand{
		fs: flag.NewFlagSet("emulator", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Listen, "listen", "127.0.0.1:8787", "Address to bind the emulator (e.g., 127.0.0.1:8787)")
	gc.fs.StringVar(&gc.Seed, "seed", "", "TOML seed file with the initial router inventory")

	return gc
}

// EmulatorCommand runs the local routers API emulator.
type EmulatorCommand struct {
	fs *flag.FlagSet

	Listen string
	Seed   string
}

func (g *EmulatorCommand) Name() string {
	return g.fs.Name()
}

func (g *EmulatorCommand) Init(args []string, ctx *AppContext) error {
	return g.fs.Parse(args)
}

func (g *EmulatorCommand) Run() error {
	var store *emulator.Store
	if g.Seed != "" {
		loaded, err := emulator.LoadSeed(g.Seed)
		if err != nil {
			return err
		}
		store = loaded
		log.Infof("Loaded %d router(s) from %s", store.Count(), g.Seed)
	} else {
		store = emulator.DefaultStore()
		log.Infof("No seed file given, starting with %d sample router(s)", store.Count())
	}

	server := emulator.NewServer(store, g.Listen)

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err := <-serverErrors:
		if err != nil {
			return err
		}

	case sig := <-shutdown:
		log.Infof("Received signal %v, shutting down emulator...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Stop(ctx); err != nil {
			return fmt.Errorf("emulator shutdown failed: %w", err)
		}

		log.Infof("Emulator stopped gracefully")
	}

	return nil
}
