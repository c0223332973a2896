package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/routerctl/routerctl/internal/config"
	"github.com/routerctl/routerctl/internal/console"
	"github.com/routerctl/routerctl/internal/log"
	"github.com/routerctl/routerctl/internal/routers"
)

func CreateSetAdvertisementsCommand() *SetAdvertisementsCommand {
	gc := &SetAdvertisementsCommand{
		fs: flag.NewFlagSet("set-advertisements", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Project, "project", "", "Project of the router (defaults to defaults.project from the config)")
	gc.fs.StringVar(&gc.Region, "region", "", "Region of the router (defaults to defaults.region from the config)")
	gc.fs.StringVar(&gc.Router, "router", "", "Name of the router to update")
	gc.fs.StringVar(&gc.Mode, "mode", "", "Advertisement mode (DEFAULT or CUSTOM)")
	gc.fs.Var(&gc.Groups, "groups", "Advertised groups, comma-separated (ALL_SUBNETS)")
	gc.fs.Var(&gc.Ranges, "ranges", "Advertised ranges as CIDR[=DESCRIPTION], comma-separated")

	return gc
}

type SetAdvertisementsCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	cfg   *config.Config
	given map[string]bool

	Project string
	Region  string
	Router  string
	Mode    string
	Groups  listFlag
	Ranges  rangesFlag
}

func (g *SetAdvertisementsCommand) Name() string {
	return g.fs.Name()
}

func (g *SetAdvertisementsCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	g.given = visitedFlags(g.fs)

	if g.Router == "" {
		return fmt.Errorf("--router is required")
	}

	if g.Mode == "" && !g.given["groups"] && !g.given["ranges"] {
		return fmt.Errorf("at least one of --mode, --groups or --ranges must be specified")
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *SetAdvertisementsCommand) Run() error {
	project, region, err := resolveProjectRegion(g.cfg, g.Project, g.Region)
	if err != nil {
		return err
	}

	// --groups with an empty value means "clear the groups", unlike an
	// absent flag which leaves them untouched.
	groups := []string(g.Groups)
	if groups == nil && g.given["groups"] {
		groups = []string{}
	}

	mode, advertisedGroups, advertisedPrefixes, err := routers.ParseAdvertisements(
		g.Mode, groups, map[string]string(g.Ranges), routers.ResourceKindRouter)
	if err != nil {
		return err
	}

	client := newComputeClient(g.cfg)
	ctx := context.Background()

	router, err := client.GetRouter(ctx, project, region, g.Router)
	if err != nil {
		return fmt.Errorf("failed to fetch router: %v", err)
	}

	if mode != nil && router.Bgp != nil {
		prompter := console.NewPrompter(g.ctx.Quiet)
		if err := routers.ConfirmDefaultModeSwitch(router.Bgp.AdvertiseMode, *mode, routers.ResourceKindRouter, prompter); err != nil {
			return err
		}
	}

	routers.ApplyRouterAdvertisements(router, mode, advertisedGroups, advertisedPrefixes)

	if _, err := client.PatchRouter(ctx, project, region, router); err != nil {
		return fmt.Errorf("failed to update router: %v", err)
	}

	log.Infof("Updated router [%s].", g.Router)
	return nil
}
