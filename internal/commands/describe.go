package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/routerctl/routerctl/internal/config"
	"github.com/routerctl/routerctl/internal/format"
)

func CreateDescribeCommand() *DescribeCommand {
	gc := &DescribeCommand{
		fs: flag.NewFlagSet("describe", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Project, "project", "", "Project of the router (defaults to defaults.project from the config)")
	gc.fs.StringVar(&gc.Region, "region", "", "Region of the router (defaults to defaults.region from the config)")
	gc.fs.StringVar(&gc.Router, "router", "", "Name of the router to describe")
	gc.fs.StringVar(&gc.Format, "format", "", "Output template, e.g. '{{name}} {{bgp.advertiseMode}}' (defaults to JSON)")

	return gc
}

type DescribeCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	Project string
	Region  string
	Router  string
	Format  string
}

func (g *DescribeCommand) Name() string {
	return g.fs.Name()
}

func (g *DescribeCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.Router == "" {
		return fmt.Errorf("--router is required")
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *DescribeCommand) Run() error {
	project, region, err := resolveProjectRegion(g.cfg, g.Project, g.Region)
	if err != nil {
		return err
	}

	client := newComputeClient(g.cfg)

	router, err := client.GetRouter(context.Background(), project, region, g.Router)
	if err != nil {
		return fmt.Errorf("failed to fetch router: %v", err)
	}

	if g.Format != "" {
		line, err := format.Render(g.Format, router)
		if err != nil {
			return err
		}
		fmt.Println(line)
		return nil
	}

	out, err := format.JSON(router)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
