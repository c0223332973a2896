package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/routerctl/routerctl/internal/config"
	"github.com/routerctl/routerctl/internal/format"
)

func CreateListCommand() *ListCommand {
	gc := &ListCommand{
		fs: flag.NewFlagSet("list", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Project, "project", "", "Project to list routers for (defaults to defaults.project from the config)")
	gc.fs.StringVar(&gc.Region, "region", "", "Region to list routers for (defaults to defaults.region from the config)")
	gc.fs.StringVar(&gc.Format, "format", "", "Per-router output template, e.g. '{{name}} {{bgp.advertiseMode}}'")

	return gc
}

type ListCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	Project string
	Region  string
	Format  string
}

func (g *ListCommand) Name() string {
	return g.fs.Name()
}

func (g *ListCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *ListCommand) Run() error {
	project, region, err := resolveProjectRegion(g.cfg, g.Project, g.Region)
	if err != nil {
		return err
	}

	client := newComputeClient(g.cfg)

	routerList, err := client.ListRouters(context.Background(), project, region)
	if err != nil {
		return fmt.Errorf("failed to list routers: %v", err)
	}

	if g.Format != "" {
		for i := range routerList {
			line, err := format.Render(g.Format, &routerList[i])
			if err != nil {
				return err
			}
			fmt.Println(line)
		}
		return nil
	}

	table := format.NewTable("NAME", "REGION", "NETWORK", "ASN")
	for i := range routerList {
		router := &routerList[i]

		asn := ""
		if router.Bgp != nil {
			asn = strconv.FormatUint(uint64(router.Bgp.ASN), 10)
		}

		table.AddRow(router.Name, router.Region, router.Network, asn)
	}

	return table.Write(os.Stdout)
}
