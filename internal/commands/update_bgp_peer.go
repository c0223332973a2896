package commands

import (
	"context"
	"flag"
	"fmt"
	"math"

	"github.com/routerctl/routerctl/internal/config"
	"github.com/routerctl/routerctl/internal/console"
	"github.com/routerctl/routerctl/internal/log"
	"github.com/routerctl/routerctl/internal/routers"
)

func CreateUpdateBgpPeerCommand() *UpdateBgpPeerCommand {
	gc := &UpdateBgpPeerCommand{
		fs: flag.NewFlagSet("update-bgp-peer", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Project, "project", "", "Project of the router (defaults to defaults.project from the config)")
	gc.fs.StringVar(&gc.Region, "region", "", "Region of the router (defaults to defaults.region from the config)")
	gc.fs.StringVar(&gc.Router, "router", "", "Name of the router the peer belongs to")
	gc.fs.StringVar(&gc.PeerName, "peer-name", "", "Name of the BGP peer to update")
	gc.fs.StringVar(&gc.Interface, "interface", "", "Router interface the peer is attached to")
	gc.fs.StringVar(&gc.IPAddress, "ip-address", "", "Link-local address of the router side of the BGP session")
	gc.fs.StringVar(&gc.PeerIPAddress, "peer-ip-address", "", "Link-local address of the peer side of the BGP session")
	gc.fs.UintVar(&gc.PeerASN, "peer-asn", 0, "Autonomous system number of the peer")
	gc.fs.UintVar(&gc.AdvertisedRoutePriority, "advertised-route-priority", 0, "Base priority (MED) for routes advertised to this peer")
	gc.fs.StringVar(&gc.Mode, "mode", "", "Advertisement mode (DEFAULT or CUSTOM)")
	gc.fs.Var(&gc.Groups, "groups", "Advertised groups, comma-separated (ALL_SUBNETS)")
	gc.fs.Var(&gc.Ranges, "ranges", "Advertised ranges as CIDR[=DESCRIPTION], comma-separated")

	return gc
}

type UpdateBgpPeerCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	cfg   *config.Config
	given map[string]bool

	Project                 string
	Region                  string
	Router                  string
	PeerName                string
	Interface               string
	IPAddress               string
	PeerIPAddress           string
	PeerASN                 uint
	AdvertisedRoutePriority uint
	Mode                    string
	Groups                  listFlag
	Ranges                  rangesFlag
}

func (g *UpdateBgpPeerCommand) Name() string {
	return g.fs.Name()
}

func (g *UpdateBgpPeerCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	g.given = visitedFlags(g.fs)

	if g.Router == "" {
		return fmt.Errorf("--router is required")
	}
	if g.PeerName == "" {
		return fmt.Errorf("--peer-name is required")
	}

	if g.PeerASN > math.MaxUint32 {
		return fmt.Errorf("--peer-asn must fit in 32 bits")
	}
	if g.AdvertisedRoutePriority > math.MaxUint32 {
		return fmt.Errorf("--advertised-route-priority must fit in 32 bits")
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

// peerUpdate builds the update from the flags that were explicitly given, so
// untouched fields keep their server-side values.
func (g *UpdateBgpPeerCommand) peerUpdate() routers.PeerUpdate {
	var upd routers.PeerUpdate

	if g.given["interface"] {
		upd.InterfaceName = &g.Interface
	}
	if g.given["ip-address"] {
		upd.IPAddress = &g.IPAddress
	}
	if g.given["peer-ip-address"] {
		upd.PeerIPAddress = &g.PeerIPAddress
	}
	if g.given["peer-asn"] {
		asn := uint32(g.PeerASN)
		upd.PeerASN = &asn
	}
	if g.given["advertised-route-priority"] {
		priority := uint32(g.AdvertisedRoutePriority)
		upd.AdvertisedRoutePriority = &priority
	}

	return upd
}

func (g *UpdateBgpPeerCommand) Run() error {
	project, region, err := resolveProjectRegion(g.cfg, g.Project, g.Region)
	if err != nil {
		return err
	}

	groups := []string(g.Groups)
	if groups == nil && g.given["groups"] {
		groups = []string{}
	}

	mode, advertisedGroups, advertisedPrefixes, err := routers.ParseAdvertisements(
		g.Mode, groups, map[string]string(g.Ranges), routers.ResourceKindPeer)
	if err != nil {
		return err
	}

	client := newComputeClient(g.cfg)
	ctx := context.Background()

	router, err := client.GetRouter(ctx, project, region, g.Router)
	if err != nil {
		return fmt.Errorf("failed to fetch router: %v", err)
	}

	peer, err := routers.FindBgpPeer(router, g.PeerName)
	if err != nil {
		return err
	}

	if mode != nil {
		prompter := console.NewPrompter(g.ctx.Quiet)
		if err := routers.ConfirmDefaultModeSwitch(peer.AdvertiseMode, *mode, routers.ResourceKindPeer, prompter); err != nil {
			return err
		}
	}

	routers.ApplyPeerUpdate(peer, g.peerUpdate())
	routers.ApplyPeerAdvertisements(peer, mode, advertisedGroups, advertisedPrefixes)

	if _, err := client.PatchRouter(ctx, project, region, router); err != nil {
		return fmt.Errorf("failed to update router: %v", err)
	}

	log.Infof("Updated peer [%s] on router [%s].", g.PeerName, g.Router)
	return nil
}
