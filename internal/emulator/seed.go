package emulator

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/routerctl/routerctl/internal/compute"
	"github.com/routerctl/routerctl/internal/config"
	"github.com/routerctl/routerctl/internal/log"
	"github.com/routerctl/routerctl/internal/routers"
)

// SeedFile is the TOML document the emulator starts from. Each [[router]]
// table describes one router, optionally with nested [[router.peer]] tables.
type SeedFile struct {
	Routers []SeedRouter `toml:"router"`
}

type SeedRouter struct {
	Project     string `toml:"project" validate:"required,resource_name"`
	Region      string `toml:"region" validate:"required,resource_name"`
	Name        string `toml:"name" validate:"required,resource_name"`
	Network     string `toml:"network" validate:"omitempty,resource_name"`
	Description string `toml:"description"`

	ASN              uint32            `toml:"asn" validate:"required"`
	AdvertiseMode    string            `toml:"advertise_mode"`
	AdvertisedGroups []string          `toml:"advertised_groups"`
	AdvertisedRanges map[string]string `toml:"advertised_ranges" validate:"omitempty,dive,keys,cidr,endkeys"`

	Peers []SeedPeer `toml:"peer"`
}

type SeedPeer struct {
	Name          string `toml:"name" validate:"required,resource_name"`
	InterfaceName string `toml:"interface" validate:"omitempty,resource_name"`
	IPAddress     string `toml:"ip_address" validate:"omitempty,ip"`
	PeerIPAddress string `toml:"peer_ip_address" validate:"omitempty,ip"`
	PeerASN       uint32 `toml:"peer_asn" validate:"required"`

	AdvertisedRoutePriority *uint32 `toml:"advertised_route_priority" validate:"omitempty"`

	AdvertiseMode    string            `toml:"advertise_mode"`
	AdvertisedGroups []string          `toml:"advertised_groups"`
	AdvertisedRanges map[string]string `toml:"advertised_ranges" validate:"omitempty,dive,keys,cidr,endkeys"`
}

// LoadSeed reads a seed file and returns a store populated with its routers.
func LoadSeed(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %v", err)
	}

	var seed SeedFile
	if err := toml.Unmarshal(data, &seed); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse seed file")
		}
		return nil, fmt.Errorf("failed to parse seed file: %v", err)
	}

	return buildStore(&seed)
}

// DefaultStore returns a store with a small sample inventory so the emulator
// is usable without a seed file.
func DefaultStore() *Store {
	priority := uint32(100)
	seed := &SeedFile{
		Routers: []SeedRouter{
			{
				Project:       "demo-project",
				Region:        "us-central1",
				Name:          "backbone",
				Network:       "default",
				Description:   "sample router with custom advertisements",
				ASN:           64512,
				AdvertiseMode: "CUSTOM",
				AdvertisedRanges: map[string]string{
					"10.10.0.0/16": "corp",
					"10.20.0.0/16": "",
				},
				Peers: []SeedPeer{
					{
						Name:                    "backbone-peer-0",
						InterfaceName:           "if-0",
						IPAddress:               "169.254.0.1",
						PeerIPAddress:           "169.254.0.2",
						PeerASN:                 64513,
						AdvertisedRoutePriority: &priority,
						AdvertiseMode:           "CUSTOM",
						AdvertisedGroups:        []string{"ALL_SUBNETS"},
					},
				},
			},
			{
				Project:       "demo-project",
				Region:        "us-central1",
				Name:          "transit",
				Network:       "default",
				ASN:           64514,
				AdvertiseMode: "DEFAULT",
				Peers: []SeedPeer{
					{
						Name:          "transit-peer-0",
						InterfaceName: "if-0",
						IPAddress:     "169.254.1.1",
						PeerIPAddress: "169.254.1.2",
						PeerASN:       64515,
					},
				},
			},
		},
	}

	store, err := buildStore(seed)
	if err != nil {
		// The sample above is static and known-good.
		panic(fmt.Sprintf("invalid built-in seed: %v", err))
	}
	return store
}

func buildStore(seed *SeedFile) (*Store, error) {
	var validationErrors config.ValidationErrors
	seen := make(map[routerKey]bool)

	for i, router := range seed.Routers {
		itemName := fmt.Sprintf("router \"%s\"", router.Name)
		if router.Name == "" {
			itemName = fmt.Sprintf("router #%d", i+1)
		}
		validationErrors = append(validationErrors,
			config.ValidateStruct(router, "router", itemName)...)

		key := routerKey{router.Project, router.Region, router.Name}
		if router.Name != "" && seen[key] {
			validationErrors = append(validationErrors, config.ValidationError{
				ItemName:  itemName,
				FieldPath: "router.name",
				Message:   "duplicate router in the same project and region",
			})
		}
		seen[key] = true

		peerNames := make(map[string]bool)
		for j, peer := range router.Peers {
			peerItem := fmt.Sprintf("%s, peer \"%s\"", itemName, peer.Name)
			if peer.Name == "" {
				peerItem = fmt.Sprintf("%s, peer #%d", itemName, j+1)
			}
			validationErrors = append(validationErrors,
				config.ValidateStruct(peer, "peer", peerItem)...)

			if peer.Name != "" && peerNames[peer.Name] {
				validationErrors = append(validationErrors, config.ValidationError{
					ItemName:  peerItem,
					FieldPath: "peer.name",
					Message:   "duplicate peer name on this router",
				})
			}
			peerNames[peer.Name] = true
		}
	}

	if len(validationErrors) > 0 {
		return nil, fmt.Errorf("seed validation failed:\n%s", validationErrors.Error())
	}

	store := NewStore()
	for _, seedRouter := range seed.Routers {
		router, err := buildRouter(&seedRouter)
		if err != nil {
			return nil, err
		}
		store.Put(seedRouter.Project, seedRouter.Region, router)
	}

	return store, nil
}

// buildRouter converts one seed entry into an API resource, running the
// advertisement fields through the same parsing as the CLI flags.
func buildRouter(seed *SeedRouter) (*compute.Router, error) {
	router := &compute.Router{
		Name:              seed.Name,
		Description:       seed.Description,
		Region:            seed.Region,
		Network:           seed.Network,
		Bgp:               &compute.RouterBgp{ASN: seed.ASN},
		CreationTimestamp: time.Now().UTC().Format(time.RFC3339),
	}

	mode, groups, prefixes, err := routers.ParseAdvertisements(
		seed.AdvertiseMode, seed.AdvertisedGroups, seed.AdvertisedRanges, routers.ResourceKindRouter)
	if err != nil {
		return nil, fmt.Errorf("router \"%s\": %v", seed.Name, err)
	}
	routers.ApplyRouterAdvertisements(router, mode, groups, prefixes)

	for i := range seed.Peers {
		seedPeer := &seed.Peers[i]
		peer := compute.RouterBgpPeer{
			Name:                    seedPeer.Name,
			InterfaceName:           seedPeer.InterfaceName,
			IPAddress:               seedPeer.IPAddress,
			PeerIPAddress:           seedPeer.PeerIPAddress,
			PeerASN:                 seedPeer.PeerASN,
			AdvertisedRoutePriority: seedPeer.AdvertisedRoutePriority,
		}

		mode, groups, prefixes, err := routers.ParseAdvertisements(
			seedPeer.AdvertiseMode, seedPeer.AdvertisedGroups, seedPeer.AdvertisedRanges, routers.ResourceKindPeer)
		if err != nil {
			return nil, fmt.Errorf("router \"%s\", peer \"%s\": %v", seed.Name, seedPeer.Name, err)
		}
		routers.ApplyPeerAdvertisements(&peer, mode, groups, prefixes)

		router.BgpPeers = append(router.BgpPeers, peer)
	}

	return router, nil
}
