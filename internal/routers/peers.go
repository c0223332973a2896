package routers

import (
	"fmt"

	"github.com/routerctl/routerctl/internal/compute"
)

// PeerNotFoundError is returned when a router has no BGP peer with the
// requested name.
type PeerNotFoundError struct {
	Name string
}

func (e *PeerNotFoundError) Error() string {
	return fmt.Sprintf("peer `%s` not found", e.Name)
}

// FindBgpPeer returns a pointer into router.BgpPeers for the peer with the
// given name, so updates through it modify the router in place.
func FindBgpPeer(router *compute.Router, name string) (*compute.RouterBgpPeer, error) {
	for i := range router.BgpPeers {
		if router.BgpPeers[i].Name == name {
			return &router.BgpPeers[i], nil
		}
	}
	return nil, &PeerNotFoundError{Name: name}
}

// PeerUpdate carries the peer fields an update command may change. Nil fields
// were not given on the command line and keep their server-side value.
type PeerUpdate struct {
	InterfaceName           *string
	IPAddress               *string
	PeerIPAddress           *string
	PeerASN                 *uint32
	AdvertisedRoutePriority *uint32
}

// ApplyPeerUpdate copies the provided fields of upd onto the peer. Fields
// left nil are not touched.
func ApplyPeerUpdate(peer *compute.RouterBgpPeer, upd PeerUpdate) {
	if upd.InterfaceName != nil {
		peer.InterfaceName = *upd.InterfaceName
	}
	if upd.IPAddress != nil {
		peer.IPAddress = *upd.IPAddress
	}
	if upd.PeerIPAddress != nil {
		peer.PeerIPAddress = *upd.PeerIPAddress
	}
	if upd.PeerASN != nil {
		peer.PeerASN = *upd.PeerASN
	}
	if upd.AdvertisedRoutePriority != nil {
		priority := *upd.AdvertisedRoutePriority
		peer.AdvertisedRoutePriority = &priority
	}
}
