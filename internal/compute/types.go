package compute

// AdvertiseMode controls how a router or BGP peer selects the prefixes it
// advertises.
type AdvertiseMode string

const (
	// AdvertiseModeDefault advertises the provider-managed set of prefixes.
	AdvertiseModeDefault AdvertiseMode = "DEFAULT"

	// AdvertiseModeCustom advertises only the explicitly configured groups and
	// prefixes.
	AdvertiseModeCustom AdvertiseMode = "CUSTOM"
)

// AdvertisedGroup is a named set of prefixes that can be advertised as a whole.
type AdvertisedGroup string

// AdvertisedGroupAllSubnets advertises all available subnet prefixes of the
// router's network.
const AdvertisedGroupAllSubnets AdvertisedGroup = "ALL_SUBNETS"

// AdvertisedPrefix is a single custom advertised IP range with an optional
// free-form description.
type AdvertisedPrefix struct {
	Prefix      string `json:"prefix"`
	Description string `json:"description,omitempty"`
}

// RouterBgp holds the BGP configuration of a router, including its
// advertisement settings.
type RouterBgp struct {
	ASN                uint32             `json:"asn,omitempty"`
	AdvertiseMode      AdvertiseMode      `json:"advertiseMode,omitempty"`
	AdvertisedGroups   []AdvertisedGroup  `json:"advertisedGroups,omitempty"`
	AdvertisedPrefixes []AdvertisedPrefix `json:"advertisedPrefixes,omitempty"`
}

// RouterBgpPeer is a BGP peering session on a router. Advertisement fields on
// the peer override the router-level configuration for that session.
//
// AdvertisedRoutePriority is a pointer because zero is a meaningful priority
// and must be distinguishable from "not set".
type RouterBgpPeer struct {
	Name                    string             `json:"name"`
	InterfaceName           string             `json:"interfaceName,omitempty"`
	IPAddress               string             `json:"ipAddress,omitempty"`
	PeerIPAddress           string             `json:"peerIpAddress,omitempty"`
	PeerASN                 uint32             `json:"peerAsn,omitempty"`
	AdvertisedRoutePriority *uint32            `json:"advertisedRoutePriority,omitempty"`
	AdvertiseMode           AdvertiseMode      `json:"advertiseMode,omitempty"`
	AdvertisedGroups        []AdvertisedGroup  `json:"advertisedGroups,omitempty"`
	AdvertisedPrefixes      []AdvertisedPrefix `json:"advertisedPrefixes,omitempty"`
}

// RouterInterface is a logical interface of a router that BGP peers can be
// bound to.
type RouterInterface struct {
	Name            string `json:"name"`
	IPRange         string `json:"ipRange,omitempty"`
	LinkedVPNTunnel string `json:"linkedVpnTunnel,omitempty"`
}

// Router represents a cloud network router resource.
type Router struct {
	Name              string            `json:"name"`
	Description       string            `json:"description,omitempty"`
	Region            string            `json:"region,omitempty"`
	Network           string            `json:"network,omitempty"`
	Bgp               *RouterBgp        `json:"bgp,omitempty"`
	BgpPeers          []RouterBgpPeer   `json:"bgpPeers,omitempty"`
	Interfaces        []RouterInterface `json:"interfaces,omitempty"`
	CreationTimestamp string            `json:"creationTimestamp,omitempty"`
	SelfLink          string            `json:"selfLink,omitempty"`
}

// RouterList is the response of the router collection endpoint.
type RouterList struct {
	Items []Router `json:"items"`
}

// APIErrorDetail is the error payload the routers API returns for non-2xx
// responses.
type APIErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIErrorResponse wraps an APIErrorDetail the way the API encodes it on the
// wire.
type APIErrorResponse struct {
	Error APIErrorDetail `json:"error"`
}
