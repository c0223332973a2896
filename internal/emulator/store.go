// Package emulator implements a local in-memory stand-in for the cloud
// network routers API, covering the subset of endpoints routerctl consumes.
// It exists for development and tests: the real service is remote, this one
// runs on a loopback port and starts from a seed file.
package emulator

import (
	"sort"
	"sync"

	"github.com/routerctl/routerctl/internal/compute"
)

type routerKey struct {
	project string
	region  string
	name    string
}

// Store is the in-memory router collection behind the emulator, keyed by
// project, region, and router name. All methods are safe for concurrent use
// and operate on copies so handlers never share memory with callers.
type Store struct {
	mu      sync.RWMutex
	routers map[routerKey]*compute.Router
}

func NewStore() *Store {
	return &Store{
		routers: make(map[routerKey]*compute.Router),
	}
}

// Put inserts or replaces a router.
func (s *Store) Put(project, region string, router *compute.Router) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := copyRouter(router)
	copied.Region = region
	s.routers[routerKey{project, region, router.Name}] = copied
}

// List returns all routers of a project region sorted by name.
func (s *Store) List(project, region string) []compute.Router {
	s.mu.RLock()
	defer s.mu.RUnlock()

	routers := make([]compute.Router, 0)
	for key, router := range s.routers {
		if key.project == project && key.region == region {
			routers = append(routers, *copyRouter(router))
		}
	}

	sort.Slice(routers, func(i, j int) bool {
		return routers[i].Name < routers[j].Name
	})

	return routers
}

// Count returns the number of routers in the store.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.routers)
}

// Get returns a copy of one router, or false when it does not exist.
func (s *Store) Get(project, region, name string) (*compute.Router, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	router, ok := s.routers[routerKey{project, region, name}]
	if !ok {
		return nil, false
	}
	return copyRouter(router), true
}

// Update replaces the configurable fields of a stored router with those of
// body, keeping the identity fields (name, region, network, creation
// timestamp) of the stored resource. Returns the updated copy, or false when
// the router does not exist.
func (s *Store) Update(project, region, name string, body *compute.Router) (*compute.Router, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := routerKey{project, region, name}
	stored, ok := s.routers[key]
	if !ok {
		return nil, false
	}

	updated := copyRouter(body)
	updated.Name = stored.Name
	updated.Region = stored.Region
	updated.Network = stored.Network
	updated.CreationTimestamp = stored.CreationTimestamp
	updated.SelfLink = stored.SelfLink

	s.routers[key] = updated
	return copyRouter(updated), true
}

// copyRouter deep-copies a router so store contents never alias request or
// response data.
func copyRouter(r *compute.Router) *compute.Router {
	copied := *r

	if r.Bgp != nil {
		bgp := *r.Bgp
		bgp.AdvertisedGroups = append([]compute.AdvertisedGroup(nil), r.Bgp.AdvertisedGroups...)
		bgp.AdvertisedPrefixes = append([]compute.AdvertisedPrefix(nil), r.Bgp.AdvertisedPrefixes...)
		copied.Bgp = &bgp
	}

	if r.BgpPeers != nil {
		copied.BgpPeers = make([]compute.RouterBgpPeer, len(r.BgpPeers))
		for i, peer := range r.BgpPeers {
			copied.BgpPeers[i] = peer
			copied.BgpPeers[i].AdvertisedGroups = append([]compute.AdvertisedGroup(nil), peer.AdvertisedGroups...)
			copied.BgpPeers[i].AdvertisedPrefixes = append([]compute.AdvertisedPrefix(nil), peer.AdvertisedPrefixes...)
			if peer.AdvertisedRoutePriority != nil {
				priority := *peer.AdvertisedRoutePriority
				copied.BgpPeers[i].AdvertisedRoutePriority = &priority
			}
		}
	}

	copied.Interfaces = append([]compute.RouterInterface(nil), r.Interfaces...)

	return &copied
}
