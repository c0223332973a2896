// Package routers implements the advertisement and peer configuration logic
// for cloud network routers: parsing flag values into the wire model,
// validating mode/group combinations, and guarding destructive mode switches
// behind a confirmation prompt.
package routers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/routerctl/routerctl/internal/compute"
	"github.com/routerctl/routerctl/internal/errors"
)

// ResourceKind names the entity an advertisement config belongs to. It is
// only used for error and prompt text.
type ResourceKind string

const (
	// ResourceKindRouter is the router-level advertisement configuration.
	ResourceKindRouter ResourceKind = "router"

	// ResourceKindPeer is the per-BGP-peer advertisement configuration.
	ResourceKindPeer ResourceKind = "peer"
)

// CustomWithDefaultError is returned when custom advertisement fields are
// combined with DEFAULT mode.
type CustomWithDefaultError struct {
	Resource ResourceKind
}

func (e *CustomWithDefaultError) Error() string {
	return fmt.Sprintf("Cannot specify custom advertisements for a %s with default mode.", e.Resource)
}

// Prompter asks the user a yes/no question before a destructive change.
type Prompter interface {
	Confirm(message string) (bool, error)
}

// ParseAdvertiseMode converts a mode flag value into an AdvertiseMode.
// Input is case-insensitive.
func ParseAdvertiseMode(value string) (compute.AdvertiseMode, error) {
	mode := compute.AdvertiseMode(strings.ToUpper(strings.TrimSpace(value)))
	switch mode {
	case compute.AdvertiseModeDefault, compute.AdvertiseModeCustom:
		return mode, nil
	default:
		return "", errors.NewValidationError(
			fmt.Sprintf("invalid advertisement mode %q (choose from DEFAULT, CUSTOM)", value), nil)
	}
}

// ParseAdvertisedGroups converts group flag values into AdvertisedGroups.
// Input is case-insensitive.
func ParseAdvertisedGroups(values []string) ([]compute.AdvertisedGroup, error) {
	groups := make([]compute.AdvertisedGroup, 0, len(values))
	for _, value := range values {
		group := compute.AdvertisedGroup(strings.ToUpper(strings.TrimSpace(value)))
		if group != compute.AdvertisedGroupAllSubnets {
			return nil, errors.NewValidationError(
				fmt.Sprintf("invalid advertised group %q (choose from ALL_SUBNETS)", value), nil)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// ParsePrefixes converts a CIDR-to-description mapping into a list of
// advertised prefixes, sorted by (prefix, description) so output is
// deterministic regardless of map iteration order. CIDR syntax is validated
// by the flag parser upstream, not here.
func ParsePrefixes(ranges map[string]string) []compute.AdvertisedPrefix {
	prefixes := make([]compute.AdvertisedPrefix, 0, len(ranges))
	for cidr, description := range ranges {
		prefixes = append(prefixes, compute.AdvertisedPrefix{
			Prefix:      cidr,
			Description: description,
		})
	}

	sort.Slice(prefixes, func(i, j int) bool {
		if prefixes[i].Prefix != prefixes[j].Prefix {
			return prefixes[i].Prefix < prefixes[j].Prefix
		}
		return prefixes[i].Description < prefixes[j].Description
	})

	return prefixes
}

// ParseAdvertisements validates and converts raw advertisement flag values
// into their wire representation.
//
// Absent values stay absent: an empty modeStr yields a nil mode and nil
// groups/ranges yield nil slices, meaning "leave the server-side value
// unchanged". A DEFAULT mode with any custom group or range fails with
// CustomWithDefaultError. A plain DEFAULT mode returns empty (non-nil)
// groups and prefixes: switching to default always clears existing custom
// advertisements, even when the caller did not ask for clearing explicitly.
func ParseAdvertisements(modeStr string, groups []string, ranges map[string]string, kind ResourceKind) (*compute.AdvertiseMode, []compute.AdvertisedGroup, []compute.AdvertisedPrefix, error) {
	var mode *compute.AdvertiseMode
	if modeStr != "" {
		parsed, err := ParseAdvertiseMode(modeStr)
		if err != nil {
			return nil, nil, nil, err
		}
		mode = &parsed
	}

	var parsedGroups []compute.AdvertisedGroup
	if groups != nil {
		parsed, err := ParseAdvertisedGroups(groups)
		if err != nil {
			return nil, nil, nil, err
		}
		parsedGroups = parsed
	}

	var parsedPrefixes []compute.AdvertisedPrefix
	if ranges != nil {
		parsedPrefixes = ParsePrefixes(ranges)
	}

	if mode != nil && *mode == compute.AdvertiseModeDefault {
		if len(parsedGroups) > 0 || len(parsedPrefixes) > 0 {
			return nil, nil, nil, &CustomWithDefaultError{Resource: kind}
		}
		return mode, []compute.AdvertisedGroup{}, []compute.AdvertisedPrefix{}, nil
	}

	return mode, parsedGroups, parsedPrefixes, nil
}

// ConfirmDefaultModeSwitch warns and asks for confirmation when an update
// would switch an existing CUSTOM advertisement mode to DEFAULT, since that
// clears all configured groups and ranges. Every other mode combination is a
// no-op. Declining returns errors.ErrAborted so the caller can cancel the
// whole operation instead of treating it as a failure.
func ConfirmDefaultModeSwitch(existing, updated compute.AdvertiseMode, kind ResourceKind, prompter Prompter) error {
	if existing != compute.AdvertiseModeCustom || updated != compute.AdvertiseModeDefault {
		return nil
	}

	message := fmt.Sprintf(
		"WARNING: switching from custom advertisement mode to default will clear out any existing advertised groups/ranges from this %s.",
		kind)

	confirmed, err := prompter.Confirm(message)
	if err != nil {
		return errors.NewInternalError("confirmation prompt failed", err)
	}
	if !confirmed {
		return errors.ErrAborted
	}
	return nil
}

// ApplyRouterAdvertisements sets only the provided (non-nil) advertisement
// fields on the router's BGP block, leaving absent fields untouched.
func ApplyRouterAdvertisements(router *compute.Router, mode *compute.AdvertiseMode, groups []compute.AdvertisedGroup, prefixes []compute.AdvertisedPrefix) {
	if mode == nil && groups == nil && prefixes == nil {
		return
	}
	if router.Bgp == nil {
		router.Bgp = &compute.RouterBgp{}
	}
	if mode != nil {
		router.Bgp.AdvertiseMode = *mode
	}
	if groups != nil {
		router.Bgp.AdvertisedGroups = groups
	}
	if prefixes != nil {
		router.Bgp.AdvertisedPrefixes = prefixes
	}
}

// ApplyPeerAdvertisements sets only the provided (non-nil) advertisement
// fields on a BGP peer, leaving absent fields untouched.
func ApplyPeerAdvertisements(peer *compute.RouterBgpPeer, mode *compute.AdvertiseMode, groups []compute.AdvertisedGroup, prefixes []compute.AdvertisedPrefix) {
	if mode != nil {
		peer.AdvertiseMode = *mode
	}
	if groups != nil {
		peer.AdvertisedGroups = groups
	}
	if prefixes != nil {
		peer.AdvertisedPrefixes = prefixes
	}
}

// validateAdvertisementConfig checks an already-decoded advertisement config
// the way the API does: enum values must be known and DEFAULT mode must not
// carry custom groups or prefixes.
func validateAdvertisementConfig(mode compute.AdvertiseMode, groups []compute.AdvertisedGroup, prefixes []compute.AdvertisedPrefix, kind ResourceKind) error {
	switch mode {
	case "", compute.AdvertiseModeDefault, compute.AdvertiseModeCustom:
	default:
		return errors.NewValidationError(
			fmt.Sprintf("invalid advertisement mode %q (choose from DEFAULT, CUSTOM)", string(mode)), nil)
	}

	for _, group := range groups {
		if group != compute.AdvertisedGroupAllSubnets {
			return errors.NewValidationError(
				fmt.Sprintf("invalid advertised group %q (choose from ALL_SUBNETS)", string(group)), nil)
		}
	}

	if mode == compute.AdvertiseModeDefault && (len(groups) > 0 || len(prefixes) > 0) {
		return &CustomWithDefaultError{Resource: kind}
	}

	return nil
}

// ValidateRouterAdvertisements checks the advertisement configuration of a
// router and all of its BGP peers.
func ValidateRouterAdvertisements(router *compute.Router) error {
	if router.Bgp != nil {
		if err := validateAdvertisementConfig(router.Bgp.AdvertiseMode, router.Bgp.AdvertisedGroups, router.Bgp.AdvertisedPrefixes, ResourceKindRouter); err != nil {
			return err
		}
	}
	for i := range router.BgpPeers {
		peer := &router.BgpPeers[i]
		if err := validateAdvertisementConfig(peer.AdvertiseMode, peer.AdvertisedGroups, peer.AdvertisedPrefixes, ResourceKindPeer); err != nil {
			return err
		}
	}
	return nil
}
