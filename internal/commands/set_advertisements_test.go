package commands

import (
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/routerctl/routerctl/internal/compute"
	"github.com/routerctl/routerctl/internal/emulator"
	"github.com/routerctl/routerctl/internal/errors"
)

// newCommandTestStore seeds an emulator store the way a small deployment
// would look: one router with custom advertisements and one with defaults.
func newCommandTestStore() *emulator.Store {
	priority := uint32(100)
	store := emulator.NewStore()
	store.Put("demo-project", "us-central1", &compute.Router{
		Name:    "backbone",
		Network: "default",
		Bgp: &compute.RouterBgp{
			ASN:              64512,
			AdvertiseMode:    compute.AdvertiseModeCustom,
			AdvertisedGroups: []compute.AdvertisedGroup{compute.AdvertisedGroupAllSubnets},
			AdvertisedPrefixes: []compute.AdvertisedPrefix{
				{Prefix: "10.10.0.0/16", Description: "corp"},
			},
		},
		BgpPeers: []compute.RouterBgpPeer{
			{
				Name:                    "peer-0",
				InterfaceName:           "if-0",
				IPAddress:               "169.254.0.1",
				PeerIPAddress:           "169.254.0.2",
				PeerASN:                 64513,
				AdvertisedRoutePriority: &priority,
				AdvertiseMode:           compute.AdvertiseModeCustom,
			},
		},
	})
	store.Put("demo-project", "us-central1", &compute.Router{
		Name:    "transit",
		Network: "default",
		Bgp: &compute.RouterBgp{
			ASN:           64514,
			AdvertiseMode: compute.AdvertiseModeDefault,
		},
	})
	return store
}

// newCommandTestEnv starts an emulator around store, writes a config file
// pointing at it, and returns an AppContext for command Init. Quiet is set so
// confirmation prompts do not read from stdin.
func newCommandTestEnv(t *testing.T, store *emulator.Store) *AppContext {
	t.Helper()

	server := httptest.NewServer(emulator.NewRouter(store))
	t.Cleanup(server.Close)

	configFile := filepath.Join(t.TempDir(), "config.toml")
	configTOML := fmt.Sprintf(`[api]
endpoint = "%s"

[defaults]
project = "demo-project"
region = "us-central1"
`, server.URL)
	if err := os.WriteFile(configFile, []byte(configTOML), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	return &AppContext{ConfigPath: configFile, Quiet: true}
}

func TestSetAdvertisementsCommand_RequiresRouter(t *testing.T) {
	cmd := CreateSetAdvertisementsCommand()
	err := cmd.Init([]string{"--mode", "CUSTOM"}, &AppContext{})
	if err == nil {
		t.Fatal("expected error without --router")
	}
	if !strings.Contains(err.Error(), "--router is required") {
		t.Errorf("expected --router message, got %v", err)
	}
}

func TestSetAdvertisementsCommand_RequiresSomeChange(t *testing.T) {
	cmd := CreateSetAdvertisementsCommand()
	err := cmd.Init([]string{"--router", "backbone"}, &AppContext{})
	if err == nil {
		t.Fatal("expected error without any advertisement flag")
	}
	if !strings.Contains(err.Error(), "at least one of") {
		t.Errorf("expected at-least-one message, got %v", err)
	}
}

func TestSetAdvertisementsCommand_SetsCustomRanges(t *testing.T) {
	store := newCommandTestStore()
	ctx := newCommandTestEnv(t, store)

	cmd := CreateSetAdvertisementsCommand()
	args := []string{
		"--router", "transit",
		"--mode", "CUSTOM",
		"--ranges", "10.0.0.0/8=corp,1.2.3.0/24",
	}
	if err := cmd.Init(args, ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	router, ok := store.Get("demo-project", "us-central1", "transit")
	if !ok {
		t.Fatal("expected transit to still exist")
	}
	if router.Bgp.AdvertiseMode != compute.AdvertiseModeCustom {
		t.Errorf("expected CUSTOM mode, got %s", router.Bgp.AdvertiseMode)
	}
	prefixes := router.Bgp.AdvertisedPrefixes
	if len(prefixes) != 2 || prefixes[0].Prefix != "1.2.3.0/24" || prefixes[1].Prefix != "10.0.0.0/8" {
		t.Errorf("expected sorted custom ranges, got %+v", prefixes)
	}
	if prefixes[1].Description != "corp" {
		t.Errorf("expected description to survive, got %+v", prefixes[1])
	}
}

func TestSetAdvertisementsCommand_SwitchToDefaultClearsCustomConfig(t *testing.T) {
	store := newCommandTestStore()
	ctx := newCommandTestEnv(t, store)

	cmd := CreateSetAdvertisementsCommand()
	if err := cmd.Init([]string{"--router", "backbone", "--mode", "DEFAULT"}, ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	router, _ := store.Get("demo-project", "us-central1", "backbone")
	if router.Bgp.AdvertiseMode != compute.AdvertiseModeDefault {
		t.Errorf("expected DEFAULT mode, got %s", router.Bgp.AdvertiseMode)
	}
	if len(router.Bgp.AdvertisedGroups) != 0 || len(router.Bgp.AdvertisedPrefixes) != 0 {
		t.Errorf("expected custom config to be cleared, got %+v", router.Bgp)
	}

	// Peers keep their own advertisement settings.
	if router.BgpPeers[0].AdvertiseMode != compute.AdvertiseModeCustom {
		t.Errorf("expected peer mode to be untouched, got %s", router.BgpPeers[0].AdvertiseMode)
	}
}

func TestSetAdvertisementsCommand_DeclinedPromptAborts(t *testing.T) {
	store := newCommandTestStore()
	ctx := newCommandTestEnv(t, store)
	ctx.Quiet = false

	// Closed stdin means the prompt reads EOF and declines.
	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()
	r, w, _ := os.Pipe()
	w.Close()
	os.Stdin = r

	cmd := CreateSetAdvertisementsCommand()
	if err := cmd.Init([]string{"--router", "backbone", "--mode", "DEFAULT"}, ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	err := cmd.Run()
	if !errors.IsAborted(err) {
		t.Fatalf("expected aborted error, got %v", err)
	}

	// The router must be untouched after a declined prompt.
	router, _ := store.Get("demo-project", "us-central1", "backbone")
	if router.Bgp.AdvertiseMode != compute.AdvertiseModeCustom {
		t.Errorf("expected mode to stay CUSTOM, got %s", router.Bgp.AdvertiseMode)
	}
}

func TestSetAdvertisementsCommand_ClearGroupsKeepsRanges(t *testing.T) {
	store := newCommandTestStore()
	ctx := newCommandTestEnv(t, store)

	cmd := CreateSetAdvertisementsCommand()
	if err := cmd.Init([]string{"--router", "backbone", "--groups", ""}, ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	router, _ := store.Get("demo-project", "us-central1", "backbone")
	if len(router.Bgp.AdvertisedGroups) != 0 {
		t.Errorf("expected groups to be cleared, got %+v", router.Bgp.AdvertisedGroups)
	}
	if router.Bgp.AdvertiseMode != compute.AdvertiseModeCustom {
		t.Errorf("expected mode to be untouched, got %s", router.Bgp.AdvertiseMode)
	}
	if len(router.Bgp.AdvertisedPrefixes) != 1 {
		t.Errorf("expected ranges to be untouched, got %+v", router.Bgp.AdvertisedPrefixes)
	}
}

func TestSetAdvertisementsCommand_DefaultWithRangesRejected(t *testing.T) {
	store := newCommandTestStore()
	ctx := newCommandTestEnv(t, store)

	cmd := CreateSetAdvertisementsCommand()
	args := []string{"--router", "transit", "--mode", "DEFAULT", "--ranges", "10.0.0.0/8"}
	if err := cmd.Init(args, ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	err := cmd.Run()
	if err == nil {
		t.Fatal("expected error for DEFAULT mode with ranges")
	}
	if err.Error() != "Cannot specify custom advertisements for a router with default mode." {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestSetAdvertisementsCommand_UnknownRouter(t *testing.T) {
	store := newCommandTestStore()
	ctx := newCommandTestEnv(t, store)

	cmd := CreateSetAdvertisementsCommand()
	if err := cmd.Init([]string{"--router", "missing", "--mode", "DEFAULT"}, ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	err := cmd.Run()
	if err == nil {
		t.Fatal("expected error for unknown router")
	}
	if !strings.Contains(err.Error(), "failed to fetch router") {
		t.Errorf("expected fetch failure message, got %v", err)
	}
}
