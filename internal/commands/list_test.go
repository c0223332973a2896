package commands

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/routerctl/routerctl/internal/compute"
)

// captureStdout runs f with os.Stdout redirected to a pipe and returns what
// it wrote. Command output goes to stdout, so tests read it back this way.
func captureStdout(t *testing.T, f func() error) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	outCh := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outCh <- buf.String()
	}()

	err := f()

	w.Close()
	os.Stdout = oldStdout
	out := <-outCh

	if err != nil {
		t.Fatalf("command failed: %v\noutput: %s", err, out)
	}
	return out
}

func TestListCommand_Table(t *testing.T) {
	store := newCommandTestStore()
	ctx := newCommandTestEnv(t, store)

	cmd := CreateListCommand()
	if err := cmd.Init(nil, ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	out := captureStdout(t, cmd.Run)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "NAME") || !strings.Contains(lines[0], "ASN") {
		t.Errorf("expected table header, got %q", lines[0])
	}

	// Rows come back sorted by router name.
	if !strings.HasPrefix(lines[1], "backbone") || !strings.HasPrefix(lines[2], "transit") {
		t.Errorf("expected sorted rows, got:\n%s", out)
	}
	if !strings.Contains(lines[1], "64512") {
		t.Errorf("expected ASN in row, got %q", lines[1])
	}
}

func TestListCommand_Format(t *testing.T) {
	store := newCommandTestStore()
	ctx := newCommandTestEnv(t, store)

	cmd := CreateListCommand()
	if err := cmd.Init([]string{"--format", "{{name}}:{{bgp.asn}}"}, ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	out := captureStdout(t, cmd.Run)
	if out != "backbone:64512\ntransit:64514\n" {
		t.Errorf("unexpected formatted output: %q", out)
	}
}

func TestListCommand_ProjectFlagOverridesConfig(t *testing.T) {
	store := newCommandTestStore()
	store.Put("other-project", "us-central1", &compute.Router{
		Name: "edge",
		Bgp:  &compute.RouterBgp{ASN: 64600},
	})
	ctx := newCommandTestEnv(t, store)

	cmd := CreateListCommand()
	if err := cmd.Init([]string{"--project", "other-project", "--format", "{{name}}"}, ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	out := captureStdout(t, cmd.Run)
	if out != "edge\n" {
		t.Errorf("expected only other-project routers, got %q", out)
	}
}

func TestDescribeCommand_RequiresRouter(t *testing.T) {
	cmd := CreateDescribeCommand()
	err := cmd.Init(nil, &AppContext{})
	if err == nil || !strings.Contains(err.Error(), "--router is required") {
		t.Errorf("expected --router message, got %v", err)
	}
}

func TestDescribeCommand_JSON(t *testing.T) {
	store := newCommandTestStore()
	ctx := newCommandTestEnv(t, store)

	cmd := CreateDescribeCommand()
	if err := cmd.Init([]string{"--router", "backbone"}, ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	out := captureStdout(t, cmd.Run)
	if !strings.Contains(out, `"name": "backbone"`) {
		t.Errorf("expected indented JSON with name, got %q", out)
	}
	if !strings.Contains(out, `"advertiseMode": "CUSTOM"`) {
		t.Errorf("expected advertisement mode in JSON, got %q", out)
	}
}

func TestDescribeCommand_Format(t *testing.T) {
	store := newCommandTestStore()
	ctx := newCommandTestEnv(t, store)

	cmd := CreateDescribeCommand()
	args := []string{"--router", "backbone", "--format", "{{bgp.advertiseMode}} {{bgp.advertisedPrefixes.0.prefix}}"}
	if err := cmd.Init(args, ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	out := captureStdout(t, cmd.Run)
	if out != "CUSTOM 10.10.0.0/16\n" {
		t.Errorf("unexpected formatted output: %q", out)
	}
}
