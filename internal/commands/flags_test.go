package commands

import (
	"strings"
	"testing"
)

func TestListFlag_SingleValue(t *testing.T) {
	var f listFlag
	if err := f.Set("ALL_SUBNETS"); err != nil {
		t.Fatalf("expected no error: %v", err)
	}
	if len(f) != 1 || f[0] != "ALL_SUBNETS" {
		t.Errorf("expected [ALL_SUBNETS], got %v", f)
	}
}

func TestListFlag_CommaSeparated(t *testing.T) {
	var f listFlag
	if err := f.Set("a, b ,c"); err != nil {
		t.Fatalf("expected no error: %v", err)
	}
	if len(f) != 3 || f[0] != "a" || f[1] != "b" || f[2] != "c" {
		t.Errorf("expected trimmed [a b c], got %v", f)
	}
}

func TestListFlag_RepeatedUseAccumulates(t *testing.T) {
	var f listFlag
	if err := f.Set("a"); err != nil {
		t.Fatalf("expected no error: %v", err)
	}
	if err := f.Set("b,c"); err != nil {
		t.Fatalf("expected no error: %v", err)
	}
	if len(f) != 3 {
		t.Errorf("expected 3 values after repeated use, got %v", f)
	}
}

func TestListFlag_EmptyValueStaysNil(t *testing.T) {
	var f listFlag
	if err := f.Set(""); err != nil {
		t.Fatalf("expected no error: %v", err)
	}
	if err := f.Set(" , "); err != nil {
		t.Fatalf("expected no error: %v", err)
	}
	// Empty input must not turn an absent list into a present-but-empty one.
	if f != nil {
		t.Errorf("expected nil for empty input, got %v", f)
	}
}

func TestRangesFlag_PrefixOnly(t *testing.T) {
	var f rangesFlag
	if err := f.Set("10.0.0.0/8"); err != nil {
		t.Fatalf("expected no error: %v", err)
	}
	if desc, ok := f["10.0.0.0/8"]; !ok || desc != "" {
		t.Errorf("expected empty description, got %v", f)
	}
}

func TestRangesFlag_PrefixWithDescription(t *testing.T) {
	var f rangesFlag
	if err := f.Set("10.0.0.0/8=corp network"); err != nil {
		t.Fatalf("expected no error: %v", err)
	}
	if f["10.0.0.0/8"] != "corp network" {
		t.Errorf("expected description to survive, got %v", f)
	}
}

func TestRangesFlag_CommaSeparated(t *testing.T) {
	var f rangesFlag
	if err := f.Set("10.0.0.0/8=corp, 1.2.3.0/24"); err != nil {
		t.Fatalf("expected no error: %v", err)
	}
	if len(f) != 2 {
		t.Fatalf("expected 2 ranges, got %v", f)
	}
	if f["10.0.0.0/8"] != "corp" || f["1.2.3.0/24"] != "" {
		t.Errorf("unexpected ranges: %v", f)
	}
}

func TestRangesFlag_InvalidCIDR(t *testing.T) {
	var f rangesFlag
	err := f.Set("10.0.0.0=corp")
	if err == nil {
		t.Fatal("expected error for prefix without a mask")
	}
	if !strings.Contains(err.Error(), "invalid CIDR range") {
		t.Errorf("expected invalid CIDR message, got %v", err)
	}
}

func TestRangesFlag_DuplicatePrefix(t *testing.T) {
	var f rangesFlag
	if err := f.Set("10.0.0.0/8=a"); err != nil {
		t.Fatalf("expected no error: %v", err)
	}
	err := f.Set("10.0.0.0/8=b")
	if err == nil {
		t.Fatal("expected error for duplicate prefix")
	}
	if !strings.Contains(err.Error(), "duplicate CIDR range") {
		t.Errorf("expected duplicate message, got %v", err)
	}
}

func TestRangesFlag_String(t *testing.T) {
	f := rangesFlag{
		"10.0.0.0/8": "corp",
		"1.2.3.0/24": "",
	}
	got := f.String()
	if got != "1.2.3.0/24,10.0.0.0/8=corp" {
		t.Errorf("expected sorted rendering, got %q", got)
	}
}
