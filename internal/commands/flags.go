package commands

import (
	"fmt"
	"net/netip"
	"sort"
	"strings"
)

// listFlag collects values from a repeatable, comma-separated string flag.
type listFlag []string

func (f *listFlag) String() string {
	return strings.Join(*f, ",")
}

func (f *listFlag) Set(value string) error {
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		*f = append(*f, item)
	}
	return nil
}

// rangesFlag collects CIDR[=DESCRIPTION] pairs from a repeatable,
// comma-separated flag. CIDR syntax is validated here so later stages can
// assume well-formed ranges.
type rangesFlag map[string]string

func (f *rangesFlag) String() string {
	items := make([]string, 0, len(*f))
	for cidr, description := range *f {
		if description == "" {
			items = append(items, cidr)
		} else {
			items = append(items, cidr+"="+description)
		}
	}
	sort.Strings(items)
	return strings.Join(items, ",")
}

func (f *rangesFlag) Set(value string) error {
	if *f == nil {
		*f = make(map[string]string)
	}

	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		cidr, description, _ := strings.Cut(item, "=")
		cidr = strings.TrimSpace(cidr)

		if _, err := netip.ParsePrefix(cidr); err != nil {
			return fmt.Errorf("invalid CIDR range %q: %v", cidr, err)
		}
		if _, exists := (*f)[cidr]; exists {
			return fmt.Errorf("duplicate CIDR range %q", cidr)
		}

		(*f)[cidr] = strings.TrimSpace(description)
	}

	return nil
}
