// Package platform classifies the running system into the "unix" or
// "windows" family and filters catalogs down to what the active family
// can run.
package platform

import (
	"runtime"

	"github.com/randomname124290358349/myTools/internal/catalog"
	"github.com/randomname124290358349/myTools/internal/constants"
)

// Info describes the running system for informational callers.
type Info struct {
	// OSFamily is "unix" or "windows".
	OSFamily string `json:"os_family"`
	// System is the raw operating system name.
	System string `json:"system"`
	// Arch is the machine architecture.
	Arch string `json:"arch"`
}

// Current returns the active platform family.
func Current() string {
	if runtime.GOOS == "windows" {
		return constants.PlatformWindows
	}
	return constants.PlatformUnix
}

// Describe returns platform details for the current system.
func Describe() Info {
	return Info{
		OSFamily: Current(),
		System:   runtime.GOOS,
		Arch:     runtime.GOARCH,
	}
}

// Supports reports whether a platform restriction list admits the family.
// An empty list admits every family.
func Supports(platforms []string, family string) bool {
	if len(platforms) == 0 {
		return true
	}
	for _, name := range platforms {
		if name == family {
			return true
		}
	}
	return false
}

// Filter returns a copy of the catalog restricted to the given family.
// Tools whose platform set excludes the family, or that lack a variant
// for it, are dropped entirely; surviving tools keep only the options
// the family admits.
func Filter(cat *catalog.Catalog, family string) *catalog.Catalog {
	if cat == nil {
		return nil
	}
	out := &catalog.Catalog{Server: cat.Server}
	for _, tool := range cat.Tools {
		filtered, ok := FilterTool(tool, family)
		if !ok {
			continue
		}
		out.Tools = append(out.Tools, filtered)
	}
	return out
}

// FilterTool restricts one template to the given family. It reports
// false when the family is excluded or no variant exists for it; the
// returned copy otherwise keeps only the options the family admits.
func FilterTool(tool catalog.CommandTemplate, family string) (catalog.CommandTemplate, bool) {
	if !Supports(tool.Platforms, family) {
		return catalog.CommandTemplate{}, false
	}
	if tool.Variant(family) == nil {
		return catalog.CommandTemplate{}, false
	}
	filtered := tool
	filtered.Options = make([]catalog.OptionSpec, 0, len(tool.Options))
	for _, option := range tool.Options {
		if !Supports(option.Platforms, family) {
			continue
		}
		filtered.Options = append(filtered.Options, option)
	}
	return filtered, true
}

// Find returns the tool with the given id from the filtered catalog.
func Find(cat *catalog.Catalog, toolID string) (catalog.CommandTemplate, bool) {
	if cat == nil {
		return catalog.CommandTemplate{}, false
	}
	for _, tool := range cat.Tools {
		if tool.ID == toolID {
			return tool, true
		}
	}
	return catalog.CommandTemplate{}, false
}
