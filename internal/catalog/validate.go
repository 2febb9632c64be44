package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/randomname124290358349/myTools/internal/constants"
)

// Validate applies defaults and verifies required fields.
func Validate(cat *Catalog) error {
	if cat == nil {
		return fmt.Errorf("catalog is nil")
	}
	if cat.Server.Name == "" {
		return fmt.Errorf("server.name is required")
	}
	if cat.Server.Version == "" {
		return fmt.Errorf("server.version is required")
	}
	if cat.Server.HTTP.Listen == "" {
		cat.Server.HTTP.Listen = ":8000"
	}
	for _, field := range []struct {
		name  string
		value string
	}{
		{"server.shutdown_timeout", cat.Server.ShutdownTimeout},
		{"server.http.read_timeout", cat.Server.HTTP.ReadTimeout},
		{"server.http.write_timeout", cat.Server.HTTP.WriteTimeout},
		{"server.http.idle_timeout", cat.Server.HTTP.IdleTimeout},
	} {
		if strings.TrimSpace(field.value) == "" {
			continue
		}
		if _, err := time.ParseDuration(field.value); err != nil {
			return fmt.Errorf("%s is invalid: %w", field.name, err)
		}
	}

	for i, hook := range cat.Server.StartupHooks {
		if strings.TrimSpace(hook.Command) == "" {
			return fmt.Errorf("server.startup_hooks[%d].command is required", i)
		}
		if strings.TrimSpace(hook.Timeout) != "" {
			if _, err := time.ParseDuration(hook.Timeout); err != nil {
				return fmt.Errorf("server.startup_hooks[%d].timeout is invalid: %w", i, err)
			}
		}
	}

	toolIDs := map[string]struct{}{}
	for i, tool := range cat.Tools {
		if tool.ID == "" {
			return fmt.Errorf("tools[%d].id is required", i)
		}
		if _, exists := toolIDs[tool.ID]; exists {
			return fmt.Errorf("duplicate tool id: %s", tool.ID)
		}
		toolIDs[tool.ID] = struct{}{}
		if tool.Label == "" {
			cat.Tools[i].Label = tool.ID
		}
		if err := validatePlatforms("tools["+tool.ID+"].platforms", tool.Platforms); err != nil {
			return err
		}
		if tool.Unix == nil && tool.Windows == nil {
			return fmt.Errorf("tools[%s] must declare at least one platform variant", tool.ID)
		}
		for _, variant := range []struct {
			name string
			spec *PlatformSpec
		}{
			{"unix", tool.Unix},
			{"windows", tool.Windows},
		} {
			if variant.spec == nil {
				continue
			}
			if strings.TrimSpace(variant.spec.Base) == "" {
				return fmt.Errorf("tools[%s].%s.base is required", tool.ID, variant.name)
			}
		}

		optionIDs := map[string]struct{}{}
		for j, option := range tool.Options {
			if option.ID == "" {
				return fmt.Errorf("tools[%s].options[%d].id is required", tool.ID, j)
			}
			if _, exists := optionIDs[option.ID]; exists {
				return fmt.Errorf("tools[%s]: duplicate option id: %s", tool.ID, option.ID)
			}
			optionIDs[option.ID] = struct{}{}
			if option.Label == "" {
				cat.Tools[i].Options[j].Label = option.ID
			}
			switch option.Type {
			case constants.OptionCheckbox, constants.OptionValue:
			case "":
				cat.Tools[i].Options[j].Type = constants.OptionValue
			default:
				return fmt.Errorf("tools[%s].options[%s].type must be checkbox or value", tool.ID, option.ID)
			}
			if err := validatePlatforms(fmt.Sprintf("tools[%s].options[%s].platforms", tool.ID, option.ID), option.Platforms); err != nil {
				return err
			}
		}

		if tool.Target != "" {
			if _, exists := optionIDs[tool.Target]; !exists {
				return fmt.Errorf("tools[%s].target references unknown option: %s", tool.ID, tool.Target)
			}
		}
	}

	return nil
}

func validatePlatforms(field string, platforms []string) error {
	for _, name := range platforms {
		switch name {
		case constants.PlatformUnix, constants.PlatformWindows:
		default:
			return fmt.Errorf("%s must contain unix or windows, got %q", field, name)
		}
	}
	return nil
}
