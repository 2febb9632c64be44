package catalog

import "fmt"

// normalize turns the loose string-or-list flag values of every platform
// variant into typed FlagBindings.
func normalize(cat *Catalog) error {
	for i := range cat.Tools {
		tool := &cat.Tools[i]
		for _, spec := range []*PlatformSpec{tool.Unix, tool.Windows} {
			if spec == nil {
				continue
			}
			bindings, err := normalizeFlags(spec.Flags)
			if err != nil {
				return fmt.Errorf("tool %s: %w", tool.ID, err)
			}
			spec.Bindings = bindings
		}
	}
	return nil
}

func normalizeFlags(flags map[string]any) (map[string]FlagBinding, error) {
	if flags == nil {
		return nil, nil
	}
	out := make(map[string]FlagBinding, len(flags))
	for optionID, raw := range flags {
		binding, err := normalizeBinding(raw)
		if err != nil {
			return nil, fmt.Errorf("flags.%s: %w", optionID, err)
		}
		if binding.IsZero() {
			continue
		}
		out[optionID] = binding
	}
	return out, nil
}

func normalizeBinding(raw any) (FlagBinding, error) {
	switch v := raw.(type) {
	case nil:
		return FlagBinding{}, nil
	case string:
		if v == "" {
			return FlagBinding{}, nil
		}
		return Single(v), nil
	case []any:
		tokens := make([]string, 0, len(v))
		for i, item := range v {
			token, ok := item.(string)
			if !ok {
				return FlagBinding{}, fmt.Errorf("token %d must be a string, got %T", i, item)
			}
			tokens = append(tokens, token)
		}
		return Multi(tokens...), nil
	case []string:
		return Multi(v...), nil
	default:
		return FlagBinding{}, fmt.Errorf("must be a string or a list of strings, got %T", raw)
	}
}
