package catalog

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// Load parses YAML bytes into a Catalog, normalizes flag bindings and
// validates the result.
func Load(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Load(data, &cat, yaml.WithKnownFields()); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := normalize(&cat); err != nil {
		return nil, err
	}
	if err := Validate(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}
