// Package argbuild turns a command template plus user parameters into a
// concrete argument vector.
package argbuild

import (
	"fmt"
	"strconv"

	"github.com/randomname124290358349/myTools/internal/catalog"
	"github.com/randomname124290358349/myTools/internal/constants"
)

// ValidationError reports a required option with no usable value.
type ValidationError struct {
	// Option is the user-facing label of the missing option.
	Option string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required option missing: %s", e.Option)
}

// Build produces the argument vector for one execution. Options
// contribute tokens in their declared order; the template's target
// option value, when present, is appended as the trailing positional
// argument. A required option without a truthy value aborts the build.
func Build(tool catalog.CommandTemplate, variant *catalog.PlatformSpec, params map[string]any) ([]string, error) {
	if variant == nil {
		return nil, fmt.Errorf("tool %s: no platform variant", tool.ID)
	}
	argv := []string{variant.Base}

	for _, option := range tool.Options {
		value, present := params[option.ID]
		if (!present || !Truthy(value)) && option.Required {
			return nil, &ValidationError{Option: option.Label}
		}
		if !present || !Truthy(value) {
			continue
		}

		binding, bound := variant.Bindings[option.ID]
		if !bound {
			// Options without a flag binding on this platform are inert.
			continue
		}

		argv = append(argv, binding.Tokens()...)
		if option.Type == constants.OptionValue {
			argv = append(argv, Text(value))
		}
	}

	if tool.Target != "" {
		if value, ok := params[tool.Target]; ok && Truthy(value) {
			argv = append(argv, Text(value))
		}
	}

	return argv, nil
}

// Truthy reports whether a parameter value counts as provided.
// False, numeric zero, the empty string and nil all count as absent;
// checkbox options with such values are simply unset, while required
// options fail the build.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case float32:
		return v != 0
	default:
		return true
	}
}

// Text converts a parameter value to its argv token form.
func Text(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
