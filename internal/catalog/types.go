package catalog

// Catalog is the top-level YAML document.
type Catalog struct {
	// Server describes the HTTP server settings.
	Server ServerConfig `yaml:"server" json:"server"`
	// Tools lists all command template declarations.
	Tools []CommandTemplate `yaml:"tools" json:"tools"`
}

// ServerConfig defines server settings.
type ServerConfig struct {
	// Name is the service name.
	Name string `yaml:"name" json:"name"`
	// Version is the service version.
	Version string `yaml:"version" json:"version"`
	// ShutdownTimeout overrides graceful shutdown duration.
	ShutdownTimeout string `yaml:"shutdown_timeout" json:"shutdown_timeout"`
	// StartupHooks defines one-time commands executed on start.
	StartupHooks []HookConfig `yaml:"startup_hooks" json:"startup_hooks"`
	// HTTP configures the HTTP transport.
	HTTP HTTPConfig `yaml:"http" json:"http"`
}

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen" json:"listen"`
	// ReadTimeout limits request read time.
	ReadTimeout string `yaml:"read_timeout" json:"read_timeout"`
	// WriteTimeout limits response write time. Zero keeps streams open.
	WriteTimeout string `yaml:"write_timeout" json:"write_timeout"`
	// IdleTimeout controls idle connections.
	IdleTimeout string `yaml:"idle_timeout" json:"idle_timeout"`
}

// HookConfig defines a startup hook command.
type HookConfig struct {
	// Command is the startup command to run.
	Command string `yaml:"command" json:"command"`
	// Args are optional arguments.
	Args []string `yaml:"args" json:"args"`
	// Env adds environment variables for the hook.
	Env map[string]string `yaml:"env" json:"env"`
	// Timeout controls hook execution duration.
	Timeout string `yaml:"timeout" json:"timeout"`
}

// CommandTemplate declares one invocable tool.
type CommandTemplate struct {
	// ID is the unique tool identifier.
	ID string `yaml:"id" json:"id"`
	// Label is the human-friendly tool name.
	Label string `yaml:"label" json:"label"`
	// Description explains the tool to callers.
	Description string `yaml:"description" json:"description"`
	// Platforms restricts the tool to platform families. Empty means all.
	Platforms []string `yaml:"platforms" json:"platforms"`
	// Unix is the unix-like platform variant.
	Unix *PlatformSpec `yaml:"unix" json:"unix"`
	// Windows is the windows platform variant.
	Windows *PlatformSpec `yaml:"windows" json:"windows"`
	// Options lists the user-configurable parameters in argv order.
	Options []OptionSpec `yaml:"options" json:"options"`
	// Target names the option whose value is appended as the trailing
	// positional argument.
	Target string `yaml:"target" json:"target"`
}

// Variant returns the platform variant for the given family, or nil.
func (t CommandTemplate) Variant(family string) *PlatformSpec {
	switch family {
	case "windows":
		return t.Windows
	default:
		return t.Unix
	}
}

// PlatformSpec is one per-platform concrete command form.
type PlatformSpec struct {
	// Base is the executable name or path.
	Base string `yaml:"base" json:"base"`
	// Flags maps option ids to a flag token or token list. Values are
	// normalized into Bindings at load time.
	Flags map[string]any `yaml:"flags" json:"flags"`
	// Bindings holds the normalized flag bindings.
	Bindings map[string]FlagBinding `yaml:"-" json:"-"`
}

// OptionSpec is one user-configurable parameter.
type OptionSpec struct {
	// ID is unique within a template.
	ID string `yaml:"id" json:"id"`
	// Label is used in user-facing error messages.
	Label string `yaml:"label" json:"label"`
	// Type is "checkbox" or "value".
	Type string `yaml:"type" json:"type"`
	// Required aborts argument building when the value is absent.
	Required bool `yaml:"required" json:"required"`
	// Platforms restricts the option to platform families. Empty means all.
	Platforms []string `yaml:"platforms" json:"platforms"`
}

// FlagBinding holds the literal argv tokens bound to an option id.
// Absence from a PlatformSpec's Bindings map means the option is inert
// on that platform.
type FlagBinding struct {
	tokens []string
}

// Single binds one token.
func Single(token string) FlagBinding {
	return FlagBinding{tokens: []string{token}}
}

// Multi binds a token list.
func Multi(tokens ...string) FlagBinding {
	out := make([]string, len(tokens))
	copy(out, tokens)
	return FlagBinding{tokens: out}
}

// Tokens returns a copy of the bound tokens.
func (b FlagBinding) Tokens() []string {
	out := make([]string, len(b.tokens))
	copy(out, b.tokens)
	return out
}

// IsZero reports whether the binding carries no tokens.
func (b FlagBinding) IsZero() bool {
	return len(b.tokens) == 0
}
