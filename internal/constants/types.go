package constants

// Platform families.
const (
	PlatformUnix    = "unix"
	PlatformWindows = "windows"
)

// Option types.
const (
	OptionCheckbox = "checkbox"
	OptionValue    = "value"
)

// Stop request outcomes.
const (
	StopStopped  = "stopped"
	StopNotFound = "not_found"
	StopError    = "error"
)
