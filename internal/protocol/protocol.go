package protocol

// Execution states.
const (
	StateRunning   = "running"
	StateCancelled = "cancelled"
	StateCompleted = "completed"
	StateFailed    = "failed"
)

// StopResult is the fixed JSON response for stop requests.
type StopResult struct {
	// Status is one of stopped, not_found or error.
	Status string `json:"status"`
	// Reason carries an optional human-readable message.
	Reason string `json:"reason,omitempty"`
}
