package audit

import (
	"context"
	"log/slog"
)

// Event represents an audit entry for execution lifecycle changes.
type Event struct {
	// Type describes the event kind (launch, cancel, completed, spawn_failed).
	Type string
	// Tool is the tool id.
	Tool string
	// ExecutionID identifies the run.
	ExecutionID string
	// ExitCode is the process exit code for completion events.
	ExitCode int
	// Reason provides additional context.
	Reason string
}

// Logger records audit events.
type Logger interface {
	// Record stores an audit event.
	Record(ctx context.Context, event Event)
}

// StdLogger writes audit events to slog.
type StdLogger struct {
	logger *slog.Logger
}

// New returns a StdLogger.
func New(logger *slog.Logger) *StdLogger {
	return &StdLogger{logger: logger}
}

// Record logs an audit event.
func (l *StdLogger) Record(_ context.Context, event Event) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Info("audit",
		"type", event.Type,
		"tool", event.Tool,
		"execution_id", event.ExecutionID,
		"exit_code", event.ExitCode,
		"reason", event.Reason,
	)
}
