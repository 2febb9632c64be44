// Package supervisor owns the registry of in-flight executions: it
// launches processes, pumps their merged output into per-execution
// channels and services cancellation by execution id.
package supervisor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/randomname124290358349/myTools/internal/audit"
	"github.com/randomname124290358349/myTools/internal/constants"
	"github.com/randomname124290358349/myTools/internal/maputil"
	"github.com/randomname124290358349/myTools/internal/protocol"
)

// lineBuffer bounds how many output lines may sit between the reading
// goroutine and a slow consumer.
const lineBuffer = 64

// Execution is one supervised run of a spawned process.
type Execution struct {
	id      string
	tool    string
	argv    []string
	cmd     *exec.Cmd
	lines   chan string
	stopped chan struct{}
	done    chan struct{}
	exit    int
}

// ID returns the opaque execution identifier.
func (e *Execution) ID() string { return e.id }

// Argv returns the resolved argument vector.
func (e *Execution) Argv() []string {
	out := make([]string, len(e.argv))
	copy(out, e.argv)
	return out
}

// Lines returns the forward-only feed of merged output lines. The
// channel is closed when the process closes its output.
func (e *Execution) Lines() <-chan string { return e.lines }

// Wait blocks until the process has been reaped and returns its exit code.
func (e *Execution) Wait() int {
	<-e.done
	return e.exit
}

// Supervisor maintains the concurrency-safe table of active executions.
// Instances are independent; tests may run several side by side.
type Supervisor struct {
	mu     sync.Mutex
	active map[string]*Execution

	logger *slog.Logger
	audit  audit.Logger
	newID  func() string
}

// New returns an empty supervisor.
func New(logger *slog.Logger, auditLog audit.Logger) *Supervisor {
	return &Supervisor{
		active: make(map[string]*Execution),
		logger: logger,
		audit:  auditLog,
		newID:  uuid.NewString,
	}
}

// Launch spawns argv and registers the execution under id. An empty id
// is replaced with a fresh one. The registry entry is created only
// after a successful start; spawn failures leave no trace.
func (s *Supervisor) Launch(ctx context.Context, id, tool string, argv []string) (*Execution, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty argument vector")
	}
	if id == "" {
		id = s.newID()
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	// Merge stderr into the stdout pipe so the stream preserves the
	// order the process produced its lines in.
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		if s.audit != nil {
			s.audit.Record(ctx, audit.Event{Type: "spawn_failed", Tool: tool, ExecutionID: id, Reason: err.Error()})
		}
		return nil, fmt.Errorf("start %s: %w", argv[0], err)
	}

	e := &Execution{
		id:      id,
		tool:    tool,
		argv:    argv,
		cmd:     cmd,
		lines:   make(chan string, lineBuffer),
		stopped: make(chan struct{}),
		done:    make(chan struct{}),
	}

	s.mu.Lock()
	s.active[id] = e
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("execution started", "tool", tool, "execution_id", id, "pid", cmd.Process.Pid)
	}
	if s.audit != nil {
		s.audit.Record(ctx, audit.Event{Type: "launch", Tool: tool, ExecutionID: id})
	}

	go s.pump(e, stdout)

	return e, nil
}

// pump reads merged output line by line into the execution's channel
// and reaps the process once output is exhausted.
func (s *Supervisor) pump(e *Execution, out io.Reader) {
	sampled := rate.Sometimes{First: 3, Interval: time.Second}

	scanner := bufio.NewScanner(out)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
scan:
	for scanner.Scan() {
		line := scanner.Text()
		sampled.Do(func() {
			if s.logger != nil {
				s.logger.Debug("stream line", "execution_id", e.id, "len", len(line))
			}
		})
		select {
		case e.lines <- line:
		case <-e.stopped:
			// Nobody is consuming anymore; keep draining the pipe so
			// the dying process is not blocked on a full buffer.
			for scanner.Scan() {
			}
			break scan
		}
	}
	close(e.lines)

	err := e.cmd.Wait()
	e.exit = -1
	if e.cmd.ProcessState != nil {
		e.exit = e.cmd.ProcessState.ExitCode()
	}
	if err != nil && s.logger != nil {
		s.logger.Debug("process exited", "execution_id", e.id, "exit_code", e.exit, "error", err)
	}
	close(e.done)
}

// IsActive reports whether id is still registered.
func (s *Supervisor) IsActive(id string) bool {
	return maputil.Has(&s.mu, s.active, id)
}

// Active returns the number of registered executions.
func (s *Supervisor) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// Finish removes the entry after natural completion and reports whether
// it was still registered. False means a concurrent cancel won the race
// and already removed it.
func (s *Supervisor) Finish(ctx context.Context, id string) bool {
	e, ok := maputil.Pop(&s.mu, s.active, id)
	if !ok {
		return false
	}
	if s.audit != nil {
		s.audit.Record(ctx, audit.Event{Type: "completed", Tool: e.tool, ExecutionID: id, ExitCode: e.exit})
	}
	return true
}

// Cancel terminates the execution registered under id. The entry is
// removed on success; a kill failure leaves it registered so the caller
// can retry. Ids that never existed or already reached a terminal state
// report not_found.
func (s *Supervisor) Cancel(ctx context.Context, id string) protocol.StopResult {
	s.mu.Lock()
	e, ok := s.active[id]
	if !ok {
		s.mu.Unlock()
		return protocol.StopResult{Status: constants.StopNotFound}
	}

	if err := e.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		s.mu.Unlock()
		if s.logger != nil {
			s.logger.Error("cancel failed", "execution_id", id, "error", err)
		}
		return protocol.StopResult{Status: constants.StopError, Reason: err.Error()}
	}

	delete(s.active, id)
	close(e.stopped)
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("execution cancelled", "tool", e.tool, "execution_id", id)
	}
	if s.audit != nil {
		s.audit.Record(ctx, audit.Event{Type: "cancel", Tool: e.tool, ExecutionID: id})
	}
	return protocol.StopResult{Status: constants.StopStopped}
}
