package supervisor

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/randomname124290358349/myTools/internal/argbuild"
	"github.com/randomname124290358349/myTools/internal/catalog"
	"github.com/randomname124290358349/myTools/internal/templates"
)

// EmitFunc forwards one stream line to the consumer. It returns false
// when the consumer is gone and no further lines should be sent.
type EmitFunc func(line string) bool

// Streamer produces the textual line feed for one execution request.
// Every failure path converges to an explanatory line through emit;
// no error ever escapes to the caller.
type Streamer struct {
	Supervisor *Supervisor
	Messages   templates.Renderer
}

// Run builds the argument vector, launches the execution under id and
// forwards its output. The feed starts with two preamble lines (the
// resolved command line and the execution id), carries one unit per
// merged output line, and ends with either an exit-code trailer or an
// interruption notice when the execution was cancelled mid-flight.
func (st Streamer) Run(ctx context.Context, tool catalog.CommandTemplate, variant *catalog.PlatformSpec, params map[string]any, id string, emit EmitFunc) {
	argv, err := argbuild.Build(tool, variant, params)
	if err != nil {
		var verr *argbuild.ValidationError
		if errors.As(err, &verr) {
			emit(st.message("error.required", map[string]any{"Option": verr.Option}, "Error: "+verr.Option+" is required"))
			return
		}
		emit(st.message("error.spawn", map[string]any{"Reason": err.Error()}, "Error: "+err.Error()))
		return
	}

	e, err := st.Supervisor.Launch(ctx, id, tool.ID, argv)
	if err != nil {
		emit(st.message("error.spawn", map[string]any{"Reason": err.Error()}, "Error: "+err.Error()))
		return
	}

	emit(st.message("exec.running", map[string]any{"Command": strings.Join(argv, " ")}, "Running: "+strings.Join(argv, " ")))
	emit(st.message("exec.id", map[string]any{"ID": e.ID()}, "Execution ID: "+e.ID()))
	emit("")

	for line := range e.Lines() {
		if !st.Supervisor.IsActive(e.ID()) {
			emit("")
			emit(st.message("exec.interrupted", nil, "Execution interrupted"))
			return
		}
		if !emit(line) {
			// Consumer disconnected. The run lives on until it exits
			// or is cancelled explicitly; reap the entry on exit.
			go func() {
				e.Wait()
				st.Supervisor.Finish(context.WithoutCancel(ctx), e.ID())
			}()
			return
		}
	}

	code := e.Wait()
	if !st.Supervisor.Finish(ctx, e.ID()) {
		emit("")
		emit(st.message("exec.interrupted", nil, "Execution interrupted"))
		return
	}
	emit("")
	emit(st.message("exec.finished", map[string]any{"Code": code}, "Process finished with code: "+strconv.Itoa(code)))
}

func (st Streamer) message(key string, data map[string]any, fallback string) string {
	if st.Messages == nil {
		return fallback
	}
	rendered, err := st.Messages.Render(key, data)
	if err != nil {
		return fallback
	}
	return rendered
}
