package startup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/randomname124290358349/myTools/internal/catalog"
	"github.com/randomname124290358349/myTools/internal/executil"
)

// Run executes configured startup hooks sequentially.
func Run(ctx context.Context, hooks []catalog.HookConfig, logger *slog.Logger) error {
	for idx, hook := range hooks {
		if strings.TrimSpace(hook.Command) == "" {
			continue
		}
		hookCtx := ctx
		var cancel context.CancelFunc
		if strings.TrimSpace(hook.Timeout) != "" {
			timeout, err := time.ParseDuration(hook.Timeout)
			if err != nil {
				return fmt.Errorf("startup hook %d: invalid timeout: %w", idx, err)
			}
			hookCtx, cancel = context.WithTimeout(ctx, timeout)
		}

		if logger != nil {
			logger.Info("running startup hook", "index", idx, "command", hook.Command)
		}

		output, _, err := executil.RunCommand(hookCtx, hook.Command, hook.Args, hook.Env)
		if cancel != nil {
			cancel()
		}
		if err != nil {
			if logger != nil && strings.TrimSpace(output) != "" {
				logger.Error("startup hook failed", "index", idx, "output", strings.TrimSpace(output))
			}
			return fmt.Errorf("startup hook %d failed: %w", idx, err)
		}
		if logger != nil && strings.TrimSpace(output) != "" {
			logger.Info("startup hook output", "index", idx, "output", strings.TrimSpace(output))
		}
	}
	return nil
}
