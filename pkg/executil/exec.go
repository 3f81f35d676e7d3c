// Package executil provides command execution utilities.
package executil

import (
	"context"
	"fmt"
	"os/exec"
)

// Executor launches external commands.
type Executor interface {
	// Start launches a command without waiting for it to exit.
	Start(ctx context.Context, cmd string, args ...string) error
}

// RealExecutor calls actual commands.
type RealExecutor struct{}

// Start launches cmd detached from the caller. Browser launchers such as
// xdg-open may keep running after the page opens, so the process is reaped in
// the background rather than waited on.
func (e *RealExecutor) Start(_ context.Context, cmd string, args ...string) error {
	c := exec.Command(cmd, args...)
	if err := c.Start(); err != nil {
		return fmt.Errorf("start %s: %w", cmd, err)
	}
	go func() { _ = c.Wait() }()
	return nil
}
