package executil

import (
	"context"
	"sync"
)

// RecordedCommand captures a command that was executed.
type RecordedCommand struct {
	Cmd  string
	Args []string
}

// RecordingExecutor captures commands for testing.
// Configure the Errors map to control return values.
type RecordingExecutor struct {
	mu       sync.Mutex
	Commands []RecordedCommand

	// Errors maps a command name, or "name arg" for a specific first
	// argument, to the error it returns.
	Errors map[string]error
}

// Start records the command and returns the configured error.
func (e *RecordingExecutor) Start(_ context.Context, cmd string, args ...string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.Commands = append(e.Commands, RecordedCommand{
		Cmd:  cmd,
		Args: append([]string(nil), args...),
	})

	if e.Errors == nil {
		return nil
	}
	if len(args) > 0 {
		if err, ok := e.Errors[cmd+" "+args[0]]; ok {
			return err
		}
	}
	return e.Errors[cmd]
}

// Recorded returns a copy of the commands seen so far.
func (e *RecordingExecutor) Recorded() []RecordedCommand {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]RecordedCommand(nil), e.Commands...)
}
