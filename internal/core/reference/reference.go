// Package reference opens the web references attached to a card.
package reference

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/hay-kot/acrodrill/internal/core/card"
	"github.com/hay-kot/acrodrill/pkg/executil"
)

// DefaultCommand returns the platform URL opener.
func DefaultCommand() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}

// Opener launches one external open action per URL.
type Opener struct {
	exec    executil.Executor
	command string
}

// NewOpener returns an Opener that runs command, or the platform default when
// command is empty.
func NewOpener(exec executil.Executor, command string) *Opener {
	if command == "" {
		command = DefaultCommand()
	}
	return &Opener{exec: exec, command: command}
}

// Command returns the opener executable.
func (o *Opener) Command() string { return o.command }

// Open opens every URL of c. A link entry holding several newline separated
// addresses opens each one. Failures do not stop the remaining URLs and are
// returned joined. It returns the number of URLs launched.
func (o *Opener) Open(ctx context.Context, c card.Card) (int, error) {
	var (
		opened int
		errs   []error
	)
	for _, u := range c.URLs() {
		if err := o.exec.Start(ctx, o.command, u); err != nil {
			errs = append(errs, fmt.Errorf("open %s: %w", u, err))
			continue
		}
		opened++
	}
	return opened, errors.Join(errs...)
}
