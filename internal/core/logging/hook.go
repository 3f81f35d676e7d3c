package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies drill_id and source from the event context onto log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if id := GetDrillID(ctx); id != "" {
		e.Str("drill_id", id)
	}

	if src := GetSource(ctx); src != "" {
		e.Str("source", src)
	}
}
