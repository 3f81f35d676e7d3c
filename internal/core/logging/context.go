package logging

import "context"

type contextKey string

const (
	drillIDKey contextKey = "drill_id"
	sourceKey  contextKey = "source"
)

// WithDrillID tags the context with the identifier of a drill session.
func WithDrillID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, drillIDKey, id)
}

// WithSource tags the context with the card source being processed.
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey, source)
}

// GetDrillID retrieves the drill identifier from the context.
// Returns empty string if not present.
func GetDrillID(ctx context.Context) string {
	if id, ok := ctx.Value(drillIDKey).(string); ok {
		return id
	}
	return ""
}

// GetSource retrieves the source name from the context.
// Returns empty string if not present.
func GetSource(ctx context.Context) string {
	if s, ok := ctx.Value(sourceKey).(string); ok {
		return s
	}
	return ""
}
