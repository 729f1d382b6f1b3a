package logging

import "context"

type contextKey string

const (
	loadIDKey contextKey = "load_id"
	viewKey   contextKey = "view"
)

// WithLoadID adds a page-load ID to the context. One ID is issued per TUI run.
func WithLoadID(ctx context.Context, loadID string) context.Context {
	return context.WithValue(ctx, loadIDKey, loadID)
}

// WithView adds the active view mode name to the context.
func WithView(ctx context.Context, view string) context.Context {
	return context.WithValue(ctx, viewKey, view)
}

// GetLoadID retrieves the page-load ID from the context.
// Returns empty string if not present.
func GetLoadID(ctx context.Context) string {
	if id, ok := ctx.Value(loadIDKey).(string); ok {
		return id
	}
	return ""
}

// GetView retrieves the view mode name from the context.
// Returns empty string if not present.
func GetView(ctx context.Context) string {
	if v, ok := ctx.Value(viewKey).(string); ok {
		return v
	}
	return ""
}
