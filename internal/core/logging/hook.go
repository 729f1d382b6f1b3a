package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextFields are copied from an event's context onto the event.
var contextFields = []struct {
	key string
	get func(context.Context) string
}{
	{"load_id", GetLoadID},
	{"view", GetView},
}

// ContextHook stamps load_id and view onto events logged with .Ctx(ctx).
type ContextHook struct{}

// Run implements zerolog.Hook.
func (ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	ctx := e.GetCtx()
	if ctx == nil {
		return
	}
	for _, f := range contextFields {
		if v := f.get(ctx); v != "" {
			e.Str(f.key, v)
		}
	}
}
