package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// componentKey names the field that tags a logger with its subsystem.
const componentKey = "cmp"

// Component returns a child of the global logger tagged with the subsystem
// name. The child copies log.Logger at call time, so create components after
// the root logger is configured.
func Component(name string) zerolog.Logger {
	return log.Logger.With().Str(componentKey, name).Logger()
}
