package commands

import (
	"io"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/folio/pkg/iojson"
)

// jsonFailure reports err as a JSON error document so --json callers always
// get parseable output, then exits non-zero.
func jsonFailure(w io.Writer, msg string, err error) error {
	if werr := iojson.WriteError(w, msg, map[string]any{"error": err.Error()}); werr != nil {
		return werr
	}
	return cli.Exit("", 1)
}
