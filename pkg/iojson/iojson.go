// Package iojson writes command output as indented JSON.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is the JSON shape of a failed command.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// fallback builds an error document by hand when marshaling itself fails.
func fallback(msg string, err error) string {
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(err.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// Write encodes obj to w. A value that cannot be marshaled is reported as an
// Error document instead, so the output is always valid JSON.
func Write(w io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, werr := fmt.Fprintln(w, fallback("marshal output", err))
		return werr
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteError encodes an Error document to w.
func WriteError(w io.Writer, msg string, data map[string]any) error {
	return Write(w, Error{Message: msg, Data: data})
}
