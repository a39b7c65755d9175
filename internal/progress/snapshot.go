package progress

import (
	"encoding/json"
	"fmt"
)

// ExportFilename is the suggested name for exported progress files.
const ExportFilename = "curso-riesgos-progreso.json"

// ParseError wraps a failed import so callers can distinguish a bad
// file from other failures and keep the current state untouched.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("progress file is not valid: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ExportSnapshot serializes the state as indented JSON.
func ExportSnapshot(st State) ([]byte, error) {
	return json.MarshalIndent(st, "", "  ")
}

// ImportSnapshot parses an exported progress file. On failure it
// returns a *ParseError and the zero state; the caller's current state
// is never touched.
func ImportSnapshot(data []byte) (State, error) {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, &ParseError{Err: err}
	}
	st.normalize()
	return st, nil
}
