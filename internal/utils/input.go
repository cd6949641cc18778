package utils

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/term"
)

// ErrInteractiveInput is returned when a script is expected on stdin but stdin is a terminal
var ErrInteractiveInput = errors.New("Please provide a SGE bash script either on stdin or as an argument")

// IsTerminal reports whether v is a file descriptor attached to a terminal.
// Readers and writers without a descriptor (buffers in tests) are never terminals.
func IsTerminal(v interface{}) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ReadInput reads a whole script from r, refusing to wait on an interactive terminal.
func ReadInput(r io.Reader) (string, error) {
	if IsTerminal(r) {
		return "", ErrInteractiveInput
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), nil
}
