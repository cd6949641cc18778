package scheduler

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrNoCommands indicates the script has no command body after its header
	ErrNoCommands = errors.New("reached end of the file without finding any commands")

	// ErrScriptNotFound indicates the script file was not found
	ErrScriptNotFound = errors.New("script file not found")
)

// ParseError represents an error splitting or parsing a job script
type ParseError struct {
	Scheduler string // Scheduler name (e.g., "SGE")
	Line      int    // Line number where error occurred
	Content   string // Line content
	Reason    string // Reason for parse failure
	Err       error  // Underlying sentinel error (may be nil)
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s parse error at line %d (%s): %s",
			e.Scheduler, e.Line, e.Content, e.Reason)
	}
	return fmt.Sprintf("%s parse error: %s", e.Scheduler, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a ParseError wrapping err at the given line
func NewParseError(scheduler string, line int, content string, err error) *ParseError {
	return &ParseError{
		Scheduler: scheduler,
		Line:      line,
		Content:   content,
		Reason:    err.Error(),
		Err:       err,
	}
}

// IsParseError checks if an error is a ParseError
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
