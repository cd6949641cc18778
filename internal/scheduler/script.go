package scheduler

import (
	"strings"
)

const shebangMarker = "#!"

// Script holds a job script split into shebang, directive header and command body
type Script struct {
	Shebang    string // First line when it starts with "#!"
	HasShebang bool   // Whether the input carried a shebang line
	Header     string // Leading comment/blank block; empty unless it holds a directive
	Body       string // Everything after the header
}

// HasHeader reports whether a directive header was detected
func (s *Script) HasHeader() bool {
	return s.Header != ""
}

// SplitScript separates raw script text into shebang, header and body.
//
// The header is the contiguous block of comment or blank lines after the
// shebang. A header without any "#$" line is folded back into the body so that
// plain shell comments are never treated as directives. A script that is all
// header (no command line at all) yields ErrNoCommands.
func SplitScript(text string) (*Script, error) {
	lines := strings.Split(text, "\n")
	n := len(lines)
	script := &Script{}

	i := 0
	if strings.HasPrefix(lines[0], shebangMarker) {
		script.Shebang = lines[0]
		script.HasShebang = true
		i = 1
	}

	var header []string
	for {
		if i == n {
			line, content := lastContentLine(lines)
			return nil, NewParseError(string(SchedulerSGE), line, content, ErrNoCommands)
		}
		if !isHeaderLine(lines[i]) {
			break
		}
		header = append(header, lines[i])
		i++
	}

	rest := lines[i:]
	switch {
	case len(header) == 0:
		script.Body = strings.Join(rest, "\n")
	case containsDirective(header):
		script.Header = strings.Join(header, "\n")
		script.Body = strings.Join(rest, "\n")
	default:
		// Comment-only preamble belongs to the body
		script.Body = strings.Join(append(header, rest...), "\n")
	}
	return script, nil
}

// isHeaderLine reports whether a line may belong to the header block
func isHeaderLine(line string) bool {
	return strings.HasPrefix(line, "#") || strings.TrimSpace(line) == ""
}

// containsDirective reports whether any line starts with the SGE directive prefix
func containsDirective(lines []string) bool {
	for _, line := range lines {
		if strings.HasPrefix(line, sgeDirectivePrefix) {
			return true
		}
	}
	return false
}

// lastContentLine returns the 1-based number and text of the last non-blank line,
// or 0 when every line is blank
func lastContentLine(lines []string) (int, string) {
	for i := len(lines) - 1; i >= 0; i-- {
		if content := strings.TrimSpace(lines[i]); content != "" {
			return i + 1, content
		}
	}
	return 0, ""
}
