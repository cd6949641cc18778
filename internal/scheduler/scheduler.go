// Package scheduler translates Grid Engine (SGE) batch scripts into Slurm batch scripts
package scheduler

import (
	"fmt"
	"os"
	"strings"
)

// SchedulerType represents the type of job scheduler
type SchedulerType string

const SchedulerSGE SchedulerType = "SGE"

// DefaultInterpreter is used for the synthesised shebang when none is given
const DefaultInterpreter = "/bin/bash"

// Options controls a single conversion
type Options struct {
	Interpreter string // Shebang interpreter when the script has none (default: /bin/bash)
	Rules       []Rule // Rewrite pipeline (default: DefaultRules())
}

// Result is the outcome of a conversion
type Result struct {
	Script         string       // Translated script text
	HeaderDetected bool         // Whether a "#$" directive header was found and rewritten
	Diagnostics    Diagnostics // Advisory messages in the order they were raised
}

// Convert translates an SGE script into a Slurm script.
//
// The only error is a failed split (no command body). Every per-directive
// problem is reported through Result.Diagnostics instead.
func Convert(text string, opts Options) (*Result, error) {
	script, err := SplitScript(text)
	if err != nil {
		return nil, err
	}

	interpreter := opts.Interpreter
	if interpreter == "" {
		interpreter = DefaultInterpreter
	}
	rules := opts.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	shebang := script.Shebang
	if !script.HasShebang {
		shebang = fmt.Sprintf("%s %s", shebangMarker, interpreter)
	}

	commands := TranslateEnvVars(script.Body)

	result := &Result{HeaderDetected: script.HasHeader()}
	if script.HasHeader() {
		header := RewriteHeader(script.Header, rules, &result.Diagnostics)
		result.Script = strings.Join([]string{shebang, header, commands}, "\n")
	} else {
		result.Script = shebang + "\n" + commands
	}
	return result, nil
}

// ReadScriptFile reads a whole script file
func ReadScriptFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrScriptNotFound, path)
		}
		return "", fmt.Errorf("error reading script: %w", err)
	}
	return string(data), nil
}
