package config

import (
	"strings"

	"github.com/Justype/sge2slurm/internal/scheduler"
	"golang.org/x/mod/semver"
)

const VERSION = "1.0.0"

// Config holds global application settings
type Config struct {
	Debug   bool
	Quiet   bool
	NoColor bool
	Shell   string // Interpreter for the synthesised shebang
}

// Global holds the singleton configuration instance
var Global Config

func LoadDefaults() {
	Global = Config{
		Debug:   false,
		Quiet:   false,
		NoColor: false,
		Shell:   scheduler.DefaultInterpreter,
	}
}

// CanonicalVersion returns VERSION in canonical semver form (e.g., "v1.0.0").
// An unparsable version is returned with just a "v" prefix.
func CanonicalVersion() string {
	v := VERSION
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if c := semver.Canonical(v); c != "" {
		return c
	}
	return v
}
