package scheduler

import (
	"errors"
	"testing"
)

func TestSplitScript(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantShebang string
		wantHas     bool
		wantHeader  string
		wantBody    string
	}{
		{
			name:     "no header at all",
			input:    "echo hello\nexit 0\n",
			wantBody: "echo hello\nexit 0\n",
		},
		{
			name:        "shebang and directives",
			input:       "#!/bin/bash\n#$ -cwd\n#$ -N job\necho hi",
			wantShebang: "#!/bin/bash",
			wantHas:     true,
			wantHeader:  "#$ -cwd\n#$ -N job",
			wantBody:    "echo hi",
		},
		{
			name:       "blank lines stay in header",
			input:      "#$ -cwd\n\n# note\necho hi\n",
			wantHeader: "#$ -cwd\n\n# note",
			wantBody:   "echo hi\n",
		},
		{
			name:        "comment-only preamble folds into body",
			input:       "#!/bin/sh\n# just a comment\n\necho hi",
			wantShebang: "#!/bin/sh",
			wantHas:     true,
			wantBody:    "# just a comment\n\necho hi",
		},
		{
			name:       "directive not at start of header counts",
			input:      "# intro\n#$ -q all.q\nhostname",
			wantHeader: "# intro\n#$ -q all.q",
			wantBody:   "hostname",
		},
		{
			name:     "shebang only on first line",
			input:    "echo\n#!/bin/bash",
			wantBody: "echo\n#!/bin/bash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitScript(tt.input)
			if err != nil {
				t.Fatalf("SplitScript(%q) returned error: %v", tt.input, err)
			}
			if got.Shebang != tt.wantShebang || got.HasShebang != tt.wantHas {
				t.Errorf("shebang = %q (%v), want %q (%v)", got.Shebang, got.HasShebang, tt.wantShebang, tt.wantHas)
			}
			if got.Header != tt.wantHeader {
				t.Errorf("header = %q, want %q", got.Header, tt.wantHeader)
			}
			if got.Body != tt.wantBody {
				t.Errorf("body = %q, want %q", got.Body, tt.wantBody)
			}
			if got.HasHeader() != (tt.wantHeader != "") {
				t.Errorf("HasHeader() = %v, want %v", got.HasHeader(), tt.wantHeader != "")
			}
		})
	}
}

func TestSplitScriptNoCommands(t *testing.T) {
	inputs := []string{
		"",
		"#!/bin/bash",
		"#!/bin/bash\n#$ -cwd\n",
		"# only comments\n\n   \n",
	}

	for _, input := range inputs {
		_, err := SplitScript(input)
		if err == nil {
			t.Errorf("SplitScript(%q) expected error, got nil", input)
			continue
		}
		if !errors.Is(err, ErrNoCommands) {
			t.Errorf("SplitScript(%q) error = %v, want ErrNoCommands", input, err)
		}
		if !IsParseError(err) {
			t.Errorf("SplitScript(%q) error should be a ParseError, got %T", input, err)
		}
	}
}

func TestSplitScriptNoCommandsLocation(t *testing.T) {
	tests := []struct {
		input       string
		wantLine    int
		wantContent string
	}{
		{input: "", wantLine: 0, wantContent: ""},
		{input: "#!/bin/bash", wantLine: 1, wantContent: "#!/bin/bash"},
		{input: "#!/bin/bash\n#$ -cwd\n#$ -N job\n\n", wantLine: 3, wantContent: "#$ -N job"},
	}

	for _, tt := range tests {
		_, err := SplitScript(tt.input)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("SplitScript(%q) error = %v, want *ParseError", tt.input, err)
		}
		if pe.Line != tt.wantLine || pe.Content != tt.wantContent {
			t.Errorf("SplitScript(%q) location = %d (%q), want %d (%q)",
				tt.input, pe.Line, pe.Content, tt.wantLine, tt.wantContent)
		}
	}
}
