package scheduler

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ruleCase runs one rule over a header and checks the text and diagnostics
type ruleCase struct {
	name      string
	header    string
	want      string
	wantDiags []Diagnostic
}

func runRuleCases(t *testing.T, apply func(string, *Diagnostics) string, cases []ruleCase) {
	t.Helper()
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var diag Diagnostics
			got := apply(tt.header, &diag)
			if got != tt.want {
				t.Errorf("rewrite(%q) = %q, want %q", tt.header, got, tt.want)
			}
			if diff := cmp.Diff(tt.wantDiags, diag.Items(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFixDirectory(t *testing.T) {
	runRuleCases(t, fixDirectory, []ruleCase{
		{
			name:      "removed",
			header:    "#$ -cwd\n#$ -N job",
			want:      "\n#$ -N job",
			wantDiags: []Diagnostic{{SeverityInfo, ruleCwd, "#$ -cwd is a default in Slurm"}},
		},
		{
			name:   "needs exactly one space",
			header: "#$  -cwd",
			want:   "#$  -cwd",
		},
	})
}

func TestFixShell(t *testing.T) {
	runRuleCases(t, fixShell, []ruleCase{
		{
			name:      "interpreter dropped",
			header:    "#$ -S /bin/bash\n#$ -cwd",
			want:      "\n#$ -cwd",
			wantDiags: []Diagnostic{{SeverityInfo, ruleShell, "#$ -S: slurm uses #! (shebang) to determine shell"}},
		},
	})
}

func TestFixEmailAddress(t *testing.T) {
	runRuleCases(t, fixEmailAddress, []ruleCase{
		{
			name:   "single valid address",
			header: "#$ -M user@example.com",
			want:   "#SBATCH --mail-user=user@example.com",
		},
		{
			name:   "first valid address of a list",
			header: "#$ -M bad-address, other@example.org",
			want:   "#SBATCH --mail-user=other@example.org",
		},
		{
			name:   "invalid address passes through with warning",
			header: "#$ -M someone",
			want:   "#SBATCH --mail-user=someone",
			wantDiags: []Diagnostic{
				{SeverityWarning, ruleMailAddress, "email address may be invalid: 'someone'"},
			},
		},
		{
			name:      "missing argument",
			header:    "#$ -M\n#$ -cwd",
			want:      "\n#$ -cwd",
			wantDiags: []Diagnostic{{SeverityWarning, ruleMailAddress, "#$ -M without argument"}},
		},
	})
}

func TestFixEmailNotifications(t *testing.T) {
	runRuleCases(t, fixEmailNotifications, []ruleCase{
		{name: "begin and end", header: "#$ -m be", want: "#SBATCH --mail-type=BEGIN,END"},
		{name: "sorted output", header: "#$ -m eab", want: "#SBATCH --mail-type=BEGIN,END,FAIL"},
		{name: "suspend dropped", header: "#$ -m as", want: "#SBATCH --mail-type=FAIL"},
		{name: "none", header: "#$ -m n", want: ""},
		{name: "empty", header: "#$ -m", want: ""},
	})
}

func TestFixAccount(t *testing.T) {
	runRuleCases(t, fixAccount, []ruleCase{
		{name: "plain", header: "#$ -P physics", want: "#SBATCH -A physics"},
		{name: "legacy project tag", header: "#$ -P labPrj01", want: "#SBATCH -A labGrp01"},
		{
			name:      "missing argument",
			header:    "#$ -P",
			want:      "",
			wantDiags: []Diagnostic{{SeverityWarning, ruleAccount, "#$ -P without argument"}},
		},
	})
}

func TestFixRestart(t *testing.T) {
	runRuleCases(t, fixRestart, []ruleCase{
		{name: "yes", header: "#$ -r y", want: "#SBATCH --requeue"},
		{name: "no", header: "#$ -r n", want: "#SBATCH --no-requeue"},
		{name: "other value", header: "#$ -r maybe", want: ""},
		{name: "empty", header: "#$ -r", want: ""},
	})
}

func TestFixOutputStream(t *testing.T) {
	runRuleCases(t, fixOutputStream, []ruleCase{
		{
			name:      "join removed, paths translated",
			header:    "#$ -j y\n#$ -o out.log\n#$ -e err.log",
			want:      "\n#SBATCH -o out.log\n#SBATCH -e err.log",
			wantDiags: []Diagnostic{{SeverityInfo, ruleOutputStream, "#$ -j is the default in Slurm"}},
		},
		{
			name:   "empty paths",
			header: "#$ -o\n#$ -e",
			want:   "\n",
			wantDiags: []Diagnostic{
				{SeverityWarning, ruleOutputStream, "#$ -o with no argument"},
				{SeverityWarning, ruleOutputStream, "#$ -e with no argument"},
			},
		},
	})
}

func TestFixPartition(t *testing.T) {
	runRuleCases(t, fixPartition, []ruleCase{
		{
			name:   "queue",
			header: "#$ -q short.q",
			want:   "#SBATCH -p short.q",
			wantDiags: []Diagnostic{
				{SeverityInfo, rulePartition, "Partition names in Slurm may be different than queue names in SGE"},
			},
		},
		{
			name:      "missing argument",
			header:    "#$ -q",
			want:      "",
			wantDiags: []Diagnostic{{SeverityWarning, rulePartition, "#$ -q with no argument"}},
		},
	})
}

func TestFixArray(t *testing.T) {
	runRuleCases(t, fixArray, []ruleCase{
		{name: "range with step", header: "#$ -t 1-100:10", want: "#SBATCH --array=1-100:10"},
		{
			name:      "missing argument",
			header:    "#$ -t",
			want:      "",
			wantDiags: []Diagnostic{{SeverityWarning, ruleArray, "#$ -t with no argument"}},
		},
	})
}

func TestFixJobName(t *testing.T) {
	runRuleCases(t, fixJobName, []ruleCase{
		{name: "name", header: "#$ -N align_reads", want: "#SBATCH -J align_reads"},
		{
			name:      "missing argument",
			header:    "#$ -N",
			want:      "",
			wantDiags: []Diagnostic{{SeverityWarning, ruleJobName, "#$ -N with no argument"}},
		},
	})
}

func TestFixExportEnv(t *testing.T) {
	runRuleCases(t, fixExportEnv, []ruleCase{
		{
			name:      "bare -V",
			header:    "#$ -V\n#$ -v FOO=1",
			want:      "\n#$ -v FOO=1",
			wantDiags: []Diagnostic{{SeverityInfo, ruleExportEnv, "#$ -V: Slurm exports the submission environment by default"}},
		},
	})
}

func TestReportLeftovers(t *testing.T) {
	runRuleCases(t, reportLeftovers, []ruleCase{
		{
			name:   "kept and reported",
			header: "#SBATCH -J x\n#$ -hold_jid 42\n# comment",
			want:   "#SBATCH -J x\n#$ -hold_jid 42\n# comment",
			wantDiags: []Diagnostic{
				{SeverityWarning, ruleLeftover, "no Slurm translation for '#$ -hold_jid 42'; left unchanged"},
			},
		},
		{name: "nothing left", header: "#SBATCH -J x", want: "#SBATCH -J x"},
	})
}
