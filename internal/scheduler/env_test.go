package scheduler

import "testing"

func TestTranslateEnvVars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "general variables",
			input: "cd $SGE_O_WORKDIR\necho $JOB_ID $JOB_NAME $NHOSTS $NSLOTS",
			want:  "cd $SLURM_SUBMIT_DIR\necho $SLURM_JOB_ID $SLURM_JOB_NAME $SLURM_JOB_NUM_NODES $SLURM_NTASKS",
		},
		{
			name:  "array variables",
			input: "${SGE_TASK_ID} ${SGE_TASK_FIRST} ${SGE_TASK_LAST} ${SGE_TASK_STEPSIZE}",
			want:  "${SLURM_ARRAY_TASK_ID} ${SLURM_ARRAY_TASK_MIN} ${SLURM_ARRAY_TASK_MAX} ${SLURM_ARRAY_TASK_STEP}",
		},
		{
			// Substring replacement is not word aware
			name:  "identifier containing a name",
			input: "MY_JOB_ID_FILE=1",
			want:  "MY_SLURM_JOB_ID_FILE=1",
		},
		{
			name:  "nothing to replace",
			input: "echo hello",
			want:  "echo hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TranslateEnvVars(tt.input); got != tt.want {
				t.Errorf("TranslateEnvVars(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEnvMappingsIsCopy(t *testing.T) {
	m := EnvMappings()
	if len(m) != 9 {
		t.Fatalf("EnvMappings() has %d entries, want 9", len(m))
	}
	m[0].Slurm = "CHANGED"
	if EnvMappings()[0].Slurm != "SLURM_SUBMIT_DIR" {
		t.Errorf("modifying the returned slice changed the package table")
	}
}
