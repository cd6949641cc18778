package scheduler

import "strings"

// EnvMapping pairs an SGE job environment variable with its Slurm counterpart
type EnvMapping struct {
	SGE   string
	Slurm string
}

// envMappings is applied top to bottom
var envMappings = []EnvMapping{
	// General
	{SGE: "SGE_O_WORKDIR", Slurm: "SLURM_SUBMIT_DIR"},
	{SGE: "JOB_ID", Slurm: "SLURM_JOB_ID"},
	{SGE: "JOB_NAME", Slurm: "SLURM_JOB_NAME"},
	{SGE: "NHOSTS", Slurm: "SLURM_JOB_NUM_NODES"},
	{SGE: "NSLOTS", Slurm: "SLURM_NTASKS"},
	// Array jobs
	{SGE: "SGE_TASK_ID", Slurm: "SLURM_ARRAY_TASK_ID"},
	{SGE: "SGE_TASK_FIRST", Slurm: "SLURM_ARRAY_TASK_MIN"},
	{SGE: "SGE_TASK_LAST", Slurm: "SLURM_ARRAY_TASK_MAX"},
	{SGE: "SGE_TASK_STEPSIZE", Slurm: "SLURM_ARRAY_TASK_STEP"},
}

// EnvMappings returns a copy of the variable translation table
func EnvMappings() []EnvMapping {
	out := make([]EnvMapping, len(envMappings))
	copy(out, envMappings)
	return out
}

// TranslateEnvVars renames SGE environment variables in the command body.
//
// Replacement is plain substring substitution, not word aware: any identifier
// containing e.g. "JOB_ID" is rewritten as well.
func TranslateEnvVars(commands string) string {
	for _, m := range envMappings {
		commands = strings.ReplaceAll(commands, m.SGE, m.Slurm)
	}
	return commands
}
