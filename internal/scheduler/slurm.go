package scheduler

import "fmt"

// slurmDirectivePrefix starts every emitted Slurm directive line
const slurmDirectivePrefix = "#SBATCH"

// slurmDirective formats one "#SBATCH <option>" line
func slurmDirective(format string, a ...interface{}) string {
	return slurmDirectivePrefix + " " + fmt.Sprintf(format, a...)
}

// nodeLayout emits the node count and tasks-per-node pair.
// The trailing newline leaves a blank line after the pair.
func nodeLayout(nodes, tasksPerNode int) string {
	return slurmDirective("-N %d", nodes) + "\n" +
		slurmDirective("--ntasks-per-node %d", tasksPerNode) + "\n"
}

// formatSlurmTime converts seconds to H:MM:SS (hours are not wrapped into days)
func formatSlurmTime(totalSeconds int) string {
	seconds := totalSeconds % 60
	minutes := (totalSeconds / 60) % 60
	hours := totalSeconds / 3600
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}
