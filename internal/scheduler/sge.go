package scheduler

import (
	"regexp"
	"sort"
	"strings"
)

// sgeDirectivePrefix starts every Grid Engine directive line
const sgeDirectivePrefix = "#$"

// Rule names as they appear in diagnostics
const (
	ruleCwd          = "cwd"
	ruleShell        = "shell"
	ruleMailAddress  = "mail-address"
	ruleMailEvents   = "mail-events"
	ruleAccount      = "account"
	ruleResources    = "resources"
	ruleParallelEnv  = "parallel-environment"
	ruleRestart      = "restart"
	ruleOutputStream = "output-streams"
	rulePartition    = "partition"
	ruleArray        = "array"
	ruleJobName      = "job-name"
	ruleExportEnv    = "export-env"
	ruleLeftover     = "leftover"
)

// Legacy project naming: SGE projects "...Prj..." map to Slurm accounts "...Grp..."
const (
	legacyProjectTag = "Prj"
	accountGroupTag  = "Grp"
)

// Anchoring differs between rules: most match per line ((?m)^), while cwd,
// parallel-environment and partition match anywhere in the header.
var (
	cwdRe          = regexp.MustCompile(`#\$ -cwd`)
	shellRe        = regexp.MustCompile(`(?m)^#\$[ \t]*-S[ \t]*(\S*)[^\n]*`)
	mailAddressRe  = regexp.MustCompile(`(?m)^#\$[ \t]*-M[ \t]*\b(.*)\b[^\n]*`)
	emailShapeRe   = regexp.MustCompile(`^[\w.%+-]+@[\w.-]+\.[A-Za-z]{2,4}`)
	mailEventsRe   = regexp.MustCompile(`(?m)^#\$[ \t]*-m[ \t]*([aben]{0,4})[^\n]*`)
	accountRe      = regexp.MustCompile(`(?m)^#\$[ \t]*-P[ \t]*(\S*)[^\n]*`)
	restartRe      = regexp.MustCompile(`(?m)^#\$[ \t]*-r[ \t]*(\S*)[^\n]*`)
	joinStreamsRe  = regexp.MustCompile(`(?m)^#\$[ \t]*-j[ \t]*(\S{0,4})[^\n]*`)
	stdoutPathRe   = regexp.MustCompile(`(?m)^#\$[ \t]*-o[ \t]*(\S*)[^\n]*`)
	stderrPathRe   = regexp.MustCompile(`(?m)^#\$[ \t]*-e[ \t]*(\S*)[^\n]*`)
	queueRe        = regexp.MustCompile(`#\$[ \t]*-q[ \t]*(\S*)[^\n]*`)
	arrayRe        = regexp.MustCompile(`(?m)^#\$[ \t]*-t[ \t]*([-:0-9]*)[^\n]*`)
	jobNameRe      = regexp.MustCompile(`(?m)^#\$[ \t]*-N[ \t]*(\S*)[^\n]*`)
	exportEnvRe    = regexp.MustCompile(`(?m)^#\$[ \t]*-V[ \t]*$`)
	leftoverLineRe = regexp.MustCompile(`(?m)^#\$[^\n]*`)
)

// fixDirectory removes "#$ -cwd"; Slurm starts jobs in the submission directory
func fixDirectory(header string, diag *Diagnostics) string {
	return replaceDirective(cwdRe, header, func(g []string) string {
		diag.Info(ruleCwd, "#$ -cwd is a default in Slurm")
		return ""
	})
}

// fixShell removes "#$ -S"; Slurm runs the script with its shebang interpreter
func fixShell(header string, diag *Diagnostics) string {
	return replaceDirective(shellRe, header, func(g []string) string {
		diag.Info(ruleShell, "#$ -S: slurm uses #! (shebang) to determine shell")
		return ""
	})
}

// fixEmailAddress translates "#$ -M a,b" into "#SBATCH --mail-user=a".
// Slurm takes a single recipient, so the first well-formed address wins.
func fixEmailAddress(header string, diag *Diagnostics) string {
	return replaceDirective(mailAddressRe, header, func(g []string) string {
		if g[1] == "" {
			diag.Warn(ruleMailAddress, "#$ -M without argument")
			return ""
		}

		var addresses []string
		for _, adr := range strings.Split(g[1], ",") {
			addresses = append(addresses, strings.TrimSpace(adr))
		}

		for _, adr := range addresses {
			if emailShapeRe.MatchString(adr) {
				return slurmDirective("--mail-user=%s", adr)
			}
		}

		diag.Warn(ruleMailAddress, "email address may be invalid: '%s'", addresses[0])
		return slurmDirective("--mail-user=%s", addresses[0])
	})
}

// fixEmailNotifications translates "#$ -m bea" into "#SBATCH --mail-type=BEGIN,END,FAIL".
// The (s)uspend event has no Slurm counterpart and is dropped.
func fixEmailNotifications(header string, diag *Diagnostics) string {
	return replaceDirective(mailEventsRe, header, func(g []string) string {
		events := g[1]
		if events == "" || strings.Contains(events, "n") {
			return ""
		}

		var slurmEvents []string
		if strings.Contains(events, "b") {
			slurmEvents = append(slurmEvents, "BEGIN")
		}
		if strings.Contains(events, "e") {
			slurmEvents = append(slurmEvents, "END")
		}
		if strings.Contains(events, "a") {
			slurmEvents = append(slurmEvents, "FAIL")
		}
		sort.Strings(slurmEvents)
		return slurmDirective("--mail-type=%s", strings.Join(slurmEvents, ","))
	})
}

// fixAccount translates "#$ -P project" into "#SBATCH -A account"
func fixAccount(header string, diag *Diagnostics) string {
	return replaceDirective(accountRe, header, func(g []string) string {
		if g[1] == "" {
			diag.Warn(ruleAccount, "#$ -P without argument")
			return ""
		}
		account := strings.ReplaceAll(g[1], legacyProjectTag, accountGroupTag)
		return slurmDirective("-A %s", account)
	})
}

// fixRestart translates "#$ -r y|n" into "#SBATCH --requeue" or "--no-requeue".
// Any other value is dropped without a message.
func fixRestart(header string, diag *Diagnostics) string {
	return replaceDirective(restartRe, header, func(g []string) string {
		switch g[1] {
		case "y":
			return slurmDirective("--requeue")
		case "n":
			return slurmDirective("--no-requeue")
		default:
			return ""
		}
	})
}

// fixOutputStream removes "#$ -j" and translates "#$ -o" / "#$ -e" paths
func fixOutputStream(header string, diag *Diagnostics) string {
	// Slurm joins stdout and stderr unless -e is given
	header = replaceDirective(joinStreamsRe, header, func(g []string) string {
		diag.Info(ruleOutputStream, "#$ -j is the default in Slurm")
		return ""
	})

	header = replaceDirective(stdoutPathRe, header, func(g []string) string {
		if g[1] == "" {
			diag.Warn(ruleOutputStream, "#$ -o with no argument")
			return ""
		}
		return slurmDirective("-o %s", g[1])
	})

	return replaceDirective(stderrPathRe, header, func(g []string) string {
		if g[1] == "" {
			diag.Warn(ruleOutputStream, "#$ -e with no argument")
			return ""
		}
		return slurmDirective("-e %s", g[1])
	})
}

// fixPartition translates "#$ -q queue" into "#SBATCH -p queue"
func fixPartition(header string, diag *Diagnostics) string {
	return replaceDirective(queueRe, header, func(g []string) string {
		if g[1] == "" {
			diag.Warn(rulePartition, "#$ -q with no argument")
			return ""
		}
		diag.Info(rulePartition, "Partition names in Slurm may be different than queue names in SGE")
		return slurmDirective("-p %s", g[1])
	})
}

// fixArray translates "#$ -t 1-10:2" into "#SBATCH --array=1-10:2"
func fixArray(header string, diag *Diagnostics) string {
	return replaceDirective(arrayRe, header, func(g []string) string {
		if g[1] == "" {
			diag.Warn(ruleArray, "#$ -t with no argument")
			return ""
		}
		return slurmDirective("--array=%s", g[1])
	})
}

// fixJobName translates "#$ -N name" into "#SBATCH -J name"
func fixJobName(header string, diag *Diagnostics) string {
	return replaceDirective(jobNameRe, header, func(g []string) string {
		if g[1] == "" {
			diag.Warn(ruleJobName, "#$ -N with no argument")
			return ""
		}
		return slurmDirective("-J %s", g[1])
	})
}

// fixExportEnv removes a bare "#$ -V"; sbatch exports the submission environment by default
func fixExportEnv(header string, diag *Diagnostics) string {
	return replaceDirective(exportEnvRe, header, func(g []string) string {
		diag.Info(ruleExportEnv, "#$ -V: Slurm exports the submission environment by default")
		return ""
	})
}

// reportLeftovers warns about every SGE directive no rule translated.
// The lines are kept verbatim so they can be fixed by hand.
func reportLeftovers(header string, diag *Diagnostics) string {
	for _, line := range leftoverLineRe.FindAllString(header, -1) {
		diag.Warn(ruleLeftover, "no Slurm translation for '%s'; left unchanged", strings.TrimSpace(line))
	}
	return header
}
