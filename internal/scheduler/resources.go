package scheduler

import (
	"regexp"
	"strconv"
	"strings"
)

// SGE resource names that have a Slurm translation
const (
	resMemFree     = "m_mem_free"
	resHardRuntime = "h_rt"
	resGpu         = "gpu"
)

var (
	resourceRe       = regexp.MustCompile(`(?m)^#\$[ \t]*-l[ \t]*(\S*)[^\n]*`)
	memFreeRe        = regexp.MustCompile(`m_mem_free=(\d+)(\w+)`)
	hardRuntimeRe    = regexp.MustCompile(`h_rt=(\d+):(\d+):(\d+)`)
	runtimeSecondsRe = regexp.MustCompile(`h_rt=(\d+)`)
	runtimeTokenRe   = regexp.MustCompile(`h_rt=([^,\s]*)`)
	gpuRe            = regexp.MustCompile(`gpu=(\d+)`)
)

// fixResources translates "#$ -l" resource lists into --mem, --time and --gres.
//
// NOTE: SGE memory is per slot while Slurm --mem is per node. The value is
// carried over unconverted and a warning says so.
func fixResources(header string, diag *Diagnostics) string {
	return replaceDirective(resourceRe, header, func(g []string) string {
		resources := g[1]
		var out []string

		if strings.Contains(resources, resMemFree) {
			if m := memFreeRe.FindStringSubmatch(resources); m != nil {
				diag.Warn(ruleResources, "Memory in SGE is per slot. Memory in Slurm is per node. Adjust accordingly")
				out = append(out, slurmDirective("--mem=%s%s", m[1], m[2]))
			}
		}

		if strings.Contains(resources, resHardRuntime) {
			if t, ok := translateRuntime(resources, diag); ok {
				out = append(out, slurmDirective("--time=%s", t))
			}
		}

		if strings.Contains(resources, resGpu) {
			if m := gpuRe.FindStringSubmatch(resources); m != nil {
				diag.Info(ruleResources, "#SBATCH --gres can be modified to request type of gpu")
				out = append(out, slurmDirective("--gres=gpu:%s", m[1]))
			} else {
				diag.Warn(ruleResources, "could not read a GPU count from '%s'", resources)
			}
		}

		for _, name := range unhandledResources(resources) {
			diag.Warn(ruleResources, "resource '%s' has no Slurm translation and was dropped", name)
		}

		return strings.Join(out, "\n")
	})
}

// translateRuntime converts an h_rt value (h:m:s or plain seconds) to H:MM:SS.
// Minute or second fields longer than two digits are reported as errors.
func translateRuntime(resources string, diag *Diagnostics) (string, bool) {
	if m := hardRuntimeRe.FindStringSubmatch(resources); m != nil {
		hours, minutes, seconds := m[1], m[2], m[3]
		if len(minutes) > 2 {
			diag.Error(ruleResources, "Improper value in the minutes field")
			return "", false
		}
		if len(seconds) > 2 {
			diag.Error(ruleResources, "Improper value in the seconds field")
			return "", false
		}
		return hours + ":" + padTimeField(minutes) + ":" + padTimeField(seconds), true
	}

	if m := runtimeSecondsRe.FindStringSubmatch(resources); m != nil {
		total, err := strconv.Atoi(m[1])
		if err != nil {
			diag.Error(ruleResources, "Improper value for h_rt: %s", m[1])
			return "", false
		}
		// h_rt=1:30 only matches the seconds form on its leading field
		if tok := runtimeTokenRe.FindStringSubmatch(resources); tok != nil && strings.Contains(tok[1], ":") {
			diag.Warn(ruleResources, "h_rt=%s is not in h:m:s form; read as %d seconds", tok[1], total)
		}
		return formatSlurmTime(total), true
	}

	return "", false
}

// padTimeField left-pads a one-digit minute or second field with a zero
func padTimeField(field string) string {
	if len(field) == 1 {
		return "0" + field
	}
	return field
}

// unhandledResources returns the names in a comma separated resource list that
// none of the m_mem_free, h_rt or gpu translations cover.
func unhandledResources(resources string) []string {
	var names []string
	for _, token := range strings.Split(resources, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		name, _, _ := strings.Cut(token, "=")
		if strings.Contains(name, resMemFree) || strings.Contains(name, resHardRuntime) || strings.Contains(name, resGpu) {
			continue
		}
		names = append(names, name)
	}
	return names
}
