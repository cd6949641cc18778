package scheduler

import (
	"regexp"
	"strings"
)

// Rule rewrites one SGE directive form found in the header text.
// Apply must only look at the text it is given; rules share no state.
type Rule struct {
	Name        string // Short identifier used in diagnostics (e.g., "resources")
	Directive   string // SGE form recognised (e.g., "#$ -l")
	Translation string // Slurm form emitted, for listings
	Apply       func(header string, diag *Diagnostics) string
}

// DefaultRules returns the rewrite pipeline in the order it is applied.
// Each rule consumes the output of the previous one.
func DefaultRules() []Rule {
	return []Rule{
		{Name: ruleCwd, Directive: "#$ -cwd", Translation: "(removed)", Apply: fixDirectory},
		{Name: ruleShell, Directive: "#$ -S <shell>", Translation: "(removed, shebang is used)", Apply: fixShell},
		{Name: ruleMailAddress, Directive: "#$ -M <addr>[,<addr>...]", Translation: "#SBATCH --mail-user=<addr>", Apply: fixEmailAddress},
		{Name: ruleMailEvents, Directive: "#$ -m [a][b][e][s][n]", Translation: "#SBATCH --mail-type=BEGIN,END,FAIL", Apply: fixEmailNotifications},
		{Name: ruleAccount, Directive: "#$ -P <project>", Translation: "#SBATCH -A <account>", Apply: fixAccount},
		{Name: ruleResources, Directive: "#$ -l m_mem_free=,h_rt=,gpu=", Translation: "#SBATCH --mem= / --time= / --gres=gpu:", Apply: fixResources},
		{Name: ruleParallelEnv, Directive: "#$ -pe <pe> <slots>", Translation: "#SBATCH -N <n> / --ntasks-per-node <k>", Apply: fixSlots},
		{Name: ruleRestart, Directive: "#$ -r y|n", Translation: "#SBATCH --requeue / --no-requeue", Apply: fixRestart},
		{Name: ruleOutputStream, Directive: "#$ -j / -o <path> / -e <path>", Translation: "#SBATCH -o <path> / -e <path>", Apply: fixOutputStream},
		{Name: rulePartition, Directive: "#$ -q <queue>", Translation: "#SBATCH -p <partition>", Apply: fixPartition},
		{Name: ruleArray, Directive: "#$ -t <range>", Translation: "#SBATCH --array=<range>", Apply: fixArray},
		{Name: ruleJobName, Directive: "#$ -N <name>", Translation: "#SBATCH -J <name>", Apply: fixJobName},
		{Name: ruleExportEnv, Directive: "#$ -V", Translation: "(removed, exported by default)", Apply: fixExportEnv},
		{Name: ruleLeftover, Directive: "#$ <anything else>", Translation: "(kept, reported)", Apply: reportLeftovers},
	}
}

// RewriteHeader runs every rule over the header text in order
func RewriteHeader(header string, rules []Rule, diag *Diagnostics) string {
	for _, rule := range rules {
		header = rule.Apply(header, diag)
	}
	return header
}

// replaceDirective replaces every match of re in src with the text returned by
// repl. repl receives the full match at index 0 followed by the capture groups;
// groups that did not participate are empty strings.
func replaceDirective(re *regexp.Regexp, src string, repl func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(src, -1)
	if matches == nil {
		return src
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(src[last:m[0]])
		groups := make([]string, len(m)/2)
		for g := range groups {
			if m[2*g] >= 0 {
				groups[g] = src[m[2*g]:m[2*g+1]]
			}
		}
		b.WriteString(repl(groups))
		last = m[1]
	}
	b.WriteString(src[last:])
	return b.String()
}
