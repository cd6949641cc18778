package scheduler

import (
	"regexp"
	"strconv"
	"strings"
)

// maxSlotsPerNode is the node width assumed for the shm PE and unknown PEs
const maxSlotsPerNode = 16

// Parallel environment names with a known slot layout
const (
	peSharedMemory = "shm"
	peFixedPrefix  = "fixed"
)

// Not line anchored: a "#$ -pe" anywhere in the header is rewritten
var parallelEnvRe = regexp.MustCompile(`#\$[ \t]*-pe[ \t]*(\S*)[ \t](\d+)[^\n]*`)

// fixSlots translates "#$ -pe <pe> <slots>" into a node count and tasks per node.
//
//   - shm: all slots on one node up to 16, otherwise slots/16 nodes of 16
//   - fixed<K>: K tasks per node, slots/K nodes
//   - anything else: 1 node with 16 tasks per node
func fixSlots(header string, diag *Diagnostics) string {
	return replaceDirective(parallelEnvRe, header, func(g []string) string {
		peName, slots := g[1], g[2]

		switch {
		case peName == "":
			diag.Warn(ruleParallelEnv, "#$ -pe has no argument")
			return ""

		case peName == peSharedMemory:
			totalSlots, err := strconv.Atoi(slots)
			if err != nil {
				diag.Error(ruleParallelEnv, "Invalid value for pe slots. Slots must be an integer")
				return ""
			}
			diag.Warn(ruleParallelEnv, "Assumption of max %d slots per node. Make corrections as necessary", maxSlotsPerNode)
			if totalSlots <= maxSlotsPerNode {
				return nodeLayout(1, totalSlots)
			}
			return nodeLayout(totalSlots/maxSlotsPerNode, maxSlotsPerNode)

		case strings.HasPrefix(peName, peFixedPrefix):
			perNode, err := strconv.Atoi(strings.TrimPrefix(peName, peFixedPrefix))
			if err != nil {
				diag.Error(ruleParallelEnv, "Invalid value for pe slots. Slots must be an integer")
				return ""
			}
			if perNode <= 0 {
				diag.Error(ruleParallelEnv, "Invalid value for pe slots. %s must allow at least one slot per node", peName)
				return ""
			}
			totalSlots, err := strconv.Atoi(slots)
			if err != nil {
				diag.Error(ruleParallelEnv, "Invalid value for pe slots. Slots must be an integer")
				return ""
			}
			return nodeLayout(totalSlots/perNode, perNode)

		default:
			diag.Warn(ruleParallelEnv, "Only fixed and shm PEs are handled in this script. Please make corrections yourself. Defaulting to 1 node with %d slots.", maxSlotsPerNode)
			return nodeLayout(1, maxSlotsPerNode)
		}
	})
}
