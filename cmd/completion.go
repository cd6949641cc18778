package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// detectShell auto-detects the current shell from environment
func detectShell() string {
	shellLower := strings.ToLower(os.Getenv("SHELL"))

	if strings.Contains(shellLower, "fish") {
		return "fish"
	}
	if strings.Contains(shellLower, "zsh") {
		return "zsh"
	}
	if strings.Contains(shellLower, "pwsh") || strings.Contains(shellLower, "powershell") {
		return "powershell"
	}

	// Default to bash
	return "bash"
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for sge2slurm.

If no shell is specified, it is auto-detected from $SHELL.

To load completions:

Bash:
  $ source <(sge2slurm completion bash)

Zsh:
  $ sge2slurm completion zsh > "${fpath[1]}/_sge2slurm"

Fish:
  $ sge2slurm completion fish | source

PowerShell:
  PS> sge2slurm completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := detectShell()
			if len(args) > 0 {
				shell = args[0]
			}

			out := cmd.OutOrStdout()
			switch shell {
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return cmd.Root().GenBashCompletionV2(out, true)
			}
		},
	}
}
