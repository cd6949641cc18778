package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Justype/sge2slurm/internal/config"
	"github.com/Justype/sge2slurm/internal/scheduler"
	"github.com/Justype/sge2slurm/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the sge2slurm command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sge2slurm [flags] [sge_script]",
		Short: "sge2slurm: translate Grid Engine (SGE) batch scripts into Slurm batch scripts.",
		Long: `Translate a Grid Engine (SGE) batch script into a Slurm batch script.

"#$" directives in the header are rewritten to "#SBATCH" directives and SGE
environment variables in the commands are renamed to their Slurm equivalents.
The result is written to stdout; INFO, WARNING and ERROR notes go to stderr.

If no input file is provided, sge2slurm reads from stdin.`,
		Example: `  sge2slurm job.sge > job.slurm
  sge2slurm -s /bin/zsh < job.sge`,
		Version:       config.CanonicalVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Step 1: Load defaults
			config.LoadDefaults()

			// Step 2: Initialize Viper (read config file, env vars)
			if err := config.InitViper(); err != nil {
				utils.FprintWarning(cmd.ErrOrStderr(), "%v", err)
			}

			// Step 3: Command-line flags override everything else
			if err := config.BindFlags(cmd.Flags()); err != nil {
				return err
			}

			// Step 4: Load values from Viper into Global config
			config.LoadFromViper()

			utils.QuietMode = config.Global.Quiet
			utils.DebugMode = config.Global.Debug
			// Every note goes to stderr, so colour follows stderr rather than stdout
			utils.SetColor(!config.Global.NoColor && utils.IsTerminal(cmd.ErrOrStderr()))

			if config.Global.Debug {
				w := cmd.ErrOrStderr()
				utils.FprintDebug(w, "Debug mode enabled")
				utils.FprintDebug(w, "sge2slurm Version: %s", utils.StyleInfo(config.CanonicalVersion()))
				if used := viper.ConfigFileUsed(); used != "" {
					utils.FprintDebug(w, "Config file: %s", used)
				}
				utils.FprintDebug(w, "Shell: %s", config.Global.Shell)
			}
			return nil
		},
		RunE: runConvert,
	}

	rootCmd.SetVersionTemplate("sge2slurm {{.Version}}\n")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringP("shell", "s", scheduler.DefaultInterpreter, "Interpreter for the shebang when the script has none")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Hide INFO notes (warnings and errors are still shown)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode with verbose output")

	rootCmd.AddCommand(newRulesCmd(), newConfigCmd(), newCompletionCmd())
	return rootCmd
}

// runConvert reads the SGE script, translates it and prints the Slurm script
func runConvert(cmd *cobra.Command, args []string) error {
	var (
		text string
		err  error
	)
	stderr := cmd.ErrOrStderr()
	if len(args) == 1 {
		utils.FprintDebug(stderr, "Reading script: %s", args[0])
		text, err = scheduler.ReadScriptFile(args[0])
	} else {
		utils.FprintDebug(stderr, "Reading script from stdin")
		text, err = utils.ReadInput(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	result, err := scheduler.Convert(text, scheduler.Options{Interpreter: config.Global.Shell})
	if err != nil {
		return err
	}
	utils.FprintDebug(stderr, "Directive header detected: %v", result.HeaderDetected)
	utils.FprintDebug(stderr, "%d diagnostics: %d info, %d warnings, %d errors",
		result.Diagnostics.Len(),
		result.Diagnostics.Count(scheduler.SeverityInfo),
		result.Diagnostics.Count(scheduler.SeverityWarning),
		result.Diagnostics.Count(scheduler.SeverityError))

	printDiagnostics(stderr, result.Diagnostics.Items())
	fmt.Fprintln(cmd.OutOrStdout(), result.Script)
	return nil
}

// printDiagnostics writes each diagnostic with its severity label
func printDiagnostics(w io.Writer, diags []scheduler.Diagnostic) {
	for _, d := range diags {
		switch d.Severity {
		case scheduler.SeverityInfo:
			utils.FprintInfo(w, "%s", d.Message)
		case scheduler.SeverityWarning:
			utils.FprintWarning(w, "%s", d.Message)
		default:
			utils.FprintError(w, "%s", d.Message)
		}
	}
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		// Cobra's automatic error printing is silenced. The interactive-stdin
		// case prints the bare usage message.
		if errors.Is(err, utils.ErrInteractiveInput) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		utils.PrintError("%v", err)
		os.Exit(1)
	}
}
