package cmd

import (
	"fmt"
	"os"

	"github.com/Justype/sge2slurm/internal/config"
	"github.com/Justype/sge2slurm/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage sge2slurm configuration",
		Long: `Manage sge2slurm configuration settings.

Configuration priority (highest to lowest):
  1. Command-line flags
  2. Environment variables (SGE2SLURM_SHELL, SGE2SLURM_QUIET, SGE2SLURM_NO_COLOR, SGE2SLURM_DEBUG)
  3. User config file (~/.config/sge2slurm/config.yaml)
  4. System config file (/etc/sge2slurm/config.yaml)
  5. Defaults`,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long: `Display the effective configuration as YAML, preceded by the config file in use.
With --path, print only the user config file path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if showPath, _ := cmd.Flags().GetBool("path"); showPath {
				configPath, err := config.GetUserConfigPath()
				if err != nil {
					return fmt.Errorf("failed to get config path: %w", err)
				}
				fmt.Fprintln(out, configPath)
				return nil
			}

			if used := viper.ConfigFileUsed(); used != "" {
				fmt.Fprintf(out, "# config file: %s\n", used)
			} else {
				fmt.Fprintln(out, "# no config file found (use 'sge2slurm config init' to create)")
			}

			data, err := yaml.Marshal(config.CurrentSettings())
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			_, err = out.Write(data)
			return err
		},
	}
	showCmd.Flags().Bool("path", false, "Print the user config file path only")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a user config file from the current settings",
		Long: `Write the effective settings (defaults, environment and flags given to this
command) to the user config file.

Example:
  sge2slurm config init --shell /bin/zsh --quiet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := config.GetUserConfigPath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}

			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(configPath); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", configPath)
			}

			saved, err := config.SaveConfig()
			if err != nil {
				return err
			}
			utils.FprintInfo(cmd.ErrOrStderr(), "Config file created: %s", saved)
			return nil
		},
	}
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")

	configCmd.AddCommand(showCmd, initCmd)
	return configCmd
}
