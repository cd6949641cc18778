package cmd

import (
	"fmt"
	"io"

	"github.com/Justype/sge2slurm/internal/scheduler"
	"github.com/Justype/sge2slurm/internal/utils"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the directive and environment variable translations",
		Long: `List every SGE directive rewrite in the order it is applied, followed by the
SGE to Slurm environment variable renames applied to the script commands.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, utils.StyleTitle("Directives (applied in order):"))
			directives := newTable(out, "Rule", "SGE", "Slurm")
			for _, r := range scheduler.DefaultRules() {
				directives.Append([]string{r.Name, r.Directive, r.Translation})
			}
			directives.Render()
			fmt.Fprintln(out)

			fmt.Fprintln(out, utils.StyleTitle("Environment variables:"))
			vars := newTable(out, "SGE", "Slurm")
			for _, m := range scheduler.EnvMappings() {
				vars.Append([]string{m.SGE, m.Slurm})
			}
			vars.Render()
		},
	}
}

// newTable returns a borderless, left aligned table writing to w
func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}
