package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/skua-bio/fastascan/internal/controller"
)

// browseCmd represents the browse command.
var browseCmd = newBrowseCmd()

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [directory]",
		Short: "Scan and browse the results interactively",
		Long: `Browse runs the same scan as the bare command, then opens an interactive
list over the per-file results with filtering and scrolling. When stdout
is not a terminal the plain report is printed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, scanArgs, err := prepare(args)
			if err != nil {
				return err
			}

			report, err := workflow.Scan(scanArgs)
			if err != nil {
				return scanHint(err)
			}

			ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout))

			return ui.DisplayReport(report)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
