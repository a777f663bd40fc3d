package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var release string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the demo catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			demos := catalogue.All()
			if release != "" {
				demos = catalogue.ByRelease(release)
				if len(demos) == 0 {
					return fmt.Errorf("no demos for release %q (known: %v)", release, catalogue.Releases())
				}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tRELEASE\tSYNOPSIS")
			for _, d := range demos {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name, d.Release, d.Synopsis)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&release, "release", "", "only list demos for one release, e.g. go1.21")
	return cmd
}
