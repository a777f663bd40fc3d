package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sankarpadhy/go-release-highlights/internal/registry"
)

func runCmd() *cobra.Command {
	var (
		all     bool
		release string
	)

	cmd := &cobra.Command{
		Use:   "run [demo]",
		Short: "Run one demo by name, or every demo with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case all:
				return runDemos(cmd, catalogue.All())
			case release != "":
				demos := catalogue.ByRelease(release)
				if len(demos) == 0 {
					return fmt.Errorf("no demos for release %q (known: %v)", release, catalogue.Releases())
				}
				return runDemos(cmd, demos)
			case len(args) == 1:
				d, err := catalogue.Get(args[0])
				if err != nil {
					return err
				}
				return runDemos(cmd, []registry.Demo{d})
			default:
				return fmt.Errorf("name a demo, or pass --all / --release (see `gofeatures list`)")
			}
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "run every demo in the catalogue")
	cmd.Flags().StringVar(&release, "release", "", "run every demo for one release, e.g. go1.21")
	return cmd
}

func runDemos(cmd *cobra.Command, demos []registry.Demo) error {
	out := cmd.OutOrStdout()
	for i, d := range demos {
		if i > 0 {
			fmt.Fprintln(out)
		}
		lggr.Infow("running demo", "name", d.Name, "release", d.Release)
		start := time.Now()
		if err := d.Run(out); err != nil {
			lggr.Errorw("demo failed", "name", d.Name, "err", err)
			return fmt.Errorf("demo %s: %w", d.Name, err)
		}
		lggr.Debugw("demo finished", "name", d.Name, "elapsed", time.Since(start))
	}
	return nil
}
