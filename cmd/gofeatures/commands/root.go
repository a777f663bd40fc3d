package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sankarpadhy/go-release-highlights/internal/config"
	"github.com/sankarpadhy/go-release-highlights/internal/logging"
	"github.com/sankarpadhy/go-release-highlights/internal/registry"
)

var (
	logLevel string

	cfg       *config.Config
	lggr      *zap.SugaredLogger
	catalogue *registry.Registry
)

func Execute() error {
	root := &cobra.Command{
		Use:           "gofeatures",
		Short:         "Runnable samples of features added in recent Go releases",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			lggr, err = logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			catalogue = newCatalogue(cfg)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if lggr != nil {
				_ = lggr.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "runner log level (debug, info, warn, error)")

	root.AddCommand(listCmd(), runCmd(), serveCmd())
	return root.Execute()
}
