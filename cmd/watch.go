package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/skua-bio/fastascan/internal/adapter"
	"github.com/skua-bio/fastascan/internal/controller"
	"github.com/skua-bio/fastascan/internal/domain"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [directory]",
		Short: "Reprint the summary whenever fasta files change",
		Long: `Watch prints the scan report, then keeps running and reprints it after
fasta files under the directory are created, changed, renamed or removed.
A root that currently holds no fasta files is fine; the report appears
once files arrive. Stop with ctrl+c.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, scanArgs, err := prepare(args)
			if err != nil {
				return err
			}

			ui := controller.NewSimpleUI(cmd)

			rescan := func() {
				report, scanErr := workflow.Scan(scanArgs)
				if scanErr != nil {
					if errors.Is(scanErr, domain.ErrNoCandidates) {
						logger.Warn("nothing to report yet", "root", scanArgs.Root)

						return
					}

					logger.Error("scan failed", "error", scanErr)

					return
				}

				_ = ui.DisplayReport(report)
			}

			rescan()

			extensions := cfg.Scan.Extensions
			if len(extensions) == 0 {
				extensions = domain.DefaultExtensions
			}

			debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			g, gCtx := errgroup.WithContext(ctx)

			g.Go(func() error {
				return adapter.Watch(gCtx, scanArgs.Root, extensions, debounce, logger, rescan)
			})

			g.Go(func() error {
				quit := make(chan os.Signal, 1)
				signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
				defer signal.Stop(quit)

				select {
				case sig := <-quit:
					logger.Info("shutting down", "signal", sig.String())
					cancel()
				case <-gCtx.Done():
				}

				return nil
			})

			return g.Wait()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
