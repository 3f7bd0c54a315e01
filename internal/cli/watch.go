package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Skryldev/audio-core/infrastructure/watch"
	"github.com/Skryldev/audio-core/internal/output"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print changes to the recordings store until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			formatter := output.NewFormatter(cmd.OutOrStdout())
			w := watch.NewWatcher(deps.Core.StoreRoot(), deps.Logger)
			return w.Run(ctx, func(e watch.Event) {
				formatter.WatchEvent(string(e.Op), e.Filename)
			})
		},
	}
}
