package cli

import (
	"github.com/spf13/cobra"

	"github.com/Skryldev/audio-core/internal/output"
)

func NewAnalyzeCmd(deps *Dependencies) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze <audio> <subtitles.srt>",
		Short: "Report container properties and subtitle speech statistics",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			meta, err := deps.Core.Analyze(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			if asJSON {
				return formatter.JSON(meta)
			}
			formatter.AudioMetadata(meta)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print machine-readable JSON")
	return cmd
}
