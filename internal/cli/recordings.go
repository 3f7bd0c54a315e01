package cli

import (
	"github.com/spf13/cobra"

	"github.com/Skryldev/audio-core/internal/output"
)

func NewSaveCmd(deps *Dependencies) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Copy an audio file into the recordings store",
		Long:  "Copy an audio file into the recordings store. Without --name the recording is stored as saved_<stem>_<unix time><ext>.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			if name == "" {
				_, msg, err := deps.Core.ImportRecording(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				formatter.Success(msg)
				return nil
			}

			msg, err := deps.Core.SaveRecordingFrom(cmd.Context(), args[0], name)
			if err != nil {
				return err
			}
			formatter.Success(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filename inside the store")
	return cmd
}

func NewListCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored recordings, newest name first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := deps.Core.ListRecordings(cmd.Context())
			if err != nil {
				return err
			}
			output.NewFormatter(cmd.OutOrStdout()).RecordingList(names)
			return nil
		},
	}
}

func NewDeleteCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := deps.Core.DeleteRecording(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			output.NewFormatter(cmd.OutOrStdout()).Success(msg)
			return nil
		},
	}
}

func NewStatCmd(deps *Dependencies) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stat <name>",
		Short: "Show size and creation time of a stored recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			info, err := deps.Core.RecordingInfo(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return formatter.JSON(info)
			}
			formatter.RecordingInfo(info)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print machine-readable JSON")
	return cmd
}

func NewLatestCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Show metadata of the first listed recording",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := deps.Core.LatestRecording(cmd.Context())
			if err != nil {
				return err
			}
			output.NewFormatter(cmd.OutOrStdout()).RecordingInfo(info)
			return nil
		},
	}
}
