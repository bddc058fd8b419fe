package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the active timetable profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot := app.timetables.Export()
			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintf(out, "profile: %s\n", app.timetables.Profile())
			_, _ = fmt.Fprintf(out, "storage: %s\n", app.cfg.Storage.Driver)
			weeks := snapshot.Weeks()
			if len(weeks) == 0 {
				_, err := fmt.Fprintln(out, "weeks: none")
				return err
			}
			_, err := fmt.Fprintf(out, "weeks: %v\n", weeks)
			return err
		},
	}
}
