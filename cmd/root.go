package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

const skipWireAnnotation = "sa/skip-wire"

func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

type rootOptions struct {
	profile  string
	logLevel string
	strict   bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	opts := rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "sa",
		Short: "School Accounts CLI (sa): one place for every school account",
		Long: "sa aggregates timetables and chats from several school-information services. " +
			"A multi-service account delegates each feature to one of your other accounts.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipWireAnnotation] == "true" {
				return nil
			}
			return a.wire(cmd, opts)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.profile, "profile", "", "Timetable profile to use (overrides config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")
	flags.BoolVar(&opts.strict, "strict", false, "Fail on binding invariant violations instead of logging them")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountCmd(a),
		newBindCmd(a),
		newChatsCmd(a),
		newTimetableCmd(a),
		newProfileCmd(a),
	)

	return rootCmd
}
