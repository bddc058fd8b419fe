package cmd

import (
	"fmt"

	"github.com/bnema/school-accounts-cli/internal/application"
	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newBindCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bind",
		Short: "Delegate features of a multi-service account",
	}

	cmd.AddCommand(
		newBindSetCmd(app),
		newBindClearCmd(app),
		newBindShowCmd(app),
	)

	return cmd
}

func newBindSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <composite> <feature> <account>",
		Short: "Serve a feature of a composite account from another account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			feature, err := domain.ParseFeature(args[1])
			if err != nil {
				return err
			}

			if err := app.accounts.BindFeature(cmd.Context(), application.BindFeatureCommand{
				CompositeID: domain.AccountID(args[0]),
				Feature:     feature,
				TargetID:    domain.AccountID(args[2]),
			}); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s of %s is served by %s\n", feature, args[0], args[2])
			return err
		},
	}
}

func newBindClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <composite> <feature>",
		Short: "Remove a feature binding",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			feature, err := domain.ParseFeature(args[1])
			if err != nil {
				return err
			}

			return app.accounts.UnbindFeature(cmd.Context(), domain.AccountID(args[0]), feature)
		},
	}
}

func newBindShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <composite>",
		Short: "List the bindings of a composite account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.accounts.GetStatus(cmd.Context(), domain.AccountID(args[0]))
			if err != nil {
				return err
			}
			if !status.Account.IsComposite() {
				return fmt.Errorf("%w: %s is not a multi-service account", domain.ErrInvalidBinding, status.Account.LocalID)
			}

			out := cmd.OutOrStdout()
			if len(status.Bindings) == 0 {
				_, err = fmt.Fprintln(out, "no bindings")
				return err
			}

			for _, binding := range status.Bindings {
				target := "missing account"
				if binding.Target != nil {
					target = binding.Target.DisplayName()
				}
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", binding.Feature, binding.TargetID, target)
			}

			return nil
		},
	}
}
