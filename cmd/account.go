package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/school-accounts-cli/internal/application"
	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errCredentialValueRequired = errors.New("credential value is required")

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
		newAccountAddCmd(app),
		newAccountRemoveCmd(app),
		newAccountRenameCmd(app),
		newAccountStatusCmd(app),
		newAccountCredentialsCmd(app),
	)

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts, err := app.accounts.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, accounts)
			}

			for _, account := range accounts {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", account.LocalID, account.DisplayName(), account.Service.Label())
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return cmd
}

func newAccountAddCmd(app *app) *cobra.Command {
	var (
		rawService string
		name       string
		id         string
		instance   string
		username   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := domain.ParseService(rawService)
			if err != nil {
				return err
			}

			account, err := app.accounts.Add(cmd.Context(), application.AddAccountCommand{
				LocalID: domain.AccountID(id),
				Name:    name,
				Service: service,
				Credentials: domain.Credentials{
					Instance: instance,
					Username: username,
				},
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added %s account %s (%s)\n", account.Service.Label(), account.DisplayName(), account.LocalID)
			return err
		},
	}

	cmd.Flags().StringVar(&rawService, "service", "", "Service kind: pronote, ecoledirecte, skolengo, local or multi-service")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&id, "id", "", "Local identifier (generated when omitted)")
	cmd.Flags().StringVar(&instance, "instance", "", "Backend instance URL")
	cmd.Flags().StringVar(&username, "username", "", "Backend username")
	_ = cmd.MarkFlagRequired("service")

	return cmd
}

func newAccountRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <account>",
		Short: "Remove an account and the bindings that point to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.accounts.Remove(cmd.Context(), domain.AccountID(args[0])); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return err
		},
	}
}

func newAccountRenameCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <account> <name>",
		Short: "Rename an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.accounts.Rename(cmd.Context(), domain.AccountID(args[0]), args[1])
		},
	}
}

func newAccountStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status [account]",
		Short: "Show credentials and feature bindings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses, err := loadStatuses(cmd, app, args)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, statuses)
			}

			rendered, err := app.statusRenderer(statuses)
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return cmd
}

func newAccountCredentialsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credentials",
		Short: "Manage backend credentials",
	}

	cmd.AddCommand(
		newAccountCredentialsSetCmd(app),
		newAccountCredentialsClearCmd(app),
	)

	return cmd
}

func newAccountCredentialsSetCmd(app *app) *cobra.Command {
	var (
		instance string
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "set <account>",
		Short: "Store the backend password for an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				return errCredentialValueRequired
			}

			id := domain.AccountID(args[0])
			return app.accounts.SetCredentials(cmd.Context(), application.SetCredentialsCommand{
				ID:          id,
				Instance:    instance,
				Username:    username,
				SecretKey:   domain.SecretKey(id, domain.SecretNamePassword),
				SecretValue: password,
			})
		},
	}

	cmd.Flags().StringVar(&instance, "instance", "", "Backend instance URL")
	cmd.Flags().StringVar(&username, "username", "", "Backend username")
	cmd.Flags().StringVar(&password, "password", "", "Backend password")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newAccountCredentialsClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <account>",
		Short: "Delete the stored backend password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.accounts.ClearCredentials(cmd.Context(), domain.AccountID(args[0]))
		},
	}
}

func loadStatuses(cmd *cobra.Command, app *app, args []string) ([]application.AccountStatus, error) {
	if len(args) == 0 {
		return app.accounts.GetStatusAll(cmd.Context())
	}

	status, err := app.accounts.GetStatus(cmd.Context(), domain.AccountID(args[0]))
	if err != nil {
		return nil, err
	}

	return []application.AccountStatus{status}, nil
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
