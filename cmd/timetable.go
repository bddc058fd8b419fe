package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	timetablerender "github.com/bnema/school-accounts-cli/internal/adapters/render/timetable"
	"github.com/bnema/school-accounts-cli/internal/application"
	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newTimetableCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timetable",
		Short: "Fetch and show aggregated timetables",
	}

	cmd.AddCommand(
		newTimetableRefreshCmd(app),
		newTimetableShowCmd(app),
		newTimetableForgetWeekCmd(app),
		newTimetablePurgeCmd(app),
		newTimetableExportCmd(app),
		newTimetableImportCmd(app),
	)

	return cmd
}

func newTimetableRefreshCmd(app *app) *cobra.Command {
	var (
		week   int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "refresh [account]",
		Short: "Fetch one week from every account, or from one account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("week") {
				week = app.timetables.CurrentWeek()
			}

			refresh := func(ctx context.Context) ([]application.RefreshResult, error) {
				if len(args) == 0 {
					return app.timetables.RefreshAll(ctx, week)
				}

				result, err := app.timetables.RefreshWeek(ctx, domain.AccountID(args[0]), week)
				result.Err = err
				return []application.RefreshResult{result}, err
			}

			var (
				results  []application.RefreshResult
				fetchErr error
			)
			if asJSON {
				results, fetchErr = refresh(cmd.Context())
				if err := writeJSON(cmd, refreshReport(results)); err != nil {
					return err
				}
				return fetchErr
			}

			results, fetchErr = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), fmt.Sprintf("Refreshing week %d", week), refresh)
			writeRefreshResults(cmd.OutOrStdout(), week, results)

			return fetchErr
		},
	}

	cmd.Flags().IntVar(&week, "week", 0, "ISO week number (defaults to the current week)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return cmd
}

type refreshReportEntry struct {
	Account domain.AccountID `json:"account"`
	Source  domain.AccountID `json:"source,omitempty"`
	Classes int              `json:"classes"`
	Skipped bool             `json:"skipped"`
	Error   string           `json:"error,omitempty"`
}

func refreshReport(results []application.RefreshResult) []refreshReportEntry {
	report := make([]refreshReportEntry, 0, len(results))
	for _, result := range results {
		entry := refreshReportEntry{
			Account: result.AccountID,
			Source:  result.Source,
			Classes: result.Classes,
			Skipped: result.Skipped,
		}
		if result.Err != nil {
			entry.Error = result.Err.Error()
		}
		report = append(report, entry)
	}
	return report
}

func writeRefreshResults(out io.Writer, week int, results []application.RefreshResult) {
	for _, result := range results {
		switch {
		case result.Err != nil:
			_, _ = fmt.Fprintf(out, "%s\tweek %d\tfailed: %v\n", result.AccountID, week, result.Err)
		case result.Skipped:
			_, _ = fmt.Fprintf(out, "%s\tweek %d\tskipped: no timetable binding\n", result.AccountID, week)
		default:
			_, _ = fmt.Fprintf(out, "%s\tweek %d\t%d classes from %s\n", result.AccountID, week, result.Classes, result.Source)
		}
	}
}

func newTimetableShowCmd(app *app) *cobra.Command {
	var (
		week   int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the aggregated classes of a week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("week") {
				week = app.timetables.CurrentWeek()
			}

			classes, known, err := app.timetables.Week(week)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, classes)
			}

			accounts, err := app.accounts.List(cmd.Context())
			if err != nil {
				return err
			}
			sources := make(map[domain.AccountID]string, len(accounts))
			for _, account := range accounts {
				sources[account.LocalID] = account.DisplayName()
			}

			rendered, err := app.timetableRenderer(classes, timetablerender.RenderOptions{
				Week:    week,
				Known:   known,
				Sources: sources,
			})
			if err != nil {
				return fmt.Errorf("render timetable: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().IntVar(&week, "week", 0, "ISO week number (defaults to the current week)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return cmd
}

func newTimetableForgetWeekCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "forget-week <week>",
		Short: "Drop the bucket of a week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", domain.ErrInvalidWeek, args[0])
			}

			return app.timetables.ForgetWeek(cmd.Context(), week)
		},
	}
}

func newTimetablePurgeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "purge <source>",
		Short: "Remove every class contributed by an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.timetables.Purge(cmd.Context(), domain.AccountID(args[0])); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "purged classes from %s\n", args[0])
			return err
		},
	}
}

func newTimetableExportCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the aggregated timetable of the profile as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot := app.timetables.Export()
			if output == "" {
				return writeJSON(cmd, snapshot)
			}

			data, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return fmt.Errorf("encode timetable: %w", err)
			}
			if err := os.WriteFile(output, append(data, '\n'), 0o600); err != nil {
				return fmt.Errorf("write timetable export: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}

func newTimetableImportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the aggregated timetable of the profile from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read timetable import: %w", err)
			}

			var timetable domain.Timetable
			if err := json.Unmarshal(data, &timetable); err != nil {
				return fmt.Errorf("decode timetable import: %w", err)
			}
			if timetable == nil {
				timetable = domain.Timetable{}
			}

			return app.timetables.Import(cmd.Context(), timetable)
		},
	}
}
