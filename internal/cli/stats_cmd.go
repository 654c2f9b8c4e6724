package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/igorvolkov/taskmaster/internal/cli/formatter"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show productivity statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := app.Insights.Dashboard(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatProductivityStats(dash.Stats, dash.TeamEfficiency))
			fmt.Fprintln(out, formatter.FormatWeeklyProgress(dash.Week))
			if s := formatter.FormatInsights(dash.Insights); s != "" {
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}
}

func newTrendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Show completion trend over time",
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := app.Insights.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			points, err := app.Insights.CompletionTrend(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatTrend(dash.Trend))
			fmt.Fprint(out, formatter.FormatCompletionTrend(points))
			return nil
		},
	}
}

func newSuggestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Suggest workflow improvements",
		RunE: func(cmd *cobra.Command, args []string) error {
			suggestions, err := app.Insights.WorkflowSuggestions(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSuggestions(suggestions))
			return nil
		},
	}
}

func newRescoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rescore",
		Short: "Recompute priority scores for all tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := app.Insights.RescoreAll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rescored %d task(s)\n", updated)
			return nil
		},
	}
}
