package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/igorvolkov/taskmaster/internal/cli/formatter"
	"github.com/igorvolkov/taskmaster/internal/domain"
)

func newRemindersCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Show due reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := time.Now().UTC()

			cutoff := now
			if all {
				// Far horizon shows pending reminders too.
				cutoff = now.AddDate(10, 0, 0)
			}
			reminders, err := app.Reminders.Due(ctx, cutoff)
			if err != nil {
				return err
			}
			if len(reminders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No reminders due.")
				return nil
			}

			rows := make([][]string, 0, len(reminders))
			for _, r := range reminders {
				rows = append(rows, []string{
					string(r.Kind),
					reminderLabel(cmd, app, r),
					formatFireAt(r.FireAt, now),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.RenderTable([]string{"Kind", "Ref", "Due"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include reminders not yet due")

	return cmd
}

func reminderLabel(cmd *cobra.Command, app *App, r *domain.Reminder) string {
	ctx := cmd.Context()
	switch r.Kind {
	case domain.ReminderTask:
		if t, err := app.Tasks.GetByID(ctx, r.RefID); err == nil && t != nil {
			return t.Title
		}
	case domain.ReminderProject:
		if p, err := app.Projects.GetByID(ctx, r.RefID); err == nil && p != nil {
			return p.Name
		}
	}
	return r.RefID
}

func formatFireAt(fireAt, now time.Time) string {
	s := fireAt.Format("2006-01-02 15:04")
	if fireAt.Before(now) {
		return formatter.StyleRed.Render(s)
	}
	return s
}
