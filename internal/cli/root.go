package cli

import (
	"github.com/spf13/cobra"

	"github.com/igorvolkov/taskmaster/internal/notify"
	"github.com/igorvolkov/taskmaster/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks     service.TaskService
	Projects  service.ProjectService
	Users     service.UserService
	Insights  service.InsightService
	Reminders notify.Scheduler

	// IsInteractive reports whether stdin is a terminal; the dashboard only
	// launches when it is.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "taskmaster" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskmaster",
		Short: "Task and project tracker with priority scoring",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runDashboard(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newTaskCmd(app),
		newProjectCmd(app),
		newStatsCmd(app),
		newTrendCmd(app),
		newSuggestCmd(app),
		newRescoreCmd(app),
		newRemindersCmd(app),
		newDashboardCmd(app),
		newOnboardCmd(app),
	)

	return root
}
