package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/igorvolkov/taskmaster/internal/cli/formatter"
	"github.com/igorvolkov/taskmaster/internal/domain"
)

// newOnboardCmd runs the first-run wizard: profile, role, working hours and
// notification preferences, in four steps.
func newOnboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "onboard",
		Short: "Set up your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("onboarding requires an interactive terminal")
			}

			ctx := cmd.Context()
			u, err := app.Users.Current(ctx)
			if err != nil {
				return err
			}

			firstName := u.FirstName
			lastName := u.LastName
			email := u.Email
			role := string(u.Role)
			if role == "" {
				role = string(domain.RoleMember)
			}
			prefs := u.Preferences
			startTime := prefs.WorkingHours.StartTime
			endTime := prefs.WorkingHours.EndTime

			roleOpts := make([]huh.Option[string], 0, len(domain.AllUserRoles))
			for _, r := range domain.AllUserRoles {
				roleOpts = append(roleOpts, huh.NewOption(string(r), string(r)))
			}

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().Title("First name").Value(&firstName).Validate(validateRequired),
					huh.NewInput().Title("Last name").Value(&lastName),
					huh.NewInput().Title("Email").Value(&email),
				),
				huh.NewGroup(
					huh.NewSelect[string]().Title("Your role").Options(roleOpts...).Value(&role),
				),
				huh.NewGroup(
					huh.NewInput().Title("Workday starts (HH:MM)").Value(&startTime),
					huh.NewInput().Title("Workday ends (HH:MM)").Value(&endTime),
				),
				huh.NewGroup(
					huh.NewConfirm().Title("Enable notifications?").Value(&prefs.NotificationsEnabled),
					huh.NewConfirm().Title("Task reminders?").Value(&prefs.TaskReminders),
					huh.NewConfirm().Title("Weekly reports?").Value(&prefs.WeeklyReports),
				),
			).WithTheme(taskmasterHuhTheme()).WithShowHelp(false)

			if err := form.RunWithContext(ctx); err != nil {
				return err
			}

			u.FirstName = firstName
			u.LastName = lastName
			u.Email = email
			u.Role = domain.UserRole(role)
			prefs.WorkingHours = domain.WorkingHours{StartTime: startTime, EndTime: endTime}
			u.Preferences = prefs

			if err := app.Users.CompleteOnboarding(ctx, u); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s. %s\n",
				u.FullName(), formatter.Dim("Run `taskmaster` to open the dashboard."))
			return nil
		},
	}
}
