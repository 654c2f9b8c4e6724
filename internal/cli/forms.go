package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/igorvolkov/taskmaster/internal/cli/formatter"
	"github.com/igorvolkov/taskmaster/internal/domain"
)

// taskmasterHuhTheme returns a huh theme using the product palette.
func taskmasterHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorOrange).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorOrange)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorOrange).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorOrange)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorOrange)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func priorityOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.AllPriorities))
	for _, p := range domain.AllPriorities {
		opts = append(opts, huh.NewOption(string(p), string(p)))
	}
	return opts
}

func complexityOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.AllComplexities))
	for _, c := range domain.AllComplexities {
		opts = append(opts, huh.NewOption(string(c), string(c)))
	}
	return opts
}

// runCreateTaskForm fills the task from an interactive multi-field form.
// Fields already set on the task become the form defaults.
func runCreateTaskForm(ctx context.Context, app *App, t *domain.Task) error {
	title := t.Title
	description := t.Description
	priority := string(domain.PriorityMedium)
	complexity := string(domain.ComplexityModerate)
	var due, projectID string

	projectOpts := []huh.Option[string]{huh.NewOption("(none)", "")}
	if projects, err := app.Projects.List(ctx); err == nil {
		for _, p := range projects {
			projectOpts = append(projectOpts, huh.NewOption(p.Name, p.ID))
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("What needs doing?").
				Value(&title).
				Validate(validateRequired),
			huh.NewText().
				Title("Description").
				Value(&description),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Priority").
				Options(priorityOptions()...).
				Value(&priority),
			huh.NewSelect[string]().
				Title("Complexity").
				Options(complexityOptions()...).
				Value(&complexity),
			huh.NewInput().
				Title("Due Date (YYYY-MM-DD, blank for none)").
				Placeholder("2026-06-30").
				Value(&due).
				Validate(validateOptionalDate),
			huh.NewSelect[string]().
				Title("Project").
				Options(projectOpts...).
				Value(&projectID),
		),
	).WithTheme(taskmasterHuhTheme()).WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		return err
	}

	t.Title = title
	t.Description = description
	t.Priority = domain.Priority(priority)
	t.Complexity = domain.Complexity(complexity)
	if due != "" {
		d, err := time.Parse("2006-01-02", due)
		if err != nil {
			return fmt.Errorf("invalid due date %q: %w", due, err)
		}
		t.DueDate = &d
	}
	if projectID != "" {
		t.ProjectID = &projectID
	}
	return nil
}
