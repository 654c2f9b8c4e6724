package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/igorvolkov/taskmaster/internal/cli/formatter"
	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/insight"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskUpdateCmd(app),
		newTaskDoneCmd(app),
		newTaskLogCmd(app),
		newTaskUpcomingCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var title, description, priority, complexity, due, project string
	var tags []string
	var interactiveForm bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			t := &domain.Task{
				Title:       title,
				Description: description,
				Tags:        tags,
			}

			if interactiveForm {
				if !app.interactive() {
					return fmt.Errorf("--form requires an interactive terminal")
				}
				if err := runCreateTaskForm(ctx, app, t); err != nil {
					return err
				}
			} else {
				if priority != "" {
					p, err := domain.ParsePriority(priority)
					if err != nil {
						return err
					}
					t.Priority = p
				}
				if complexity != "" {
					c, err := domain.ParseComplexity(complexity)
					if err != nil {
						return err
					}
					t.Complexity = c
				}
				if due != "" {
					d, err := time.Parse("2006-01-02", due)
					if err != nil {
						return fmt.Errorf("invalid due date %q: %w", due, err)
					}
					t.DueDate = &d
				}
				if project != "" {
					projectID, err := resolveProjectID(ctx, app, project)
					if err != nil {
						return err
					}
					t.ProjectID = &projectID
				}
			}

			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s (%s, score %.0f)\n",
				t.Title, t.Priority, t.AIPriorityScore)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "desc", "", "Task description")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low, medium, high, urgent)")
	cmd.Flags().StringVar(&complexity, "complexity", "", "Complexity (simple, moderate, complex, expert)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().BoolVar(&interactiveForm, "form", false, "Fill in fields interactively")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var filterStr, sortStr, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := insight.FilterAll
			if filterStr != "" {
				f, err := insight.ParseFilter(filterStr)
				if err != nil {
					return err
				}
				filter = f
			}
			sortOpt := insight.SortByDueDate
			if sortStr != "" {
				o, err := insight.ParseSortOption(sortStr)
				if err != nil {
					return err
				}
				sortOpt = o
			}

			tasks, err := app.Insights.VisibleTasks(cmd.Context(), filter, search, sortOpt)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks, time.Now().UTC()))
			return nil
		},
	}

	cmd.Flags().StringVar(&filterStr, "filter", "", filterFlagUsage())
	cmd.Flags().StringVar(&sortStr, "sort", "", sortFlagUsage())
	cmd.Flags().StringVar(&search, "search", "", "Search in title, description and tags")

	return cmd
}

func filterFlagUsage() string {
	names := make([]string, len(insight.AllFilters))
	for i, f := range insight.AllFilters {
		names[i] = string(f)
	}
	return "Filter: " + strings.Join(names, ", ")
}

func sortFlagUsage() string {
	names := make([]string, len(insight.AllSortOptions))
	for i, o := range insight.AllSortOptions {
		names[i] = string(o)
	}
	return "Sort: " + strings.Join(names, ", ")
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if t == nil {
				return fmt.Errorf("task not found: %q", args[0])
			}

			now := time.Now().UTC()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskDetail(t, now))
			fmt.Fprint(cmd.OutOrStdout(), "\n"+formatter.FormatScoreBreakdown(insight.Breakdown(t, now)))

			if suggestion, err := app.Insights.SuggestPriority(ctx, id); err == nil && suggestion != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "\nSuggested priority: %s\n",
					formatter.PriorityBadge(*suggestion))
			}
			return nil
		},
	}
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var title, description, priority, status, complexity, due string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update task fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if t == nil {
				return fmt.Errorf("task not found: %q", args[0])
			}

			if title != "" {
				t.Title = title
			}
			if description != "" {
				t.Description = description
			}
			if priority != "" {
				p, err := domain.ParsePriority(priority)
				if err != nil {
					return err
				}
				t.Priority = p
			}
			if status != "" {
				st, err := domain.ParseTaskStatus(status)
				if err != nil {
					return err
				}
				t.Status = st
			}
			if complexity != "" {
				c, err := domain.ParseComplexity(complexity)
				if err != nil {
					return err
				}
				t.Complexity = c
			}
			if due != "" {
				d, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				t.DueDate = &d
			}

			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s (score %.0f)\n", t.Title, t.AIPriorityScore)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "desc", "", "New description")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority")
	cmd.Flags().StringVar(&status, "status", "", "New status")
	cmd.Flags().StringVar(&complexity, "complexity", "", "New complexity")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD)")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Toggle task completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.ToggleCompletion(ctx, id)
			if err != nil {
				return err
			}
			if t.Status == domain.TaskCompleted {
				fmt.Fprintf(cmd.OutOrStdout(), "Completed: %s\n", t.Title)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Reopened: %s\n", t.Title)
			}
			return nil
		},
	}
}

func newTaskLogCmd(app *App) *cobra.Command {
	var hours float64

	cmd := &cobra.Command{
		Use:   "log ID",
		Short: "Log hours worked on a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.LogTime(ctx, id, hours)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.1fh on %s (%.1fh total)\n",
				hours, t.Title, t.ActualHours)
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours to log")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func newTaskUpcomingCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List incomplete tasks due soon",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Insights.UpcomingTasks(cmd.Context(), days)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing due in the next %d days.\n", days)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks, time.Now().UTC()))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Window in days")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", id[:8])
			return nil
		},
	}
}
