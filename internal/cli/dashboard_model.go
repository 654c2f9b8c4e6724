package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/igorvolkov/taskmaster/internal/cli/formatter"
	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/insight"
	"github.com/igorvolkov/taskmaster/internal/service"
)

// dashboardLoadedMsg carries a refreshed snapshot plus the visible task list
// for the current filter/search/sort combination.
type dashboardLoadedMsg struct {
	dash  *service.Dashboard
	tasks []*domain.Task
	err   error
}

type taskMutatedMsg struct{ err error }

// dashboardModel is the root bubbletea model: a filterable, sortable,
// searchable task list with a stats header.
type dashboardModel struct {
	app *App

	filterIdx int
	sortIdx   int
	searching bool
	search    textinput.Model

	dash   *service.Dashboard
	tasks  []*domain.Task
	cursor int

	width    int
	height   int
	loading  bool
	err      error
	quitting bool
}

func newDashboardModel(app *App) dashboardModel {
	search := textinput.New()
	search.Placeholder = "search title, description, tags"
	search.Prompt = "/ "
	search.CharLimit = 80

	return dashboardModel{
		app:     app,
		search:  search,
		loading: true,
	}
}

func (m dashboardModel) filter() insight.Filter {
	return insight.AllFilters[m.filterIdx]
}

func (m dashboardModel) sortOption() insight.SortOption {
	return insight.AllSortOptions[m.sortIdx]
}

func (m dashboardModel) refresh() tea.Cmd {
	filter := m.filter()
	sortOpt := m.sortOption()
	query := m.search.Value()
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		dash, err := app.Insights.Dashboard(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		tasks, err := app.Insights.VisibleTasks(ctx, filter, query, sortOpt)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{dash: dash, tasks: tasks}
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.refresh()
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = msg.Width - 4
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.dash = msg.dash
			m.tasks = msg.tasks
			if m.cursor >= len(m.tasks) {
				m.cursor = len(m.tasks) - 1
			}
			if m.cursor < 0 {
				m.cursor = 0
			}
		}
		return m, nil

	case taskMutatedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, m.refresh()

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m dashboardModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, m.refresh()
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		return m, m.refresh()
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m dashboardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case "f":
		m.filterIdx = (m.filterIdx + 1) % len(insight.AllFilters)
		m.cursor = 0
		return m, m.refresh()

	case "F":
		m.filterIdx = (m.filterIdx + len(insight.AllFilters) - 1) % len(insight.AllFilters)
		m.cursor = 0
		return m, m.refresh()

	case "s":
		m.sortIdx = (m.sortIdx + 1) % len(insight.AllSortOptions)
		return m, m.refresh()

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case " ":
		if t := m.selected(); t != nil {
			app := m.app
			id := t.ID
			return m, func() tea.Msg {
				_, err := app.Tasks.ToggleCompletion(context.Background(), id)
				return taskMutatedMsg{err: err}
			}
		}
		return m, nil

	case "x":
		if t := m.selected(); t != nil {
			app := m.app
			id := t.ID
			return m, func() tea.Msg {
				return taskMutatedMsg{err: app.Tasks.Delete(context.Background(), id)}
			}
		}
		return m, nil

	case "r":
		m.loading = true
		return m, m.refresh()
	}

	return m, nil
}

func (m dashboardModel) selected() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor]
}

func (m dashboardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.loading {
		return formatter.Dim("Loading...")
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View() + "\n")
	}

	b.WriteString(m.listView())
	b.WriteString("\n" + m.footerView())
	return b.String()
}

func (m dashboardModel) headerView() string {
	var stats string
	if m.dash != nil {
		stats = fmt.Sprintf("%d tasks · %d done · %d overdue",
			m.dash.Stats.TotalTasks, m.dash.Stats.CompletedTasks, m.dash.Stats.OverdueTasks)
	}
	left := formatter.StyleHeader.Render("TaskMaster")
	mode := formatter.Dim(fmt.Sprintf("filter:%s sort:%s", m.filter(), m.sortOption()))
	return fmt.Sprintf("%s  %s\n%s", left, formatter.Dim(stats), mode)
}

func (m dashboardModel) listView() string {
	if len(m.tasks) == 0 {
		return formatter.Dim("No tasks match.")
	}

	now := time.Now().UTC()
	var b strings.Builder
	for i, t := range m.tasks {
		marker := "  "
		if i == m.cursor {
			marker = formatter.StyleOrange.Render("> ")
		}
		check := "[ ]"
		if t.Status == domain.TaskCompleted {
			check = formatter.StyleGreen.Render("[✓]")
		}
		title := t.Title
		if t.IsOverdue(now) {
			title = formatter.StyleRed.Render(title)
		} else if i == m.cursor {
			title = formatter.Bold(title)
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", marker, check, title,
			formatter.Dim(fmt.Sprintf("%.0f", t.AIPriorityScore)))
	}
	return b.String()
}

func (m dashboardModel) footerView() string {
	return formatter.Dim("j/k move · space done · x delete · f filter · s sort · / search · r refresh · q quit")
}

// runDashboard starts the interactive dashboard on the alternate screen.
func runDashboard(app *App) error {
	p := tea.NewProgram(newDashboardModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("the dashboard requires an interactive terminal")
			}
			return runDashboard(app)
		},
	}
}
