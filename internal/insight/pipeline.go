package insight

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/igorvolkov/taskmaster/internal/domain"
)

// Filter selects the status/date predicate applied to the task list.
type Filter string

const (
	FilterAll          Filter = "all"
	FilterTodo         Filter = "todo"
	FilterInProgress   Filter = "in_progress"
	FilterCompleted    Filter = "completed"
	FilterOverdue      Filter = "overdue"
	FilterHighPriority Filter = "high_priority"
	FilterToday        Filter = "today"
	FilterThisWeek     Filter = "this_week"
)

// AllFilters lists filters in dashboard display order.
var AllFilters = []Filter{
	FilterAll, FilterTodo, FilterInProgress, FilterCompleted,
	FilterOverdue, FilterHighPriority, FilterToday, FilterThisWeek,
}

func ParseFilter(s string) (Filter, error) {
	for _, f := range AllFilters {
		if Filter(s) == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid filter %q", s)
}

// SortOption selects the ordering of the visible task list.
type SortOption string

const (
	SortByDueDate     SortOption = "due_date"
	SortByPriority    SortOption = "priority"
	SortByAIScore     SortOption = "ai_score"
	SortByCreatedDate SortOption = "created_date"
	SortByTitle       SortOption = "title"
)

var AllSortOptions = []SortOption{
	SortByDueDate, SortByPriority, SortByAIScore, SortByCreatedDate, SortByTitle,
}

func ParseSortOption(s string) (SortOption, error) {
	for _, o := range AllSortOptions {
		if SortOption(s) == o {
			return o, nil
		}
	}
	return "", fmt.Errorf("invalid sort option %q", s)
}

// VisibleTasks derives the displayed task list: search, then filter, then
// sort. Empty input yields empty output; absent optional fields only affect
// membership and ordering, never errors.
//
// When search text is present the working set is re-derived from the full
// collection rather than narrowing any prior subset. The status filter still
// applies afterwards, but this matches the historical UI behavior where
// search re-queries everything; see the pinning test before changing it.
func VisibleTasks(all []*domain.Task, filter Filter, search string, sortOpt SortOption, now time.Time) []*domain.Task {
	working := all
	if search != "" {
		working = SearchTasks(all, search)
	}

	working = applyFilter(working, filter, now)

	return sortTasks(working, sortOpt)
}

// SearchTasks keeps tasks whose title, description, or any tag contains the
// query, case-insensitively. An empty query returns the input unchanged.
func SearchTasks(tasks []*domain.Task, query string) []*domain.Task {
	if query == "" {
		return tasks
	}
	q := strings.ToLower(query)

	var out []*domain.Task
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q) ||
			anyTagContains(t.Tags, q) {
			out = append(out, t)
		}
	}
	return out
}

func anyTagContains(tags []string, q string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func applyFilter(tasks []*domain.Task, filter Filter, now time.Time) []*domain.Task {
	var pred func(*domain.Task) bool
	switch filter {
	case FilterAll, "":
		return tasks
	case FilterTodo:
		pred = func(t *domain.Task) bool { return t.Status == domain.TaskTodo }
	case FilterInProgress:
		pred = func(t *domain.Task) bool { return t.Status == domain.TaskInProgress }
	case FilterCompleted:
		pred = func(t *domain.Task) bool { return t.Status == domain.TaskCompleted }
	case FilterOverdue:
		pred = func(t *domain.Task) bool { return t.IsOverdue(now) }
	case FilterHighPriority:
		pred = func(t *domain.Task) bool {
			return t.Priority == domain.PriorityHigh || t.Priority == domain.PriorityUrgent
		}
	case FilterToday:
		pred = func(t *domain.Task) bool {
			return t.DueDate != nil && sameCalendarDay(*t.DueDate, now)
		}
	case FilterThisWeek:
		pred = func(t *domain.Task) bool {
			return t.DueDate != nil && sameISOWeek(*t.DueDate, now)
		}
	default:
		return tasks
	}

	var out []*domain.Task
	for _, t := range tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// sortTasks returns a stably sorted copy; the input order breaks ties.
func sortTasks(tasks []*domain.Task, opt SortOption) []*domain.Task {
	out := make([]*domain.Task, len(tasks))
	copy(out, tasks)

	var less func(a, b *domain.Task) bool
	switch opt {
	case SortByDueDate:
		// Ascending; tasks without a due date always sort last.
		less = func(a, b *domain.Task) bool {
			if (a.DueDate == nil) != (b.DueDate == nil) {
				return a.DueDate != nil
			}
			if a.DueDate == nil {
				return false
			}
			return a.DueDate.Before(*b.DueDate)
		}
	case SortByPriority:
		less = func(a, b *domain.Task) bool {
			return a.Priority.Weight() > b.Priority.Weight()
		}
	case SortByAIScore:
		less = func(a, b *domain.Task) bool {
			return a.AIPriorityScore > b.AIPriorityScore
		}
	case SortByCreatedDate:
		less = func(a, b *domain.Task) bool {
			return a.CreatedDate.After(b.CreatedDate)
		}
	case SortByTitle:
		less = func(a, b *domain.Task) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// sameCalendarDay reports whether a and b fall on the same calendar day in
// b's location.
func sameCalendarDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// sameISOWeek reports whether a and b fall in the same ISO week in b's
// location.
func sameISOWeek(a, b time.Time) bool {
	ay, aw := a.In(b.Location()).ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}
