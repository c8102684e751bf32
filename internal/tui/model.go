package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitgrid/internal/dateutil"
	"github.com/julianstephens/habitgrid/internal/tracker"
)

// SessionState represents the current state of the TUI application
type SessionState int

const (
	StateList SessionState = iota
	StateDetail
	StateAddHabit
	StateConfirmDelete
)

// Item wraps a habit summary for the bubbles list.
type Item struct {
	tracker.HabitSummary
}

func (i Item) Title() string {
	return i.Habit.Name
}

func (i Item) Description() string {
	return fmt.Sprintf("%s · streak %d · %d%%",
		i.Summary.StatusMessage, i.Summary.CurrentStreak, i.Summary.CompletionPercentage)
}

func (i Item) FilterValue() string { return i.Habit.Name }

// HabitFormModel backs the add-habit form.
type HabitFormModel struct {
	Name  string
	Start string
	End   string
}

// ConfirmModel backs the delete confirmation dialog.
type ConfirmModel struct {
	Confirmed bool
}

// Model is the top-level bubbletea model.
type Model struct {
	Tracker *tracker.Tracker
	State   SessionState
	Keys    KeyMap
	Today   string

	List      list.Model
	Summaries []tracker.HabitSummary

	// Detail view
	Selected  tracker.HabitSummary
	CursorDay string

	// Forms
	Form      *huh.Form
	HabitForm *HabitFormModel

	// Pending delete
	DeleteID    string
	DeleteName  string
	ConfirmForm *ConfirmModel

	Err string

	width  int
	height int
}

func NewModel(t *tracker.Tracker) Model {
	delegate := list.NewDefaultDelegate()
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Habits"
	l.SetShowStatusBar(false)

	m := Model{
		Tracker: t,
		State:   StateList,
		Keys:    DefaultKeyMap(),
		Today:   dateutil.Today(),
		List:    l,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads every habit summary from the tracker into the list.
func (m *Model) refresh() {
	summaries, err := m.Tracker.Summaries(m.Today)
	if err != nil {
		m.Err = err.Error()
		return
	}
	m.Summaries = summaries

	items := make([]list.Item, 0, len(summaries))
	for _, hs := range summaries {
		items = append(items, Item{hs})
	}
	m.List.SetItems(items)

	// Keep the detail pane in sync after a toggle or delete.
	if m.State == StateDetail {
		for _, hs := range summaries {
			if hs.Habit.ID == m.Selected.Habit.ID {
				m.Selected = hs
				return
			}
		}
		m.State = StateList
	}
}
