package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/dateutil"
	"github.com/julianstephens/habitgrid/internal/stats"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		m.List.SetSize(msg.Width-h, msg.Height-v)
	}

	switch m.State {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case StateDetail:
		return m.updateDetail(msg)
	default:
		return m.updateList(msg)
	}
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.List.FilterState() != list.Filtering {
			switch {
			case key.Matches(msg, m.Keys.Quit):
				return m, tea.Quit

			case key.Matches(msg, m.Keys.Add):
				m.HabitForm = &HabitFormModel{
					Start: m.Today,
					End:   dateutil.AddDays(m.Today, constants.DefaultHabitDays-1),
				}
				m.Form = NewHabitForm(m.HabitForm)
				m.State = StateAddHabit
				return m, m.Form.Init()

			case key.Matches(msg, m.Keys.Open):
				if item, ok := m.List.SelectedItem().(Item); ok {
					m.Selected = item.HabitSummary
					m.CursorDay = m.cursorHome(item)
					m.State = StateDetail
				}
				return m, nil

			case key.Matches(msg, m.Keys.Today):
				if item, ok := m.List.SelectedItem().(Item); ok {
					m.toggle(item.Habit.ID, m.Today)
				}
				return m, nil

			case key.Matches(msg, m.Keys.Delete):
				if item, ok := m.List.SelectedItem().(Item); ok {
					m.DeleteID = item.Habit.ID
					m.DeleteName = item.Habit.Name
					m.ConfirmForm = &ConfirmModel{}
					m.Form = NewConfirmDeleteForm(m.DeleteName, m.ConfirmForm)
					m.State = StateConfirmDelete
					return m, m.Form.Init()
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	h := m.Selected.Habit
	switch {
	case key.Matches(keyMsg, m.Keys.Back):
		m.State = StateList

	case key.Matches(keyMsg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.Keys.Toggle), key.Matches(keyMsg, m.Keys.Open):
		m.toggle(h.ID, m.CursorDay)

	case key.Matches(keyMsg, m.Keys.Today):
		m.toggle(h.ID, m.Today)

	case keyMsg.String() == "left", keyMsg.String() == "h":
		m.moveCursor(-1)
	case keyMsg.String() == "right", keyMsg.String() == "l":
		m.moveCursor(1)
	case keyMsg.String() == "up", keyMsg.String() == "k":
		m.moveCursor(-constants.GridWeekWidth)
	case keyMsg.String() == "down", keyMsg.String() == "j":
		m.moveCursor(constants.GridWeekWidth)
	}

	return m, nil
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.State = StateList
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		if _, err := m.Tracker.Create(m.HabitForm.Name, m.HabitForm.Start, m.HabitForm.End); err != nil {
			m.Err = err.Error()
			// Stay in form state on error to allow retry
			m.Form.State = huh.StateNormal
		} else {
			m.Err = ""
			m.refresh()
			m.State = StateList
		}
	case huh.StateAborted:
		m.State = StateList
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		if m.ConfirmForm.Confirmed {
			if err := m.Tracker.Delete(m.DeleteID); err != nil {
				m.Err = err.Error()
			}
			m.refresh()
		}
		m.State = StateList
	case huh.StateAborted:
		m.State = StateList
	}
	return m, tea.Batch(cmds...)
}

// toggle flips one day and refreshes the derived state.
func (m *Model) toggle(habitID, day string) {
	if err := m.Tracker.Toggle(habitID, day); err != nil {
		m.Err = err.Error()
		return
	}
	m.Err = ""
	m.refresh()
}

// cursorHome picks the initial grid cursor: today when in range, otherwise
// the nearest window edge.
func (m *Model) cursorHome(item Item) string {
	h := item.Habit
	switch {
	case stats.InRange(h, m.Today):
		return m.Today
	case m.Today < h.StartDate:
		return h.StartDate
	default:
		return h.EndDate
	}
}

// moveCursor shifts the grid cursor by n days, clipped to the habit window.
func (m *Model) moveCursor(n int) {
	day := dateutil.AddDays(m.CursorDay, n)
	h := m.Selected.Habit
	if day < h.StartDate {
		day = h.StartDate
	}
	if day > h.EndDate {
		day = h.EndDate
	}
	m.CursorDay = day
}
