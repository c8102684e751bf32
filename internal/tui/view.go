package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	switch m.State {
	case StateAddHabit, StateConfirmDelete:
		return docStyle.Render(m.Form.View())
	case StateDetail:
		return docStyle.Render(m.detailView())
	default:
		return m.listView()
	}
}

func (m Model) listView() string {
	view := docStyle.Render(m.List.View())
	if m.Err != "" {
		view += "\n" + dangerStyle.Render(m.Err)
	}
	return view
}

func (m Model) detailView() string {
	h := m.Selected.Habit
	s := m.Selected.Summary

	var b strings.Builder
	b.WriteString(titleStyle.Render(h.Name))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%s to %s · %s", h.StartDate, h.EndDate, s.StatusMessage)))
	b.WriteString("\n\n")
	b.WriteString(renderGrid(h, m.Today, m.CursorDay))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("cursor %s · streak %d · best %d · done %d (%d%%)",
		m.CursorDay, s.CurrentStreak, s.BestStreak, s.TotalCompleted, s.CompletionPercentage))
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render("space: toggle day · t: toggle today · arrows: move · esc: back"))
	if m.Err != "" {
		b.WriteString("\n" + dangerStyle.Render(m.Err))
	}

	return lipgloss.JoinVertical(lipgloss.Left, b.String())
}
