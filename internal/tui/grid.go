package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/stats"
)

const (
	cellDone   = "██"
	cellMissed = "░░"
	cellFuture = "··"
)

// RenderGrid renders a habit's full window as rows of day cells, one cell per
// day, seven per row. Completed days are filled, missed past days shaded,
// future days dotted and today underlined.
func RenderGrid(h models.Habit, today string) string {
	return renderGrid(h, today, "")
}

// renderGrid optionally highlights a selected day (used by the TUI cursor).
func renderGrid(h models.Habit, today, selected string) string {
	days := stats.DaysToDisplay(h)
	if len(days) == 0 {
		return ""
	}

	var rows []string
	var cells []string
	for _, day := range days {
		var cell string
		switch {
		case stats.CompletedOn(h, day):
			cell = doneCellStyle.Render(cellDone)
		case day < today:
			cell = missedCellStyle.Render(cellMissed)
		case day == today:
			cell = todayCellStyle.Render(cellMissed)
		default:
			cell = futureCellStyle.Render(cellFuture)
		}
		if day == selected {
			cell = selectedCellStyle.Render(cell)
		}

		cells = append(cells, cell)
		if len(cells) == constants.GridWeekWidth {
			rows = append(rows, strings.Join(cells, " "))
			cells = nil
		}
	}
	if len(cells) > 0 {
		rows = append(rows, strings.Join(cells, " "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
