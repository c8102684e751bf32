package cli

import (
	"fmt"

	"github.com/julianstephens/habitgrid/internal/dateutil"
	"github.com/julianstephens/habitgrid/internal/stats"
	"github.com/julianstephens/habitgrid/internal/tui"
)

type ShowCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Evaluate statistics as of this date (default: today)." default:""`
}

func (c *ShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	today := resolveDay(c.Date)
	if !dateutil.Valid(today) {
		return fmt.Errorf("invalid date: %s (expected YYYY-MM-DD)", today)
	}

	habit, err := ctx.Tracker.Get(c.Name)
	if err != nil {
		return err
	}

	summary := stats.Summarize(habit, today)

	fmt.Printf("%s (%s to %s)\n", habit.Name, habit.StartDate, habit.EndDate)
	fmt.Printf("%s\n\n", summary.StatusMessage)
	fmt.Println(tui.RenderGrid(habit, today))
	fmt.Printf("\nCurrent streak: %d\n", summary.CurrentStreak)
	fmt.Printf("Best streak:    %d\n", summary.BestStreak)
	fmt.Printf("Completed:      %d days (%d%%)\n", summary.TotalCompleted, summary.CompletionPercentage)
	return nil
}
