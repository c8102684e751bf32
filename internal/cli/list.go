package cli

import (
	"fmt"

	"github.com/julianstephens/habitgrid/internal/dateutil"
)

type ListCmd struct {
	Date string `help:"Evaluate statistics as of this date (default: today)." default:""`
}

func (c *ListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	today := resolveDay(c.Date)
	if !dateutil.Valid(today) {
		return fmt.Errorf("invalid date: %s (expected YYYY-MM-DD)", today)
	}

	summaries, err := ctx.Tracker.Summaries(today)
	if err != nil {
		return err
	}

	if len(summaries) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	fmt.Printf("%-20s %-23s %-8s %-6s %-6s %-5s %s\n",
		"Habit", "Window", "Streak", "Best", "Done", "%", "Status")
	for _, hs := range summaries {
		window := fmt.Sprintf("%s..%s", hs.Habit.StartDate, hs.Habit.EndDate)
		fmt.Printf("%-20s %-23s %-8d %-6d %-6d %-5d %s\n",
			hs.Habit.Name, window,
			hs.Summary.CurrentStreak, hs.Summary.BestStreak,
			hs.Summary.TotalCompleted, hs.Summary.CompletionPercentage,
			hs.Summary.StatusMessage)
	}

	return nil
}
