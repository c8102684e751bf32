package cli

import (
	"fmt"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/dateutil"
)

type AddCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Start string `help:"Start date in YYYY-MM-DD format (default: today)." default:""`
	End   string `help:"End date in YYYY-MM-DD format (default: start + 20 days)." default:""`
}

func (c *AddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	start := c.Start
	if start == "" {
		start = dateutil.Today()
	} else if !dateutil.Valid(start) {
		return fmt.Errorf("invalid start date: %s (expected YYYY-MM-DD)", start)
	}

	end := c.End
	if end == "" {
		end = dateutil.AddDays(start, constants.DefaultHabitDays-1)
	} else if !dateutil.Valid(end) {
		return fmt.Errorf("invalid end date: %s (expected YYYY-MM-DD)", end)
	}

	habit, err := ctx.Tracker.Create(c.Name, start, end)
	if err != nil {
		return err
	}

	days := dateutil.DaysBetween(habit.StartDate, habit.EndDate) + 1
	fmt.Printf("Added habit %q (%s to %s, %d days)\n", habit.Name, habit.StartDate, habit.EndDate, days)
	return nil
}
