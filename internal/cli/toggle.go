package cli

import (
	"fmt"

	"github.com/julianstephens/habitgrid/internal/dateutil"
)

type ToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day := resolveDay(c.Date)
	if !dateutil.Valid(day) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}

	habit, err := ctx.Tracker.Get(c.Name)
	if err != nil {
		return err
	}

	wasCompleted := habit.Completed(day)
	if err := ctx.Tracker.Toggle(habit.ID, day); err != nil {
		return err
	}

	if wasCompleted {
		fmt.Printf("Unmarked habit %q for %s\n", habit.Name, day)
	} else {
		fmt.Printf("Marked habit %q for %s\n", habit.Name, day)
	}
	return nil
}
