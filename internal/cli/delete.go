package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type DeleteCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Tracker.Get(c.Name)
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Printf("Delete habit %q and its history? This cannot be undone. [y/N]: ", habit.Name)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.Tracker.Delete(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q\n", habit.Name)
	return nil
}
