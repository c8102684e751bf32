package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitgrid/internal/cli"
	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/errors"
	"github.com/julianstephens/habitgrid/internal/logger"
	"github.com/julianstephens/habitgrid/internal/storage"
	"github.com/julianstephens/habitgrid/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .json suffix selects the JSON backend, anything else SQLite." default:"~/.config/habitgrid/habitgrid.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize habitgrid storage."`
	Add    cli.AddCmd    `cmd:"" help:"Add a new habit with a bounded date range."`
	List   cli.ListCmd   `cmd:"" help:"List habits with their statistics."`
	Show   cli.ShowCmd   `cmd:"" help:"Show one habit's day grid and statistics."`
	Toggle cli.ToggleCmd `cmd:"" help:"Toggle a habit's completion for a day."`
	Delete cli.DeleteCmd `cmd:"" help:"Delete a habit and its history."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
}

// expandPath resolves a leading ~ against the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with bounded date ranges and a completion grid"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandPath(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:   store,
		Tracker: tracker.New(store),
	}

	errors.Fatal(ctx.Run(appCtx))
}
