package constants

const (
	AppName           = "habitgrid"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/habitgrid/habitgrid.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MaxHabitDays is the maximum inclusive length of a habit window in days.
	MaxHabitDays = 90

	// MinGridDays and MaxGridDays bound the rendered day grid.
	MinGridDays = 21
	MaxGridDays = MaxHabitDays

	// DefaultHabitDays is the window length used when no end date is given.
	DefaultHabitDays = MinGridDays

	// GridWeekWidth is the number of day cells rendered per grid row.
	GridWeekWidth = 7
)
