package cli

import (
	"github.com/julianstephens/habitgrid/internal/dateutil"
	"github.com/julianstephens/habitgrid/internal/storage"
	"github.com/julianstephens/habitgrid/internal/tracker"
)

// Context carries the shared dependencies into every command.
type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
}

// resolveDay returns the explicit day flag when set, today otherwise.
func resolveDay(date string) string {
	if date == "" {
		return dateutil.Today()
	}
	return date
}
