package cli

import (
	"github.com/felixgeelhaar/dayplan/internal/timetable/application/commands"
	"github.com/felixgeelhaar/dayplan/internal/timetable/application/queries"
)

// App holds the CLI application dependencies.
type App struct {
	// Command handlers
	CreateTaskHandler   *commands.CreateTaskHandler
	CompleteTaskHandler *commands.CompleteTaskHandler
	DeleteTaskHandler   *commands.DeleteTaskHandler
	PlanDayHandler      *commands.PlanDayHandler
	MoveBlockHandler    *commands.MoveBlockHandler
	AddBlockHandler     *commands.AddBlockHandler
	RemoveBlockHandler  *commands.RemoveBlockHandler
	AddExceptionHandler *commands.AddExceptionHandler

	// Query handlers
	ListTasksHandler    *queries.ListTasksHandler
	GetTimetableHandler *queries.GetTimetableHandler
	FreeSlotsHandler    *queries.FreeSlotsHandler
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
