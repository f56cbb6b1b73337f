package cli

import (
	"errors"

	internalApp "github.com/felixgeelhaar/minutes/internal/app"
	"github.com/felixgeelhaar/minutes/internal/meetings/application"
	"github.com/felixgeelhaar/minutes/pkg/config"
	"github.com/felixgeelhaar/minutes/pkg/observability"
)

// App holds the CLI application dependencies.
type App struct {
	Config *config.Config

	Meetings    *application.MeetingService
	Attendees   *application.AttendeeService
	Memberships *application.MembershipService
	Health      *application.HealthService

	HealthRegistry *observability.HealthRegistry
}

// NewApp creates a new CLI application with the provided services.
func NewApp(
	cfg *config.Config,
	meetings *application.MeetingService,
	attendees *application.AttendeeService,
	memberships *application.MembershipService,
	health *application.HealthService,
	registry *observability.HealthRegistry,
) *App {
	return &App{
		Config:         cfg,
		Meetings:       meetings,
		Attendees:      attendees,
		Memberships:    memberships,
		Health:         health,
		HealthRegistry: registry,
	}
}

var (
	// app is the global CLI application instance
	app *App
	// initErr is why app could not be built, typically a missing store setting.
	initErr error
)

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
	if a != nil {
		initErr = nil
	}
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}

// SetInitError records why the application could not be built.
func SetInitError(err error) {
	initErr = err
}

// RequireApp returns the application or the error that prevented building it.
func RequireApp() (*App, error) {
	if app != nil {
		return app, nil
	}
	if initErr != nil {
		return nil, initErr
	}
	return nil, errors.New("store connection is not configured")
}

// FromContainer creates a CLI application backed by the container's services.
func FromContainer(c *internalApp.Container) *App {
	return NewApp(c.Config, c.Meetings, c.Attendees, c.Memberships, c.Health, c.HealthRegistry)
}
