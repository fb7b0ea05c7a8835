package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"stylus-area/internal/config"
	"stylus-area/internal/controllers"
	"stylus-area/internal/logger"
	"stylus-area/internal/platform/x11"
	"stylus-area/internal/services"
	"stylus-area/internal/settings"
	"stylus-area/internal/shutdown"
	"stylus-area/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/ncruces/zenity"
)

// Application wires the settings store, device service, native window and
// the controller into one Fyne window.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.WindowController
	native     *x11.Window
	document   *settings.Document
	shutdown   *shutdown.Manager
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appLogger := logger.NewFromEnv()

	application, err := NewApplication(ctx, appLogger)
	if err != nil {
		fatal(appLogger, err)
	}

	application.Run(ctx)
	appLogger.Info("Main", "application terminated", nil)
}

// fatal reports a startup failure in a native dialog, since no Fyne window
// exists yet, and exits.
func fatal(log logger.Logger, err error) {
	log.Error("Main", err, nil)
	if dlgErr := zenity.Error(err.Error(), zenity.Title(config.AppName), zenity.ErrorIcon); dlgErr != nil {
		log.Warning("Main", "error dialog unavailable", map[string]interface{}{
			"error": dlgErr.Error(),
		})
	}
	os.Exit(1)
}

// NewApplication reads settings, enumerates devices once and builds the
// window. Any failure here is fatal.
func NewApplication(ctx context.Context, appLogger logger.Logger) (*Application, error) {
	appLogger.Info("Main", "application starting", map[string]interface{}{
		"version":    config.AppVersion,
		"go_version": runtime.Version(),
	})

	configDir, err := settings.ResolveConfigDir(os.Getenv, os.UserHomeDir)
	if err != nil {
		return nil, err
	}
	store := settings.NewStore(configDir, appLogger)
	document, err := store.Read()
	if err != nil {
		return nil, err
	}

	deviceService := services.NewDeviceService(services.ExecRunner{}, config.XsetwacomCommand, config.CommandTimeout, appLogger)
	devices, err := deviceService.ListDevices(ctx)
	if errors.Is(err, services.ErrNoDevices) {
		return nil, fmt.Errorf("%w: connect a tablet and start %s again", err, config.AppName)
	}
	if err != nil {
		return nil, err
	}

	native, err := x11.Connect(config.AppName, appLogger)
	if err != nil {
		return nil, fmt.Errorf("%s needs an X11 session: %w", config.AppName, err)
	}

	fyneApp := app.NewWithID(config.AppID)
	window := fyneApp.NewWindow(config.AppName)
	window.SetMaster()
	window.Resize(fyne.NewSize(config.DefaultWidth, config.DefaultHeight))

	view := views.NewMainView(window, devices)
	controller := controllers.NewWindowController(
		views.NewWindow(window, native),
		deviceService,
		store,
		document,
		devices[0],
		appLogger,
	)
	controller.SetView(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: controller,
		native:     native,
		document:   document,
		shutdown:   shutdown.NewManager(appLogger, config.CommandTimeout),
	}
	application.setupWindowEvents()

	appLogger.Info("Main", "application initialized", map[string]interface{}{
		"settings": store.Path(),
		"devices":  len(devices),
	})
	return application, nil
}

// Run shows the window and blocks until it is closed.
func (a *Application) Run(ctx context.Context) {
	a.fyneApp.Lifecycle().SetOnStarted(func() {
		go a.restoreWindowState(ctx)
	})

	a.shutdown.Listen()
	a.window.ShowAndRun()
}

// setupWindowEvents routes every way of closing the window through the
// controller so settings are always written.
func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Main", "window close requested", nil)
		_ = a.controller.Close()
	})

	a.shutdown.Register(shutdown.Func(func() {
		fyne.Do(func() {
			_ = a.controller.Close()
		})
	}))
}

// restoreWindowState waits for the window manager to map the window, then
// applies the saved state on the UI goroutine.
func (a *Application) restoreWindowState(ctx context.Context) {
	waitCtx, cancel := context.WithTimeout(ctx, config.WindowLookupTimeout)
	defer cancel()

	if err := a.native.Wait(waitCtx, config.WindowLookupInterval); err != nil {
		a.logger.Warning("Main", "native window not located", map[string]interface{}{
			"error": err.Error(),
		})
	}

	fyne.Do(func() {
		_ = a.controller.ApplySavedState(a.document.Window())
	})
}
