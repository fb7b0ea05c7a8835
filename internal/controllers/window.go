package controllers

import (
	"context"
	"errors"
	"fmt"

	"stylus-area/internal/config"
	"stylus-area/internal/logger"
	"stylus-area/internal/models"
	"stylus-area/internal/settings"
)

var ErrWindowClosed = errors.New("window is closed")

// State is the window lifecycle. Closed is terminal.
type State int

const (
	StateOpen State = iota
	StateClosed
)

func (s State) String() string {
	if s == StateClosed {
		return "closed"
	}
	return "open"
}

// Window is the controller's owned handle on the application window.
// Geometry and SetGeometry both use the client area's top-left corner in
// root-window coordinates, so a value read back can be applied unchanged.
type Window interface {
	Geometry() (models.Geometry, error)
	SetGeometry(models.Geometry) error
	SetOpacity(float64) error
	Destroy()
}

// View is the part of the UI the controller drives.
type View interface {
	SetMapHandler(func())
	SetAspectHandler(func())
	SetTransparencyHandler(func())
	SetDeviceChangeHandler(func(string))
	SetSelectedDevice(string)
	SetTransparencyApplied()
	UpdateStatus(string)
	ShowError(error)
}

type DeviceMapper interface {
	MapToOutput(ctx context.Context, device, geometry string) error
}

type SettingsWriter interface {
	Write(doc *settings.Document) error
}

// WindowController owns the window geometry and the selected device while
// the window is open. Every method must be called from the UI goroutine.
type WindowController struct {
	window Window
	mapper DeviceMapper
	store  SettingsWriter
	doc    *settings.Document
	logger logger.Logger
	view   View

	device string
	state  State
}

// NewWindowController starts in StateOpen with defaultDevice selected.
func NewWindowController(
	window Window,
	mapper DeviceMapper,
	store SettingsWriter,
	doc *settings.Document,
	defaultDevice string,
	log logger.Logger,
) *WindowController {
	return &WindowController{
		window: window,
		mapper: mapper,
		store:  store,
		doc:    doc,
		logger: log,
		device: defaultDevice,
		state:  StateOpen,
	}
}

// SetView associates the view with this controller and routes its events.
func (c *WindowController) SetView(view View) {
	c.view = view

	view.SetMapHandler(func() {
		_ = c.MapToOutput(context.Background())
	})
	view.SetAspectHandler(func() {
		_ = c.MatchAspectRatio()
	})
	view.SetTransparencyHandler(func() {
		_ = c.SetTransparency()
	})
	view.SetDeviceChangeHandler(c.SelectDevice)
}

func (c *WindowController) State() State {
	return c.state
}

func (c *WindowController) Device() string {
	return c.device
}

// SelectDevice records the user's device choice.
func (c *WindowController) SelectDevice(device string) {
	if c.state == StateClosed || device == c.device {
		return
	}
	c.device = device
	c.logger.Debug("WindowController", "device selected", map[string]interface{}{
		"device": device,
	})
}

// ApplySavedState restores geometry and device from ws. Values are applied
// as stored; a device missing from the current enumeration is still
// selected. An unusable geometry is reported and skipped.
func (c *WindowController) ApplySavedState(ws models.WindowSettings) error {
	if c.state == StateClosed {
		return ErrWindowClosed
	}
	if !ws.HasSavedState() {
		c.logger.Debug("WindowController", "no saved state", nil)
		return nil
	}

	var applyErr error
	if raw, ok := ws.Geometry(); ok {
		applyErr = c.applyGeometry(raw)
	}

	if device, ok := ws.Device(); ok {
		c.device = device
		if c.view != nil {
			c.view.SetSelectedDevice(device)
		}
	}

	c.logger.Info("WindowController", "saved state applied", map[string]interface{}{
		"device": c.device,
	})
	if applyErr != nil {
		c.handleError("Restoring window geometry failed", applyErr)
	}
	return applyErr
}

func (c *WindowController) applyGeometry(raw string) error {
	g, err := models.ParseGeometry(raw)
	if err != nil {
		return fmt.Errorf("saved geometry: %w", err)
	}
	if err := c.window.SetGeometry(g); err != nil {
		return fmt.Errorf("apply geometry %s: %w", g, err)
	}
	return nil
}

// MapToOutput binds the selected device's active area to the window's
// current screen rectangle.
func (c *WindowController) MapToOutput(ctx context.Context) error {
	if c.state == StateClosed {
		return ErrWindowClosed
	}

	g, err := c.window.Geometry()
	if err != nil {
		err = fmt.Errorf("read window geometry: %w", err)
		c.handleError("Mapping failed", err)
		return err
	}

	if err := c.mapper.MapToOutput(ctx, c.device, g.String()); err != nil {
		c.handleError("Mapping failed", err)
		return err
	}

	c.setStatus(fmt.Sprintf("Mapped %s to %s", c.device, g))
	return nil
}

// MatchAspectRatio keeps width and position and sets the height so the
// window matches the tablet's 16:10 surface.
func (c *WindowController) MatchAspectRatio() error {
	if c.state == StateClosed {
		return ErrWindowClosed
	}

	current, err := c.window.Geometry()
	if err != nil {
		err = fmt.Errorf("read window geometry: %w", err)
		c.handleError("Aspect ratio change failed", err)
		return err
	}

	// Round-trip through the string form; it is the contract shared with
	// xsetwacom and the settings file.
	g, err := models.ParseGeometry(current.String())
	if err != nil {
		c.handleError("Aspect ratio change failed", err)
		return err
	}

	next := g.WithAspectRatio(config.AspectRatio)
	if err := c.window.SetGeometry(next); err != nil {
		err = fmt.Errorf("apply geometry %s: %w", next, err)
		c.handleError("Aspect ratio change failed", err)
		return err
	}

	c.logger.Debug("WindowController", "aspect ratio matched", map[string]interface{}{
		"from": g.String(),
		"to":   next.String(),
	})
	c.setStatus(fmt.Sprintf("Resized to %s", next))
	return nil
}

// SetTransparency makes the window translucent for the rest of the session.
func (c *WindowController) SetTransparency() error {
	if c.state == StateClosed {
		return ErrWindowClosed
	}

	if err := c.window.SetOpacity(config.TransparentOpacity); err != nil {
		c.handleError("Transparency failed", err)
		return err
	}

	if c.view != nil {
		c.view.SetTransparencyApplied()
	}
	c.setStatus("Window is transparent")
	return nil
}

// Close saves the current geometry and device, then destroys the window.
// Only the first call has any effect. The window is destroyed even when
// saving fails; the write error is returned.
func (c *WindowController) Close() error {
	if c.state == StateClosed {
		return nil
	}
	c.state = StateClosed

	previous := c.doc.Window()
	geometry, _ := previous.Geometry()
	if g, err := c.window.Geometry(); err == nil {
		geometry = g.String()
	} else {
		c.logger.Warning("WindowController", "geometry unavailable at close, keeping saved value", map[string]interface{}{
			"error": err.Error(),
		})
	}

	c.doc.SetWindow(models.NewWindowSettings(geometry, c.device))
	err := c.store.Write(c.doc)
	if err != nil {
		c.logger.Error("WindowController", fmt.Errorf("save settings: %w", err), nil)
	} else {
		c.logger.Info("WindowController", "window state saved", map[string]interface{}{
			"geometry": geometry,
			"device":   c.device,
		})
	}

	c.window.Destroy()
	return err
}

func (c *WindowController) setStatus(status string) {
	if c.view != nil {
		c.view.UpdateStatus(status)
	}
}

// handleError logs err and shows it to the user.
func (c *WindowController) handleError(title string, err error) {
	c.logger.Error("WindowController", err, map[string]interface{}{
		"title": title,
	})
	if c.view != nil {
		c.view.UpdateStatus(title)
		c.view.ShowError(fmt.Errorf("%s: %w", title, err))
	}
}
