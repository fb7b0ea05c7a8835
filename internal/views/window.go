package views

import (
	"stylus-area/internal/models"

	"fyne.io/fyne/v2"
)

// NativeHandle manipulates the window at the windowing-system level, where
// position and opacity are reachable. Geometries are client-area rectangles
// in root-window coordinates for both reading and writing.
type NativeHandle interface {
	Geometry() (models.Geometry, error)
	SetGeometry(models.Geometry) error
	SetOpacity(float64) error
	Close()
}

// Window pairs the toolkit window with its native handle so the controller
// sees one object it owns for the window's lifetime.
type Window struct {
	window fyne.Window
	native NativeHandle
}

func NewWindow(window fyne.Window, native NativeHandle) *Window {
	return &Window{window: window, native: native}
}

func (w *Window) Geometry() (models.Geometry, error) {
	return w.native.Geometry()
}

func (w *Window) SetGeometry(g models.Geometry) error {
	return w.native.SetGeometry(g)
}

func (w *Window) SetOpacity(opacity float64) error {
	return w.native.SetOpacity(opacity)
}

// Destroy releases the native handle and closes the toolkit window. Closing
// the master window ends the event loop.
func (w *Window) Destroy() {
	w.native.Close()
	w.window.Close()
}
