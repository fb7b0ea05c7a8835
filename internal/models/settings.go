package models

// WindowSettings is the persisted window state. A value read from disk may
// lack the section entirely or any of its keys; the accessors report those
// cases as absent instead of returning zero values.
type WindowSettings struct {
	present  bool
	geometry string
	device   string
}

// NewWindowSettings builds settings captured from a live window.
func NewWindowSettings(geometry, device string) WindowSettings {
	return WindowSettings{present: true, geometry: geometry, device: device}
}

// EmptyWindowSettings stands for a file without the window section.
func EmptyWindowSettings() WindowSettings {
	return WindowSettings{}
}

func (s WindowSettings) HasSavedState() bool {
	return s.present
}

// Geometry returns the saved geometry string, false when absent or empty.
func (s WindowSettings) Geometry() (string, bool) {
	return s.geometry, s.present && s.geometry != ""
}

// Device returns the saved device name, false when absent or empty.
func (s WindowSettings) Device() (string, bool) {
	return s.device, s.present && s.device != ""
}
