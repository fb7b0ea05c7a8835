package settings

import (
	"io"

	"stylus-area/internal/config"
	"stylus-area/internal/models"

	"gopkg.in/ini.v1"
)

// Document is a parsed settings file. Sections other than the window
// section are carried through a write untouched.
type Document struct {
	file *ini.File
}

func NewDocument() *Document {
	return &Document{file: ini.Empty(loadOptions)}
}

// Window extracts the saved window state.
func (d *Document) Window() models.WindowSettings {
	if !d.file.HasSection(config.SettingsSection) {
		return models.EmptyWindowSettings()
	}
	sec := d.file.Section(config.SettingsSection)
	return models.NewWindowSettings(
		sec.Key(config.KeyGeometry).String(),
		sec.Key(config.KeyDevice).String(),
	)
}

// SetWindow replaces the window section with the given state.
func (d *Document) SetWindow(ws models.WindowSettings) {
	geometry, _ := ws.Geometry()
	device, _ := ws.Device()

	d.file.DeleteSection(config.SettingsSection)
	sec := d.file.Section(config.SettingsSection)
	sec.Key(config.KeyGeometry).SetValue(geometry)
	sec.Key(config.KeyDevice).SetValue(device)
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.file.WriteTo(w)
}
