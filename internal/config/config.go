package config

import "time"

const (
	// Window title; also the fallback key when locating the X11 window.
	AppName    = "Stylus Area"
	AppID      = "io.github.stylus-area"
	AppVersion = "1.0.0"

	// Directory under the config home. Shared with earlier releases so
	// existing settings keep loading.
	ConfigDirName    = "py-stylus-ui"
	SettingsFileName = "settings.ini"

	SettingsSection = "pystylusarea"
	KeyGeometry     = "geometry"
	KeyDevice       = "device"

	// 16:10
	AspectRatio = 1.6

	TransparentOpacity = 0.3

	XsetwacomCommand = "xsetwacom"
	CommandTimeout   = 5 * time.Second

	// How long to wait for the window manager to list our window.
	WindowLookupTimeout  = 3 * time.Second
	WindowLookupInterval = 50 * time.Millisecond

	DefaultWidth  = 320
	DefaultHeight = 200
)
