package components

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	MapLabel         = "Map area to device"
	AspectLabel      = "Match Device Aspect Ratio (16:10)"
	TransparentLabel = "Transparent"
)

// Toolbar holds the three window actions and the device picker.
type Toolbar struct {
	container         *fyne.Container
	mapButton         *widget.Button
	aspectButton      *widget.Button
	transparentButton *widget.Button
	deviceSelect      *widget.Select

	// Event handlers
	mapHandler          func()
	aspectHandler       func()
	transparencyHandler func()
	deviceChangeHandler func(string)
}

// NewToolbar creates the toolbar with devices as picker options. The first
// device starts selected.
func NewToolbar(devices []string) *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents(devices)
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

func (t *Toolbar) createComponents(devices []string) {
	t.mapButton = widget.NewButton(MapLabel, nil)
	t.mapButton.Importance = widget.HighImportance

	t.aspectButton = widget.NewButton(AspectLabel, nil)
	t.transparentButton = widget.NewButton(TransparentLabel, nil)

	t.deviceSelect = widget.NewSelect(slices.Clone(devices), nil)
	t.deviceSelect.PlaceHolder = "Select a device"
	if len(devices) > 0 {
		t.deviceSelect.SetSelected(devices[0])
	}
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewVBox(
		t.mapButton,
		t.aspectButton,
		t.transparentButton,
		t.deviceSelect,
	)
}

func (t *Toolbar) setupEventHandlers() {
	t.mapButton.OnTapped = func() {
		if t.mapHandler != nil {
			t.mapHandler()
		}
	}
	t.aspectButton.OnTapped = func() {
		if t.aspectHandler != nil {
			t.aspectHandler()
		}
	}
	t.transparentButton.OnTapped = func() {
		if t.transparencyHandler != nil {
			t.transparencyHandler()
		}
	}
	t.deviceSelect.OnChanged = func(device string) {
		if t.deviceChangeHandler != nil {
			t.deviceChangeHandler(device)
		}
	}
}

func (t *Toolbar) SetMapHandler(handler func()) {
	t.mapHandler = handler
}

func (t *Toolbar) SetAspectHandler(handler func()) {
	t.aspectHandler = handler
}

func (t *Toolbar) SetTransparencyHandler(handler func()) {
	t.transparencyHandler = handler
}

func (t *Toolbar) SetDeviceChangeHandler(handler func(string)) {
	t.deviceChangeHandler = handler
}

// SetSelectedDevice selects device, adding it to the options first when the
// current enumeration did not report it.
func (t *Toolbar) SetSelectedDevice(device string) {
	if !slices.Contains(t.deviceSelect.Options, device) {
		t.deviceSelect.Options = append(t.deviceSelect.Options, device)
		t.deviceSelect.Refresh()
	}
	t.deviceSelect.SetSelected(device)
}

func (t *Toolbar) SelectedDevice() string {
	return t.deviceSelect.Selected
}

func (t *Toolbar) Devices() []string {
	return slices.Clone(t.deviceSelect.Options)
}

// SetTransparencyApplied disables the transparency action; opacity cannot
// be restored while the window is open.
func (t *Toolbar) SetTransparencyApplied() {
	t.transparentButton.Disable()
}

func (t *Toolbar) TransparencyEnabled() bool {
	return !t.transparentButton.Disabled()
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

// Buttons exposes the action buttons in display order.
func (t *Toolbar) Buttons() []*widget.Button {
	return []*widget.Button{t.mapButton, t.aspectButton, t.transparentButton}
}
