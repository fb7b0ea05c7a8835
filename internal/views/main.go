package views

import (
	"stylus-area/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// MainView is the single application window's content.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	statusBar     *components.StatusBar
}

// NewMainView builds the content for window. devices must be the enumerated
// device names; the first one starts selected.
func NewMainView(window fyne.Window, devices []string) *MainView {
	view := &MainView{
		window:    window,
		toolbar:   components.NewToolbar(devices),
		statusBar: components.NewStatusBar(),
	}

	view.mainContainer = container.NewBorder(
		nil,
		view.statusBar.GetContainer(),
		nil,
		nil,
		view.toolbar.GetContainer(),
	)
	window.SetContent(view.mainContainer)

	return view
}

// Event handler setters - called by controller

func (mv *MainView) SetMapHandler(handler func()) {
	mv.toolbar.SetMapHandler(handler)
}

func (mv *MainView) SetAspectHandler(handler func()) {
	mv.toolbar.SetAspectHandler(handler)
}

func (mv *MainView) SetTransparencyHandler(handler func()) {
	mv.toolbar.SetTransparencyHandler(handler)
}

func (mv *MainView) SetDeviceChangeHandler(handler func(string)) {
	mv.toolbar.SetDeviceChangeHandler(handler)
}

// UI update methods - called by controller

func (mv *MainView) SetSelectedDevice(device string) {
	mv.toolbar.SetSelectedDevice(device)
}

func (mv *MainView) SelectedDevice() string {
	return mv.toolbar.SelectedDevice()
}

func (mv *MainView) SetTransparencyApplied() {
	mv.toolbar.SetTransparencyApplied()
}

func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) Status() string {
	return mv.statusBar.GetStatus()
}

// ShowError displays an error dialog over the main window.
func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

func (mv *MainView) Toolbar() *components.Toolbar {
	return mv.toolbar
}

func (mv *MainView) Show() {
	mv.window.Show()
}
