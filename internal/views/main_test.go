package views

import (
	"errors"
	"testing"

	"stylus-area/internal/models"
	"stylus-area/internal/views/components"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var devices = []string{"Pen stylus", "Pen eraser", "Pad pad"}

func TestMainViewDefaultsToFirstDevice(t *testing.T) {
	a := test.NewTempApp(t)
	view := NewMainView(a.NewWindow("t"), devices)

	assert.Equal(t, "Pen stylus", view.SelectedDevice())
	assert.Equal(t, devices, view.Toolbar().Devices())
}

func TestMainViewRoutesButtons(t *testing.T) {
	a := test.NewTempApp(t)
	view := NewMainView(a.NewWindow("t"), devices)

	var got []string
	view.SetMapHandler(func() { got = append(got, "map") })
	view.SetAspectHandler(func() { got = append(got, "aspect") })
	view.SetTransparencyHandler(func() { got = append(got, "transparent") })

	buttons := view.Toolbar().Buttons()
	require.Len(t, buttons, 3)
	assert.Equal(t, components.MapLabel, buttons[0].Text)
	for _, b := range buttons {
		test.Tap(b)
	}
	assert.Equal(t, []string{"map", "aspect", "transparent"}, got)
}

func TestMainViewAcceptsUnknownSavedDevice(t *testing.T) {
	a := test.NewTempApp(t)
	view := NewMainView(a.NewWindow("t"), devices)

	var changed string
	view.SetDeviceChangeHandler(func(d string) { changed = d })

	view.SetSelectedDevice("Unplugged tablet")
	assert.Equal(t, "Unplugged tablet", view.SelectedDevice())
	assert.Equal(t, "Unplugged tablet", changed)
	assert.Contains(t, view.Toolbar().Devices(), "Unplugged tablet")
}

func TestMainViewTransparencyDisablesButton(t *testing.T) {
	a := test.NewTempApp(t)
	view := NewMainView(a.NewWindow("t"), devices)

	assert.True(t, view.Toolbar().TransparencyEnabled())
	view.SetTransparencyApplied()
	assert.False(t, view.Toolbar().TransparencyEnabled())
}

func TestMainViewStatus(t *testing.T) {
	a := test.NewTempApp(t)
	view := NewMainView(a.NewWindow("t"), devices)

	assert.Equal(t, "Ready", view.Status())
	view.UpdateStatus("Mapped")
	assert.Equal(t, "Mapped", view.Status())
}

type fakeNative struct {
	geometry models.Geometry
	opacity  float64
	closed   bool
}

func (f *fakeNative) Geometry() (models.Geometry, error) { return f.geometry, nil }
func (f *fakeNative) SetGeometry(g models.Geometry) error {
	if g.Width == 0 {
		return errors.New("zero width")
	}
	f.geometry = g
	return nil
}
func (f *fakeNative) SetOpacity(o float64) error { f.opacity = o; return nil }
func (f *fakeNative) Close() { f.closed = true }

func TestWindowDelegatesAndDestroys(t *testing.T) {
	a := test.NewTempApp(t)
	fw := a.NewWindow("t")
	native := &fakeNative{}
	w := NewWindow(fw, native)

	g := models.Geometry{Width: 800, Height: 500, X: 10, Y: 20}
	require.NoError(t, w.SetGeometry(g))
	got, err := w.Geometry()
	require.NoError(t, err)
	assert.Equal(t, g, got)

	require.NoError(t, w.SetOpacity(0.3))
	assert.InDelta(t, 0.3, native.opacity, 1e-9)

	w.Destroy()
	assert.True(t, native.closed)
}
