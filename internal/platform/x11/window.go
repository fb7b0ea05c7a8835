// Package x11 reads and changes the geometry and opacity of the application's
// own top-level window through the window manager's EWMH hints.
package x11

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	"stylus-area/internal/logger"
	"stylus-area/internal/models"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"
)

var ErrWindowNotFound = errors.New("application window not found")

// windowManager is the set of requests that change a managed window.
type windowManager interface {
	supportsMoveResize() bool
	moveResize(win xproto.Window, x, y, width, height, gravity int) error
	frameExtents(win xproto.Window) (*ewmh.FrameExtents, error)
	configure(win xproto.Window, x, y, width, height int)
	setOpacity(win xproto.Window, opacity float64) error
	sync()
}

type ewmhClient struct {
	xu *xgbutil.XUtil
}

func (c ewmhClient) supportsMoveResize() bool {
	supported, err := ewmh.SupportedGet(c.xu)
	if err != nil {
		return false
	}
	return slices.Contains(supported, "_NET_MOVERESIZE_WINDOW")
}

// Source indication 2: direct user action.
func (c ewmhClient) moveResize(win xproto.Window, x, y, width, height, gravity int) error {
	return ewmh.MoveresizeWindowExtra(c.xu, win, x, y, width, height, gravity, 2, true, true)
}

func (c ewmhClient) frameExtents(win xproto.Window) (*ewmh.FrameExtents, error) {
	return ewmh.FrameExtentsGet(c.xu, win)
}

func (c ewmhClient) configure(win xproto.Window, x, y, width, height int) {
	xwindow.New(c.xu, win).MoveResize(x, y, width, height)
}

func (c ewmhClient) setOpacity(win xproto.Window, opacity float64) error {
	return ewmh.WmWindowOpacitySet(c.xu, win, opacity)
}

func (c ewmhClient) sync() {
	c.xu.Sync()
}

// Window is a handle on one managed client window, located by process id
// or, failing that, by title.
type Window struct {
	xu     *xgbutil.XUtil
	wm     windowManager
	title  string
	pid    uint
	logger logger.Logger

	mu  sync.Mutex
	win xproto.Window
}

// Connect opens a connection to the X server named by $DISPLAY.
func Connect(title string, log logger.Logger) (*Window, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	return &Window{
		xu:     xu,
		wm:     ewmhClient{xu: xu},
		title:  title,
		pid:    uint(os.Getpid()),
		logger: log,
	}, nil
}

// Wait polls the window manager's client list until our window shows up.
func (w *Window) Wait(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := w.resolve(); err == nil {
			return nil
		} else if !errors.Is(err, ErrWindowNotFound) {
			return err
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrWindowNotFound, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (w *Window) resolve() (xproto.Window, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.win != 0 {
		return w.win, nil
	}

	clients, err := ewmh.ClientListGet(w.xu)
	if err != nil {
		return 0, fmt.Errorf("%w: read client list: %v", ErrWindowNotFound, err)
	}

	var byTitle xproto.Window
	for _, client := range clients {
		if pid, err := ewmh.WmPidGet(w.xu, client); err == nil && pid == w.pid {
			w.win = client
			break
		}
		if byTitle == 0 {
			if name, err := ewmh.WmNameGet(w.xu, client); err == nil && name == w.title {
				byTitle = client
			}
		}
	}
	if w.win == 0 {
		w.win = byTitle
	}
	if w.win == 0 {
		return 0, ErrWindowNotFound
	}

	w.logger.Debug("X11Window", "window located", map[string]interface{}{
		"window": uint32(w.win),
		"pid":    w.pid,
	})
	return w.win, nil
}

// Geometry reports the client area in root-window coordinates.
func (w *Window) Geometry() (models.Geometry, error) {
	win, err := w.resolve()
	if err != nil {
		return models.Geometry{}, err
	}

	rect, err := xwindow.RawGeometry(w.xu, xproto.Drawable(win))
	if err != nil {
		return models.Geometry{}, fmt.Errorf("query window geometry: %w", err)
	}

	origin, err := xproto.TranslateCoordinates(w.xu.Conn(), win, w.xu.RootWin(), 0, 0).Reply()
	if err != nil {
		return models.Geometry{}, fmt.Errorf("translate window origin: %w", err)
	}

	return models.Geometry{
		Width:  rect.Width(),
		Height: rect.Height(),
		X:      int(origin.DstX),
		Y:      int(origin.DstY),
	}, nil
}

// SetGeometry moves and resizes the window so that its client area, not
// the decorated frame, lands at g. Static gravity makes the window manager
// read X/Y as the client corner, the same point Geometry reports. Managers
// without _NET_MOVERESIZE_WINDOW get a plain configure request, shifted by
// the frame extents since that request positions the frame.
func (w *Window) SetGeometry(g models.Geometry) error {
	win, err := w.resolve()
	if err != nil {
		return err
	}

	if w.wm.supportsMoveResize() {
		if err := w.wm.moveResize(win, g.X, g.Y, g.Width, g.Height, xproto.GravityStatic); err != nil {
			return fmt.Errorf("move/resize window: %w", err)
		}
		w.wm.sync()
		return nil
	}

	x, y := g.X, g.Y
	if extents, err := w.wm.frameExtents(win); err == nil {
		x -= extents.Left
		y -= extents.Top
	} else {
		w.logger.Debug("X11Window", "frame extents unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	}
	w.logger.Debug("X11Window", "EWMH move/resize unsupported, configuring directly", nil)
	w.wm.configure(win, x, y, g.Width, g.Height)
	w.wm.sync()
	return nil
}

// SetOpacity sets _NET_WM_WINDOW_OPACITY; a compositor is needed for it to
// have a visible effect.
func (w *Window) SetOpacity(opacity float64) error {
	win, err := w.resolve()
	if err != nil {
		return err
	}
	if err := w.wm.setOpacity(win, opacity); err != nil {
		return fmt.Errorf("set window opacity: %w", err)
	}
	w.wm.sync()
	return nil
}

func (w *Window) Close() {
	w.xu.Conn().Close()
}
