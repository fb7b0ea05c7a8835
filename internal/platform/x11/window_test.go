package x11

import (
	"context"
	"testing"
	"time"

	"stylus-area/internal/logger"
	"stylus-area/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectWithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")

	_, err := Connect("Stylus Area", logger.Nop())
	assert.Error(t, err)
}

// Runs only inside an X session; the test process owns no window, so the
// lookup must time out with ErrWindowNotFound.
func TestWaitTimesOutWithoutWindow(t *testing.T) {
	w, err := Connect("no window has this title 9f3c", logger.Nop())
	if err != nil {
		t.Skipf("no X server: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	err = w.Wait(ctx, 20*time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWindowNotFound)

	_, err = w.Geometry()
	assert.ErrorIs(t, err, ErrWindowNotFound)
	assert.ErrorIs(t, w.SetGeometry(models.Geometry{Width: 10, Height: 10}), ErrWindowNotFound)
}
