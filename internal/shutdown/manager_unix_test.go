//go:build unix

package shutdown

import (
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"stylus-area/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenHandlesSIGTERM(t *testing.T) {
	m := NewManager(logger.Nop(), time.Second)

	var calls atomic.Int32
	m.Register(Func(func() { calls.Add(1) }))
	m.Listen()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	m.Shutdown()
	assert.Equal(t, int32(1), calls.Load())
}
