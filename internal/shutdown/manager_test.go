package shutdown

import (
	"sync/atomic"
	"testing"
	"time"

	"stylus-area/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestShutdownRunsComponentsOnceInReverseOrder(t *testing.T) {
	m := NewManager(logger.Nop(), time.Second)

	var order []string
	m.Register(Func(func() { order = append(order, "first") }))
	m.Register(Func(func() { order = append(order, "second") }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, order)
}

func TestShutdownTimesOutSlowComponent(t *testing.T) {
	m := NewManager(logger.Nop(), 20*time.Millisecond)
	release := make(chan struct{})
	defer close(release)

	var ran atomic.Bool
	m.Register(Func(func() { ran.Store(true) }))
	m.Register(Func(func() { <-release }))

	start := time.Now()
	m.Shutdown()
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, ran.Load())
}
