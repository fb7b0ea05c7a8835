package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLevelFromEnv(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want zerolog.Level
	}{
		{"default", nil, zerolog.InfoLevel},
		{"debug flag", map[string]string{"DEBUG": "1"}, zerolog.DebugLevel},
		{"explicit wins over flag", map[string]string{"DEBUG": "1", "LOG_LEVEL": "error"}, zerolog.ErrorLevel},
		{"warn", map[string]string{"LOG_LEVEL": "WARN"}, zerolog.WarnLevel},
		{"unknown", map[string]string{"LOG_LEVEL": "loud"}, zerolog.InfoLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LevelFromEnv(envOf(tc.env)))
		})
	}
}

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("Settings", "loaded", map[string]interface{}{"path": "/tmp/x"})
	log.Error("Devices", errors.New("boom"), nil)

	out := buf.String()
	require.Contains(t, out, `"component":"Settings"`)
	assert.Contains(t, out, `"path":"/tmp/x"`)
	assert.Contains(t, out, `"error":"boom"`)
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("X", "hidden", nil)
	log.Info("X", "hidden", nil)
	assert.Empty(t, buf.String())

	log.Warning("X", "shown", nil)
	assert.Contains(t, buf.String(), "shown")
}
