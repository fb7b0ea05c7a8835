package settings

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedHome(dir string) func() (string, error) {
	return func() (string, error) { return dir, nil }
}

func TestResolveConfigDirPriority(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"xdg first", map[string]string{"XDG_CONFIG_HOME": "/xdg", "APPDATA": "/appdata"}, "/xdg/py-stylus-ui"},
		{"appdata second", map[string]string{"APPDATA": "/appdata"}, "/appdata/py-stylus-ui"},
		{"home fallback", nil, filepath.Join("/home/u", ".config", "py-stylus-ui")},
		{"empty xdg ignored", map[string]string{"XDG_CONFIG_HOME": ""}, filepath.Join("/home/u", ".config", "py-stylus-ui")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveConfigDir(func(k string) string { return tc.env[k] }, fixedHome("/home/u"))
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tc.want), got)
		})
	}
}

func TestResolveConfigDirWithoutHome(t *testing.T) {
	_, err := ResolveConfigDir(
		func(string) string { return "" },
		func() (string, error) { return "", errors.New("no home") },
	)
	assert.Error(t, err)
}
