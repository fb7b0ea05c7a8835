package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeometry(t *testing.T) {
	g, err := ParseGeometry("800x600+100+50")
	require.NoError(t, err)
	assert.Equal(t, Geometry{Width: 800, Height: 600, X: 100, Y: 50}, g)
	assert.Equal(t, "800x600+100+50", g.String())
}

func TestParseGeometryNegativeOffsets(t *testing.T) {
	g, err := ParseGeometry("640x400+-12+-3")
	require.NoError(t, err)
	assert.Equal(t, -12, g.X)
	assert.Equal(t, -3, g.Y)
	assert.Equal(t, "640x400+-12+-3", g.String())
}

func TestParseGeometryRejectsOtherShapes(t *testing.T) {
	for _, s := range []string{
		"",
		"800x600",
		"800x600+1",
		"800x600+1+2+3",
		"800-600+1+2",
		"800x600-1+2",
		"axb+1+2",
		"0x600+1+2",
	} {
		_, err := ParseGeometry(s)
		assert.ErrorIs(t, err, ErrInvalidGeometry, s)
	}
}

func TestWithAspectRatio(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"800x600+100+50", "800x500+100+50"},
		{"801x600+0+0", "801x501+0+0"},
		// 2.5 and 7.5 round to even.
		{"4x3+0+0", "4x2+0+0"},
		{"12x3+0+0", "12x8+0+0"},
		{"1x1+5+5", "1x1+5+5"},
	}
	for _, tc := range cases {
		g, err := ParseGeometry(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, g.WithAspectRatio(1.6).String(), tc.in)
	}
}

func TestWithAspectRatioIsStable(t *testing.T) {
	for width := 1; width <= 4000; width += 7 {
		g := Geometry{Width: width, Height: 999, X: 3, Y: 4}
		once := g.WithAspectRatio(1.6)
		twice := once.WithAspectRatio(1.6)
		assert.Equal(t, once, twice)
		assert.Equal(t, width, twice.Width)
		assert.Equal(t, 3, twice.X)
		assert.Equal(t, 4, twice.Y)
	}
}
