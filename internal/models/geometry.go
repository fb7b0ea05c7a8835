package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidGeometry = errors.New("invalid geometry")

// Geometry is a window rectangle in root-window pixels, written the way X11
// toolkits do: WIDTHxHEIGHT+X+Y.
type Geometry struct {
	Width  int
	Height int
	X      int
	Y      int
}

// ParseGeometry splits a WIDTHxHEIGHT+X+Y string. Negative offsets appear as
// "+-N". Any other shape is rejected.
func ParseGeometry(s string) (Geometry, error) {
	parts := strings.Split(s, "+")
	if len(parts) != 3 {
		return Geometry{}, fmt.Errorf("%w %q: want WIDTHxHEIGHT+X+Y", ErrInvalidGeometry, s)
	}

	width, height, ok := strings.Cut(parts[0], "x")
	if !ok {
		return Geometry{}, fmt.Errorf("%w %q: missing size separator", ErrInvalidGeometry, s)
	}

	var g Geometry
	fields := []struct {
		name string
		raw  string
		dst  *int
	}{
		{"width", width, &g.Width},
		{"height", height, &g.Height},
		{"x offset", parts[1], &g.X},
		{"y offset", parts[2], &g.Y},
	}
	for _, f := range fields {
		v, err := strconv.Atoi(f.raw)
		if err != nil {
			return Geometry{}, fmt.Errorf("%w %q: bad %s", ErrInvalidGeometry, s, f.name)
		}
		*f.dst = v
	}

	if g.Width <= 0 || g.Height <= 0 {
		return Geometry{}, fmt.Errorf("%w %q: size must be positive", ErrInvalidGeometry, s)
	}
	return g, nil
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", g.Width, g.Height, g.X, g.Y)
}

// WithAspectRatio keeps width and offsets and derives the height from
// width/ratio, rounding halves to even.
func (g Geometry) WithAspectRatio(ratio float64) Geometry {
	g.Height = int(math.RoundToEven(float64(g.Width) / ratio))
	if g.Height < 1 {
		g.Height = 1
	}
	return g
}
