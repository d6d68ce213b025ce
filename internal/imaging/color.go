package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// namedColors are the color names accepted by ParseColor besides numeric forms.
var namedColors = map[string]color.NRGBA{
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 128, 0, 255},
	"lime":        {0, 255, 0, 255},
	"blue":        {0, 0, 255, 255},
	"magenta":     {255, 0, 255, 255},
	"fuchsia":     {255, 0, 255, 255},
	"cyan":        {0, 255, 255, 255},
	"transparent": {0, 0, 0, 0},
}

// ParseColor parses a background color given on the command line.
//
// Accepted forms:
//   - "#RGB" and "#RRGGBB" hex (the leading '#' is optional)
//   - "#RRGGBBAA" hex with alpha
//   - "r,g,b" or "r,g,b,a" decimal components (0-255)
//   - a small set of names: black, white, red, green, lime, blue, magenta,
//     fuchsia, cyan, transparent
//
// Colors without an explicit alpha are fully opaque.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty color string")
	}

	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}

	if strings.Contains(s, ",") {
		return parseColorTuple(s)
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 8 {
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return color.NRGBA{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8), A: uint8(val)}, nil
	}

	if len(hex) != 3 && len(hex) != 6 {
		return nil, fmt.Errorf("invalid color %q: want 3, 6 or 8 hex digits", s)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

func parseColorTuple(s string) (color.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("invalid color %q: want 3 or 4 components, got %d", s, len(parts))
	}

	c := [4]uint8{3: 255}
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: component %d: %w", s, i, err)
		}
		c[i] = uint8(v)
	}
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}

// HexString formats a color as "#RRGGBB", or "#RRGGBBAA" when it is not fully
// opaque. Components are non-premultiplied.
func HexString(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// BackgroundAt returns the color at the top-left pixel of an image, the
// background FindTrimmedBoundingBox assumes when none is given. It returns nil
// for images with no pixels.
func BackgroundAt(img image.Image) color.Color {
	b := img.Bounds()
	if b.Empty() {
		return nil
	}
	return img.At(b.Min.X, b.Min.Y)
}
