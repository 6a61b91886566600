// Package colormath holds the small, pure color utilities used by flag
// extraction and palette building. Every derived channel is clamped to [0,255].
package colormath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned by ParseHex for malformed color strings.
var ErrInvalidHex = errors.New("invalid hex color")

// RGB is an opaque 8-bit color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Sentinel is what HexToRGB returns for input it cannot parse.
var Sentinel = RGB{}

// New builds a color from integer channels, clamping each to [0,255].
func New(r, g, b int) RGB {
	return RGB{R: clampChannel(float64(r)), G: clampChannel(float64(g)), B: clampChannel(float64(b))}
}

// ParseHex parses "#RRGGBB", "RRGGBB", "#RGB" or "RGB".
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Sentinel, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Sentinel, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// HexToRGB is ParseHex without the error; invalid input yields Sentinel.
func HexToRGB(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		return Sentinel
	}
	return c
}

// MustHex parses a hex literal and panics on failure. Only for package-level tables.
func MustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as uppercase "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBToHex is the free-function form of Hex.
func RGBToHex(c RGB) string {
	return c.Hex()
}

func (c RGB) String() string {
	return c.Hex()
}

// MarshalText encodes the color as its hex string.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a hex string.
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
