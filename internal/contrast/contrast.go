// Package contrast computes WCAG 2.0 relative luminance and contrast ratios
// for hex colour codes.
package contrast

import (
	"math"
	"strconv"
	"strings"
)

// MinimumAA is the WCAG AA contrast threshold for normal text.
const MinimumAA = 4.5

// RGB holds 8-bit colour channels.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a six-digit hex colour with an optional leading '#'.
// Three-digit shorthand is not accepted.
func ParseHex(s string) (RGB, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

func linear(c uint8) float64 {
	v := float64(c) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Luminance returns the relative luminance of c in [0, 1].
func Luminance(c RGB) float64 {
	return 0.2126*linear(c.R) + 0.7152*linear(c.G) + 0.0722*linear(c.B)
}

// Ratio returns the contrast ratio between two hex colours, in [1, 21].
// It returns 0 if either colour cannot be parsed.
func Ratio(a, b string) float64 {
	ca, ok := ParseHex(a)
	if !ok {
		return 0
	}
	cb, ok := ParseHex(b)
	if !ok {
		return 0
	}
	l1, l2 := Luminance(ca), Luminance(cb)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}
