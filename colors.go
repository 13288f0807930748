package main

import (
	"image/color"
	"strconv"
	"strings"
)

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"navy":    "#000080",
	"yellow":  "#ffff00",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"magenta": "#ff00ff",
	"cyan":    "#00ffff",
	"teal":    "#008080",
	"gray":    "#808080",
	"grey":    "#808080",
	"brown":   "#a52a2a",
	"pink":    "#ffc0cb",
}

const fallbackColor = "#808080"

// colorHex resolves a color name or #rgb/#rrggbb string to #rrggbb.
// Anything unrecognised becomes gray.
func colorHex(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if hex, ok := namedColors[name]; ok {
		return hex
	}
	if !strings.HasPrefix(name, "#") {
		return fallbackColor
	}
	digits := name[1:]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) != 6 {
		return fallbackColor
	}
	if _, err := strconv.ParseUint(digits, 16, 32); err != nil {
		return fallbackColor
	}
	return "#" + digits
}

func colorRGBA(name string) color.RGBA {
	v, _ := strconv.ParseUint(colorHex(name)[1:], 16, 32)
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func portColor(side Side) string {
	if side == SideInput {
		return "red"
	}
	return "green"
}
