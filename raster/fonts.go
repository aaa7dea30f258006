package raster

import (
	"strings"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyfont/proggy"
)

// fontFor picks the closest bitmap font for a requested size and family.
// Sizes below 12 use the pixel font regardless of family.
func fontFor(size float64, family string) tinyfont.Fonter {
	if size < 12 {
		return &proggy.TinySZ8pt7b
	}
	mono := strings.Contains(strings.ToLower(family), "mono") || strings.Contains(strings.ToLower(family), "courier")
	switch {
	case mono && size < 16:
		return &freemono.Regular9pt7b
	case mono:
		return &freemono.Regular12pt7b
	case size < 16:
		return &freesans.Regular9pt7b
	case size < 22:
		return &freesans.Regular12pt7b
	default:
		return &freesans.Regular18pt7b
	}
}
