package raster

import (
	"image/color"

	"salesgraph/hal"
)

// fbDisplay adapts a framebuffer to the tinygo drivers.Displayer interface so
// tinyfont can draw into it.
type fbDisplay struct {
	fb hal.Framebuffer
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.set(int(x), int(y), hal.RGB565(c.R, c.G, c.B))
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) set(x, y int, pixel uint16) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if x < 0 || x >= d.fb.Width() || y < 0 || y >= d.fb.Height() {
		return
	}
	off := y*d.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// span fills pixels [x0, x1) of row y.
func (d *fbDisplay) span(y, x0, x1 int, pixel uint16) {
	if d.fb == nil || y < 0 || y >= d.fb.Height() {
		return
	}
	x0 = clampInt(x0, 0, d.fb.Width())
	x1 = clampInt(x1, 0, d.fb.Width())
	for x := x0; x < x1; x++ {
		d.set(x, y, pixel)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
