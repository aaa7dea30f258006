package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"salesgraph/hal"
	"salesgraph/raster"
)

// guard turns a panic in step into an error, after logging it and painting
// it onto the framebuffer.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := debug.Stack()
			showPanic(h, v, stack)
			err = fmt.Errorf("app: panic: %v", v)
		}()
		return step()
	}
}

func showPanic(h hal.HAL, v any, stack []byte) {
	lines := []string{"Panic:", fmt.Sprintf("%v", v), "stack:"}
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return
	}
	fb := disp.Framebuffer()

	const lineHeight = 10
	c := raster.New(fb)
	c.Clear()
	c.SetFont(8, "")
	c.SetFillColor(color.RGBA{A: 255})
	for i, line := range lines {
		y := float64((i + 1) * lineHeight)
		if y > float64(fb.Height()) {
			break
		}
		c.FillText(line, 2, y)
	}
	_ = fb.Present()
}
