package chart

import "math"

// PointerState is the current and previous cursor position plus button state.
type PointerState struct {
	X, Y         float64
	PrevX, PrevY float64
	Down         bool
}

// ScrollState records the last wheel notification. Active is set by OnWheel and
// cleared by the frame that consumes it.
type ScrollState struct {
	Direction int // +1 zoom in, -1 zoom out, 0 none
	Active    bool
	Value     int
}

// ZoomState is a bounded tick counter; the visual scale is derived from it.
type ZoomState struct {
	Factor int
	Max    int
	Speed  float64
}

// Scale returns exp(Factor*Speed).
func (z ZoomState) Scale() float64 { return math.Exp(float64(z.Factor) * z.Speed) }

// OnPointerMove records the cursor position and pans the chart by the cursor's
// motion while the button is held, wherever the cursor is.
func (e *Engine) OnPointerMove(x, y float64) {
	if e.life != lifeRunning {
		return
	}
	e.pointer.PrevX, e.pointer.PrevY = e.pointer.X, e.pointer.Y
	e.pointer.X, e.pointer.Y = x, y

	if e.pointer.Down {
		e.Pan(x-e.pointer.PrevX, y-e.pointer.PrevY)
	}
}

// OnPointerDown starts a drag.
func (e *Engine) OnPointerDown() {
	if e.life != lifeRunning {
		return
	}
	e.pointer.Down = true
}

// OnPointerUp clears the button state. Hosts should report releases that
// happen outside the drawing area too, otherwise a drag sticks.
func (e *Engine) OnPointerUp() {
	if e.life != lifeRunning {
		return
	}
	e.pointer.Down = false
}

// OnWheel queues one zoom step for the next frame. deltaY < 0 (scrolling up)
// zooms in.
func (e *Engine) OnWheel(deltaY float64) {
	if e.life != lifeRunning {
		return
	}
	dir := -1
	if deltaY < 0 {
		dir = 1
	}
	e.scroll = ScrollState{
		Direction: dir,
		Active:    true,
		Value:     e.scroll.Value + dir,
	}
}

// Pan shifts every primitive by (dx, dy).
func (e *Engine) Pan(dx, dy float64) {
	e.each(func(p Primitive) {
		x, _ := p.Float(KeyX)
		y, _ := p.Float(KeyY)
		p.Update(X(x+dx), Y(y+dy))
	})
}

// applyZoom moves the zoom factor one tick in dir and rescales the chart
// horizontally around the cursor. It reports whether anything changed.
func (e *Engine) applyZoom(dir int) bool {
	old := e.zoom.Factor
	next := old + dir
	if dir == 0 || next < 0 || next > e.zoom.Max {
		return false
	}
	e.zoom.Factor = next

	k := math.Exp(float64(next)*e.zoom.Speed) / math.Exp(float64(old)*e.zoom.Speed)
	cx := e.pointer.X
	e.each(func(p Primitive) {
		x, _ := p.Float(KeyX)
		p.Update(X(cx + (x-cx)*k))
		if w, ok := p.Float(KeyWidth); ok {
			p.Update(Width(w * k))
		}
	})
	return true
}
