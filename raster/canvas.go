// Package raster draws chart primitives into an RGB565 framebuffer.
package raster

import (
	"image/color"
	"math"
	"slices"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"salesgraph/hal"
)

var _ drivers.Displayer = (*fbDisplay)(nil)

// Colors painted when the surface does not set one.
var (
	Background  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	StrokeColor = color.RGBA{A: 0xff}
)

// arcStep is the longest arc segment, in pixels, used when flattening.
const arcStep = 2.0

type point struct{ x, y float64 }

type subpath struct {
	pts    []point
	closed bool
}

type state struct {
	lineWidth float64
	fill      color.RGBA
	font      tinyfont.Fonter
}

// Canvas is a software rendering surface over a framebuffer. Paths are
// filled with the even-odd rule, sampled at pixel centers. Strokes use a
// square brush as wide as the line width.
type Canvas struct {
	d     fbDisplay
	cur   state
	stack []state
	path  []subpath
}

// New returns a canvas drawing into fb.
func New(fb hal.Framebuffer) *Canvas {
	c := &Canvas{d: fbDisplay{fb: fb}}
	c.cur = defaultState()
	return c
}

func defaultState() state {
	return state{lineWidth: 1, fill: StrokeColor, font: fontFor(16, "")}
}

// Size returns the surface dimensions in pixels.
func (c *Canvas) Size() (w, h float64) {
	if c.d.fb == nil {
		return 0, 0
	}
	return float64(c.d.fb.Width()), float64(c.d.fb.Height())
}

// Clear paints the background and resets the path and state stack.
func (c *Canvas) Clear() {
	if c.d.fb != nil {
		c.d.fb.ClearRGB(Background.R, Background.G, Background.B)
	}
	c.path = c.path[:0]
	c.stack = c.stack[:0]
	c.cur = defaultState()
}

// Save pushes the current drawing state.
func (c *Canvas) Save() { c.stack = append(c.stack, c.cur) }

// Restore pops the last saved drawing state.
func (c *Canvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.cur = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() { c.path = c.path[:0] }

// ClosePath closes the open subpath.
func (c *Canvas) ClosePath() {
	if n := len(c.path); n > 0 {
		c.path[n-1].closed = true
	}
}

// Rect appends a closed rectangle subpath.
func (c *Canvas) Rect(x, y, w, h float64) {
	c.path = append(c.path, subpath{
		pts:    []point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}},
		closed: true,
	})
}

// Arc appends a clockwise arc, joined to the open subpath if there is one.
func (c *Canvas) Arc(x, y, radius, start, end float64) {
	if radius < 0 {
		return
	}
	sweep := end - start
	if sweep > 2*math.Pi {
		sweep = 2 * math.Pi
	}
	if sweep < 0 {
		sweep = math.Mod(sweep, 2*math.Pi) + 2*math.Pi
	}

	n := int(math.Ceil(sweep * radius / arcStep))
	if n < 8 {
		n = 8
	}
	pts := make([]point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		pts = append(pts, point{x + radius*math.Cos(a), y + radius*math.Sin(a)})
	}

	if k := len(c.path); k > 0 && !c.path[k-1].closed {
		c.path[k-1].pts = append(c.path[k-1].pts, pts...)
		return
	}
	c.path = append(c.path, subpath{pts: pts})
}

// SetLineWidth sets the stroke width.
func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 0) {
		c.cur.lineWidth = w
	}
}

// SetFillColor sets the fill color.
func (c *Canvas) SetFillColor(col color.RGBA) { c.cur.fill = col }

// SetFont selects the text face.
func (c *Canvas) SetFont(size float64, family string) { c.cur.font = fontFor(size, family) }

// Fill paints the current path with the fill color.
func (c *Canvas) Fill() {
	fb := c.d.fb
	if fb == nil || len(c.path) == 0 {
		return
	}
	pixel := hal.RGB565(c.cur.fill.R, c.cur.fill.G, c.cur.fill.B)

	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, sp := range c.path {
		for _, p := range sp.pts {
			minY = math.Min(minY, p.y)
			maxY = math.Max(maxY, p.y)
		}
	}
	y0 := clampInt(int(math.Floor(minY)), 0, fb.Height())
	y1 := clampInt(int(math.Ceil(maxY)), 0, fb.Height())

	var xs []float64
	for py := y0; py < y1; py++ {
		yc := float64(py) + 0.5
		xs = xs[:0]
		for _, sp := range c.path {
			n := len(sp.pts)
			for i := 0; i < n; i++ {
				a, b := sp.pts[i], sp.pts[(i+1)%n]
				if (a.y <= yc) == (b.y <= yc) {
					continue
				}
				xs = append(xs, a.x+(yc-a.y)*(b.x-a.x)/(b.y-a.y))
			}
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			c.d.span(py, pixelStart(xs[i]), pixelStart(xs[i+1]), pixel)
		}
	}
}

// pixelStart returns the first pixel whose center is at or right of x.
func pixelStart(x float64) int {
	v := math.Ceil(x - 0.5)
	if v < math.MinInt32 {
		return math.MinInt32
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

// Stroke outlines the current path in the stroke color.
func (c *Canvas) Stroke() {
	fb := c.d.fb
	if fb == nil {
		return
	}
	pixel := hal.RGB565(StrokeColor.R, StrokeColor.G, StrokeColor.B)
	brush := int(math.Max(1, math.Round(c.cur.lineWidth)))
	pad := float64(brush)
	w, h := float64(fb.Width()), float64(fb.Height())

	for _, sp := range c.path {
		n := len(sp.pts)
		segs := n - 1
		if sp.closed {
			segs = n
		}
		for i := 0; i < segs; i++ {
			a, b := sp.pts[i], sp.pts[(i+1)%n]
			ax, ay, bx, by, ok := clipSegment(a.x, a.y, b.x, b.y, -pad, -pad, w+pad, h+pad)
			if !ok {
				continue
			}
			c.drawLine(int(math.Round(ax)), int(math.Round(ay)), int(math.Round(bx)), int(math.Round(by)), brush, pixel)
		}
	}
}

func (c *Canvas) drawLine(x0, y0, x1, y1, brush int, pixel uint16) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	off := brush / 2
	err := dx + dy
	for {
		for by := 0; by < brush; by++ {
			c.d.span(y0-off+by, x0-off, x0-off+brush, pixel)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// clipSegment clips a-b to the rectangle [x0,x1]x[y0,y1] (Liang-Barsky).
func clipSegment(ax, ay, bx, by, x0, y0, x1, y1 float64) (float64, float64, float64, float64, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := bx-ax, by-ay
	for _, e := range [4][2]float64{{-dx, ax - x0}, {dx, x1 - ax}, {-dy, ay - y0}, {dy, y1 - ay}} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return ax + t0*dx, ay + t0*dy, ax + t1*dx, ay + t1*dy, true
}

// FillText draws msg in the fill color with its baseline at y.
func (c *Canvas) FillText(msg string, x, y float64) { c.text(msg, x, y, c.cur.fill) }

// StrokeText draws msg in the stroke color; bitmap fonts have no outline.
func (c *Canvas) StrokeText(msg string, x, y float64) { c.text(msg, x, y, StrokeColor) }

func (c *Canvas) text(msg string, x, y float64, col color.RGBA) {
	if c.d.fb == nil || msg == "" {
		return
	}
	w, h := c.Size()
	// tinyfont takes int16 coordinates; skip text that starts off screen.
	if x > w || x < -32000 || y < 0 || y > h+64 {
		return
	}
	tinyfont.WriteLine(&c.d, c.cur.font, int16(math.Round(x)), int16(math.Round(y)), msg, col)
}
