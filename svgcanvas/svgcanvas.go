// Package svgcanvas records chart drawing as an SVG document.
package svgcanvas

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"math"
	"strings"
)

const strokeColor = "rgb(0,0,0)"

type state struct {
	lineWidth  float64
	fill       color.RGBA
	fontSize   float64
	fontFamily string
}

func defaultState() state {
	return state{lineWidth: 1, fill: color.RGBA{A: 0xff}, fontSize: 16, fontFamily: "Arial"}
}

// Canvas collects SVG elements. Every Fill and Stroke emits one <path> for
// the current path.
type Canvas struct {
	w, h  float64
	body  bytes.Buffer
	cur   state
	stack []state
	path  strings.Builder
	open  bool
}

// New returns an empty w x h canvas.
func New(w, h float64) *Canvas {
	return &Canvas{w: w, h: h, cur: defaultState()}
}

// Size returns the surface dimensions in pixels.
func (c *Canvas) Size() (w, h float64) { return c.w, c.h }

// Clear drops everything drawn so far and paints a white background.
func (c *Canvas) Clear() {
	c.body.Reset()
	c.path.Reset()
	c.open = false
	c.stack = c.stack[:0]
	c.cur = defaultState()
	fmt.Fprintf(&c.body, `  <rect x="0" y="0" width="%s" height="%s" fill="rgb(255,255,255)"/>`+"\n", num(c.w), num(c.h))
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
func (c *Canvas) BeginPath() {
	c.path.Reset()
	c.open = false
}

// ClosePath closes the open subpath.
func (c *Canvas) ClosePath() {
	if c.open {
		c.path.WriteString("Z ")
		c.open = false
	}
}

// Rect appends a closed rectangle subpath.
func (c *Canvas) Rect(x, y, w, h float64) {
	fmt.Fprintf(&c.path, "M%s %s H%s V%s H%s Z ", num(x), num(y), num(x+w), num(y+h), num(x))
	c.open = false
}

// Arc appends a clockwise arc, joined to the open subpath if there is one.
func (c *Canvas) Arc(x, y, radius, start, end float64) {
	if radius < 0 {
		return
	}
	sweep := end - start
	if sweep < 0 {
		sweep = math.Mod(sweep, 2*math.Pi) + 2*math.Pi
	}
	at := func(a float64) (string, string) {
		return num(x + radius*math.Cos(a)), num(y + radius*math.Sin(a))
	}

	sx, sy := at(start)
	if c.open {
		fmt.Fprintf(&c.path, "L%s %s ", sx, sy)
	} else {
		fmt.Fprintf(&c.path, "M%s %s ", sx, sy)
	}
	c.open = true

	r := num(radius)
	if sweep >= 2*math.Pi {
		// A single arc command cannot describe a closed circle.
		mx, my := at(start + math.Pi)
		fmt.Fprintf(&c.path, "A%s %s 0 0 1 %s %s A%s %s 0 0 1 %s %s ", r, r, mx, my, r, r, sx, sy)
		return
	}
	large := 0
	if sweep > math.Pi {
		large = 1
	}
	ex, ey := at(start + sweep)
	fmt.Fprintf(&c.path, "A%s %s 0 %d 1 %s %s ", r, r, large, ex, ey)
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
func (c *Canvas) SetFont(size float64, family string) {
	c.cur.fontSize = size
	if family != "" {
		c.cur.fontFamily = family
	}
}

// Fill paints the current path with the fill color.
func (c *Canvas) Fill() {
	if d := c.pathData(); d != "" {
		fmt.Fprintf(&c.body, `  <path d="%s" fill="%s"%s fill-rule="evenodd"/>`+"\n", d, rgb(c.cur.fill), opacity(c.cur.fill))
	}
}

// Stroke outlines the current path in the stroke color.
func (c *Canvas) Stroke() {
	if d := c.pathData(); d != "" {
		fmt.Fprintf(&c.body, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n", d, strokeColor, num(c.cur.lineWidth))
	}
}

func (c *Canvas) pathData() string { return strings.TrimSpace(c.path.String()) }

// FillText draws msg in the fill color with its baseline at y.
func (c *Canvas) FillText(msg string, x, y float64) {
	c.text(msg, x, y, fmt.Sprintf(`fill="%s"%s`, rgb(c.cur.fill), opacity(c.cur.fill)))
}

// StrokeText outlines msg in the stroke color.
func (c *Canvas) StrokeText(msg string, x, y float64) {
	c.text(msg, x, y, fmt.Sprintf(`fill="none" stroke="%s" stroke-width="%s"`, strokeColor, num(c.cur.lineWidth)))
}

func (c *Canvas) text(msg string, x, y float64, paint string) {
	fmt.Fprintf(&c.body, `  <text x="%s" y="%s" font-family="%s" font-size="%s" %s>`,
		num(x), num(y), attr(c.cur.fontFamily), num(c.cur.fontSize), paint)
	xml.EscapeText(&c.body, []byte(msg))
	c.body.WriteString("</text>\n")
}

// Bytes returns the complete SVG document.
func (c *Canvas) Bytes() []byte {
	var out bytes.Buffer
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(c.w), num(c.h), num(c.w), num(c.h))
	out.Write(c.body.Bytes())
	out.WriteString("</svg>\n")
	return out.Bytes()
}

func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func rgb(c color.RGBA) string { return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B) }

func opacity(c color.RGBA) string {
	if c.A == 0xff {
		return ""
	}
	return fmt.Sprintf(` fill-opacity="%s"`, num(float64(c.A)/255))
}

func attr(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}
