package chart

import (
	"fmt"
	"image/color"
	"strings"
)

// recorder is a Surface that logs every call.
type recorder struct {
	w, h  float64
	calls []string
	depth int
}

func newRecorder(w, h float64) *recorder { return &recorder{w: w, h: h} }

func (r *recorder) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) Size() (w, h float64) { return r.w, r.h }
func (r *recorder) Clear()               { r.log("clear") }
func (r *recorder) Save()                { r.depth++; r.log("save") }
func (r *recorder) Restore()             { r.depth--; r.log("restore") }
func (r *recorder) BeginPath()           { r.log("begin") }
func (r *recorder) ClosePath()           { r.log("close") }
func (r *recorder) Fill()                { r.log("fill") }
func (r *recorder) Stroke()              { r.log("stroke") }

func (r *recorder) Rect(x, y, w, h float64) { r.log("rect %g %g %g %g", x, y, w, h) }

func (r *recorder) Arc(x, y, radius, start, end float64) {
	r.log("arc %g %g %g %.4f %.4f", x, y, radius, start, end)
}

func (r *recorder) SetLineWidth(w float64)    { r.log("lineWidth %g", w) }
func (r *recorder) SetFillColor(c color.RGBA) { r.log("fillColor %d,%d,%d", c.R, c.G, c.B) }

func (r *recorder) SetFont(size float64, family string) { r.log("font %g %s", size, family) }

func (r *recorder) FillText(msg string, x, y float64)   { r.log("fillText %q %g %g", msg, x, y) }
func (r *recorder) StrokeText(msg string, x, y float64) { r.log("strokeText %q %g %g", msg, x, y) }

func (r *recorder) reset() { r.calls = r.calls[:0] }

func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (r *recorder) String() string { return strings.Join(r.calls, "\n") }
