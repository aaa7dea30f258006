package chart

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"salesgraph/internal/sales"
)

func rec(t *testing.T, date, total string) sales.Record {
	t.Helper()
	d, err := sales.ParseDate(date)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", date, err)
	}
	return sales.Record{Date: d, SalesTotal: decimal.RequireFromString(total)}
}

func threeDays(t *testing.T) []sales.Record {
	return []sales.Record{
		rec(t, "2024/05/01", "10"),
		rec(t, "2024/05/02", "20"),
		rec(t, "2024/06/01", "5"),
	}
}

func startedEngine(t *testing.T, records []sales.Record, opts ...Option) *Engine {
	t.Helper()
	e := New(300, 400, opts...)
	if err := e.Init(records); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return e
}

func xs(ps []Primitive) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i], _ = p.Float(KeyX)
	}
	return out
}

func TestInitLayout(t *testing.T) {
	e := startedEngine(t, threeDays(t))

	if e.State() != Initialized {
		t.Fatalf("state=%v", e.State())
	}
	if !e.TopSales().Equal(decimal.NewFromInt(20)) {
		t.Fatalf("topSales=%s, want 20", e.TopSales())
	}
	if e.Spacing() != 100 {
		t.Fatalf("spacing=%g, want 100", e.Spacing())
	}

	bars := e.Group(GroupBars)
	if len(bars) != 3 || len(e.Group(GroupLabels)) != 3 {
		t.Fatalf("bars=%d labels=%d", len(bars), len(e.Group(GroupLabels)))
	}
	wantH := []float64{-100, -200, -50}
	for i, b := range bars {
		h, _ := b.Float(KeyHeight)
		if h != wantH[i] {
			t.Fatalf("bar %d height=%g, want %g", i, h, wantH[i])
		}
		if x, _ := b.Float(KeyX); x != float64(i)*100 {
			t.Fatalf("bar %d x=%g", i, x)
		}
		if y, _ := b.Float(KeyY); y != e.Baseline() {
			t.Fatalf("bar %d y=%g, want baseline %g", i, y, e.Baseline())
		}
	}
	if got := e.Group(GroupLabels)[0].(*Text).Message; got != "1 May" {
		t.Fatalf("label=%q", got)
	}

	months := e.Months()
	if len(months) != 2 || months[0].Label != "05" || months[0].Count != 2 || months[1].Label != "06" || months[1].Count != 1 {
		t.Fatalf("months=%+v", months)
	}
	if n := len(e.Group(GroupMonthBrackets)); n != 2*9 {
		t.Fatalf("month bracket primitives=%d", n)
	}
	if n := len(e.Group(GroupYearBrackets)); n != 9 {
		t.Fatalf("year bracket primitives=%d", n)
	}
	if e.Group(numGroups) != nil {
		t.Fatal("unknown group returned primitives")
	}
}

func TestBarHeightBounds(t *testing.T) {
	records, err := sales.Sample()
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	e := startedEngine(t, records)
	for i, b := range e.Group(GroupBars) {
		h, _ := b.Float(KeyHeight)
		if h > 0 || h < -DefaultMaxBarHeight {
			t.Fatalf("bar %d height=%g out of range", i, h)
		}
	}

	equal := []sales.Record{rec(t, "2024/01/01", "7"), rec(t, "2024/01/02", "7")}
	e = startedEngine(t, equal)
	bars := e.Group(GroupBars)
	h0, _ := bars[0].Float(KeyHeight)
	h1, _ := bars[1].Float(KeyHeight)
	if h0 != h1 || h0 != -DefaultMaxBarHeight {
		t.Fatalf("equal totals heights %g,%g", h0, h1)
	}

	if got := BarHeight(decimal.NewFromInt(5), decimal.Zero, 200); got != 0 {
		t.Fatalf("zero top height=%g", got)
	}
	if got := BarHeight(decimal.NewFromInt(-5), decimal.NewFromInt(10), 200); got != 0 {
		t.Fatalf("negative total height=%g", got)
	}
}

func TestInitEmpty(t *testing.T) {
	e := startedEngine(t, nil)
	if len(e.Primitives()) != 0 || e.Spacing() != 0 || !e.TopSales().IsZero() {
		t.Fatalf("unexpected empty layout: %d primitives spacing=%g", len(e.Primitives()), e.Spacing())
	}
	r := newRecorder(300, 400)
	if err := e.Frame(r); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if r.String() != "clear" {
		t.Fatalf("calls:\n%s", r)
	}
}

func TestInitFailureKeepsPreviousChart(t *testing.T) {
	fail := false
	factory := func(k Kind) (Primitive, error) {
		if fail && k == KindText {
			return nil, ErrInvalidShapeKind
		}
		return NewPrimitive(k)
	}
	e := startedEngine(t, threeDays(t), WithFactory(factory))
	before := len(e.Primitives())

	fail = true
	err := e.Init([]sales.Record{rec(t, "2024/07/01", "1")})
	if !errors.Is(err, ErrInvalidShapeKind) {
		t.Fatalf("err=%v, want ErrInvalidShapeKind", err)
	}
	if len(e.Primitives()) != before || !e.TopSales().Equal(decimal.NewFromInt(20)) {
		t.Fatalf("previous chart replaced: %d primitives top=%s", len(e.Primitives()), e.TopSales())
	}
}

func TestFrameDrawOrder(t *testing.T) {
	e := startedEngine(t, threeDays(t))
	r := newRecorder(300, 400)
	if err := e.Frame(r); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if r.calls[0] != "clear" {
		t.Fatalf("first call %q, want clear", r.calls[0])
	}

	// Bars are the first three rects and precede every label.
	rects, firstText := 0, -1
	for i, c := range r.calls {
		if strings.HasPrefix(c, "rect") {
			rects++
			if rects == 3 && firstText >= 0 {
				t.Fatalf("label drawn before bar 3:\n%s", r)
			}
		}
		if strings.HasPrefix(c, "fillText") && firstText < 0 {
			firstText = i
		}
	}
	if want := 3 + 2*8 + 8; rects != want {
		t.Fatalf("rects=%d, want %d", rects, want)
	}
	if r.depth != 0 {
		t.Fatalf("unbalanced save/restore: %d", r.depth)
	}
}

func TestZoomRoundTrip(t *testing.T) {
	e := startedEngine(t, threeDays(t))
	r := newRecorder(300, 400)
	before := xs(e.Primitives())
	w0, _ := e.Group(GroupBars)[0].Float(KeyWidth)

	e.OnPointerMove(123, 50)
	e.OnWheel(-1)
	if s := e.Scroll(); !s.Active || s.Direction != 1 || s.Value != 1 {
		t.Fatalf("scroll=%+v", s)
	}

	// The frame paints the pre-zoom chart, then applies the step.
	if err := e.Frame(r); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if r.count("rect 0 300 10 ") == 0 {
		t.Fatalf("first bar not drawn at x=0:\n%s", r)
	}
	if e.Zoom().Factor != 1 || e.Scroll().Active {
		t.Fatalf("zoom=%+v scroll=%+v", e.Zoom(), e.Scroll())
	}
	w1, _ := e.Group(GroupBars)[0].Float(KeyWidth)
	if math.Abs(w1-w0*math.Exp(DefaultZoomSpeed)) > 1e-9 {
		t.Fatalf("width=%g after zoom in", w1)
	}
	for i, x := range xs(e.Primitives()) {
		if want := 123 + (before[i]-123)*math.Exp(DefaultZoomSpeed); math.Abs(x-want) > 1e-9 {
			t.Fatalf("primitive %d x=%g, want %g", i, x, want)
		}
	}

	e.OnWheel(1)
	if err := e.Frame(r); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if e.Zoom().Factor != 0 {
		t.Fatalf("factor=%d, want 0", e.Zoom().Factor)
	}
	for i, x := range xs(e.Primitives()) {
		if math.Abs(x-before[i]) > 1e-9 {
			t.Fatalf("primitive %d x=%g, want %g", i, x, before[i])
		}
	}
	if w, _ := e.Group(GroupBars)[0].Float(KeyWidth); math.Abs(w-w0) > 1e-9 {
		t.Fatalf("width=%g, want %g", w, w0)
	}
}

func TestZoomBounds(t *testing.T) {
	e := startedEngine(t, threeDays(t), WithMaxZoom(2))
	r := newRecorder(300, 400)

	e.OnPointerMove(120, 50)
	atMin := xs(e.Primitives())
	e.OnWheel(5)
	e.Frame(r)
	if e.Zoom().Factor != 0 {
		t.Fatalf("zoomed out below 0: %d", e.Zoom().Factor)
	}
	for i, x := range xs(e.Primitives()) {
		if x != atMin[i] {
			t.Fatalf("primitive %d moved at min zoom: %g -> %g", i, atMin[i], x)
		}
	}

	for i := 0; i < 5; i++ {
		e.OnWheel(-3)
		e.Frame(r)
	}
	if e.Zoom().Factor != 2 {
		t.Fatalf("factor=%d, want max 2", e.Zoom().Factor)
	}
	if math.Abs(e.Zoom().Scale()-math.Exp(2*DefaultZoomSpeed)) > 1e-12 {
		t.Fatalf("scale=%g", e.Zoom().Scale())
	}

	atMax := xs(e.Primitives())
	e.OnWheel(-1)
	e.Frame(r)
	if e.Zoom().Factor != 2 {
		t.Fatalf("factor=%d past max", e.Zoom().Factor)
	}
	for i, x := range xs(e.Primitives()) {
		if x != atMax[i] {
			t.Fatalf("primitive %d moved at max zoom: %g -> %g", i, atMax[i], x)
		}
	}
}

func TestZoomWaitsForFrame(t *testing.T) {
	e := startedEngine(t, threeDays(t))
	before := xs(e.Primitives())

	e.OnPointerMove(10, 10)
	e.OnWheel(-1)
	e.OnWheel(-1)
	for i, x := range xs(e.Primitives()) {
		if x != before[i] {
			t.Fatalf("zoom applied before frame at %d", i)
		}
	}
	e.Frame(newRecorder(300, 400))
	if e.Zoom().Factor != 1 {
		t.Fatalf("factor=%d, want one step per frame", e.Zoom().Factor)
	}
}

func ys(ps []Primitive) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i], _ = p.Float(KeyY)
	}
	return out
}

// shifted fails unless every primitive sits at its start position plus (dx, dy).
func shifted(t *testing.T, e *Engine, x0, y0 []float64, dx, dy float64) {
	t.Helper()
	for i, p := range e.Primitives() {
		x, _ := p.Float(KeyX)
		y, _ := p.Float(KeyY)
		if math.Abs(x-(x0[i]+dx)) > 1e-9 || math.Abs(y-(y0[i]+dy)) > 1e-9 {
			t.Fatalf("primitive %d at (%g,%g), want (%g,%g)", i, x, y, x0[i]+dx, y0[i]+dy)
		}
	}
}

func TestPanWhileDragging(t *testing.T) {
	e := startedEngine(t, threeDays(t))
	x0, y0 := xs(e.Primitives()), ys(e.Primitives())
	bar := e.Group(GroupBars)[1]
	w0, _ := bar.Float(KeyWidth)
	h0, _ := bar.Float(KeyHeight)

	e.OnPointerMove(10, 10)
	e.OnPointerMove(20, 20)
	shifted(t, e, x0, y0, 0, 0)

	e.OnPointerDown()
	e.OnPointerMove(25, 23)
	shifted(t, e, x0, y0, 5, 3)
	w, _ := bar.Float(KeyWidth)
	h, _ := bar.Float(KeyHeight)
	if w != w0 || h != h0 {
		t.Fatalf("pan resized bar: w=%g h=%g", w, h)
	}

	e.OnPointerUp()
	e.OnPointerMove(-10, 23)
	shifted(t, e, x0, y0, 5, 3)
}

func TestDragLeavingAreaFollowsCursor(t *testing.T) {
	e := startedEngine(t, threeDays(t))
	x0, y0 := xs(e.Primitives()), ys(e.Primitives())

	e.OnPointerMove(290, 200)
	e.OnPointerDown()
	e.OnPointerMove(310, 200)
	e.OnPointerMove(295, 200)
	shifted(t, e, x0, y0, 5, 0)

	e.OnPointerMove(295, -30)
	e.OnPointerMove(280, 190)
	shifted(t, e, x0, y0, -10, -10)
	if p := e.Pointer(); p.X != 280 || p.PrevX != 295 || p.PrevY != -30 {
		t.Fatalf("pointer=%+v", p)
	}
}

func TestLifecycle(t *testing.T) {
	e := New(300, 400)
	if err := e.Init(threeDays(t)); err != nil {
		t.Fatalf("Init: %v", err)
	}
	r := newRecorder(300, 400)

	// Idle engines neither draw nor react to input.
	e.OnPointerMove(5, 5)
	e.OnWheel(-1)
	if err := e.Frame(r); err != nil || len(r.calls) != 0 {
		t.Fatalf("idle frame err=%v calls=%d", err, len(r.calls))
	}
	if e.Scroll().Active || e.Pointer().X != 0 {
		t.Fatal("idle engine accepted input")
	}

	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !e.Running() {
		t.Fatal("not running after Start")
	}
	e.Stop()
	if err := e.Frame(r); !errors.Is(err, ErrStopped) {
		t.Fatalf("Frame err=%v, want ErrStopped", err)
	}
	if err := e.Start(); !errors.Is(err, ErrStopped) {
		t.Fatalf("restart err=%v, want ErrStopped", err)
	}
	e.OnWheel(-1)
	if e.Scroll().Active {
		t.Fatal("stopped engine accepted input")
	}
}

func TestReinitResetsZoom(t *testing.T) {
	e := startedEngine(t, threeDays(t))
	e.OnWheel(-1)
	e.Frame(newRecorder(300, 400))
	e.OnWheel(-1)

	if err := e.Init(threeDays(t)); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if e.Zoom().Factor != 0 || e.Scroll().Active {
		t.Fatalf("zoom=%+v scroll=%+v", e.Zoom(), e.Scroll())
	}
	if w, _ := e.Group(GroupBars)[0].Float(KeyWidth); w != DefaultBarWidth {
		t.Fatalf("width=%g", w)
	}
}
