package chart

import (
	"errors"
	"image/color"

	"github.com/shopspring/decimal"

	"salesgraph/internal/sales"
)

// ErrStopped is returned by Frame once the engine has been stopped.
var ErrStopped = errors.New("chart: engine stopped")

// State reports whether the engine has laid out a chart.
type State uint8

const (
	Uninitialized State = iota
	Initialized
)

type lifecycle uint8

const (
	lifeIdle lifecycle = iota
	lifeRunning
	lifeStopped
)

// Group is a role-based partition of the primitive collection.
type Group uint8

const (
	GroupBars Group = iota
	GroupLabels
	GroupMonthBrackets
	GroupYearBrackets
	numGroups
)

func (g Group) String() string {
	switch g {
	case GroupBars:
		return "bars"
	case GroupLabels:
		return "labels"
	case GroupMonthBrackets:
		return "monthBrackets"
	case GroupYearBrackets:
		return "yearBrackets"
	default:
		return "unknown"
	}
}

// DrawOrder is the order groups are painted in each frame.
var DrawOrder = [...]Group{GroupBars, GroupLabels, GroupMonthBrackets, GroupYearBrackets}

// Palette colors the chart's groups.
type Palette struct {
	Bar          color.RGBA
	Label        color.RGBA
	MonthBracket color.RGBA
	YearBracket  color.RGBA
}

// DefaultPalette draws blue bars with dark axis annotations.
var DefaultPalette = Palette{
	Bar:          color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	Label:        color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
	MonthBracket: color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff},
	YearBracket:  color.RGBA{R: 0x88, G: 0x22, B: 0x22, A: 0xff},
}

const (
	DefaultBarWidth     = 10
	DefaultMaxBarHeight = 200
	DefaultMaxZoom      = 30
	DefaultZoomSpeed    = 0.05
)

// Option configures an Engine.
type Option func(*Engine)

// WithFactory replaces the primitive factory.
func WithFactory(f Factory) Option {
	return func(e *Engine) {
		if f != nil {
			e.factory = f
		}
	}
}

// WithBarWidth sets the bar width in pixels.
func WithBarWidth(w float64) Option { return func(e *Engine) { e.barWidth = w } }

// WithMaxBarHeight sets the height of the tallest bar.
func WithMaxBarHeight(h float64) Option { return func(e *Engine) { e.maxBarHeight = h } }

// WithMaxZoom sets the upper bound of the zoom factor.
func WithMaxZoom(n int) Option { return func(e *Engine) { e.zoom.Max = n } }

// WithZoomSpeed sets the exponent step per zoom tick.
func WithZoomSpeed(s float64) Option { return func(e *Engine) { e.zoom.Speed = s } }

// WithPalette overrides the chart colors.
func WithPalette(p Palette) Option { return func(e *Engine) { e.palette = p } }

// Engine lays out a sales series and handles pan/zoom over it.
type Engine struct {
	width, height float64

	factory      Factory
	barWidth     float64
	maxBarHeight float64
	palette      Palette

	state  State
	life   lifecycle
	groups [numGroups][]Primitive

	segments Segments
	topSales decimal.Decimal
	spacing  float64

	pointer PointerState
	scroll  ScrollState
	zoom    ZoomState
}

// New returns an engine for a drawing area of width x height pixels.
func New(width, height float64, opts ...Option) *Engine {
	e := &Engine{
		width:        width,
		height:       height,
		factory:      NewPrimitive,
		barWidth:     DefaultBarWidth,
		maxBarHeight: DefaultMaxBarHeight,
		palette:      DefaultPalette,
		zoom:         ZoomState{Max: DefaultMaxZoom, Speed: DefaultZoomSpeed},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.zoom.Max < 0 {
		e.zoom.Max = 0
	}
	return e
}

// Init lays out records, replacing any previous chart. On error the previous
// primitives are left untouched.
func (e *Engine) Init(records []sales.Record) error {
	top := sales.TopSales(records)

	// An empty series has no spacing; dividing by the count would leak +Inf
	// into every later position.
	var spacing float64
	if len(records) > 0 {
		spacing = e.width / float64(len(records))
	}

	groups, segs, err := e.layout(records, top, spacing)
	if err != nil {
		return err
	}

	e.groups = groups
	e.segments = segs
	e.topSales = top
	e.spacing = spacing
	e.zoom.Factor = 0
	e.scroll = ScrollState{}
	e.state = Initialized
	return nil
}

// Start begins accepting pointer input and rendering frames.
func (e *Engine) Start() error {
	if e.life == lifeStopped {
		return ErrStopped
	}
	e.life = lifeRunning
	return nil
}

// Stop tears the engine down: input is ignored and Frame returns ErrStopped.
func (e *Engine) Stop() {
	e.life = lifeStopped
	e.pointer.Down = false
	e.scroll.Active = false
}

// Running reports whether the engine is between Start and Stop.
func (e *Engine) Running() bool { return e.life == lifeRunning }

// Frame clears s, draws every group in DrawOrder and then applies at most one
// pending zoom step.
func (e *Engine) Frame(s Surface) error {
	switch e.life {
	case lifeIdle:
		return nil
	case lifeStopped:
		return ErrStopped
	}

	s.Clear()
	for _, g := range DrawOrder {
		for _, p := range e.groups[g] {
			p.Draw(s)
		}
	}

	if e.scroll.Active {
		e.scroll.Active = false
		e.applyZoom(e.scroll.Direction)
	}
	return nil
}

func (e *Engine) each(fn func(Primitive)) {
	for _, g := range DrawOrder {
		for _, p := range e.groups[g] {
			fn(p)
		}
	}
}

// Read-only views of the engine state. Slices are copies.
func (e *Engine) State() State              { return e.state }
func (e *Engine) Size() (w, h float64)      { return e.width, e.height }
func (e *Engine) TopSales() decimal.Decimal { return e.topSales }
func (e *Engine) Spacing() float64          { return e.spacing }
func (e *Engine) Pointer() PointerState     { return e.pointer }
func (e *Engine) Scroll() ScrollState       { return e.scroll }
func (e *Engine) Zoom() ZoomState           { return e.zoom }
func (e *Engine) Months() []Bucket          { return append([]Bucket(nil), e.segments.Months...) }
func (e *Engine) Years() []Bucket           { return append([]Bucket(nil), e.segments.Years...) }

// Group returns the primitives of one layer, or nil for an unknown group.
func (e *Engine) Group(g Group) []Primitive {
	if g >= numGroups {
		return nil
	}
	return append([]Primitive(nil), e.groups[g]...)
}

// Primitives returns every primitive in draw order.
func (e *Engine) Primitives() []Primitive {
	var out []Primitive
	e.each(func(p Primitive) { out = append(out, p) })
	return out
}
