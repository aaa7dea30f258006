package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
)

// ErrInvalidShapeKind is returned when a primitive of an unknown kind is requested.
var ErrInvalidShapeKind = errors.New("chart: invalid shape kind")

// Kind identifies a primitive variant.
type Kind uint8

const (
	KindRect Kind = iota + 1
	KindArc
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindArc:
		return "arc"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps a shape tag ("rect", "arc", "text") to its Kind.
func ParseKind(tag string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "rect":
		return KindRect, nil
	case "arc":
		return KindArc, nil
	case "text":
		return KindText, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidShapeKind, tag)
	}
}

// Primitive is one drawable shape.
type Primitive interface {
	Kind() Kind
	// Configure resets the primitive to its defaults and applies props.
	Configure(props ...Prop)
	// Update applies props to fields the primitive already has.
	Update(props ...Prop)
	// Float reports the numeric value of a field, if the primitive has it.
	Float(k Key) (float64, bool)
	Draw(s Surface)
}

// Factory creates primitives by kind.
type Factory func(Kind) (Primitive, error)

// NewPrimitive returns a primitive of the given kind with default fields.
func NewPrimitive(kind Kind) (Primitive, error) {
	var p Primitive
	switch kind {
	case KindRect:
		p = &Rect{}
	case KindArc:
		p = &Arc{}
	case KindText:
		p = &Text{}
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidShapeKind, kind)
	}
	p.Configure()
	return p, nil
}

// Paint holds the fields shared by every variant.
type Paint struct {
	Stroke    bool
	Fill      *color.RGBA
	LineWidth float64
}

func defaultPaint() Paint { return Paint{LineWidth: 1} }

func (p *Paint) set(pr Prop) {
	switch pr.Key {
	case KeyStroke:
		p.Stroke = pr.on
	case KeyLineWidth:
		p.LineWidth = pr.num
	case KeyFill:
		if pr.fill == nil {
			p.Fill = nil
			return
		}
		c := *pr.fill
		p.Fill = &c
	}
}

func (p Paint) float(k Key) (float64, bool) {
	if k == KeyLineWidth {
		return p.LineWidth, true
	}
	return 0, false
}

func (p Paint) render(s Surface) {
	if p.Fill != nil {
		s.SetFillColor(*p.Fill)
		s.Fill()
	}
	if p.Stroke {
		s.Stroke()
	}
}

// Rect is an axis-aligned rectangle. A negative height grows upward from Y.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Paint
}

func (r *Rect) Kind() Kind { return KindRect }

func (r *Rect) Configure(props ...Prop) {
	*r = Rect{Paint: defaultPaint()}
	r.Update(props...)
}

func (r *Rect) Update(props ...Prop) {
	for _, p := range props {
		switch p.Key {
		case KeyX:
			r.X = p.num
		case KeyY:
			r.Y = p.num
		case KeyWidth:
			r.Width = p.num
		case KeyHeight:
			r.Height = p.num
		default:
			r.Paint.set(p)
		}
	}
}

func (r *Rect) Float(k Key) (float64, bool) {
	switch k {
	case KeyX:
		return r.X, true
	case KeyY:
		return r.Y, true
	case KeyWidth:
		return r.Width, true
	case KeyHeight:
		return r.Height, true
	}
	return r.Paint.float(k)
}

func (r *Rect) Draw(s Surface) {
	s.Save()
	defer s.Restore()

	s.BeginPath()
	s.SetLineWidth(r.LineWidth)
	s.Rect(r.X, r.Y, r.Width, r.Height)
	r.Paint.render(s)
	s.ClosePath()
}

// Arc is a circular arc around (X, Y). Angles are in radians, clockwise in
// screen space.
type Arc struct {
	X, Y       float64
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Paint
}

func (a *Arc) Kind() Kind { return KindArc }

func (a *Arc) Configure(props ...Prop) {
	*a = Arc{EndAngle: 2 * math.Pi, Paint: defaultPaint()}
	a.Update(props...)
}

func (a *Arc) Update(props ...Prop) {
	for _, p := range props {
		switch p.Key {
		case KeyX:
			a.X = p.num
		case KeyY:
			a.Y = p.num
		case KeyRadius:
			a.Radius = p.num
		case KeyStartAngle:
			a.StartAngle = p.num
		case KeyEndAngle:
			a.EndAngle = p.num
		default:
			a.Paint.set(p)
		}
	}
}

func (a *Arc) Float(k Key) (float64, bool) {
	switch k {
	case KeyX:
		return a.X, true
	case KeyY:
		return a.Y, true
	case KeyRadius:
		return a.Radius, true
	case KeyStartAngle:
		return a.StartAngle, true
	case KeyEndAngle:
		return a.EndAngle, true
	}
	return a.Paint.float(k)
}

func (a *Arc) Draw(s Surface) {
	s.Save()
	defer s.Restore()

	s.BeginPath()
	s.SetLineWidth(a.LineWidth)
	s.Arc(a.X, a.Y, a.Radius, a.StartAngle, a.EndAngle)
	a.Paint.render(s)
	s.ClosePath()
}

const (
	defaultFontSize   = 16
	defaultFontFamily = "Arial"
)

// Text is a single line of text with its baseline at Y.
type Text struct {
	X, Y       float64
	FontSize   float64
	FontFamily string
	Message    string
	Paint
}

func (t *Text) Kind() Kind { return KindText }

func (t *Text) Configure(props ...Prop) {
	*t = Text{FontSize: defaultFontSize, FontFamily: defaultFontFamily, Paint: defaultPaint()}
	t.Update(props...)
}

func (t *Text) Update(props ...Prop) {
	for _, p := range props {
		switch p.Key {
		case KeyX:
			t.X = p.num
		case KeyY:
			t.Y = p.num
		case KeyFontSize:
			t.FontSize = p.num
		case KeyFontFamily:
			t.FontFamily = p.str
		case KeyMessage:
			t.Message = p.str
		default:
			t.Paint.set(p)
		}
	}
}

func (t *Text) Float(k Key) (float64, bool) {
	switch k {
	case KeyX:
		return t.X, true
	case KeyY:
		return t.Y, true
	case KeyFontSize:
		return t.FontSize, true
	}
	return t.Paint.float(k)
}

func (t *Text) Draw(s Surface) {
	s.Save()
	defer s.Restore()

	s.SetLineWidth(t.LineWidth)
	s.SetFont(t.FontSize, t.FontFamily)
	if t.Fill != nil {
		s.SetFillColor(*t.Fill)
		s.FillText(t.Message, t.X, t.Y)
	}
	if t.Stroke {
		s.StrokeText(t.Message, t.X, t.Y)
	}
}
