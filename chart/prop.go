package chart

import "image/color"

// Key names a primitive field.
type Key uint8

const (
	KeyX Key = iota + 1
	KeyY
	KeyWidth
	KeyHeight
	KeyRadius
	KeyStartAngle
	KeyEndAngle
	KeyFontSize
	KeyFontFamily
	KeyMessage
	KeyStroke
	KeyFill
	KeyLineWidth
)

var keyNames = [...]string{
	KeyX:          "x",
	KeyY:          "y",
	KeyWidth:      "width",
	KeyHeight:     "height",
	KeyRadius:     "radius",
	KeyStartAngle: "startAngle",
	KeyEndAngle:   "endAngle",
	KeyFontSize:   "fontSize",
	KeyFontFamily: "fontFamily",
	KeyMessage:    "message",
	KeyStroke:     "stroke",
	KeyFill:       "fill",
	KeyLineWidth:  "lineWidth",
}

func (k Key) String() string {
	if int(k) < len(keyNames) && keyNames[k] != "" {
		return keyNames[k]
	}
	return "unknown"
}

// Prop assigns one field. Primitives ignore props for fields they don't have.
type Prop struct {
	Key Key

	num  float64
	str  string
	on   bool
	fill *color.RGBA
}

// Setters for the geometry and paint fields. A prop whose key the primitive
// does not carry is ignored.
func X(v float64) Prop          { return Prop{Key: KeyX, num: v} }
func Y(v float64) Prop          { return Prop{Key: KeyY, num: v} }
func Width(v float64) Prop      { return Prop{Key: KeyWidth, num: v} }
func Height(v float64) Prop     { return Prop{Key: KeyHeight, num: v} }
func Radius(v float64) Prop     { return Prop{Key: KeyRadius, num: v} }
func StartAngle(v float64) Prop { return Prop{Key: KeyStartAngle, num: v} }
func EndAngle(v float64) Prop   { return Prop{Key: KeyEndAngle, num: v} }
func FontSize(v float64) Prop   { return Prop{Key: KeyFontSize, num: v} }
func LineWidth(v float64) Prop  { return Prop{Key: KeyLineWidth, num: v} }
func FontFamily(s string) Prop  { return Prop{Key: KeyFontFamily, str: s} }
func Message(s string) Prop     { return Prop{Key: KeyMessage, str: s} }
func Stroke(on bool) Prop       { return Prop{Key: KeyStroke, on: on} }

// Fill sets the fill color.
func Fill(c color.RGBA) Prop { return Prop{Key: KeyFill, fill: &c} }

// NoFill clears the fill color.
func NoFill() Prop { return Prop{Key: KeyFill} }
