package chart

import (
	"image/color"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"salesgraph/internal/sales"
)

// Vertical placement below the bar baseline.
const (
	labelOffset    = 14
	labelFontSize  = 10
	monthOffset    = 20
	yearOffset     = 38
	bracketDepth   = 12
	bracketLine    = 1
	bracketCap     = 4
	titleFontSize  = 10
	titlePadding   = 4
	glyphWidthRate = 0.55
)

// Baseline returns the y coordinate bars grow up from.
func (e *Engine) Baseline() float64 {
	maxH := e.maxHeight()
	return e.height - (e.height-maxH)/2
}

func (e *Engine) maxHeight() float64 { return math.Min(e.height, e.maxBarHeight) }

func (e *Engine) layout(records []sales.Record, top decimal.Decimal, spacing float64) (groups [numGroups][]Primitive, segs Segments, err error) {
	base := e.Baseline()
	maxH := e.maxHeight()

	dates := make([]time.Time, len(records))
	groups[GroupBars] = make([]Primitive, 0, len(records))
	groups[GroupLabels] = make([]Primitive, 0, len(records))

	x := 0.0
	for i, r := range records {
		dates[i] = r.Date

		bar, err := e.create(KindRect,
			X(x), Y(base),
			Width(e.barWidth), Height(BarHeight(r.SalesTotal, top, maxH)),
			Fill(e.palette.Bar),
		)
		if err != nil {
			return groups, segs, err
		}
		groups[GroupBars] = append(groups[GroupBars], bar)

		label, err := e.create(KindText,
			X(x), Y(base+labelOffset),
			FontSize(labelFontSize), Message(sales.DayMonth(r.Date)),
			Fill(e.palette.Label),
		)
		if err != nil {
			return groups, segs, err
		}
		groups[GroupLabels] = append(groups[GroupLabels], label)

		x += spacing
	}

	segs = Segment(dates, spacing, 0)

	groups[GroupMonthBrackets], err = e.bracketGroup(segs.Months, base+monthOffset, e.palette.MonthBracket)
	if err != nil {
		return groups, segs, err
	}
	groups[GroupYearBrackets], err = e.bracketGroup(segs.Years, base+yearOffset, e.palette.YearBracket)
	if err != nil {
		return groups, segs, err
	}
	return groups, segs, nil
}

// BarHeight scales total against top into [-maxH, 0]. Bars are negative so
// they grow upward from the baseline.
func BarHeight(total, top decimal.Decimal, maxH float64) float64 {
	if top.Sign() <= 0 || total.Sign() <= 0 {
		return 0
	}
	return -total.Div(top).InexactFloat64() * maxH
}

func (e *Engine) bracketGroup(buckets []Bucket, y float64, c color.RGBA) ([]Primitive, error) {
	out := make([]Primitive, 0, len(buckets)*9)
	for _, b := range buckets {
		titleW := textWidth(b.Title, titleFontSize)
		start, end := Brackets(b, titleW+2*titlePadding)

		for _, br := range [...]Bracket{start, end} {
			for _, ln := range br.Lines(y, bracketDepth, bracketLine, bracketCap) {
				p, err := e.create(KindRect, X(ln.X), Y(ln.Y), Width(ln.W), Height(ln.H), Fill(c))
				if err != nil {
					return nil, err
				}
				out = append(out, p)
			}
		}

		title, err := e.create(KindText,
			X(b.Mid()-titleW/2), Y(y+bracketDepth/2+titleFontSize/3),
			FontSize(titleFontSize), Message(b.Title),
			Fill(c),
		)
		if err != nil {
			return nil, err
		}
		out = append(out, title)
	}
	return out, nil
}

func (e *Engine) create(kind Kind, props ...Prop) (Primitive, error) {
	p, err := e.factory(kind)
	if err != nil {
		return nil, err
	}
	p.Configure(props...)
	return p, nil
}

// textWidth estimates the rendered width of s; layout runs before any surface
// is available to measure with.
func textWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * glyphWidthRate
}
