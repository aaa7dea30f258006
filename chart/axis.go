package chart

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"salesgraph/internal/sales"
)

// Bucket is a contiguous run of records sharing a calendar month or year.
type Bucket struct {
	Label string // "05" for months, "2024" for years
	Title string // "May" for months, "2024" for years
	Year  int
	Month time.Month // zero for year buckets

	Count      int
	StartIndex int
	StartDate  time.Time
	EndDate    time.Time

	// Horizontal positions of the first and last member.
	StartExtent float64
	EndExtent   float64
}

// Mid returns the horizontal midpoint of the bucket's extents.
func (b Bucket) Mid() float64 { return b.StartExtent + (b.EndExtent-b.StartExtent)/2 }

// Segments holds month and year buckets in first-seen order.
type Segments struct {
	Months []Bucket
	Years  []Bucket
}

// Segment partitions chronologically ordered dates into month and year buckets
// in a single pass. Member i sits at origin + i*spacing.
func Segment(dates []time.Time, spacing, origin float64) Segments {
	var out Segments
	if len(dates) == 0 {
		return out
	}

	closeBucket := func(b *Bucket, end time.Time) {
		b.EndDate = end
		b.StartExtent = origin + float64(b.StartIndex)*spacing
		b.EndExtent = origin + float64(b.StartIndex+b.Count-1)*spacing
	}

	for i, d := range dates {
		if n := len(out.Months); n > 0 && sameMonth(out.Months[n-1], d) {
			out.Months[n-1].Count++
		} else {
			if n > 0 {
				closeBucket(&out.Months[n-1], dates[i-1])
			}
			out.Months = append(out.Months, monthBucket(d, i))
		}

		if n := len(out.Years); n > 0 && out.Years[n-1].Year == d.Year() {
			out.Years[n-1].Count++
		} else {
			if n > 0 {
				closeBucket(&out.Years[n-1], dates[i-1])
			}
			out.Years = append(out.Years, yearBucket(d, i))
		}
	}

	last := dates[len(dates)-1]
	closeBucket(&out.Months[len(out.Months)-1], last)
	closeBucket(&out.Years[len(out.Years)-1], last)
	return out
}

func sameMonth(b Bucket, d time.Time) bool {
	return b.Year == d.Year() && b.Month == d.Month()
}

func monthBucket(d time.Time, i int) Bucket {
	return Bucket{
		Label:      fmt.Sprintf("%02d", int(d.Month())),
		Title:      sales.MonthShort(d.Month()),
		Year:       d.Year(),
		Month:      d.Month(),
		Count:      1,
		StartIndex: i,
		StartDate:  d,
	}
}

func yearBucket(d time.Time, i int) Bucket {
	label := strconv.Itoa(d.Year())
	return Bucket{
		Label:      label,
		Title:      label,
		Year:       d.Year(),
		Count:      1,
		StartIndex: i,
		StartDate:  d,
	}
}

// Side tells which end of a bucket a bracket marks.
type Side uint8

const (
	SideStart Side = iota
	SideEnd
)

// Bracket is one mini-bracket spanning [X0, X1].
type Bracket struct {
	Side   Side
	X0, X1 float64
}

// Brackets splits a bucket into a start and an end bracket that straddle its
// midpoint, leaving a gap of up to gap pixels between them for the title.
func Brackets(b Bucket, gap float64) (start, end Bracket) {
	span := b.EndExtent - b.StartExtent
	g := math.Min(math.Max(gap, 0), span)
	mid := b.StartExtent + span/2
	start = Bracket{Side: SideStart, X0: b.StartExtent, X1: mid - g/2}
	end = Bracket{Side: SideEnd, X0: mid + g/2, X1: b.EndExtent}
	return start, end
}

// Line is an axis-aligned line segment drawn as a thin rectangle.
type Line struct {
	X, Y, W, H float64
}

// Lines returns the four segments of the bracket hanging from y: the outer
// upright, its two caps, and the rule running toward the bucket's midpoint.
func (br Bracket) Lines(y, depth, thickness, capLen float64) [4]Line {
	capLen = math.Min(capLen, math.Max(br.X1-br.X0, 0)+thickness)
	rule := Line{X: br.X0, Y: y + depth/2 - thickness/2, W: br.X1 - br.X0, H: thickness}
	if br.Side == SideStart {
		return [4]Line{
			{X: br.X0, Y: y, W: thickness, H: depth},
			{X: br.X0, Y: y, W: capLen, H: thickness},
			{X: br.X0, Y: y + depth - thickness, W: capLen, H: thickness},
			rule,
		}
	}
	return [4]Line{
		{X: br.X1 - thickness, Y: y, W: thickness, H: depth},
		{X: br.X1 - capLen, Y: y, W: capLen, H: thickness},
		{X: br.X1 - capLen, Y: y + depth - thickness, W: capLen, H: thickness},
		rule,
	}
}
