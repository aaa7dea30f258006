package svgcanvas

import (
	"encoding/xml"
	"image/color"
	"io"
	"math"
	"strings"
	"testing"

	"salesgraph/chart"
)

var _ chart.Surface = (*Canvas)(nil)

func TestRectFill(t *testing.T) {
	c := New(100, 50)
	c.Clear()
	c.BeginPath()
	c.Rect(1, 40, 10, -20.5)
	c.SetFillColor(color.RGBA{B: 255, A: 255})
	c.Fill()
	c.ClosePath()

	out := string(c.Bytes())
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50"`) {
		t.Fatalf("header:\n%s", out)
	}
	if !strings.Contains(out, `<path d="M1 40 H11 V19.5 H1 Z" fill="rgb(0,0,255)" fill-rule="evenodd"/>`) {
		t.Fatalf("rect path missing:\n%s", out)
	}
}

func TestFullCircleUsesTwoArcs(t *testing.T) {
	c := New(10, 10)
	c.BeginPath()
	c.Arc(5, 5, 2, 0, 2*math.Pi)
	c.Stroke()

	out := string(c.Bytes())
	if n := strings.Count(out, "A2 2 0 0 1"); n != 2 {
		t.Fatalf("arc commands=%d:\n%s", n, out)
	}
	if !strings.Contains(out, `M7 5 A2 2 0 0 1 3 5 A2 2 0 0 1 7 5"`) {
		t.Fatalf("circle path:\n%s", out)
	}
	if !strings.Contains(out, `fill="none" stroke="rgb(0,0,0)" stroke-width="1"`) {
		t.Fatalf("stroke attrs:\n%s", out)
	}
}

func TestLargeArcFlag(t *testing.T) {
	c := New(10, 10)
	c.BeginPath()
	c.Arc(0, 0, 1, 0, 1.5*math.Pi)
	c.Fill()
	if !strings.Contains(string(c.Bytes()), "A1 1 0 1 1 0 -1") {
		t.Fatalf("large arc:\n%s", c.Bytes())
	}
}

func TestTextIsEscaped(t *testing.T) {
	c := New(10, 10)
	c.SetFont(10, `Fancy "Sans"`)
	c.SetFillColor(color.RGBA{R: 1, G: 2, B: 3, A: 255})
	c.FillText("<b>&", 1, 2)
	c.StrokeText("x", 3, 4)

	out := string(c.Bytes())
	if !strings.Contains(out, `font-family="Fancy &#34;Sans&#34;" font-size="10" fill="rgb(1,2,3)">&lt;b&gt;&amp;</text>`) {
		t.Fatalf("fill text:\n%s", out)
	}
	if !strings.Contains(out, `<text x="3" y="4"`) || !strings.Contains(out, `stroke="rgb(0,0,0)"`) {
		t.Fatalf("stroke text:\n%s", out)
	}

	// The document must be well-formed XML.
	d := xml.NewDecoder(strings.NewReader(out))
	for {
		if _, err := d.Token(); err != nil {
			if err == io.EOF {
				break
			}
			t.Fatalf("invalid xml: %v", err)
		}
	}
}

func TestSaveRestoreAndClear(t *testing.T) {
	c := New(10, 10)
	c.SetLineWidth(3)
	c.Save()
	c.SetLineWidth(7)
	c.Restore()
	c.BeginPath()
	c.Rect(0, 0, 1, 1)
	c.Stroke()
	if !strings.Contains(string(c.Bytes()), `stroke-width="3"`) {
		t.Fatalf("line width not restored:\n%s", c.Bytes())
	}

	c.Clear()
	out := string(c.Bytes())
	if strings.Count(out, "<path") != 0 || !strings.Contains(out, `fill="rgb(255,255,255)"`) {
		t.Fatalf("clear:\n%s", out)
	}
}
