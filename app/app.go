// Package app wires the chart engine to a HAL: it feeds keyboard and pointer
// events in, renders a frame per step and presents it.
package app

import (
	"errors"
	"fmt"

	"salesgraph/chart"
	"salesgraph/hal"
	"salesgraph/internal/sales"
	"salesgraph/raster"
)

// Config selects the data and tuning for one app instance.
type Config struct {
	// Records is the series to chart. Nil selects the bundled sample.
	Records []sales.Record
	// Script is replayed one event per step ahead of live pointer input.
	Script []hal.PointerEvent
	Engine []chart.Option
}

type system struct {
	h       hal.HAL
	log     hal.Logger
	fb      hal.Framebuffer
	canvas  *raster.Canvas
	engine  *chart.Engine
	records []sales.Record
	script  []hal.PointerEvent
	frames  uint64
	err     error
}

// New charts the bundled sample.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig returns the per-tick step function for the host runners.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	return guard(h, s.step)
}

func newSystem(h hal.HAL, cfg Config) *system {
	s := &system{h: h, log: h.Logger(), script: append([]hal.PointerEvent(nil), cfg.Script...)}

	records := cfg.Records
	if records == nil {
		var err error
		if records, err = sales.Sample(); err != nil {
			s.err = fmt.Errorf("app: sample: %w", err)
			return s
		}
	}
	s.records = records

	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		s.err = errors.New("app: no framebuffer")
		return s
	}
	s.fb = disp.Framebuffer()
	s.canvas = raster.New(s.fb)
	s.engine = chart.New(float64(s.fb.Width()), float64(s.fb.Height()), cfg.Engine...)

	if err := s.engine.Init(records); err != nil {
		s.err = fmt.Errorf("app: init chart: %w", err)
		return s
	}
	if err := s.engine.Start(); err != nil {
		s.err = err
		return s
	}

	sum := sales.Summarize(records)
	s.logf("chart: %d days, %d months, %d years", sum.Days, len(s.engine.Months()), len(s.engine.Years()))
	if sum.Days > 0 {
		s.logf("chart: %s .. %s, top %s, total %s (%d transactions)",
			sum.First.Format("2006/01/02"), sum.Last.Format("2006/01/02"),
			sum.Top.StringFixed(2), sum.Sales.StringFixed(2), sum.Transactions)
	}
	return s
}

func (s *system) logf(format string, args ...any) {
	if s.log != nil {
		s.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}

func (s *system) step() error {
	if s.err != nil {
		return s.err
	}

	s.drainKeys()
	s.drainPointer()
	if len(s.script) > 0 {
		s.dispatch(s.script[0])
		s.script = s.script[1:]
	}

	if err := s.engine.Frame(s.canvas); err != nil {
		if errors.Is(err, chart.ErrStopped) {
			s.logf("chart: stopped after %d frames", s.frames)
			return hal.ErrStop
		}
		return err
	}
	s.frames++
	return s.fb.Present()
}

func (s *system) drainKeys() {
	in := s.h.Input()
	if in == nil || in.Keyboard() == nil {
		return
	}
	ch := in.Keyboard().Events()
	for {
		select {
		case ev := <-ch:
			if ev.Press {
				s.key(ev.Code)
			}
		default:
			return
		}
	}
}

func (s *system) key(code hal.KeyCode) {
	switch code {
	case hal.KeyEscape:
		s.engine.Stop()
	case hal.KeyHome:
		if err := s.engine.Init(s.records); err != nil {
			s.logf("chart: reset: %v", err)
		}
	case hal.KeyPageUp:
		s.engine.OnWheel(-1)
	case hal.KeyPageDown:
		s.engine.OnWheel(1)
	}
}

func (s *system) drainPointer() {
	in := s.h.Input()
	if in == nil || in.Pointer() == nil {
		return
	}
	ch := in.Pointer().Events()
	for {
		select {
		case ev := <-ch:
			s.dispatch(ev)
		default:
			return
		}
	}
}

func (s *system) dispatch(ev hal.PointerEvent) {
	switch ev.Kind {
	case hal.PointerMove:
		s.engine.OnPointerMove(float64(ev.X), float64(ev.Y))
	case hal.PointerDown:
		s.engine.OnPointerDown()
	case hal.PointerUp:
		s.engine.OnPointerUp()
	case hal.PointerWheel:
		s.engine.OnPointerMove(float64(ev.X), float64(ev.Y))
		s.engine.OnWheel(ev.DeltaY)
	}
}

// ZoomScript returns n wheel steps at (x, y); positive n zooms in.
func ZoomScript(x, y, n int) []hal.PointerEvent {
	delta := -1.0
	if n < 0 {
		delta, n = 1, -n
	}
	out := make([]hal.PointerEvent, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, hal.PointerEvent{Kind: hal.PointerWheel, X: x, Y: y, DeltaY: delta})
	}
	return out
}

// DragScript returns a press at (x, y), a drag by (dx, dy) and a release.
func DragScript(x, y, dx, dy int) []hal.PointerEvent {
	return []hal.PointerEvent{
		{Kind: hal.PointerMove, X: x, Y: y},
		{Kind: hal.PointerDown, X: x, Y: y},
		{Kind: hal.PointerMove, X: x + dx, Y: y + dy},
		{Kind: hal.PointerUp, X: x + dx, Y: y + dy},
	}
}
