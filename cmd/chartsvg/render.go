package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"salesgraph/chart"
	"salesgraph/internal/sales"
	"salesgraph/svgcanvas"
)

type renderOptions struct {
	DataPath  string
	Format    string
	Width     int
	Height    int
	Zoom      int
	Pan       int
	MaxZoom   int
	ZoomSpeed float64
}

func render(ctx context.Context, logger *zap.Logger, opts renderOptions, w io.Writer) error {
	svg, err := renderSVG(opts)
	if err != nil {
		return err
	}
	logger.Debug("svg rendered", zap.Int("bytes", len(svg)))

	switch strings.ToLower(opts.Format) {
	case "", "svg":
		_, err = w.Write(svg)
		return err
	case "png":
		return rasterize(ctx, logger, svg, w)
	default:
		return fmt.Errorf("unsupported format %q", opts.Format)
	}
}

// renderSVG lays the dataset out, applies the requested zoom and pan the way
// pointer input would, and draws one frame.
func renderSVG(opts renderOptions) ([]byte, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", opts.Width, opts.Height)
	}

	var records []sales.Record
	var err error
	if opts.DataPath != "" {
		records, err = sales.LoadFile(opts.DataPath)
	} else {
		records, err = sales.Sample()
	}
	if err != nil {
		return nil, err
	}

	e := chart.New(float64(opts.Width), float64(opts.Height),
		chart.WithMaxZoom(opts.MaxZoom),
		chart.WithZoomSpeed(opts.ZoomSpeed),
	)
	if err := e.Init(records); err != nil {
		return nil, err
	}
	if err := e.Start(); err != nil {
		return nil, err
	}

	cx, cy := float64(opts.Width)/2, float64(opts.Height)/2
	e.OnPointerMove(cx, cy)
	wheel := -1.0
	steps := opts.Zoom
	if steps < 0 {
		wheel, steps = 1, -steps
	}

	c := svgcanvas.New(float64(opts.Width), float64(opts.Height))
	for i := 0; i < steps; i++ {
		e.OnWheel(wheel)
		if err := e.Frame(c); err != nil {
			return nil, err
		}
	}
	if opts.Pan != 0 {
		e.Pan(float64(opts.Pan), 0)
	}
	if err := e.Frame(c); err != nil {
		return nil, err
	}
	return c.Bytes(), nil
}
