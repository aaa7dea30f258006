package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"salesgraph/app"
	"salesgraph/chart"
	"salesgraph/hal"
	"salesgraph/internal/buildinfo"
	"salesgraph/internal/config"
	"salesgraph/internal/logging"
	"salesgraph/internal/sales"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var hcfg hal.HeadlessConfig
	var zoom, pan int
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", cfg.Hz, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&hcfg.Snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	flag.IntVar(&hcfg.SnapshotScale, "snapshot-scale", cfg.Scale, "Pixel scale of the snapshot.")
	flag.StringVar(&cfg.DataPath, "data", cfg.DataPath, "Sales dataset (JSON or YAML); empty uses the bundled sample.")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Drawing surface width.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Drawing surface height.")
	flag.IntVar(&cfg.Scale, "scale", cfg.Scale, "Window pixels per surface pixel.")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error).")
	flag.IntVar(&zoom, "zoom", 0, "Scripted wheel steps at the center; negative zooms out.")
	flag.IntVar(&pan, "pan", 0, "Scripted horizontal drag in pixels.")
	flag.Parse()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()
	logger.Info("starting", zap.String("version", buildinfo.String()), zap.Bool("headless", hcfg.Enabled))

	var records []sales.Record
	if cfg.DataPath != "" {
		records, err = sales.LoadFile(cfg.DataPath)
		if err != nil {
			logger.Error("load dataset", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("dataset loaded", zap.String("path", cfg.DataPath), zap.Int("days", len(records)))
	}

	cx, cy := cfg.Width/2, cfg.Height/2
	script := app.ZoomScript(cx, cy, zoom)
	if pan != 0 {
		script = append(script, app.DragScript(cx, cy, pan, 0)...)
	}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, app.Config{
			Records: records,
			Script:  script,
			Engine:  []chart.Option{chart.WithMaxZoom(cfg.MaxZoom), chart.WithZoomSpeed(cfg.ZoomSpeed)},
		})
	}
	host := hal.HostConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  cfg.Scale,
		Title:  "Sales",
		Logger: logger,
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, host, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.Error("headless run", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(host, newApp); err != nil {
		logger.Error("window run", zap.Error(err))
		os.Exit(1)
	}
}
