// Command chartsvg renders a sales dataset to an SVG or PNG file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"salesgraph/internal/buildinfo"
	"salesgraph/internal/config"
	"salesgraph/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cmd := &cli.Command{
		Name:    "chartsvg",
		Usage:   "render a sales dataset as a bar chart image",
		Version: buildinfo.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Value:   cfg.DataPath,
				Usage:   "dataset file (JSON or YAML); empty uses the bundled sample",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   "-",
				Usage:   "output file, - for stdout",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: "svg",
				Usage: "svg or png",
			},
			&cli.IntFlag{Name: "width", Value: cfg.Width},
			&cli.IntFlag{Name: "height", Value: cfg.Height},
			&cli.IntFlag{Name: "zoom", Usage: "zoom steps around the center; negative zooms out"},
			&cli.IntFlag{Name: "pan", Usage: "horizontal pan in pixels"},
			&cli.StringFlag{Name: "log-level", Value: cfg.LogLevel},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger, err := logging.New(cmd.String("log-level"))
			if err != nil {
				return err
			}
			defer logger.Sync()

			opts := renderOptions{
				DataPath:  cmd.String("data"),
				Format:    cmd.String("format"),
				Width:     cmd.Int("width"),
				Height:    cmd.Int("height"),
				Zoom:      cmd.Int("zoom"),
				Pan:       cmd.Int("pan"),
				MaxZoom:   cfg.MaxZoom,
				ZoomSpeed: cfg.ZoomSpeed,
			}

			out := os.Stdout
			if path := cmd.String("out"); path != "-" {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			if err := render(ctx, logger, opts, out); err != nil {
				logger.Error("render failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
