// Package config reads runtime settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds settings shared by the window, headless and export entrypoints.
type Config struct {
	DataPath  string  // dataset file; empty selects the bundled sample
	Width     int     // drawing surface width in pixels
	Height    int     // drawing surface height in pixels
	Scale     int     // window pixels per surface pixel
	Hz        int     // headless tick rate
	MaxZoom   int     // upper bound of the zoom tick counter
	ZoomSpeed float64 // exponent step per zoom tick
	LogLevel  string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:     640,
		Height:    360,
		Scale:     2,
		Hz:        60,
		MaxZoom:   30,
		ZoomSpeed: 0.05,
		LogLevel:  "info",
	}
}

// Load reads the given .env files (".env" when none are named) and then the
// environment. Missing files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv overlays SALESGRAPH_* variables on Default.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var err error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(key string, dst *int, min int) {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" || err != nil {
			return
		}
		n, perr := strconv.Atoi(strings.TrimSpace(v))
		if perr != nil || n < min {
			err = fmt.Errorf("config: %s=%q: want an integer >= %d", key, v, min)
			return
		}
		*dst = n
	}

	str("SALESGRAPH_DATA", &cfg.DataPath)
	str("SALESGRAPH_LOG_LEVEL", &cfg.LogLevel)
	num("SALESGRAPH_WIDTH", &cfg.Width, 1)
	num("SALESGRAPH_HEIGHT", &cfg.Height, 1)
	num("SALESGRAPH_SCALE", &cfg.Scale, 1)
	num("SALESGRAPH_HZ", &cfg.Hz, 1)
	num("SALESGRAPH_MAX_ZOOM", &cfg.MaxZoom, 0)

	if v, ok := lookup("SALESGRAPH_ZOOM_SPEED"); ok && strings.TrimSpace(v) != "" && err == nil {
		f, perr := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if perr != nil || f <= 0 {
			err = fmt.Errorf("config: SALESGRAPH_ZOOM_SPEED=%q: want a positive number", v)
		} else {
			cfg.ZoomSpeed = f
		}
	}
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
