package hal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64

	// Snapshot, when set, is a PNG path the final frame is written to.
	Snapshot      string
	SnapshotScale int
}

// RunHeadless runs the app without opening a window. It returns nil when the
// tick budget is spent or the app returns ErrStop.
func RunHeadless(ctx context.Context, hc HostConfig, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(hc)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	log := h.cfg.Logger
	log.Debug("headless start", zap.Int("hz", cfg.Hz), zap.Uint64("ticks", cfg.Ticks))

	var tick uint64
	err := func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
				if step != nil {
					if err := step(); err != nil {
						if errors.Is(err, ErrStop) {
							return nil
						}
						return err
					}
				}
				tick++
				if cfg.Ticks > 0 && tick >= cfg.Ticks {
					return nil
				}
			}
		}
	}()
	log.Debug("headless done", zap.Uint64("ticks", tick), zap.Uint64("frames", h.fb.presented()), zap.Error(err))
	if err != nil {
		return err
	}

	if cfg.Snapshot != "" {
		if err := WriteSnapshot(h.fb, cfg.Snapshot, cfg.SnapshotScale); err != nil {
			return err
		}
		log.Info("snapshot written", zap.String("path", cfg.Snapshot))
	}
	return nil
}
