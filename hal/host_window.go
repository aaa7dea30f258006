//go:build cgo

package hal

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"salesgraph/internal/buildinfo"
)

// RunWindow starts a desktop window that displays the framebuffer and forwards
// keyboard and mouse input. It blocks until the window closes or the app
// returns ErrStop.
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	h := newHost(cfg)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	title := h.cfg.Title
	if title == "" {
		title = "Sales"
	}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*h.cfg.Scale, h.fb.height*h.cfg.Scale)
	ebiten.SetTPS(60)

	h.cfg.Logger.Debug("window open",
		zap.Int("width", h.fb.width),
		zap.Int("height", h.fb.height),
		zap.Int("scale", h.cfg.Scale),
	)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.ptr.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrStop) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil || g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	g.img = fb.snapshot(g.img)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
