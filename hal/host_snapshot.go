package hal

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// WriteSnapshot encodes fb as a PNG at path, upscaled by an integer factor.
func WriteSnapshot(fb Framebuffer, path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, Scaled(fb, scale)); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return f.Close()
}

// Scaled returns fb as an image enlarged with nearest-neighbour sampling so
// pixel edges stay crisp.
func Scaled(fb Framebuffer, scale int) image.Image {
	var src *image.RGBA
	if hf, ok := fb.(*hostFramebuffer); ok {
		src = hf.snapshot(nil)
	} else {
		src = ToRGBA(fb, nil)
	}
	if scale <= 1 {
		return src
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
