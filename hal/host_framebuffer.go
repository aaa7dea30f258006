package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
	frames uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames++
	return nil
}

func (f *hostFramebuffer) presented() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// ToRGBA expands any RGB565 framebuffer into dst, allocating it when nil or
// sized differently.
func ToRGBA(fb Framebuffer, dst *image.RGBA) *image.RGBA {
	w, h := fb.Width(), fb.Height()
	if dst == nil || dst.Bounds().Dx() != w || dst.Bounds().Dy() != h {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	if fb.Format() != PixelFormatRGB565 {
		return dst
	}

	src := fb.Buffer()
	stride := fb.StrideBytes()
	for y := 0; y < h; y++ {
		row := y * stride
		out := dst.Pix[y*dst.Stride:]
		for x := 0; x < w; x++ {
			off := row + x*2
			if off+1 >= len(src) {
				return dst
			}
			r, g, b := RGB888(uint16(src[off]) | uint16(src[off+1])<<8)
			j := x * 4
			out[j+0] = r
			out[j+1] = g
			out[j+2] = b
			out[j+3] = 0xFF
		}
	}
	return dst
}

func (f *hostFramebuffer) snapshot(dst *image.RGBA) *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	return ToRGBA(f, dst)
}
