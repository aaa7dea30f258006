package hal

import "errors"

// ErrStop is returned by an app step to end the run loop cleanly.
var ErrStop = errors.New("hal: stop")

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyHome
	KeyPageUp
	KeyPageDown
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerEventKind tells what a PointerEvent reports.
type PointerEventKind uint8

const (
	PointerMove PointerEventKind = iota + 1
	PointerDown
	PointerUp
	PointerWheel
)

func (k PointerEventKind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// PointerEvent is a mouse event in framebuffer coordinates. DeltaY follows the
// browser convention: negative when the wheel scrolls up.
type PointerEvent struct {
	Kind   PointerEventKind
	X, Y   int
	DeltaY float64
}

// Pointer provides mouse events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// HAL is the app's only contact point with the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
