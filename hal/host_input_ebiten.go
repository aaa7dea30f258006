//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var hostKeys = [...]struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyHome, KeyHome},
	{ebiten.KeyPageUp, KeyPageUp},
	{ebiten.KeyPageDown, KeyPageDown},
}

func (k *hostKeyboard) poll() {
	for _, hk := range hostKeys {
		if inpututil.IsKeyJustPressed(hk.key) {
			k.emit(hk.code, true)
		}
		if inpututil.IsKeyJustReleased(hk.key) {
			k.emit(hk.code, false)
		}
	}
}

func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	p.moveTo(x, y)

	// Releases are reported wherever the cursor is so drags never stick.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.emit(PointerEvent{Kind: PointerDown, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.emit(PointerEvent{Kind: PointerUp, X: x, Y: y})
	}

	// ebiten reports a positive yoff when scrolling up.
	if _, dy := ebiten.Wheel(); dy != 0 {
		p.emit(PointerEvent{Kind: PointerWheel, X: x, Y: y, DeltaY: -dy})
	}
}
