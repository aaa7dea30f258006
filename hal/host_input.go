package hal

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(code KeyCode, press bool) {
	select {
	case k.ch <- KeyEvent{Code: code, Press: press}:
	default:
	}
}

type hostPointer struct {
	ch chan PointerEvent

	x, y  int
	moved bool
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 256)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}

// moveTo reports a cursor position, dropping repeats of the last one.
func (p *hostPointer) moveTo(x, y int) {
	if p.moved && x == p.x && y == p.y {
		return
	}
	p.x, p.y, p.moved = x, y, true
	p.emit(PointerEvent{Kind: PointerMove, X: x, Y: y})
}
