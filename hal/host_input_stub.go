//go:build !cgo

package hal

func (k *hostKeyboard) poll() {
	// No keyboard support without the window backend.
}

func (p *hostPointer) poll() {
	// No pointer support without the window backend.
}
