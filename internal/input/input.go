// Package input maps physical keyboard keys onto the chip-8's sixteen
// logical keys (0x0-0xF) and turns a pixelgl window's key state into the
// normalized chip8.KeyEvent stream the core consumes. It knows nothing
// about the VM itself beyond that event type.
package input

import (
	"github.com/bradford-hamilton/chip8go/internal/chip8"
	"github.com/faiface/pixel/pixelgl"
)

// COSMACMap is the recommended default host-key layout:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var COSMACMap = map[pixelgl.Button]byte{
	pixelgl.Key1: 0x1, pixelgl.Key2: 0x2, pixelgl.Key3: 0x3, pixelgl.Key4: 0xC,
	pixelgl.KeyQ: 0x4, pixelgl.KeyW: 0x5, pixelgl.KeyE: 0x6, pixelgl.KeyR: 0xD,
	pixelgl.KeyA: 0x7, pixelgl.KeyS: 0x8, pixelgl.KeyD: 0x9, pixelgl.KeyF: 0xE,
	pixelgl.KeyZ: 0xA, pixelgl.KeyX: 0x0, pixelgl.KeyC: 0xB, pixelgl.KeyV: 0xF,
}

// QuitKey closes the run loop without requiring the window itself to be
// closed.
const QuitKey = pixelgl.KeyEscape

// Poller drains a pixelgl window's key state once per call, in the shape
// chip8.Options.PollInput expects.
type Poller struct {
	win    *pixelgl.Window
	keyMap map[pixelgl.Button]byte
}

// NewPoller wraps win with the COSMAC default key mapping.
func NewPoller(win *pixelgl.Window) *Poller {
	return &Poller{win: win, keyMap: COSMACMap}
}

// Poll reports any keys that changed state since the last call, plus
// whether the host asked to quit (window close or the escape key).
func (p *Poller) Poll() (events []chip8.KeyEvent, quit bool) {
	p.win.UpdateInput()
	if p.win.Closed() || p.win.JustPressed(QuitKey) {
		return nil, true
	}
	for btn, logical := range p.keyMap {
		switch {
		case p.win.JustPressed(btn):
			events = append(events, chip8.KeyEvent{Key: logical, Down: true})
		case p.win.JustReleased(btn):
			events = append(events, chip8.KeyEvent{Key: logical, Down: false})
		}
	}
	return events, false
}
