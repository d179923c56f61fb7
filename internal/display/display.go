// Package display presents the chip-8's 64x32 monochrome framebuffer in
// a pixelgl window, scaling each logical pixel to a block of screen
// pixels with nearest-neighbour semantics. It is a pure presentation
// collaborator: it has no opinion about CPU state beyond the pixel grid
// it's handed.
package display

import (
	"fmt"

	"github.com/bradford-hamilton/chip8go/internal/chip8"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

// DefaultScale is the nearest-neighbour block size applied to each
// logical chip-8 pixel when no --scale flag overrides it.
const DefaultScale = 12

// Window wraps a pixelgl window sized to the chip-8's fixed 64x32
// resolution at the given scale.
type Window struct {
	*pixelgl.Window
	scale float64
}

// NewWindow opens a window sized chip8.DisplayWidth*scale by
// chip8.DisplayHeight*scale.
func NewWindow(scale int) (*Window, error) {
	if scale <= 0 {
		scale = DefaultScale
	}
	width := float64(chip8.DisplayWidth * scale)
	height := float64(chip8.DisplayHeight * scale)

	cfg := pixelgl.WindowConfig{
		Title:  "chip8go",
		Bounds: pixel.R(0, 0, width, height),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("display: creating window: %w", err)
	}
	return &Window{Window: win, scale: float64(scale)}, nil
}

// DrawGraphics renders fb, one filled rectangle of scale x scale pixels
// per lit chip-8 pixel, nearest-neighbour style.
func (w *Window) DrawGraphics(fb chip8.Framebuffer) {
	w.Clear(colornames.Black)

	draw := imdraw.New(nil)
	draw.Color = pixel.RGB(1, 1, 1)

	pixels := fb.Pixels()
	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			if pixels[y*chip8.DisplayWidth+x] == 0 {
				continue
			}
			// Flip y: chip-8 row 0 is the top of the screen, pixelgl's
			// origin is bottom-left.
			screenY := float64(chip8.DisplayHeight-1-y) * w.scale
			screenX := float64(x) * w.scale
			draw.Push(pixel.V(screenX, screenY))
			draw.Push(pixel.V(screenX+w.scale, screenY+w.scale))
			draw.Rectangle(0)
		}
	}

	draw.Draw(w)
	w.Update()
}
