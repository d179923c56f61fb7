package chip8

import "testing"

func TestClearZeroesEverything(t *testing.T) {
	var fb Framebuffer
	fb.Blit(0, 0, []byte{0xFF, 0xFF})
	fb.Clear()
	for _, p := range fb.Pixels() {
		if p != 0 {
			t.Fatal("framebuffer not fully cleared")
		}
	}
}

func TestBlitCollision(t *testing.T) {
	var fb Framebuffer
	if collided := fb.Blit(0, 0, []byte{0b10000000}); collided {
		t.Error("first blit onto a blank screen should not collide")
	}
	if collided := fb.Blit(0, 0, []byte{0b10000000}); !collided {
		t.Error("redrawing the same bit should collide")
	}
	if fb.At(0, 0) != 0 {
		t.Error("XORing the same bit twice should turn it back off")
	}
}

func TestBlitWrapsOriginAndOverflow(t *testing.T) {
	var fb Framebuffer
	// origin past the edge wraps to (0, 0)
	fb.Blit(DisplayWidth, DisplayHeight, []byte{0b10000000})
	if fb.At(0, 0) != 1 {
		t.Error("blit origin should wrap modulo display size")
	}

	var fb2 Framebuffer
	// a sprite drawn at the right edge wraps its overflow bits back to column 0
	fb2.Blit(DisplayWidth-1, 0, []byte{0b11000000})
	if fb2.At(DisplayWidth-1, 0) != 1 {
		t.Error("leftmost sprite bit should land at the origin column")
	}
	if fb2.At(0, 0) != 1 {
		t.Error("overflow bit should wrap to column 0, not clip")
	}
}

func TestBlitMultiRowSticky(t *testing.T) {
	var fb Framebuffer
	sprite := []byte{0b10000000, 0b10000000}
	fb.Blit(0, 0, sprite)
	// second row collides on redraw but first row doesn't yet
	collided := fb.Blit(0, 0, []byte{0b00000000, 0b10000000})
	if !collided {
		t.Error("collision on any touched row should be reported for the whole blit")
	}
}
