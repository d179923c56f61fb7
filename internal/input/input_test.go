package input

import (
	"testing"

	"github.com/faiface/pixel/pixelgl"
)

func TestCOSMACMapIsComplete(t *testing.T) {
	if len(COSMACMap) != 16 {
		t.Fatalf("COSMACMap has %d entries, want 16", len(COSMACMap))
	}
	seen := make(map[byte]bool, 16)
	for _, logical := range COSMACMap {
		if logical > 0xF {
			t.Errorf("logical key %#x out of range", logical)
		}
		if seen[logical] {
			t.Errorf("logical key %#x mapped from more than one physical key", logical)
		}
		seen[logical] = true
	}
	if len(seen) != 16 {
		t.Errorf("only %d distinct logical keys mapped, want 16", len(seen))
	}
}

func TestCOSMACMapRowOne(t *testing.T) {
	want := map[pixelgl.Button]byte{
		pixelgl.Key1: 0x1, pixelgl.Key2: 0x2, pixelgl.Key3: 0x3, pixelgl.Key4: 0xC,
	}
	for btn, logical := range want {
		if COSMACMap[btn] != logical {
			t.Errorf("COSMACMap[%v] = %#x, want %#x", btn, COSMACMap[btn], logical)
		}
	}
}
