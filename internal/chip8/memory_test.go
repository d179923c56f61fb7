package chip8

import "testing"

func TestNewMemoryLoadsFont(t *testing.T) {
	m := NewMemory()
	want := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0} // glyph '0'
	for i, b := range want {
		if got := m.ReadByte(uint16(i)); got != b {
			t.Errorf("font byte %d = %#x, want %#x", i, got, b)
		}
	}
}

func TestMemoryReadWriteByte(t *testing.T) {
	m := NewMemory()
	m.WriteByte(0x300, 0xAB)
	if got := m.ReadByte(0x300); got != 0xAB {
		t.Errorf("ReadByte = %#x, want 0xab", got)
	}
}

func TestLoadROMPlacesAtProgramStart(t *testing.T) {
	m := NewMemory()
	rom := []byte{0x00, 0xE0, 0x12, 0x00}
	if err := m.LoadROM(rom); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	for i, b := range rom {
		if got := m.ReadByte(uint16(ProgramStart + i)); got != b {
			t.Errorf("memory[%#x] = %#x, want %#x", ProgramStart+i, got, b)
		}
	}
}

func TestLoadROMRejectsOversize(t *testing.T) {
	m := NewMemory()
	if err := m.LoadROM(make([]byte, maxROMSize+1)); err == nil {
		t.Error("expected an error for an oversized rom")
	}
}
