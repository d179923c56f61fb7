package chip8

import "fmt"

// MemorySize is the total addressable byte range, 0x000-0xFFF.
const MemorySize = 4096

// ProgramStart is the address where loaded ROMs are placed. Bytes below
// this are reserved for the font set.
const ProgramStart = 0x200

// maxROMSize is the largest ROM that fits between ProgramStart and the top
// of memory.
const maxROMSize = MemorySize - ProgramStart

// fontSet holds the built-in hex digit glyphs (0-F), 5 bytes each, loaded
// at the very bottom of memory. Each byte is one row of a 4x5 sprite with
// the glyph bits in the high nibble.
var fontSet = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// fontBytesPerGlyph is used by FX29 to find a digit's sprite address.
const fontBytesPerGlyph = 5

// Memory is the chip-8's linear 4KiB byte array. It has no write
// protection; the font set is loaded once at construction and everything
// above it is zeroed until a ROM is loaded.
type Memory struct {
	bytes [MemorySize]byte
}

// NewMemory returns a Memory with the hex font preloaded at address 0.
func NewMemory() *Memory {
	m := &Memory{}
	copy(m.bytes[:len(fontSet)], fontSet[:])
	return m
}

// ReadByte reads a single byte. Addresses are masked to the 12 bits that
// are actually wired; nothing outside MemorySize can be reached.
func (m *Memory) ReadByte(addr uint16) byte {
	return m.bytes[addr&0x0FFF]
}

// WriteByte writes a single byte at addr.
func (m *Memory) WriteByte(addr uint16, v byte) {
	m.bytes[addr&0x0FFF] = v
}

// LoadROM copies rom into memory starting at ProgramStart. It returns an
// error rather than panicking if the ROM doesn't fit - oversized ROMs are
// a startup failure, not a VM fault.
func (m *Memory) LoadROM(rom []byte) error {
	if len(rom) > maxROMSize {
		return fmt.Errorf("rom too large: %d bytes, max %d", len(rom), maxROMSize)
	}
	copy(m.bytes[ProgramStart:], rom)
	return nil
}
