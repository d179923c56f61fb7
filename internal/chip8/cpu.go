// Package chip8 implements the chip-8 virtual machine core: memory, the
// register file, the monochrome framebuffer, the 16-key keypad (including
// the blocking key-wait protocol), and the fetch-decode-execute engine
// that drives them. Everything outside this package - the window that
// presents the framebuffer, the speaker that plays the beep, and the
// keyboard that produces key events - is an external collaborator; the
// core only ever emits framebuffer snapshots and a beep on/off signal and
// only ever consumes logical keydown/keyup events.
package chip8

import (
	"fmt"
	"math/rand"
	"time"
)

// Quirks toggles the two documented semantic forks in the 8XY6/8XYE
// shift pair and the FX55/FX65 index-register behaviour. Both default
// to false, which reproduces this spec's reference behaviour; set either
// to true for broader ROM compatibility with the historical CHIP-8
// interpreters that diverge from it.
type Quirks struct {
	// ShiftUsesVy makes 8XY6/8XYE read the operand from Vy instead of
	// shifting Vx in place.
	ShiftUsesVy bool
	// IndexIncrementOnStore makes FX55/FX65 set I = I + X + 1 after the
	// register block copy, instead of leaving I unchanged.
	IndexIncrementOnStore bool
}

// KeyEvent is a single normalized input event: a logical key (0x0-0xF)
// going down or up. The input collaborator is responsible for mapping
// physical keys onto this range.
type KeyEvent struct {
	Key  byte
	Down bool
}

// VM is the chip-8 virtual machine. It owns all interpreter state and
// has no knowledge of how it is presented, played, or fed input - those
// are supplied to Run as callbacks.
type VM struct {
	mem   *Memory
	V     [16]byte
	I     uint16
	PC    uint16
	stack *callStack

	FB   Framebuffer
	Keys Keypad

	DT byte
	ST byte

	quirks Quirks
	rng    *rand.Rand

	drawFlag bool
}

// NewVM returns a freshly constructed VM: zeroed registers and memory
// except for the preloaded font set, and PC at ProgramStart.
func NewVM(quirks Quirks) *VM {
	return &VM{
		mem:    NewMemory(),
		PC:     ProgramStart,
		stack:  newCallStack(),
		quirks: quirks,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// LoadROM places rom at ProgramStart. Anything above it that the ROM
// doesn't fill stays zeroed.
func (vm *VM) LoadROM(rom []byte) error {
	return vm.mem.LoadROM(rom)
}

// HandleKeyEvent feeds a single normalized input event into the keypad,
// resolving a pending FX0A key-wait if one is armed.
func (vm *VM) HandleKeyEvent(e KeyEvent) {
	key := e.Key & 0xF
	if !e.Down {
		vm.Keys.KeyUp(key)
		return
	}
	if reg, resolved := vm.Keys.KeyDown(key); resolved {
		vm.V[reg] = key
	}
}

// Waiting reports whether the CPU is parked in FX0A's AwaitingKey state.
// While true, Step is a no-op: fetch-decode is skipped but timers and
// input keep flowing.
func (vm *VM) Waiting() bool {
	return vm.Keys.Waiting()
}

// DrawFlag reports whether CLS or DXYN touched the framebuffer since the
// last call, and clears the flag.
func (vm *VM) DrawFlag() bool {
	flag := vm.drawFlag
	vm.drawFlag = false
	return flag
}

// TickTimers decrements DT and ST at most once each, per spec: DT simply
// counts down, ST additionally reports whether the beep signal should be
// asserted for this tick (true while ST is still non-zero going into the
// decrement).
func (vm *VM) TickTimers() (beepOn bool) {
	if vm.DT > 0 {
		vm.DT--
	}
	if vm.ST > 0 {
		beepOn = true
		vm.ST--
	}
	return beepOn
}

// Step performs one fetch-decode-execute cycle. It is a no-op while the
// CPU is key-waiting, and a no-op if PC sits on the last byte of memory
// (fetching would read past the 4KiB array).
func (vm *VM) Step() error {
	if vm.Waiting() {
		return nil
	}
	if vm.PC+1 >= MemorySize {
		return nil
	}

	op := uint16(vm.mem.ReadByte(vm.PC))<<8 | uint16(vm.mem.ReadByte(vm.PC+1))
	vm.PC += 2

	return vm.execute(op)
}

// DebugString renders a snapshot of CPU state: registers, PC, stack
// depth, and I. It performs no I/O itself - callers decide where to send
// it. This is not a disassembler or a debugger; it only formats state
// that already exists.
func (vm *VM) DebugString() string {
	return fmt.Sprintf(
		"pc=%#04x i=%#04x sp=%d dt=%d st=%d v=%02x",
		vm.PC, vm.I, vm.stack.depth(), vm.DT, vm.ST, vm.V,
	)
}
