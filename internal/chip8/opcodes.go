package chip8

import (
	"fmt"
	"os"
)

// execute decodes a single fetched opcode and applies its effect. PC has
// already been advanced past the opcode by the time this runs; jump and
// skip instructions adjust it further from there. Unrecognised opcodes
// are reported but never fault the VM.
func (vm *VM) execute(op uint16) error {
	x := byte(op >> 8 & 0xF)
	y := byte(op >> 4 & 0xF)
	n := byte(op & 0xF)
	nn := byte(op & 0xFF)
	nnn := op & 0xFFF

	switch op & 0xF000 {
	case 0x0000:
		switch op {
		case 0x00E0: // CLS
			vm.FB.Clear()
			vm.drawFlag = true
		case 0x00EE: // RET
			addr, err := vm.stack.pop()
			if err != nil {
				return err
			}
			vm.PC = addr
		default:
			vm.unknownOpcode(op)
		}

	case 0x1000: // JP NNN
		vm.PC = nnn

	case 0x2000: // CALL NNN
		if err := vm.stack.push(vm.PC); err != nil {
			return err
		}
		vm.PC = nnn

	case 0x3000: // SE Vx, NN
		if vm.V[x] == nn {
			vm.PC += 2
		}

	case 0x4000: // SNE Vx, NN
		if vm.V[x] != nn {
			vm.PC += 2
		}

	case 0x5000: // SE Vx, Vy
		if n != 0 {
			vm.unknownOpcode(op)
			break
		}
		if vm.V[x] == vm.V[y] {
			vm.PC += 2
		}

	case 0x6000: // LD Vx, NN
		vm.V[x] = nn

	case 0x7000: // ADD Vx, NN (VF unchanged)
		vm.V[x] += nn

	case 0x8000:
		vm.execute8xy(op, x, y)

	case 0x9000: // SNE Vx, Vy
		if vm.V[x] != vm.V[y] {
			vm.PC += 2
		}

	case 0xA000: // LD I, NNN
		vm.I = nnn

	case 0xB000: // JP V0, NNN
		vm.PC = (nnn + uint16(vm.V[0])) & 0xFFF

	case 0xC000: // RND Vx, NN
		vm.V[x] = byte(vm.rng.Intn(256)) & nn

	case 0xD000: // DRW Vx, Vy, N
		vm.drawSprite(x, y, n)

	case 0xE000:
		switch op & 0xFF {
		case 0x9E: // SKP Vx
			if vm.Keys.IsDown(vm.V[x]) {
				vm.PC += 2
			}
		case 0xA1: // SKNP Vx
			if !vm.Keys.IsDown(vm.V[x]) {
				vm.PC += 2
			}
		default:
			vm.unknownOpcode(op)
		}

	case 0xF000:
		return vm.executeFx(op, x)

	default:
		vm.unknownOpcode(op)
	}

	return nil
}

// execute8xy handles the arithmetic/logic opcode family sharing the
// 0x8--- high nibble; all of them write only Vx (and sometimes VF).
func (vm *VM) execute8xy(op uint16, x, y byte) {
	switch op & 0xF {
	case 0x0: // LD Vx, Vy
		vm.V[x] = vm.V[y]
	case 0x1: // OR
		vm.V[x] |= vm.V[y]
	case 0x2: // AND
		vm.V[x] &= vm.V[y]
	case 0x3: // XOR
		vm.V[x] ^= vm.V[y]
	case 0x4: // ADD Vx, Vy
		sum := uint16(vm.V[x]) + uint16(vm.V[y])
		vm.V[x] = byte(sum)
		if sum > 0xFF {
			vm.V[0xF] = 1
		} else {
			vm.V[0xF] = 0
		}
	case 0x5: // SUB Vx, Vy
		vx, vy := vm.V[x], vm.V[y]
		vm.V[x] = vx - vy
		if vx >= vy {
			vm.V[0xF] = 1
		} else {
			vm.V[0xF] = 0
		}
	case 0x6: // SHR Vx {, Vy}
		src := vm.V[x]
		if vm.quirks.ShiftUsesVy {
			src = vm.V[y]
		}
		dropped := src & 0x1
		vm.V[x] = src >> 1
		vm.V[0xF] = dropped
	case 0x7: // SUBN Vx, Vy
		vx, vy := vm.V[x], vm.V[y]
		vm.V[x] = vy - vx
		if vy >= vx {
			vm.V[0xF] = 1
		} else {
			vm.V[0xF] = 0
		}
	case 0xE: // SHL Vx {, Vy}
		src := vm.V[x]
		if vm.quirks.ShiftUsesVy {
			src = vm.V[y]
		}
		dropped := (src >> 7) & 0x1
		vm.V[x] = src << 1
		vm.V[0xF] = dropped
	default:
		vm.unknownOpcode(op)
	}
}

// executeFx handles the 0xF--- family: timers, key-wait, the font
// lookup, BCD conversion, and the register/memory block copies.
func (vm *VM) executeFx(op uint16, x byte) error {
	switch op & 0xFF {
	case 0x07: // LD Vx, DT
		vm.V[x] = vm.DT
	case 0x0A: // LD Vx, K
		vm.Keys.ArmWait(x)
	case 0x15: // LD DT, Vx
		vm.DT = vm.V[x]
	case 0x18: // LD ST, Vx
		vm.ST = vm.V[x]
	case 0x1E: // ADD I, Vx
		vm.I = (vm.I + uint16(vm.V[x])) & 0xFFF
	case 0x29: // LD F, Vx
		vm.I = uint16(vm.V[x]&0xF) * fontBytesPerGlyph
	case 0x33: // LD B, Vx
		b := vm.V[x]
		vm.mem.WriteByte(vm.I, b/100)
		vm.mem.WriteByte(vm.I+1, (b/10)%10)
		vm.mem.WriteByte(vm.I+2, b%10)
	case 0x55: // LD [I], Vx
		for i := byte(0); i <= x; i++ {
			vm.mem.WriteByte(vm.I+uint16(i), vm.V[i])
		}
		if vm.quirks.IndexIncrementOnStore {
			vm.I = (vm.I + uint16(x) + 1) & 0xFFF
		}
	case 0x65: // LD Vx, [I]
		for i := byte(0); i <= x; i++ {
			vm.V[i] = vm.mem.ReadByte(vm.I + uint16(i))
		}
		if vm.quirks.IndexIncrementOnStore {
			vm.I = (vm.I + uint16(x) + 1) & 0xFFF
		}
	default:
		vm.unknownOpcode(op)
	}
	return nil
}

// drawSprite implements DXYN: blit n rows read from [I..I+n) to (Vx, Vy),
// XOR-composited with wraparound, VF set on any collision.
func (vm *VM) drawSprite(x, y, n byte) {
	sprite := make([]byte, n)
	for row := byte(0); row < n; row++ {
		sprite[row] = vm.mem.ReadByte(vm.I + uint16(row))
	}
	collided := vm.FB.Blit(vm.V[x], vm.V[y], sprite)
	if collided {
		vm.V[0xF] = 1
	} else {
		vm.V[0xF] = 0
	}
	vm.drawFlag = true
}

// unknownOpcode records a diagnostic for an unrecognised instruction.
// Per spec this never halts the VM - it's logged and execution moves on.
func (vm *VM) unknownOpcode(op uint16) {
	fmt.Fprintf(os.Stderr, "chip8: unknown opcode %#04x at pc=%#04x\n", op, vm.PC-2)
}
