package chip8

// Keypad is the 16-key logical keypad (0x0-0xF) plus the key-wait latch
// that FX0A arms. It holds no knowledge of physical keys - that mapping
// lives in the display/input collaborator.
type Keypad struct {
	down [16]bool

	waiting bool
	target  byte
}

// IsDown reports whether logical key is currently held.
func (k *Keypad) IsDown(key byte) bool {
	return k.down[key&0xF]
}

// Waiting reports whether the keypad is parked in FX0A's AwaitingKey state.
func (k *Keypad) Waiting() bool {
	return k.waiting
}

// ArmWait transitions Running -> AwaitingKey(target). Any keydown from
// here resolves the wait.
func (k *Keypad) ArmWait(target byte) {
	k.waiting = true
	k.target = target & 0xF
}

// KeyDown marks key as pressed and, if a key-wait is armed, resolves it.
// resolved reports whether a wait was satisfied by this event, in which
// case reg names the register that should receive key.
func (k *Keypad) KeyDown(key byte) (reg byte, resolved bool) {
	key &= 0xF
	k.down[key] = true
	if k.waiting {
		k.waiting = false
		return k.target, true
	}
	return 0, false
}

// KeyUp marks key as released. Key-up never resolves a wait - only a
// keydown can.
func (k *Keypad) KeyUp(key byte) {
	k.down[key&0xF] = false
}
