package chip8

import "testing"

func TestKeypadDownUp(t *testing.T) {
	var k Keypad
	if k.IsDown(5) {
		t.Fatal("key should start up")
	}
	k.KeyDown(5)
	if !k.IsDown(5) {
		t.Fatal("key should be down after KeyDown")
	}
	k.KeyUp(5)
	if k.IsDown(5) {
		t.Fatal("key should be up after KeyUp")
	}
}

func TestKeyWaitResolvesOnDownOnly(t *testing.T) {
	var k Keypad
	k.ArmWait(3)
	if !k.Waiting() {
		t.Fatal("expected Waiting after ArmWait")
	}
	k.KeyUp(9) // an up event must never resolve a wait
	if !k.Waiting() {
		t.Fatal("key-up must not resolve a key-wait")
	}
	reg, resolved := k.KeyDown(0xA)
	if !resolved {
		t.Fatal("keydown should resolve an armed wait")
	}
	if reg != 3 {
		t.Errorf("resolved register = %d, want 3", reg)
	}
	if k.Waiting() {
		t.Fatal("wait should be disarmed after resolving")
	}
}

func TestKeyDownWithoutWaitDoesNotResolve(t *testing.T) {
	var k Keypad
	_, resolved := k.KeyDown(2)
	if resolved {
		t.Fatal("keydown with no armed wait must not report resolved")
	}
}
