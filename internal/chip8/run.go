package chip8

import (
	"context"
	"time"
)

// instructionRate and timerRate are the default run loop cadences. The
// source this spec is modeled on mixes timer decrement into the same
// ~2ms sleep as instruction fetch, giving an effective timer rate near
// 500Hz instead of the platform's 60Hz. This implementation deliberately
// decouples the two onto independent tickers so DT/ST always run at a
// faithful 60Hz regardless of how fast instructions execute - a documented
// deviation, not an oversight.
const (
	instructionRate = 500 // Hz
	timerRate       = 60  // Hz
)

// Options configures a Run invocation. PollInput, OnBeep, and OnFrame are
// how the VM talks to its external collaborators; any of them may be nil.
type Options struct {
	// InstructionPeriod overrides the fetch-decode-execute cadence.
	// Defaults to time.Second/instructionRate.
	InstructionPeriod time.Duration
	// TimerPeriod overrides the DT/ST decrement cadence. Defaults to
	// time.Second/timerRate.
	TimerPeriod time.Duration

	// PollInput is called once per instruction tick to drain pending
	// input events. quit signals the input collaborator wants the VM to
	// stop (window closed, escape key, etc).
	PollInput func() (events []KeyEvent, quit bool)

	// OnBeep is called once per timer tick with whether the sound timer
	// is non-zero for that tick.
	OnBeep func(on bool)

	// OnFrame is called after any tick whose instruction touched the
	// framebuffer (CLS or DXYN).
	OnFrame func(fb Framebuffer)
}

// Run drives the fetch-decode-execute engine until ctx is cancelled, the
// input collaborator signals quit, or a fatal VM error occurs (stack
// overflow/underflow). It returns nil on a clean stop and the triggering
// error otherwise.
//
// Timers decrement on their own ticker. Within an instruction tick the
// order is fixed: input is ingested, one instruction executes, then the
// loop waits for the next tick. A keydown and that same tick's FX0A can
// never satisfy each other - FX0A always parks for at least one tick,
// matching the source.
func (vm *VM) Run(ctx context.Context, opts Options) error {
	instrPeriod := opts.InstructionPeriod
	if instrPeriod <= 0 {
		instrPeriod = time.Second / instructionRate
	}
	timerPeriod := opts.TimerPeriod
	if timerPeriod <= 0 {
		timerPeriod = time.Second / timerRate
	}

	instrTicker := time.NewTicker(instrPeriod)
	defer instrTicker.Stop()
	timerTicker := time.NewTicker(timerPeriod)
	defer timerTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-timerTicker.C:
			beepOn := vm.TickTimers()
			if opts.OnBeep != nil {
				opts.OnBeep(beepOn)
			}

		case <-instrTicker.C:
			if opts.PollInput != nil {
				events, quit := opts.PollInput()
				if quit {
					return nil
				}
				for _, e := range events {
					vm.HandleKeyEvent(e)
				}
			}

			if err := vm.Step(); err != nil {
				return err
			}
			if vm.DrawFlag() && opts.OnFrame != nil {
				opts.OnFrame(vm.FB)
			}
		}
	}
}
