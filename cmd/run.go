package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bradford-hamilton/chip8go/internal/audio"
	"github.com/bradford-hamilton/chip8go/internal/chip8"
	"github.com/bradford-hamilton/chip8go/internal/display"
	"github.com/bradford-hamilton/chip8go/internal/input"
	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"
)

var (
	scaleFlag               int
	quirkShiftVyFlag        bool
	quirkIndexIncrementFlag bool
	debugFlag               bool
)

// runCmd runs the chip8go emulator against a ROM file and waits for a
// shutdown signal (window close, escape key, or a fatal VM error).
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the chip8go emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChip8go,
}

func init() {
	runCmd.Flags().IntVar(&scaleFlag, "scale", display.DefaultScale, "window scale factor (pixels per chip-8 pixel)")
	runCmd.Flags().BoolVar(&quirkShiftVyFlag, "quirk-shift-vy", false, "8XY6/8XYE read the shift operand from Vy instead of Vx")
	runCmd.Flags().BoolVar(&quirkIndexIncrementFlag, "quirk-index-increment", false, "FX55/FX65 advance I by X+1 after the register block copy")
	runCmd.Flags().BoolVar(&debugFlag, "debug", false, "print a register dump to stderr once per second")
}

func runChip8go(cmd *cobra.Command, args []string) {
	pathToROM := args[0]

	rom, err := os.ReadFile(pathToROM)
	if err != nil {
		fmt.Printf("\nerror reading rom %q: %v\n", pathToROM, err)
		os.Exit(1)
	}

	vm := chip8.NewVM(chip8.Quirks{
		ShiftUsesVy:           quirkShiftVyFlag,
		IndexIncrementOnStore: quirkIndexIncrementFlag,
	})
	if err := vm.LoadROM(rom); err != nil {
		fmt.Printf("\nerror loading rom: %v\n", err)
		os.Exit(1)
	}

	// pixelgl needs to own the calling thread for the life of the window,
	// so the rest of the wiring happens inside its callback.
	pixelgl.Run(func() {
		runWithWindow(vm)
	})
}

func runWithWindow(vm *chip8.VM) {
	win, err := display.NewWindow(scaleFlag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	beeper, err := audio.NewBeeper()
	if err != nil {
		fmt.Printf("\nerror initializing audio: %v\n", err)
		os.Exit(1)
	}

	poller := input.NewPoller(win.Window)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// SIGINT is a second way to ask the run loop to stop cooperatively,
	// in addition to the window/escape-key quit path.
	sigCtx, stopSig := signal.NotifyContext(ctx, os.Interrupt)
	defer stopSig()

	if debugFlag {
		go debugTicker(sigCtx, vm)
	}

	err = vm.Run(sigCtx, chip8.Options{
		PollInput: poller.Poll,
		OnBeep:    beeper.SetTone,
		OnFrame:   win.DrawGraphics,
	})
	if err != nil {
		fmt.Printf("\nfatal vm error: %v\n", err)
		os.Exit(1)
	}
}

func debugTicker(ctx context.Context, vm *chip8.VM) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Fprintln(os.Stderr, vm.DebugString())
		}
	}
}
