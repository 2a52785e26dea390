package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/micmonay/keybd_event"

	"keypoll/engine"
	"keypoll/hotkey"
	"keypoll/keycode"
	"keypoll/shutdown"
	"keypoll/source"
)

// Run executes interactive diagnostic checks and returns an exit code (0=all pass, 1=any fail).
func Run(combo hotkey.Combo) int {
	resetTerminal()
	setupInterruptHandler()

	fmt.Println("keypoll doctor - interactive input diagnostics")
	fmt.Println("==============================================")

	allPass := true

	src, ok := checkSource()
	if !ok {
		allPass = false
	} else {
		defer src.Close()
		checkSynthetic(src)
		if !checkHotkey(src, combo) {
			allPass = false
		}
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
	} else {
		fmt.Println("Some checks failed. See details above.")
	}

	if allPass {
		return 0
	}
	return 1
}

func setupInterruptHandler() {
	sigChan := make(chan os.Signal, 1)
	shutdown.Notify(sigChan)
	go func() {
		<-sigChan
		println("\nInterrupted")
		os.Exit(1)
	}()
}

func checkSource() (source.Closer, bool) {
	fmt.Println()
	fmt.Println("[1/3] Key state source")

	status, err := source.Diagnose()
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return nil, false
	}
	src, err := source.Open()
	if err != nil {
		fmt.Printf("  FAIL: could not open source: %v\n", err)
		return nil, false
	}
	fmt.Printf("  PASS: %s\n", status)
	return src, true
}

// checkSynthetic is advisory: injection needs uinput on linux and is
// blocked in many sandboxes, so a failure only warns.
func checkSynthetic(src source.Source) {
	fmt.Println()
	fmt.Println("[2/3] Synthetic Shift press")

	kb, err := newShiftInjector()
	if err != nil {
		fmt.Printf("  Warning: cannot inject keys: %v\n", err)
		return
	}
	if err := selfTest(src, kb, 2*time.Second); err != nil {
		fmt.Printf("  Warning: %v\n", err)
		return
	}
	fmt.Println("  PASS: injected Shift observed")
}

type injector interface {
	Press() error
	Release() error
}

func newShiftInjector() (injector, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, err
	}
	// linux needs time for the uinput device to appear
	time.Sleep(2 * time.Second)
	kb.HasSHIFT(true)
	return &kb, nil
}

var errNotObserved = errors.New("synthetic Shift press was not observed")

// selfTest presses Shift through inj and waits for the engine to see it.
func selfTest(src source.Source, inj injector, timeout time.Duration) error {
	e, err := engine.New(src, engine.WithInterval(5*time.Millisecond))
	if err != nil {
		return err
	}
	defer e.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s, err := e.Subscribe(ctx, keycode.Shift)
	if err != nil {
		return err
	}

	// one interval for the baseline pass
	time.Sleep(20 * time.Millisecond)
	if err := inj.Press(); err != nil {
		return fmt.Errorf("inject press: %w", err)
	}
	defer inj.Release()

	for {
		ev, err := s.Next(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w", errNotObserved, err)
		}
		if ev.State == engine.Pressed {
			return nil
		}
	}
}

func checkHotkey(src source.Source, combo hotkey.Combo) bool {
	fmt.Println()
	fmt.Println("[3/3] Hotkey detection")
	fmt.Printf("Press %s...\n", combo)

	e, err := engine.New(src)
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return false
	}
	defer e.Stop()

	if !waitHotkey(hotkey.New(e, combo), 10*time.Second) {
		return false
	}
	resetTerminal()
	return true
}

// waitHotkey registers hk and waits up to timeout for it to fire.
func waitHotkey(hk hotkey.Hotkey, timeout time.Duration) bool {
	if err := hk.Register(); err != nil {
		fmt.Printf("  FAIL: could not register hotkey: %v\n", err)
		return false
	}
	defer hk.Unregister()

	select {
	case <-hk.Keydown():
		fmt.Println("  PASS: hotkey detected")
		select {
		case <-hk.Keyup():
		case <-time.After(timeout / 2):
		}
		return true
	case <-time.After(timeout):
		fmt.Println("  FAIL: timeout waiting for hotkey")
		return false
	}
}
