package doctor

import (
	"errors"
	"testing"
	"time"

	"keypoll/hotkey"
	"keypoll/keycode"
	"keypoll/source"
)

type fakeInjector struct {
	src      *source.Fake
	pressErr error
	released bool
}

func (f *fakeInjector) Press() error {
	if f.pressErr != nil {
		return f.pressErr
	}
	f.src.Press(keycode.Shift)
	return nil
}

func (f *fakeInjector) Release() error {
	f.released = true
	f.src.Release(keycode.Shift)
	return nil
}

func TestSelfTestObservesPress(t *testing.T) {
	src := source.NewFake()
	inj := &fakeInjector{src: src}
	if err := selfTest(src, inj, time.Second); err != nil {
		t.Fatal(err)
	}
	if !inj.released {
		t.Error("Shift left pressed")
	}
}

func TestSelfTestNotObserved(t *testing.T) {
	src := source.NewFake()
	src.Fail(keycode.Shift, errors.New("no device"))
	err := selfTest(src, &fakeInjector{src: src}, 100*time.Millisecond)
	if !errors.Is(err, errNotObserved) {
		t.Errorf("err = %v, want errNotObserved", err)
	}
}

func TestSelfTestPressError(t *testing.T) {
	src := source.NewFake()
	boom := errors.New("uinput denied")
	err := selfTest(src, &fakeInjector{src: src, pressErr: boom}, time.Second)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
}

func TestWaitHotkeyRegisterFails(t *testing.T) {
	fk := hotkey.NewFake()
	fk.FailRegister(errors.New("combo taken"))
	fk.SimKeydown()
	if waitHotkey(fk, time.Second) {
		t.Error("passed with a failed registration")
	}
}

func TestWaitHotkeyDetected(t *testing.T) {
	fk := hotkey.NewFake()
	fk.SimKeydown()
	fk.SimKeyup()
	if !waitHotkey(fk, time.Second) {
		t.Error("fired hotkey not detected")
	}
}

func TestWaitHotkeyTimeout(t *testing.T) {
	if waitHotkey(hotkey.NewFake(), 20*time.Millisecond) {
		t.Error("passed without a keydown")
	}
}
