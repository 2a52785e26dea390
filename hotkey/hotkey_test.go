package hotkey

import (
	"errors"
	"testing"
	"time"

	"keypoll/engine"
	"keypoll/keycode"
	"keypoll/source"
)

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Combo
	}{
		{"space", Combo{Key: keycode.Space}},
		{"ctrl+shift+space", Combo{Key: keycode.Space, Ctrl: true, Shift: true}},
		{"Alt + F4", Combo{Key: 0x73, Alt: true}},
		{"control+0x41", Combo{Key: 0x41, Ctrl: true}},
		{"shift", Combo{Key: keycode.Shift}},
	} {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "ctrl+", "space+ctrl", "ctrl+bogus", "super+a"} {
		if _, err := Parse(in); !errors.Is(err, ErrBadCombo) {
			t.Errorf("Parse(%q) err = %v, want ErrBadCombo", in, err)
		}
	}
}

func TestComboStringRoundTrip(t *testing.T) {
	c := Combo{Key: keycode.Space, Ctrl: true, Shift: true}
	if got := c.String(); got != "ctrl+shift+space" {
		t.Errorf("String() = %q", got)
	}
	back, err := Parse(c.String())
	if err != nil || back != c {
		t.Errorf("round trip = %+v, %v", back, err)
	}
}

func TestComboCodesAndMatches(t *testing.T) {
	c := Combo{Key: keycode.Space, Ctrl: true, Alt: true}
	codes := c.Codes()
	want := []keycode.Code{keycode.Control, keycode.Menu, keycode.Space}
	if len(codes) != len(want) {
		t.Fatalf("Codes() = %v", codes)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("Codes() = %v, want %v", codes, want)
		}
	}
	if c.Matches(engine.Modifiers{Ctrl: true}) {
		t.Error("matched without alt")
	}
	if !c.Matches(engine.Modifiers{Ctrl: true, Alt: true, Shift: true}) {
		t.Error("extra modifier should still match")
	}
}

func TestPolledHotkey(t *testing.T) {
	fake := source.NewFake()
	e, err := engine.New(fake, engine.WithInterval(time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer e.Stop()

	hk := New(e, Combo{Key: keycode.Space, Ctrl: true})
	if err := hk.Register(); err != nil {
		t.Fatal(err)
	}
	defer hk.Unregister()
	if err := hk.Register(); !errors.Is(err, ErrRegistered) {
		t.Errorf("second Register err = %v", err)
	}

	deadline := time.After(time.Second)
	for fake.Queries(keycode.Space) == 0 {
		select {
		case <-deadline:
			t.Fatal("sampler never queried space")
		case <-time.After(time.Millisecond):
		}
	}

	// space without ctrl does nothing
	fake.Press(keycode.Space)
	select {
	case <-hk.Keydown():
		t.Fatal("keydown without ctrl")
	case <-time.After(30 * time.Millisecond):
	}
	fake.Release(keycode.Space)
	time.Sleep(10 * time.Millisecond)

	fake.Press(keycode.Control)
	time.Sleep(10 * time.Millisecond)
	fake.Press(keycode.Space)
	select {
	case <-hk.Keydown():
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for keydown")
	}
	fake.Release(keycode.Space)
	select {
	case <-hk.Keyup():
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for keyup")
	}
}

func TestFakeRegisterError(t *testing.T) {
	fk := NewFake()
	boom := errors.New("boom")
	fk.FailRegister(boom)
	if err := fk.Register(); !errors.Is(err, boom) {
		t.Errorf("Register = %v", err)
	}
}
