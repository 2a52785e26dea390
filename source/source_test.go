package source

import (
	"errors"
	"testing"

	"keypoll/keycode"
)

func TestIsPressed(t *testing.T) {
	for _, tt := range []struct {
		raw  uint16
		want bool
	}{
		{0, false},
		{0x0001, false},
		{0x8000, true},
		{0x8001, true},
		{0x7FFF, false},
	} {
		if got := IsPressed(tt.raw); got != tt.want {
			t.Errorf("IsPressed(%#04x) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestFakeScriptThenHold(t *testing.T) {
	f := NewFake()
	f.Script(keycode.Shift, false, true, true, false, true)

	want := []bool{false, true, true, false, true, true, true}
	for i, w := range want {
		raw, err := f.Query(keycode.Shift)
		if err != nil {
			t.Fatal(err)
		}
		if got := IsPressed(raw); got != w {
			t.Errorf("sample %d = %v, want %v", i, got, w)
		}
	}
	if got := f.Queries(keycode.Shift); got != len(want) {
		t.Errorf("Queries = %d, want %d", got, len(want))
	}
}

func TestFakePressRelease(t *testing.T) {
	f := NewFake()
	f.Press(keycode.Space)
	if raw, _ := f.Query(keycode.Space); !IsPressed(raw) {
		t.Error("expected pressed")
	}
	f.Release(keycode.Space)
	if raw, _ := f.Query(keycode.Space); IsPressed(raw) {
		t.Error("expected released")
	}
}

func TestFakeFailAndHeal(t *testing.T) {
	f := NewFake()
	boom := errors.New("boom")
	f.Press(keycode.Space)
	f.Fail(keycode.Space, boom)
	if _, err := f.Query(keycode.Space); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	f.Heal(keycode.Space)
	if raw, err := f.Query(keycode.Space); err != nil || !IsPressed(raw) {
		t.Errorf("after heal: raw=%#x err=%v", raw, err)
	}
}

func TestFuncAdapter(t *testing.T) {
	var src Source = Func(func(c keycode.Code) (uint16, error) {
		if c == keycode.Shift {
			return PressedMask, nil
		}
		return 0, nil
	})
	if raw, _ := src.Query(keycode.Shift); !IsPressed(raw) {
		t.Error("Func adapter lost the pressed bit")
	}
}

func TestQueryErrorUnwrap(t *testing.T) {
	err := error(&QueryError{Code: keycode.Space, Err: ErrUnmapped})
	if !errors.Is(err, ErrUnmapped) {
		t.Error("QueryError does not unwrap")
	}
	if err.Error() != "query SPACE: code has no mapping on this platform" {
		t.Errorf("Error() = %q", err.Error())
	}
}
