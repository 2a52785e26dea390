package keycode

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	for _, tt := range []struct {
		name string
		want Code
	}{
		{"SHIFT", Shift},
		{"VK_SHIFT", Shift},
		{"left_shift", LeftShift},
		{"Left Shift", LeftShift},
		{"lshift", LeftShift},
		{"ctrl", Control},
		{"alt", Menu},
		{"snapshot", Snapshot},
		{"printscreen", Snapshot},
		{"a", 0x41},
		{"F24", 0x87},
		{"browser_home", 0xAC},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.name)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseNumeric(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Code
	}{
		{"0x10", Shift},
		{"16", Shift},
		{"0xA0", LeftShift},
	} {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "nope", "0x0", "0xFF", "70000", "0x07", "7"} {
		if _, err := Parse(in); !errors.Is(err, ErrUnknownKey) {
			t.Errorf("Parse(%q) err = %v, want ErrUnknownKey", in, err)
		}
	}
}

func TestParseList(t *testing.T) {
	got, err := ParseList([]string{"ctrl", "shift", "space"})
	if err != nil {
		t.Fatal(err)
	}
	want := []Code{Control, Shift, Space}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseList[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if _, err := ParseList([]string{"ctrl", "bogus"}); err == nil {
		t.Error("expected error for unknown entry")
	}
}

func TestAllDistinctSorted(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("empty registry")
	}
	for i := 1; i < len(all); i++ {
		if all[i] <= all[i-1] {
			t.Fatalf("All not strictly ascending at %d: %v then %v", i, all[i-1], all[i])
		}
	}
	for _, c := range all {
		if !c.Valid() {
			t.Errorf("invalid code %v in registry", c)
		}
	}
	if len(all) >= len(Keys()) {
		t.Errorf("expected shared codes to collapse: %d codes, %d keys", len(all), len(Keys()))
	}
}

func TestNameFirstEntryWins(t *testing.T) {
	if got := Name(0x15); got != "KANA" {
		t.Errorf("Name(0x15) = %q, want KANA", got)
	}
	if got := Shift.String(); got != "SHIFT" {
		t.Errorf("Shift.String() = %q", got)
	}
	if got := Code(0x07).String(); got != "0x07" {
		t.Errorf("unknown code String() = %q", got)
	}
	if Describe(Shift) != "SHIFT key" {
		t.Errorf("Describe(Shift) = %q", Describe(Shift))
	}
}
