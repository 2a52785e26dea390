//go:build linux

package source

import (
	"testing"

	"keypoll/keycode"
)

func TestEvdevCodesInRange(t *testing.T) {
	for vk, targets := range evdevCodes {
		if !keycode.Known(vk) {
			t.Errorf("mapped code %v is not in the registry", vk)
		}
		if len(targets) == 0 {
			t.Errorf("%v maps to nothing", vk)
		}
		for _, c := range targets {
			if int(c)/8 >= keyBitmapLen {
				t.Errorf("%v -> %d outside the key bitmap", vk, c)
			}
		}
	}
}

func TestEvioCGKey(t *testing.T) {
	if got := evioCGKey(keyBitmapLen); got != 0x80604518 {
		t.Errorf("evioCGKey(96) = %#x, want 0x80604518", got)
	}
}

func TestGenericModifiersCoverBothSides(t *testing.T) {
	for _, tt := range []struct{ generic, left, right keycode.Code }{
		{keycode.Shift, keycode.LeftShift, keycode.RightShift},
		{keycode.Control, keycode.LeftControl, keycode.RightCtrl},
		{keycode.Menu, keycode.LeftMenu, keycode.RightMenu},
	} {
		g := evdevCodes[tt.generic]
		if len(g) != 2 || g[0] != evdevCodes[tt.left][0] || g[1] != evdevCodes[tt.right][0] {
			t.Errorf("%v = %v, want left+right", tt.generic, g)
		}
	}
}
