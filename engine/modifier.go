package engine

import "keypoll/keycode"

var (
	shiftCodes = [...]keycode.Code{keycode.Shift, keycode.LeftShift, keycode.RightShift}
	ctrlCodes  = [...]keycode.Code{keycode.Control, keycode.LeftControl, keycode.RightCtrl}
	altCodes   = [...]keycode.Code{keycode.Menu, keycode.LeftMenu, keycode.RightMenu}
)

// composeModifiers derives the modifier snapshot from the pressed set. A
// variant that is not registered is never pressed, so it contributes false.
func composeModifiers(pressed func(keycode.Code) bool) Modifiers {
	anyHeld := func(codes []keycode.Code) bool {
		for _, c := range codes {
			if pressed(c) {
				return true
			}
		}
		return false
	}
	return Modifiers{
		Shift: anyHeld(shiftCodes[:]),
		Ctrl:  anyHeld(ctrlCodes[:]),
		Alt:   anyHeld(altCodes[:]),
	}
}
