//go:build windows

package source

import (
	"fmt"

	"golang.org/x/sys/windows"

	"keypoll/keycode"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

type user32Source struct{}

// Open returns a source backed by GetAsyncKeyState.
func Open() (Closer, error) {
	if err := procGetAsyncKeyState.Find(); err != nil {
		return nil, fmt.Errorf("loading GetAsyncKeyState: %w", err)
	}
	return user32Source{}, nil
}

func (user32Source) Query(code keycode.Code) (uint16, error) {
	r, _, _ := procGetAsyncKeyState.Call(uintptr(code))
	return uint16(r), nil
}

func (user32Source) Close() error { return nil }

// Diagnose checks that the key state API is reachable and returns a status message.
func Diagnose() (string, error) {
	if err := procGetAsyncKeyState.Find(); err != nil {
		return "", fmt.Errorf("GetAsyncKeyState unavailable: %w", err)
	}
	return "GetAsyncKeyState available (user32.dll)", nil
}
