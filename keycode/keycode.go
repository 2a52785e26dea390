// Package keycode is the registry of known input-device codes. Codes live in
// the Windows virtual-key space on every platform; sources for other
// platforms translate them.
package keycode

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Code identifies a key or mouse button.
type Code uint16

// Key pairs a code with its symbolic name and a human description.
type Key struct {
	Name        string
	Code        Code
	Description string
}

var ErrUnknownKey = errors.New("unknown key")

const (
	LeftMouse   Code = 0x01
	RightMouse  Code = 0x02
	MiddleMouse Code = 0x04
	Return      Code = 0x0D
	Shift       Code = 0x10
	Control     Code = 0x11
	Menu        Code = 0x12
	Escape      Code = 0x1B
	Space       Code = 0x20
	Snapshot    Code = 0x2C
	LeftWin     Code = 0x5B
	RightWin    Code = 0x5C
	LeftShift   Code = 0xA0
	RightShift  Code = 0xA1
	LeftControl Code = 0xA2
	RightCtrl   Code = 0xA3
	LeftMenu    Code = 0xA4
	RightMenu   Code = 0xA5

	minCode Code = 0x01
	maxCode Code = 0xFE
)

var aliases = map[string]Code{
	"CTRL":        Control,
	"LCTRL":       LeftControl,
	"RCTRL":       RightCtrl,
	"LCONTROL":    LeftControl,
	"RCONTROL":    RightCtrl,
	"LSHIFT":      LeftShift,
	"RSHIFT":      RightShift,
	"ALT":         Menu,
	"LALT":        LeftMenu,
	"RALT":        RightMenu,
	"OPTION":      Menu,
	"WIN":         LeftWin,
	"SUPER":       LeftWin,
	"CMD":         LeftWin,
	"ENTER":       Return,
	"ESC":         Escape,
	"PRINTSCREEN": Snapshot,
	"PRTSC":       Snapshot,
	"DEL":         0x2E,
	"INS":         0x2D,
	"PAGEUP":      0x21,
	"PGUP":        0x21,
	"PAGEDOWN":    0x22,
	"PGDN":        0x22,
	"CAPSLOCK":    0x14,
	"LMB":         LeftMouse,
	"RMB":         RightMouse,
	"MMB":         MiddleMouse,
}

var (
	byName map[string]Code
	byCode map[Code]Key
	codes  []Code
)

func init() {
	byName = make(map[string]Code, len(table)+len(aliases))
	byCode = make(map[Code]Key, len(table))
	for _, k := range table {
		byName[normalize(k.Name)] = k.Code
		if _, ok := byCode[k.Code]; !ok {
			byCode[k.Code] = k
			codes = append(codes, k.Code)
		}
	}
	for name, c := range aliases {
		byName[normalize(name)] = c
	}
	slices.Sort(codes)
}

// normalize folds case and drops the VK_ prefix and separators so that
// "vk_left_shift", "Left Shift" and "LEFTSHIFT" all match.
func normalize(name string) string {
	s := strings.ToUpper(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "VK_")
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}

// Valid reports whether c is inside the virtual-key range.
func (c Code) Valid() bool {
	return c >= minCode && c <= maxCode
}

func (c Code) String() string {
	if k, ok := byCode[c]; ok {
		return k.Name
	}
	return fmt.Sprintf("0x%02X", uint16(c))
}

// Lookup resolves a symbolic name, with or without the VK_ prefix.
func Lookup(name string) (Code, bool) {
	c, ok := byName[normalize(name)]
	return c, ok
}

// Parse accepts a symbolic name, an alias such as "ctrl", or a numeric code
// ("0x10", "16").
func Parse(text string) (Code, error) {
	if c, ok := Lookup(text); ok {
		return c, nil
	}
	t := strings.TrimSpace(text)
	n, err := strconv.ParseUint(t, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, text)
	}
	c := Code(n)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %q out of range", ErrUnknownKey, text)
	}
	if !Known(c) {
		return 0, fmt.Errorf("%w: %q is not an assigned key", ErrUnknownKey, text)
	}
	return c, nil
}

// ParseList parses every entry, failing on the first unknown one.
func ParseList(texts []string) ([]Code, error) {
	out := make([]Code, 0, len(texts))
	for _, t := range texts {
		c, err := Parse(t)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Name returns the primary name of c, or "" when c is not in the table.
func Name(c Code) string {
	return byCode[c].Name
}

// Describe returns the human description of c.
func Describe(c Code) string {
	return byCode[c].Description
}

// Known reports whether c is in the table.
func Known(c Code) bool {
	_, ok := byCode[c]
	return ok
}

// All returns every distinct known code in ascending order.
func All() []Code {
	return slices.Clone(codes)
}

// Keys returns the full table, aliases of the same code included.
func Keys() []Key {
	return slices.Clone(table)
}
