// This file is part of Shmem800.
//
// Shmem800 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Shmem800 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Shmem800.  If not, see <https://www.gnu.org/licenses/>.

// Package akey lists the key codes understood by the engine.
//
// Keycodes are presented to the engine with exchange.CodeKey(). The engine
// also understands a small number of special keys, which are negative
// values inside the engine. These are presented with exchange.SpecialKey()
// using the magnitude of the value.
package akey

import "fmt"

// Modifier bits that can be combined with a keycode.
const (
	Shift     uint8 = 0x40
	Control   uint8 = 0x80
	ShiftCtrl uint8 = 0xc0
)

// Keycodes.
const (
	Return     uint8 = 0x0c
	Space      uint8 = 0x21
	Escape     uint8 = 0x1c
	Backspace  uint8 = 0x34
	Help       uint8 = 0x11
	Tab        uint8 = 0x2c
	SetTab     uint8 = 0x6c
	ClrTab     uint8 = 0xac
	Atari      uint8 = 0x27
	CapsLock   uint8 = 0x7c
	CapsToggle uint8 = 0x3c
	Clear      uint8 = 0x76
	DeleteChar uint8 = 0xb4
	DeleteLine uint8 = 0x74
	InsertChar uint8 = 0xb7
	InsertLine uint8 = 0x77
	Up         uint8 = 0x8e
	Down       uint8 = 0x8f
	Left       uint8 = 0x86
	Right      uint8 = 0x87
	F1         uint8 = 0x03
	F2         uint8 = 0x04
	F3         uint8 = 0x13
	F4         uint8 = 0x14
)

// Special keys.
const (
	WarmStart        uint8 = 2
	ColdStart        uint8 = 3
	Exit             uint8 = 4
	Break            uint8 = 5
	UI               uint8 = 7
	Screenshot       uint8 = 8
	ScreenshotInterl uint8 = 9
	Start            uint8 = 10
	Select           uint8 = 11
	Option           uint8 = 12
)

var keycodeNames = map[uint8]string{
	Return:     "RETURN",
	Space:      "SPACE",
	Escape:     "ESCAPE",
	Backspace:  "BACKSPACE",
	Help:       "HELP",
	Tab:        "TAB",
	SetTab:     "SETTAB",
	ClrTab:     "CLRTAB",
	Atari:      "ATARI",
	CapsLock:   "CAPSLOCK",
	CapsToggle: "CAPSTOGGLE",
	Clear:      "CLEAR",
	DeleteChar: "DELETE_CHAR",
	DeleteLine: "DELETE_LINE",
	InsertChar: "INSERT_CHAR",
	InsertLine: "INSERT_LINE",
	Up:         "UP",
	Down:       "DOWN",
	Left:       "LEFT",
	Right:      "RIGHT",
	F1:         "F1",
	F2:         "F2",
	F3:         "F3",
	F4:         "F4",
}

var specialNames = map[uint8]string{
	WarmStart:        "WARMSTART",
	ColdStart:        "COLDSTART",
	Exit:             "EXIT",
	Break:            "BREAK",
	UI:               "UI",
	Screenshot:       "SCREENSHOT",
	ScreenshotInterl: "SCREENSHOT_INTERLACE",
	Start:            "START",
	Select:           "SELECT",
	Option:           "OPTION",
}

// KeycodeName returns the name of a keycode. Unnamed keycodes are returned
// as a hex value.
func KeycodeName(code uint8) string {
	if n, ok := keycodeNames[code]; ok {
		return n
	}
	return fmt.Sprintf("%#04x", code)
}

// SpecialName returns the name of a special key.
func SpecialName(special uint8) string {
	if n, ok := specialNames[special]; ok {
		return n
	}
	return fmt.Sprintf("special %d", special)
}

// LookupSpecial returns the special key with the name. Names are as returned
// by SpecialName().
func LookupSpecial(name string) (uint8, bool) {
	for k, n := range specialNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}
