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

package exchange

import "fmt"

// Offsets of the fields of the input record.
const (
	OffsetSemaphore = iota
	OffsetKeyChar
	OffsetKeyCode
	OffsetSpecial
	OffsetShift
	OffsetControl
	OffsetStart
	OffsetSelect
	OffsetOption
	OffsetJoy0
	OffsetTrig0
	OffsetJoy1
	OffsetTrig1
	OffsetJoy2
	OffsetTrig2
	OffsetJoy3
	OffsetTrig3
	OffsetMouseX
	OffsetMouseY
	OffsetMouseButtons
	OffsetMouseMode

	// number of fields in the input record
	InputFields
)

// the bytes that share a 32-bit word with the semaphore
const atomicFields = 4

// Joystick direction bits. A bit is set when the stick points in that
// direction.
const (
	JoyUp    uint8 = 0x01
	JoyDown  uint8 = 0x02
	JoyLeft  uint8 = 0x04
	JoyRight uint8 = 0x08
)

// MouseMode selects how the engine interprets the mouse fields.
type MouseMode uint8

// List of valid MouseMode values.
const (
	// mouse values are movement since the previous frame
	MouseDelta MouseMode = 0

	// mouse values are an absolute position
	MouseDirect MouseMode = 1
)

func (m MouseMode) String() string {
	switch m {
	case MouseDelta:
		return "delta"
	case MouseDirect:
		return "direct"
	}
	return "unknown"
}

// KeyKind is the kind of key held in a Key value.
type KeyKind int

// List of valid KeyKind values.
const (
	KeyNone KeyKind = iota
	KeyChar
	KeyCode
	KeySpecial
)

func (k KeyKind) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyChar:
		return "char"
	case KeyCode:
		return "keycode"
	case KeySpecial:
		return "special"
	}
	return "unknown"
}

// Key is the single key presented to the engine for a frame. Only one kind of
// key can be presented at once.
//
// For KeySpecial the value is the magnitude of the engine's special key
// code, which the engine negates.
type Key struct {
	Kind  KeyKind
	Value uint8
}

// NoKey is the Key value meaning that no key is pressed.
var NoKey = Key{}

// CharKey returns a Key for an ASCII character.
func CharKey(c uint8) Key {
	if c == 0 {
		return NoKey
	}
	return Key{Kind: KeyChar, Value: c}
}

// CodeKey returns a Key for an engine keycode. The engine cannot distinguish
// keycode zero from no key so a zero keycode is NoKey.
func CodeKey(c uint8) Key {
	if c == 0 {
		return NoKey
	}
	return Key{Kind: KeyCode, Value: c}
}

// SpecialKey returns a Key for an engine special key.
func SpecialKey(c uint8) Key {
	if c == 0 {
		return NoKey
	}
	return Key{Kind: KeySpecial, Value: c}
}

func (k Key) String() string {
	switch k.Kind {
	case KeyNone:
		return "none"
	case KeyChar:
		if k.Value >= 0x20 && k.Value < 0x7f {
			return fmt.Sprintf("char %q", rune(k.Value))
		}
		return fmt.Sprintf("char %#04x", k.Value)
	}
	return fmt.Sprintf("%s %#04x", k.Kind, k.Value)
}

// Input is a complete description of the input to the engine for one frame.
type Input struct {
	Key Key

	// modifier keys
	Shift   bool
	Control bool

	// console keys
	Start  bool
	Select bool
	Option bool

	// direction bits and trigger for each of the four joysticks
	Joy  [4]uint8
	Trig [4]bool

	// mouse
	MouseX       int8
	MouseY       int8
	MouseButtons uint8
	MouseMode    MouseMode
}

// InputRecord is the view onto the input record in the exchange.
type InputRecord struct {
	mem []byte
	w   word
}

// Bytes returns the raw input record. The first byte is the semaphore and
// should not be written through this slice.
func (r *InputRecord) Bytes() []byte {
	return r.mem
}

func (r *InputRecord) get(offset int) uint8 {
	if offset < atomicFields {
		return r.w.load(offset)
	}
	return r.mem[offset]
}

func (r *InputRecord) set(offset int, v uint8) {
	if offset < atomicFields {
		r.w.store(offset, v)
		return
	}
	r.mem[offset] = v
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Key returns the key currently in the input record. If more than one key
// field is non-zero then the character takes precedence over the keycode and
// the keycode over the special key, which is how the engine reads the fields.
func (r *InputRecord) Key() Key {
	if c := r.get(OffsetKeyChar); c != 0 {
		return CharKey(c)
	}
	if c := r.get(OffsetKeyCode); c != 0 {
		return CodeKey(c)
	}
	if c := r.get(OffsetSpecial); c != 0 {
		return SpecialKey(c)
	}
	return NoKey
}

// SetKey writes the key fields of the input record. The fields not used by
// the kind of key are cleared.
func (r *InputRecord) SetKey(k Key) {
	var char, code, special uint8
	switch k.Kind {
	case KeyChar:
		char = k.Value
	case KeyCode:
		code = k.Value
	case KeySpecial:
		special = k.Value
	}
	r.set(OffsetKeyChar, char)
	r.set(OffsetKeyCode, code)
	r.set(OffsetSpecial, special)
}

// Load reads the whole of the input record.
func (r *InputRecord) Load() Input {
	inp := Input{
		Key:          r.Key(),
		Shift:        r.get(OffsetShift) != 0,
		Control:      r.get(OffsetControl) != 0,
		Start:        r.get(OffsetStart) != 0,
		Select:       r.get(OffsetSelect) != 0,
		Option:       r.get(OffsetOption) != 0,
		MouseX:       int8(r.get(OffsetMouseX)),
		MouseY:       int8(r.get(OffsetMouseY)),
		MouseButtons: r.get(OffsetMouseButtons),
		MouseMode:    MouseMode(r.get(OffsetMouseMode)),
	}
	for i := range inp.Joy {
		inp.Joy[i] = r.get(OffsetJoy0 + i*2)
		inp.Trig[i] = r.get(OffsetTrig0+i*2) != 0
	}
	return inp
}

// Store writes the whole of the input record, with the exception of the
// semaphore.
func (r *InputRecord) Store(inp Input) {
	r.SetKey(inp.Key)
	r.set(OffsetShift, b2u(inp.Shift))
	r.set(OffsetControl, b2u(inp.Control))
	r.set(OffsetStart, b2u(inp.Start))
	r.set(OffsetSelect, b2u(inp.Select))
	r.set(OffsetOption, b2u(inp.Option))
	for i := range inp.Joy {
		r.set(OffsetJoy0+i*2, inp.Joy[i]&0x0f)
		r.set(OffsetTrig0+i*2, b2u(inp.Trig[i]))
	}
	r.set(OffsetMouseX, uint8(inp.MouseX))
	r.set(OffsetMouseY, uint8(inp.MouseY))
	r.set(OffsetMouseButtons, inp.MouseButtons)
	r.set(OffsetMouseMode, uint8(inp.MouseMode))
}
