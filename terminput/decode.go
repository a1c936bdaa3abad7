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

package terminput

import (
	"fmt"

	"github.com/jetsetilly/shmem800/akey"
	"github.com/jetsetilly/shmem800/exchange"
)

// Action is the type of an Event.
type Action int

// List of valid Action values.
const (
	ActionChar Action = iota
	ActionKeycode
	ActionSpecial
	ActionJoystick
	ActionTrigger
	ActionConsole
)

// Bits of the Value field for an ActionConsole event.
const (
	ConsoleStart uint8 = 1 << iota
	ConsoleSelect
	ConsoleOption
)

// Event is a single key press decoded from terminal input.
type Event struct {
	Action Action
	Value  uint8
}

func (ev Event) String() string {
	switch ev.Action {
	case ActionChar:
		return fmt.Sprintf("char %q", rune(ev.Value))
	case ActionKeycode:
		return fmt.Sprintf("keycode %s", akey.KeycodeName(ev.Value))
	case ActionSpecial:
		return fmt.Sprintf("special %s", akey.SpecialName(ev.Value))
	case ActionJoystick:
		return fmt.Sprintf("joystick %04b", ev.Value)
	case ActionTrigger:
		return "trigger"
	case ActionConsole:
		return fmt.Sprintf("console %03b", ev.Value)
	}
	return "unknown event"
}

// Decode the bytes read from a terminal into a list of events. Sequences that
// are not recognised are ignored. A lone escape byte at the end of the data
// is the escape key.
func Decode(p []byte) []Event {
	var events []Event

	for i := 0; i < len(p); i++ {
		b := p[i]

		switch b {
		case keyCarriageReturn, keyLineFeed:
			events = append(events, Event{Action: ActionKeycode, Value: akey.Return})
		case keyBackspace, keyBackspaceAlt:
			events = append(events, Event{Action: ActionKeycode, Value: akey.Backspace})
		case keyTab:
			events = append(events, Event{Action: ActionKeycode, Value: akey.Tab})
		case ' ':
			events = append(events, Event{Action: ActionKeycode, Value: akey.Space})
		case '`':
			events = append(events, Event{Action: ActionKeycode, Value: akey.Atari})
		case keyEsc:
			if i+1 >= len(p) {
				events = append(events, Event{Action: ActionKeycode, Value: akey.Escape})
				continue
			}
			switch p[i+1] {
			case escCSI:
				n, ev, ok := csi(p[i+2:])
				if ok {
					events = append(events, ev)
				}
				i += 1 + n
			case escSS3:
				if i+2 < len(p) {
					if ev, ok := ss3(p[i+2]); ok {
						events = append(events, ev)
					}
					i += 2
				} else {
					i++
				}
			default:
				events = append(events, Event{Action: ActionKeycode, Value: akey.Escape})
			}
		default:
			if b > ' ' && b < keyBackspace {
				events = append(events, Event{Action: ActionChar, Value: b})
			}
		}
	}

	return events
}

// csi decodes the body of a CSI sequence, that is, the bytes after "ESC [".
// Returns the number of bytes consumed.
func csi(p []byte) (int, Event, bool) {
	// parameter bytes continue until the final byte in the range 0x40 to 0x7e
	n := 0
	for n < len(p) && (p[n] < 0x40 || p[n] > 0x7e) {
		n++
	}
	if n >= len(p) {
		return n, Event{}, false
	}

	param := string(p[:n])
	final := p[n]
	n++

	switch final {
	case cursorUp, cursorDown, cursorForward, cursorBackward:
		switch param {
		case "":
			return n, Event{Action: ActionJoystick, Value: joystick(final)}, true
		case modControl:
			return n, Event{Action: ActionKeycode, Value: cursor(final)}, true
		}
	case cursorHome:
		return n, Event{Action: ActionKeycode, Value: akey.Clear}, true
	case cursorEnd:
		return n, Event{Action: ActionKeycode, Value: akey.Help}, true
	case '~':
		switch param {
		case tildeHome:
			return n, Event{Action: ActionKeycode, Value: akey.Clear}, true
		case tildeInsert:
			return n, Event{Action: ActionKeycode, Value: akey.InsertChar}, true
		case tildeDelete:
			return n, Event{Action: ActionKeycode, Value: akey.DeleteChar}, true
		case tildeEnd:
			return n, Event{Action: ActionKeycode, Value: akey.Help}, true
		case tildeF5:
			return n, Event{Action: ActionSpecial, Value: akey.WarmStart}, true
		case tildeF7:
			return n, Event{Action: ActionSpecial, Value: akey.Break}, true
		case tildeF9:
			return n, Event{Action: ActionSpecial, Value: akey.ColdStart}, true
		}
	}

	return n, Event{}, false
}

func ss3(b byte) (Event, bool) {
	switch b {
	case functionF1:
		return Event{Action: ActionTrigger}, true
	case functionF2:
		return Event{Action: ActionConsole, Value: ConsoleOption}, true
	case functionF3:
		return Event{Action: ActionConsole, Value: ConsoleSelect}, true
	case functionF4:
		return Event{Action: ActionConsole, Value: ConsoleStart}, true
	case cursorHome:
		return Event{Action: ActionKeycode, Value: akey.Clear}, true
	case cursorEnd:
		return Event{Action: ActionKeycode, Value: akey.Help}, true
	}
	return Event{}, false
}

func joystick(final byte) uint8 {
	switch final {
	case cursorUp:
		return exchange.JoyUp
	case cursorDown:
		return exchange.JoyDown
	case cursorBackward:
		return exchange.JoyLeft
	}
	return exchange.JoyRight
}

func cursor(final byte) uint8 {
	switch final {
	case cursorUp:
		return akey.Up
	case cursorDown:
		return akey.Down
	case cursorBackward:
		return akey.Left
	}
	return akey.Right
}
