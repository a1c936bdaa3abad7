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

package terminput_test

import (
	"testing"

	"github.com/jetsetilly/shmem800/akey"
	"github.com/jetsetilly/shmem800/exchange"
	"github.com/jetsetilly/shmem800/terminput"
	"github.com/jetsetilly/shmem800/test"
)

func decodeOne(t *testing.T, s string) terminput.Event {
	t.Helper()
	ev := terminput.Decode([]byte(s))
	test.DemandEquality(t, len(ev), 1, s)
	return ev[0]
}

func TestDecodeCharacters(t *testing.T) {
	ev := terminput.Decode([]byte("aZ!"))
	test.DemandEquality(t, len(ev), 3)
	test.ExpectEquality(t, ev[0], terminput.Event{Action: terminput.ActionChar, Value: 'a'})
	test.ExpectEquality(t, ev[1], terminput.Event{Action: terminput.ActionChar, Value: 'Z'})
	test.ExpectEquality(t, ev[2], terminput.Event{Action: terminput.ActionChar, Value: '!'})

	test.ExpectEquality(t, decodeOne(t, "\r"), terminput.Event{Action: terminput.ActionKeycode, Value: akey.Return})
	test.ExpectEquality(t, decodeOne(t, " "), terminput.Event{Action: terminput.ActionKeycode, Value: akey.Space})
	test.ExpectEquality(t, decodeOne(t, "\x7f"), terminput.Event{Action: terminput.ActionKeycode, Value: akey.Backspace})
	test.ExpectEquality(t, decodeOne(t, "`"), terminput.Event{Action: terminput.ActionKeycode, Value: akey.Atari})
	test.ExpectEquality(t, decodeOne(t, "\x1b"), terminput.Event{Action: terminput.ActionKeycode, Value: akey.Escape})

	// other control characters are ignored
	test.ExpectEquality(t, len(terminput.Decode([]byte{0x01, 0x02})), 0)
}

func TestDecodeCursor(t *testing.T) {
	test.ExpectEquality(t, decodeOne(t, "\x1b[A"), terminput.Event{Action: terminput.ActionJoystick, Value: exchange.JoyUp})
	test.ExpectEquality(t, decodeOne(t, "\x1b[B"), terminput.Event{Action: terminput.ActionJoystick, Value: exchange.JoyDown})
	test.ExpectEquality(t, decodeOne(t, "\x1b[C"), terminput.Event{Action: terminput.ActionJoystick, Value: exchange.JoyRight})
	test.ExpectEquality(t, decodeOne(t, "\x1b[D"), terminput.Event{Action: terminput.ActionJoystick, Value: exchange.JoyLeft})

	// with the control key the cursor keys are atari cursor keys
	test.ExpectEquality(t, decodeOne(t, "\x1b[1;5A"), terminput.Event{Action: terminput.ActionKeycode, Value: akey.Up})
	test.ExpectEquality(t, decodeOne(t, "\x1b[1;5D"), terminput.Event{Action: terminput.ActionKeycode, Value: akey.Left})

	// other modifiers are ignored
	test.ExpectEquality(t, len(terminput.Decode([]byte("\x1b[1;2A"))), 0)
}

func TestDecodeFunctionKeys(t *testing.T) {
	test.ExpectEquality(t, decodeOne(t, "\x1bOP"), terminput.Event{Action: terminput.ActionTrigger})
	test.ExpectEquality(t, decodeOne(t, "\x1bOQ"), terminput.Event{Action: terminput.ActionConsole, Value: terminput.ConsoleOption})
	test.ExpectEquality(t, decodeOne(t, "\x1bOR"), terminput.Event{Action: terminput.ActionConsole, Value: terminput.ConsoleSelect})
	test.ExpectEquality(t, decodeOne(t, "\x1bOS"), terminput.Event{Action: terminput.ActionConsole, Value: terminput.ConsoleStart})
	test.ExpectEquality(t, decodeOne(t, "\x1b[15~"), terminput.Event{Action: terminput.ActionSpecial, Value: akey.WarmStart})
	test.ExpectEquality(t, decodeOne(t, "\x1b[18~"), terminput.Event{Action: terminput.ActionSpecial, Value: akey.Break})
	test.ExpectEquality(t, decodeOne(t, "\x1b[2~"), terminput.Event{Action: terminput.ActionKeycode, Value: akey.InsertChar})
	test.ExpectEquality(t, decodeOne(t, "\x1b[3~"), terminput.Event{Action: terminput.ActionKeycode, Value: akey.DeleteChar})
	test.ExpectEquality(t, decodeOne(t, "\x1b[H"), terminput.Event{Action: terminput.ActionKeycode, Value: akey.Clear})
	test.ExpectEquality(t, decodeOne(t, "\x1b[F"), terminput.Event{Action: terminput.ActionKeycode, Value: akey.Help})
}

func TestDecodeSequenceOfKeys(t *testing.T) {
	// unknown sequences are skipped without losing the keys around them
	ev := terminput.Decode([]byte("a\x1b[99~b\x1b[Ac"))
	test.DemandEquality(t, len(ev), 4)
	test.ExpectEquality(t, ev[0].Value, uint8('a'))
	test.ExpectEquality(t, ev[1].Value, uint8('b'))
	test.ExpectEquality(t, ev[2].Action, terminput.ActionJoystick)
	test.ExpectEquality(t, ev[3].Value, uint8('c'))

	// escape followed by an ordinary key is the escape key and the key
	ev = terminput.Decode([]byte("\x1bx"))
	test.DemandEquality(t, len(ev), 2)
	test.ExpectEquality(t, ev[0].Value, akey.Escape)
	test.ExpectEquality(t, ev[1].Value, uint8('x'))

	// incomplete sequences produce nothing
	test.ExpectEquality(t, len(terminput.Decode([]byte("\x1b[1;5"))), 0)
	test.ExpectEquality(t, len(terminput.Decode([]byte("\x1bO"))), 0)
}
