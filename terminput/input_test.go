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
	"fmt"
	"testing"

	"github.com/jetsetilly/shmem800/akey"
	"github.com/jetsetilly/shmem800/exchange"
	"github.com/jetsetilly/shmem800/terminput"
	"github.com/jetsetilly/shmem800/test"
)

// records the calls made to it in order
type recordingSink struct {
	calls []string
}

func (s *recordingSink) SendChar(ch uint8) {
	s.calls = append(s.calls, fmt.Sprintf("char %c", ch))
}

func (s *recordingSink) SendKeycode(code uint8) {
	s.calls = append(s.calls, fmt.Sprintf("keycode %#02x", code))
}

func (s *recordingSink) SendSpecialKey(special uint8) {
	s.calls = append(s.calls, fmt.Sprintf("special %d", special))
}

func (s *recordingSink) ClearKeys() {
	s.calls = append(s.calls, "clear")
}

func (s *recordingSink) SetJoystick(stick int, dir uint8, trigger bool) error {
	s.calls = append(s.calls, fmt.Sprintf("joystick %d %04b %v", stick, dir, trigger))
	return nil
}

func (s *recordingSink) SetConsole(start, sel, option bool) {
	s.calls = append(s.calls, fmt.Sprintf("console %v %v %v", start, sel, option))
}

func (s *recordingSink) last() string {
	if len(s.calls) == 0 {
		return ""
	}
	return s.calls[len(s.calls)-1]
}

func TestHeldKey(t *testing.T) {
	sink := &recordingSink{}
	in := terminput.NewInput(sink, 3)

	in.Apply(terminput.Event{Action: terminput.ActionChar, Value: 'q'})
	test.ExpectEquality(t, sink.last(), "char q")

	in.Frame()
	in.Frame()
	test.ExpectEquality(t, len(sink.calls), 1)
	in.Frame()
	test.ExpectEquality(t, sink.last(), "clear")

	// no further calls once released
	in.Frame()
	test.ExpectEquality(t, len(sink.calls), 2)
}

func TestRepeatedKey(t *testing.T) {
	sink := &recordingSink{}
	in := terminput.NewInput(sink, 2)

	// key repeat refreshes the hold
	in.Apply(terminput.Event{Action: terminput.ActionKeycode, Value: akey.Return})
	in.Frame()
	in.Apply(terminput.Event{Action: terminput.ActionKeycode, Value: akey.Return})
	in.Frame()
	test.ExpectInequality(t, sink.last(), "clear")
	in.Frame()
	test.ExpectEquality(t, sink.last(), "clear")
}

func TestJoystick(t *testing.T) {
	sink := &recordingSink{}
	in := terminput.NewInput(sink, 1)

	in.Apply(terminput.Event{Action: terminput.ActionJoystick, Value: exchange.JoyLeft})
	test.ExpectEquality(t, sink.last(), "joystick 0 0100 false")
	in.Apply(terminput.Event{Action: terminput.ActionTrigger})
	test.ExpectEquality(t, sink.last(), "joystick 0 0100 true")

	in.Frame()
	test.ExpectEquality(t, sink.last(), "joystick 0 0000 false")
}

func TestConsoleAndSpecial(t *testing.T) {
	sink := &recordingSink{}
	in := terminput.NewInput(sink, 0)

	in.Apply(terminput.Event{Action: terminput.ActionConsole, Value: terminput.ConsoleStart})
	in.Apply(terminput.Event{Action: terminput.ActionConsole, Value: terminput.ConsoleOption})
	test.ExpectEquality(t, sink.last(), "console true false true")

	// special keys are not released by the input
	in.Apply(terminput.Event{Action: terminput.ActionSpecial, Value: akey.Break})
	test.ExpectEquality(t, sink.last(), "special 5")

	for range terminput.DefaultHold {
		in.Frame()
	}
	test.ExpectEquality(t, sink.last(), "console false false false")
}
