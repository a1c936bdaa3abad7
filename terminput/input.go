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
	"sync"

	"github.com/jetsetilly/shmem800/logger"
)

// Sink is the input API of the controller.
type Sink interface {
	SendChar(ch uint8)
	SendKeycode(code uint8)
	SendSpecialKey(special uint8)
	ClearKeys()
	SetJoystick(stick int, dir uint8, trigger bool) error
	SetConsole(start, sel, option bool)
}

// DefaultHold is the number of frames a key is held after it was last seen.
const DefaultHold = 6

// Input applies decoded events to a Sink and releases them after they have
// been held for the required number of frames. Apply() and Frame() can be
// called from different goroutines.
type Input struct {
	crit sync.Mutex
	sink Sink
	hold int

	// frames remaining before release
	key     int
	joy     int
	console int

	dir     uint8
	trigger bool
	buttons uint8
}

// NewInput is the preferred method of initialisation for the Input type. A
// hold value of less than one is replaced by DefaultHold.
func NewInput(sink Sink, hold int) *Input {
	if hold < 1 {
		hold = DefaultHold
	}
	return &Input{
		sink: sink,
		hold: hold,
	}
}

// Apply the event to the sink.
func (in *Input) Apply(ev Event) {
	in.crit.Lock()
	defer in.crit.Unlock()

	switch ev.Action {
	case ActionChar:
		in.sink.SendChar(ev.Value)
		in.key = in.hold
	case ActionKeycode:
		in.sink.SendKeycode(ev.Value)
		in.key = in.hold
	case ActionSpecial:
		// special keys are released by the controller
		in.sink.SendSpecialKey(ev.Value)
	case ActionJoystick:
		in.dir = ev.Value
		in.joy = in.hold
		in.joystick()
	case ActionTrigger:
		in.trigger = true
		in.joy = in.hold
		in.joystick()
	case ActionConsole:
		in.buttons |= ev.Value
		in.console = in.hold
		in.consoleButtons()
	}
}

// Frame should be called once for every frame exchanged with the engine.
func (in *Input) Frame() {
	in.crit.Lock()
	defer in.crit.Unlock()

	if in.key > 0 {
		in.key--
		if in.key == 0 {
			in.sink.ClearKeys()
		}
	}

	if in.joy > 0 {
		in.joy--
		if in.joy == 0 {
			in.dir = 0
			in.trigger = false
			in.joystick()
		}
	}

	if in.console > 0 {
		in.console--
		if in.console == 0 {
			in.buttons = 0
			in.consoleButtons()
		}
	}
}

func (in *Input) joystick() {
	err := in.sink.SetJoystick(0, in.dir, in.trigger)
	if err != nil {
		logger.Log(logger.Allow, "terminput", err)
	}
}

func (in *Input) consoleButtons() {
	in.sink.SetConsole(in.buttons&ConsoleStart == ConsoleStart,
		in.buttons&ConsoleSelect == ConsoleSelect,
		in.buttons&ConsoleOption == ConsoleOption)
}
