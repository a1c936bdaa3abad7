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

package controller

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/shmem800/akey"
	"github.com/jetsetilly/shmem800/exchange"
	"github.com/jetsetilly/shmem800/logger"
)

// input staged for the next frame.
type input struct {
	crit    sync.Mutex
	pending exchange.Input
}

func (in *input) load() exchange.Input {
	in.crit.Lock()
	defer in.crit.Unlock()
	return in.pending
}

func (in *input) update(f func(inp *exchange.Input)) {
	in.crit.Lock()
	defer in.crit.Unlock()
	f(&in.pending)
}

// PendingInput returns the input that will be written to the exchange by the
// next call to NextFrame().
func (c *Controller) PendingInput() exchange.Input {
	return c.input.load()
}

// InputRecord returns the input record as it was written for the frame
// that has just completed.
func (c *Controller) InputRecord() (exchange.Input, error) {
	if err := c.owned(); err != nil {
		return exchange.Input{}, err
	}
	return c.buf.Input().Load(), nil
}

// SendChar presses the key for the ASCII character. Any other key is
// released. The key remains pressed until ClearKeys() is called or another
// key is pressed.
func (c *Controller) SendChar(ch uint8) {
	c.input.update(func(inp *exchange.Input) {
		inp.Key = exchange.CharKey(ch)
	})
}

// SendKeycode presses the key with the keycode. Any other key is released.
// See the akey package for keycode values.
func (c *Controller) SendKeycode(code uint8) {
	c.input.update(func(inp *exchange.Input) {
		inp.Key = exchange.CodeKey(code)
	})
}

// SendSpecialKey presses a special key. Any other key is released. Special
// keys are released automatically after a short number of frames.
func (c *Controller) SendSpecialKey(special uint8) {
	k := exchange.SpecialKey(special)

	c.input.update(func(inp *exchange.Input) {
		inp.Key = k
	})

	if k == exchange.NoKey {
		return
	}

	delay := uint64(c.Prefs.SpecialKeyFrames.Get().(int))
	c.queue.Schedule(delay, fmt.Sprintf("release %s", akey.SpecialName(special)), func() {
		c.input.update(func(inp *exchange.Input) {
			// a different key may have been pressed in the meantime
			if inp.Key == k {
				inp.Key = exchange.NoKey
			}
		})
		logger.Logf(logger.Allow, "controller", "released %s on frame %d", akey.SpecialName(special), c.queue.Frame())
	})
}

// ClearKeys releases all keys, including the modifier keys.
func (c *Controller) ClearKeys() {
	c.input.update(func(inp *exchange.Input) {
		inp.Key = exchange.NoKey
		inp.Shift = false
		inp.Control = false
	})
}

// SetModifiers sets the state of the shift and control keys.
func (c *Controller) SetModifiers(shift, control bool) {
	c.input.update(func(inp *exchange.Input) {
		inp.Shift = shift
		inp.Control = control
	})
}

// SetConsole sets the state of the console keys.
func (c *Controller) SetConsole(start, sel, option bool) {
	c.input.update(func(inp *exchange.Input) {
		inp.Start = start
		inp.Select = sel
		inp.Option = option
	})
}

// SetJoystick sets the direction and trigger of a joystick. Directions are
// combinations of the exchange.JoyUp, JoyDown, JoyLeft and JoyRight bits.
func (c *Controller) SetJoystick(stick int, dir uint8, trigger bool) error {
	if stick < 0 || stick > 3 {
		return fmt.Errorf("controller: no such joystick (%d)", stick)
	}
	if dir&0xf0 != 0 {
		return fmt.Errorf("controller: invalid joystick direction (%#04x)", dir)
	}
	c.input.update(func(inp *exchange.Input) {
		inp.Joy[stick] = dir
		inp.Trig[stick] = trigger
	})
	return nil
}

// SetMouse sets the mouse position and buttons.
func (c *Controller) SetMouse(x, y int8, buttons uint8, mode exchange.MouseMode) {
	c.input.update(func(inp *exchange.Input) {
		inp.MouseX = x
		inp.MouseY = y
		inp.MouseButtons = buttons
		inp.MouseMode = mode
	})
}
