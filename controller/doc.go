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

// Package controller is the controlling side of the exchange. It owns the
// memory of the exchange, starts and stops the engine, and provides the
// polling and input API used by front ends.
//
// A typical loop looks like this:
//
//	err := ctl.Start(args)
//	for {
//		err = ctl.WaitFrame(ctx)
//		img, err := ctl.Frame(2)
//		// display image and play ctl.Audio()
//		ctl.SendChar('A')
//		err = ctl.NextFrame()
//	}
//	err = ctl.Stop(ctx)
//
// The input functions (SendChar(), SetJoystick(), etc.) can be called at any
// time and from any goroutine. Input is staged and only written to the
// exchange by NextFrame(), while the controller owns the exchange. The
// remaining functions must be called from a single goroutine.
package controller
