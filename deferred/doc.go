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

// Package deferred implements a queue of one-shot callbacks triggered by the
// frame counter of the controller.
//
// Events are created with the Schedule() function of the Queue type. The
// function takes a delay, measured in frames, a label (useful for
// identifying the event in logs) and a callback function. The callback is
// called by the first call to Advance() with a frame count that is equal to
// or greater than the frame count at the time of scheduling plus the delay.
//
// Advance() should be called exactly once per frame. Events are triggered in
// the order they were scheduled. An event is never triggered more than once.
//
// Events scheduled by a callback are queued normally and are not triggered
// until the next call to Advance(), regardless of delay.
package deferred
