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

// Package handshake implements both sides of the frame-by-frame
// coordination between the controller and the engine.
//
// The semaphore at the start of the exchange alternates between
// exchange.Running and exchange.FrameReady. The engine owns the exchange
// while the semaphore is Running and the controller owns it while the
// semaphore is FrameReady. Only the owner may set the semaphore to the other
// value. The controller may additionally set the semaphore to
// exchange.Shutdown while it owns the exchange.
//
// The controller waits on the semaphore with a Poller. Unlike a bare polling
// loop, the Poller notices when the engine has stopped running and when the
// engine has not responded within a time limit.
//
// The engine side of the handshake is the Engine type.
package handshake
