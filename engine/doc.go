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

// Package engine starts and monitors the emulation engine.
//
// An engine is anything that reads and writes the exchange according to the
// handshake. Two ways of running an engine are provided by the package:
//
// Routine runs an engine function in a goroutine of the current process. The
// exchange is ordinary memory in this case.
//
// Process runs an engine executable as a child process. The exchange must be
// memory from sharedmem.Create(). The file backing the memory is passed to the
// child as file descriptor three and the layout of the exchange in
// environment variables. The child calls Attach() to map the exchange.
//
// Both types return a Unit, which is used to monitor and terminate the
// engine.
//
// Pattern is an engine function that renders a deterministic test pattern.
// It is used for testing and for demonstration.
package engine
