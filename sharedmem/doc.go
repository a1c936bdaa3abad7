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

// Package sharedmem allocates the memory used for the exchange between the
// controller and the engine.
//
// Memory from NewPrivate() is ordinary memory and is suitable for engines
// running in the same process as the controller. Memory from Create() is a
// file backed mapping that can be passed to a child process, where it is
// mapped with Open().
package sharedmem
