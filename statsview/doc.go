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

// Package statsview offers a local HTTP server showing runtime statistics of
// the controller process. The server is only included when the program is
// built with the statsview build tag. Without the tag, Available() returns
// false and Launch() does nothing.
//
// When available the statistics can be viewed at:
//
//	localhost:12800/debug/statsview
//
// And standard Go pprof statistics at:
//
//	localhost:12800/debug/pprof/
package statsview
