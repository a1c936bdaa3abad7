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

// Package logger is the central log for the application. Log entries are made
// up of a tag, identifying the part of the program making the entry, and a
// detail string. Consecutive identical entries are folded into a single entry
// with a repeat count.
//
// The log is bounded. Once the maximum number of entries is reached the oldest
// entries are discarded.
//
// Entries can be echoed to an io.Writer as they are made with the SetEcho()
// function. This is useful for command line tools where the log should be
// visible immediately.
package logger
