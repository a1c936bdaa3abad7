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

// Package prefs facilitates the storage of preferential values. Preference
// values are typed (Bool, Int, String, Float) and are registered with a Disk
// under a key. The Disk can be saved to and loaded from a file.
//
// The file format is one value per line:
//
//	key :: value
//
// Preferences can also be specified on the command line, as a single string
// of key/value pairs:
//
//	"exchange.width::320; exchange.height::200"
//
// The command line string is pushed onto a stack with PushCommandLineStack().
// Values on the top of the stack take precedence over values loaded from disk
// and are consumed when they are used.
package prefs
