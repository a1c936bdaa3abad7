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

// bytes of interest read from a terminal in cbreak mode.
const (
	keyBackspaceAlt   = 8
	keyTab            = 9
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keyBackspace      = 127
)

// the bytes that follow keyEsc to introduce a sequence.
const (
	escCSI = '['
	escSS3 = 'O'
)

// final bytes of cursor sequences.
const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
	cursorHome     = 'H'
	cursorEnd      = 'F'
)

// function keys one to four are sent as SS3 sequences.
const (
	functionF1 = 'P'
	functionF2 = 'Q'
	functionF3 = 'R'
	functionF4 = 'S'
)

// parameter of the CSI sequences ending in '~'.
const (
	tildeHome   = "1"
	tildeInsert = "2"
	tildeDelete = "3"
	tildeEnd    = "4"
	tildeF5     = "15"
	tildeF7     = "18"
	tildeF9     = "20"
)

// the parameter that indicates the control key in a cursor sequence.
const modControl = "1;5"
