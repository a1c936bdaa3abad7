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

// Package terminput is a keyboard front end for the controller that reads
// from the terminal. The terminal is put into cbreak mode so that key
// presses are seen immediately.
//
// A terminal has no concept of a key being released so keys are held for a
// fixed number of frames after the last time they were seen. Key repeat
// keeps a key held for as long as it is pressed.
//
// The keyboard is mapped as follows:
//
//	printable characters      typed as characters
//	return, space, tab        keycodes
//	backspace, escape         keycodes
//	insert, delete            insert and delete character
//	home, end                 clear and help
//	backtick                  the atari key
//	cursor keys               joystick 0
//	ctrl + cursor keys        cursor keycodes
//	F1                        joystick 0 trigger
//	F2, F3, F4                option, select, start
//	F5, F9                    warm start, cold start
//	F7                        break
package terminput
