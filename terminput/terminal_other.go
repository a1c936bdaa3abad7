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

//go:build !unix

package terminput

import (
	"context"
	"errors"
)

// DefaultDevice is the terminal opened when no other device is specified.
const DefaultDevice = ""

var errUnsupported = errors.New("terminput: terminal input is not supported on this platform")

// Interactive returns true if the standard input is a terminal.
func Interactive() bool {
	return false
}

// Terminal is not supported on this platform.
type Terminal struct{}

// Open always fails on this platform.
func Open(device string) (*Terminal, error) {
	return nil, errUnsupported
}

func (tm *Terminal) String() string {
	return "unsupported"
}

// Close does nothing.
func (tm *Terminal) Close() error {
	return nil
}

// Run always fails on this platform.
func (tm *Terminal) Run(ctx context.Context, in *Input) error {
	return errUnsupported
}
