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

package sharedmem

import "os"

// Create is not supported on this platform. Use NewPrivate() and an engine
// that runs in the same process.
func Create(size int) (*Segment, error) {
	return nil, ErrUnsupported
}

// Open is not supported on this platform.
func Open(f *os.File, size int) (*Segment, error) {
	return nil, ErrUnsupported
}
