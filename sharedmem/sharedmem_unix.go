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

//go:build unix

package sharedmem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"
)

// the preferred directory for the backing file. os.TempDir() is used if it
// does not exist
const shmDir = "/dev/shm"

func backingDir() string {
	if fi, err := os.Stat(shmDir); err == nil && fi.IsDir() {
		return shmDir
	}
	return os.TempDir()
}

// Create allocates memory that can be shared with a child process. The
// backing file is removed from the filesystem once mapped so no file is left
// behind if the process terminates unexpectedly. The segment can be shared
// with a child process by passing the result of File() to it.
func Create(size int) (*Segment, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSize, size)
	}

	name := filepath.Join(backingDir(), fmt.Sprintf("shmem800-%s", uuid.New().String()))

	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("sharedmem: %w", err)
	}
	defer os.Remove(name)

	err = unix.Ftruncate(int(f.Fd()), int64(size))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("sharedmem: truncate: %w", err)
	}

	s, err := mapFile(f, size)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	s.name = name

	return s, nil
}

// Open maps memory created by Create() in another process. The Segment takes
// ownership of the file.
func Open(f *os.File, size int) (*Segment, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSize, size)
	}

	var st unix.Stat_t
	err := unix.Fstat(int(f.Fd()), &st)
	if err != nil {
		return nil, fmt.Errorf("sharedmem: stat: %w", err)
	}
	if st.Size < int64(size) {
		return nil, fmt.Errorf("%w: file is smaller than requested size (%d < %d)", ErrSize, st.Size, size)
	}

	s, err := mapFile(f, size)
	if err != nil {
		return nil, err
	}
	s.name = f.Name()

	return s, nil
}

func mapFile(f *os.File, size int) (*Segment, error) {
	mem, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("sharedmem: mmap: %w", err)
	}

	return &Segment{
		mem:   mem,
		file:  f,
		unmap: unix.Munmap,
	}, nil
}
