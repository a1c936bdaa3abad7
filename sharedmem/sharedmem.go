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

package sharedmem

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// Sentinel errors returned by the package.
var (
	ErrSize        = errors.New("sharedmem: invalid size")
	ErrUnsupported = errors.New("sharedmem: shared memory is not supported on this platform")
)

// the alignment of private memory
const align = 8

// Segment is a block of memory for the exchange.
type Segment struct {
	mem  []byte
	file *os.File
	name string

	// the function used to release mem. nil for private memory
	unmap func([]byte) error

	closeOnce sync.Once
	closeErr  error
}

// NewPrivate allocates memory that is not shared with any other process.
func NewPrivate(size int) (*Segment, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSize, size)
	}

	// allocating a slice of uint64 guarantees the alignment required for
	// atomic access to the first word
	words := make([]uint64, (size+align-1)/align)
	mem := unsafeBytes(words)[:size:size]

	return &Segment{
		mem:  mem,
		name: "private",
	}, nil
}

// Bytes returns the memory of the segment. The slice must not be used after
// Close().
func (s *Segment) Bytes() []byte {
	return s.mem
}

// File returns the file backing the segment. Returns nil if the segment is
// private.
func (s *Segment) File() *os.File {
	return s.file
}

// Shared returns true if the segment can be passed to another process.
func (s *Segment) Shared() bool {
	return s.file != nil
}

// Size of the segment in bytes.
func (s *Segment) Size() int {
	return len(s.mem)
}

func (s *Segment) String() string {
	return fmt.Sprintf("%s (%d bytes)", s.name, len(s.mem))
}

// Close releases the memory. It is safe to call Close() more than once.
func (s *Segment) Close() error {
	s.closeOnce.Do(func() {
		var errs []error
		if s.unmap != nil {
			if err := s.unmap(s.mem); err != nil {
				errs = append(errs, fmt.Errorf("sharedmem: unmap: %w", err))
			}
		}
		if s.file != nil {
			if err := s.file.Close(); err != nil {
				errs = append(errs, fmt.Errorf("sharedmem: close: %w", err))
			}
		}
		s.mem = nil
		s.closeErr = errors.Join(errs...)
	})
	return s.closeErr
}
