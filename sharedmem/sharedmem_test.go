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

package sharedmem_test

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/jetsetilly/shmem800/sharedmem"
	"github.com/jetsetilly/shmem800/test"
)

func TestPrivate(t *testing.T) {
	_, err := sharedmem.NewPrivate(0)
	test.ExpectSuccess(t, errors.Is(err, sharedmem.ErrSize))

	s, err := sharedmem.NewPrivate(1001)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Size(), 1001)
	test.ExpectEquality(t, len(s.Bytes()), 1001)
	test.ExpectFailure(t, s.Shared())
	test.ExpectEquality(t, s.File() == nil, true)
	test.ExpectEquality(t, uintptr(unsafe.Pointer(&s.Bytes()[0]))%8, uintptr(0))

	for _, v := range s.Bytes() {
		if v != 0 {
			t.Fatalf("private memory is not zeroed")
		}
	}

	test.ExpectSuccess(t, s.Close())
	test.ExpectSuccess(t, s.Close())
	test.ExpectEquality(t, len(s.Bytes()), 0)
}
