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

package engine

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jetsetilly/shmem800/exchange"
	"github.com/jetsetilly/shmem800/sharedmem"
)

// Attached returns true if the process has been started by Process.Launch().
func Attached() bool {
	return os.Getenv(EnvLayout) != ""
}

// Attach maps the exchange passed to the process by Process.Launch(). The
// segment should be closed when the engine terminates.
func Attach() (*sharedmem.Segment, *exchange.Buffer, error) {
	cfg, err := exchange.ParseConfig(os.Getenv(EnvLayout))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrAttach, err)
	}

	layout, err := exchange.NewLayout(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrAttach, err)
	}

	size, err := strconv.Atoi(os.Getenv(EnvSize))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: exchange size: %w", ErrAttach, err)
	}
	if size < layout.Size {
		return nil, nil, fmt.Errorf("%w: exchange is smaller than layout (%d < %d)", ErrAttach, size, layout.Size)
	}

	f := os.NewFile(exchangeFD, "exchange")
	if f == nil {
		return nil, nil, fmt.Errorf("%w: no exchange file", ErrAttach)
	}

	seg, err := sharedmem.Open(f, size)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%w: %w", ErrAttach, err)
	}

	buf, err := exchange.NewBuffer(seg.Bytes(), layout)
	if err != nil {
		_ = seg.Close()
		return nil, nil, fmt.Errorf("%w: %w", ErrAttach, err)
	}

	return seg, buf, nil
}
