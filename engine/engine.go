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
	"context"
	"errors"

	"github.com/jetsetilly/shmem800/exchange"
	"github.com/jetsetilly/shmem800/sharedmem"
)

// Sentinel errors returned by the package.
var (
	ErrNotShared = errors.New("engine: exchange memory cannot be shared with a child process")
	ErrAttach    = errors.New("engine: cannot attach to exchange")
)

// RunFunc is the signature of an engine function. The function should return
// when the semaphore is set to exchange.Shutdown or when the context is
// cancelled.
type RunFunc func(ctx context.Context, args []string, buf *exchange.Buffer) error

// Unit is a running engine.
type Unit interface {
	// Alive returns false once the engine has terminated
	Alive() bool

	// Wait blocks until the engine has terminated. If the context is
	// cancelled before then the engine is killed. Returns the error with
	// which the engine terminated
	Wait(ctx context.Context) error

	// Kill terminates the engine without waiting for the handshake
	Kill()

	String() string
}

// Launcher starts an engine with access to the exchange.
type Launcher interface {
	// Shared returns true if the exchange must be memory from
	// sharedmem.Create()
	Shared() bool

	Launch(args []string, seg *sharedmem.Segment, layout exchange.Layout) (Unit, error)
}
