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
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/shmem800/exchange"
	"github.com/jetsetilly/shmem800/logger"
	"github.com/jetsetilly/shmem800/sharedmem"
)

// Routine launches an engine function in a new goroutine.
type Routine struct {
	Name string
	Run  RunFunc
}

// Shared implements the Launcher interface.
func (r Routine) Shared() bool {
	return false
}

// Launch implements the Launcher interface.
func (r Routine) Launch(args []string, seg *sharedmem.Segment, layout exchange.Layout) (Unit, error) {
	if r.Run == nil {
		return nil, fmt.Errorf("engine: routine has no function")
	}

	buf, err := exchange.NewBuffer(seg.Bytes(), layout)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	u := &routineUnit{
		name:   r.Name,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	if u.name == "" {
		u.name = "routine"
	}
	u.alive.Store(true)

	go func() {
		defer close(u.done)
		defer u.alive.Store(false)
		defer func() {
			if p := recover(); p != nil {
				u.err = fmt.Errorf("engine: %s panicked: %v", u.name, p)
			}
		}()
		u.err = r.Run(ctx, args, buf)
	}()

	logger.Logf(logger.Allow, "engine", "started %s", u.name)

	return u, nil
}

// how long a killed routine has to return before it is abandoned
const killGrace = 100 * time.Millisecond

type routineUnit struct {
	name   string
	cancel context.CancelFunc
	alive  atomic.Bool

	// err is valid once done is closed
	done chan struct{}
	err  error
}

func (u *routineUnit) Alive() bool {
	return u.alive.Load()
}

func (u *routineUnit) Wait(ctx context.Context) error {
	select {
	case <-u.done:
	case <-ctx.Done():
		logger.Logf(logger.Allow, "engine", "%s did not terminate in time", u.name)
		// a function that ignores its context cannot be stopped. it is
		// abandoned rather than waited for
		u.Kill()
		select {
		case <-u.done:
		case <-time.After(killGrace):
			return fmt.Errorf("engine: %s: %w", u.name, ctx.Err())
		}
	}
	u.cancel()
	return u.err
}

func (u *routineUnit) Kill() {
	u.cancel()
}

func (u *routineUnit) String() string {
	return u.name
}
