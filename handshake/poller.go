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

package handshake

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jetsetilly/shmem800/exchange"
)

// Sentinel errors returned by Poller.Wait().
var (
	ErrEngineExited = errors.New("handshake: engine has exited")
	ErrUnresponsive = errors.New("handshake: engine is unresponsive")
)

// Default values for a new Poller.
const (
	DefaultInterval = time.Millisecond
	DefaultTimeout  = 5 * time.Second
)

// Poller waits for the semaphore to reach a value.
type Poller struct {
	// the time between each check of the semaphore
	Interval time.Duration

	// the maximum time to wait for the semaphore. zero means wait forever
	Timeout time.Duration

	// returns false if the engine is no longer running. can be nil
	Alive func() bool
}

// NewPoller is the preferred method of initialisation for the Poller type.
func NewPoller(alive func() bool) *Poller {
	return &Poller{
		Interval: DefaultInterval,
		Timeout:  DefaultTimeout,
		Alive:    alive,
	}
}

// Wait blocks until the semaphore has the wanted value. Returns an error
// wrapping ErrEngineExited if the engine stops running before the value is
// seen and an error wrapping ErrUnresponsive if the timeout expires. If the
// context is cancelled then the context's error is returned.
func (p *Poller) Wait(ctx context.Context, sem *exchange.Semaphore, want uint8) error {
	if sem.Load() == want {
		return nil
	}

	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	var timeout <-chan time.Time
	if p.Timeout > 0 {
		t := time.NewTimer(p.Timeout)
		defer t.Stop()
		timeout = t.C
	}

	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timeout:
			if sem.Load() == want {
				return nil
			}
			return fmt.Errorf("%w: waited %v for %s", ErrUnresponsive, p.Timeout, exchange.SemaphoreString(want))
		case <-tick.C:
			if sem.Load() == want {
				return nil
			}
			if p.Alive != nil && !p.Alive() {
				// the engine may have set the semaphore immediately before
				// exiting
				if sem.Load() == want {
					return nil
				}
				return fmt.Errorf("%w: while waiting for %s", ErrEngineExited, exchange.SemaphoreString(want))
			}
		}
	}
}
