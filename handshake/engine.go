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
	"time"

	"github.com/jetsetilly/shmem800/exchange"
)

// Engine is the engine side of the handshake.
type Engine struct {
	sem *exchange.Semaphore

	// the time between each check of the semaphore
	Interval time.Duration
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine(sem *exchange.Semaphore) *Engine {
	return &Engine{
		sem:      sem,
		Interval: DefaultInterval,
	}
}

// Await blocks until the controller releases the engine to run the next
// frame. Returns false if the controller has asked the engine to terminate or
// if the context has been cancelled.
func (e *Engine) Await(ctx context.Context) bool {
	interval := e.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		switch e.sem.Load() {
		case exchange.Running:
			return true
		case exchange.Shutdown, exchange.ShutdownAlt:
			return false
		}

		select {
		case <-ctx.Done():
			return false
		case <-tick.C:
		}
	}
}

// FrameDone hands ownership of the exchange to the controller. The engine
// must not write to the exchange until Await() returns true.
func (e *Engine) FrameDone() {
	e.sem.CompareAndSwap(exchange.Running, exchange.FrameReady)
}
