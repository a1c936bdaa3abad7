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

// Package limiter paces the exchange of frames with the engine and measures
// the rate at which frames are actually being exchanged.
package limiter

import (
	"sync/atomic"
	"time"
)

// DefaultFPS is the frame rate of an NTSC machine.
const DefaultFPS float32 = 59.92

// Unlimited can be passed to SetLimit() to turn off pacing.
const Unlimited float32 = 0.0

type Limiter struct {
	// whether to wait for fps limited each frame
	Active bool

	// the ideal number of frames per second if everything was working nicely
	IdealFPS atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker will be set
	// when SetLimit() is called with a new fps value
	pulse *time.Ticker

	// we don't want to wait on the ticker every frame. a simple counter is
	// good enough to spread the wait over several frames
	pulseCt      int
	pulseCtLimit int

	// pulse that performs the FPS measurement
	measuringPulse *time.Ticker

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// the measured number of frames per second
	Measured atomic.Value // float32

	// nudge the limiter so that it doesn't wait for the specified number of frames
	Nudge atomic.Int32
}

// NewLimiter is preferred method of initialising a new instance of the Limiter
// type. The limit is set to the value given. A limit of Unlimited or less will
// create an inactive limiter.
func NewLimiter(fps float32) *Limiter {
	lmtr := Limiter{}
	lmtr.Measured.Store(float32(0.0))
	lmtr.IdealFPS.Store(float32(0.0))

	lmtr.pulse = time.NewTicker(time.Millisecond * 16)
	lmtr.measuringPulse = time.NewTicker(time.Millisecond * 1000)
	lmtr.measureTime = time.Now()

	lmtr.SetLimit(fps)

	return &lmtr
}

// SetLimit changes the frame limit. A value of Unlimited or less deactivates
// the limiter but measurement of the actual rate continues.
func (lmtr *Limiter) SetLimit(fps float32) {
	// restart acutal FPS rate measurement values
	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()

	if fps <= Unlimited {
		lmtr.Active = false
		lmtr.IdealFPS.Store(float32(0.0))
		return
	}

	lmtr.Active = true
	lmtr.IdealFPS.Store(fps)

	// set scale and duration to wait according to requested FPS rate
	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Stop()
	lmtr.pulse.Reset(time.Duration(1000000000 / fps * float32(lmtr.pulseCtLimit)))
}

// CheckFrame should be called every frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	nudge := lmtr.Nudge.Load()
	if nudge > 0 {
		lmtr.Nudge.Store(nudge - 1)
		return
	}

	if lmtr.Active {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual measures frame rate on every tick of the measuringPulse ticker.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)

		// reset time and count ready for next measurement
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop releases the tickers used by the limiter.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
