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

package exchange

import (
	"sync/atomic"
	"unsafe"
)

// The values of the semaphore.
const (
	// the engine may run and render into the video and audio planes
	Running uint8 = 0x00

	// the engine has finished a frame and is waiting to be released
	FrameReady uint8 = 0x01

	// the engine should terminate. the engine also treats the value
	// ShutdownAlt as a request to terminate
	Shutdown    uint8 = 0xff
	ShutdownAlt uint8 = 0x02
)

// the position of the first byte of a 32-bit word, measured in bits from the
// least significant bit
var firstByteShift uint

func init() {
	w := uint32(1)
	if *(*byte)(unsafe.Pointer(&w)) == 1 {
		firstByteShift = 0
	} else {
		firstByteShift = 24
	}
}

// word is an atomically accessed, aligned 32-bit word of the exchange. the
// bytes within the word are addressed individually.
type word struct {
	p *uint32
}

func newWord(b []byte) word {
	return word{p: (*uint32)(unsafe.Pointer(&b[0]))}
}

func (w word) shift(idx int) uint {
	if firstByteShift == 0 {
		return uint(idx) * 8
	}
	return firstByteShift - uint(idx)*8
}

func (w word) load(idx int) uint8 {
	return uint8(atomic.LoadUint32(w.p) >> w.shift(idx))
}

func (w word) store(idx int, v uint8) {
	s := w.shift(idx)
	for {
		o := atomic.LoadUint32(w.p)
		n := (o &^ (0xff << s)) | (uint32(v) << s)
		if atomic.CompareAndSwapUint32(w.p, o, n) {
			return
		}
	}
}

func (w word) compareAndSwap(idx int, old, new uint8) bool {
	s := w.shift(idx)
	for {
		o := atomic.LoadUint32(w.p)
		if uint8(o>>s) != old {
			return false
		}
		n := (o &^ (0xff << s)) | (uint32(new) << s)
		if atomic.CompareAndSwapUint32(w.p, o, n) {
			return true
		}
	}
}

// Semaphore is the handshake flag at the start of the input record.
type Semaphore struct {
	w word
}

// Load returns the current value of the semaphore.
func (s *Semaphore) Load() uint8 {
	return s.w.load(OffsetSemaphore)
}

// Store sets the value of the semaphore.
func (s *Semaphore) Store(v uint8) {
	s.w.store(OffsetSemaphore, v)
}

// CompareAndSwap sets the semaphore to new only if its current value is old.
// Returns true if the value was changed.
func (s *Semaphore) CompareAndSwap(old, new uint8) bool {
	return s.w.compareAndSwap(OffsetSemaphore, old, new)
}

// SemaphoreString returns a description of a semaphore value.
func SemaphoreString(v uint8) string {
	switch v {
	case Running:
		return "running"
	case FrameReady:
		return "frame ready"
	case Shutdown, ShutdownAlt:
		return "shutdown"
	}
	return "unknown"
}
