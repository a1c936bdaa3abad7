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
	"errors"
	"fmt"
	"unsafe"
)

// ErrBuffer is wrapped by errors returned by NewBuffer().
var ErrBuffer = errors.New("exchange: buffer error")

// Buffer provides views onto a block of memory arranged according to a
// Layout.
type Buffer struct {
	mem    []byte
	layout Layout

	sem   Semaphore
	input InputRecord
}

// NewBuffer returns views onto mem. The memory must be at least as large as
// the layout and must be aligned to four bytes.
func NewBuffer(mem []byte, layout Layout) (*Buffer, error) {
	if layout.Size == 0 {
		return nil, fmt.Errorf("%w: layout has not been calculated", ErrBuffer)
	}
	if len(mem) < layout.Size {
		return nil, fmt.Errorf("%w: memory is too small for layout (%d < %d)", ErrBuffer, len(mem), layout.Size)
	}
	if uintptr(unsafe.Pointer(&mem[0]))%4 != 0 {
		return nil, fmt.Errorf("%w: memory is not aligned", ErrBuffer)
	}

	w := newWord(mem)

	b := &Buffer{
		mem:    mem[:layout.Size:layout.Size],
		layout: layout,
		sem:    Semaphore{w: w},
		input: InputRecord{
			mem: mem[layout.Input.Offset:layout.Input.End():layout.Input.End()],
			w:   w,
		},
	}

	return b, nil
}

func (b *Buffer) view(r Region) []byte {
	return b.mem[r.Offset:r.End():r.End()]
}

// Layout returns the layout used by the buffer.
func (b *Buffer) Layout() Layout {
	return b.layout
}

// Bytes returns the entire exchange.
func (b *Buffer) Bytes() []byte {
	return b.mem
}

// Semaphore returns the handshake semaphore.
func (b *Buffer) Semaphore() *Semaphore {
	return &b.sem
}

// Input returns the input record.
func (b *Buffer) Input() *InputRecord {
	return &b.input
}

// Header returns the control header.
func (b *Buffer) Header() []byte {
	return b.view(b.layout.Header)
}

// VideoPlane returns the video plane. One byte per pixel.
func (b *Buffer) VideoPlane() []byte {
	return b.view(b.layout.Video)
}

// AudioPlane returns the audio plane.
func (b *Buffer) AudioPlane() []byte {
	return b.view(b.layout.Audio)
}

// StateRegion returns the state region. The slice is empty if the layout
// has no state region.
func (b *Buffer) StateRegion() []byte {
	return b.view(b.layout.State)
}

// AudioFormat returns the audio format record.
func (b *Buffer) AudioFormat() AudioFormat {
	return readAudioFormat(b.mem[AudioFormatOffset : AudioFormatOffset+AudioFormatSize])
}

// SetAudioFormat writes the audio format record. Only the engine should
// write the audio format.
func (b *Buffer) SetAudioFormat(f AudioFormat) {
	writeAudioFormat(b.mem[AudioFormatOffset:AudioFormatOffset+AudioFormatSize], f)
}

// Reset zeroes the entire exchange.
func (b *Buffer) Reset() {
	b.sem.Store(Running)
	b.input.Store(Input{})
	clear(b.mem[atomicFields:])
}
