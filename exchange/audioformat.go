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
	"encoding/binary"
	"fmt"
)

// AudioFormat is the record written by the engine describing the samples in
// the audio plane. All fields are little-endian 16-bit values in the exchange.
type AudioFormat struct {
	// samples per second
	Frequency uint16

	// bytes per sample per channel
	SampleSize uint16

	Channels uint16

	// length of the engine's audio buffer in milliseconds and in frames
	BufferMS     uint16
	BufferFrames uint16
}

// Valid returns true if the format has been written by the engine.
func (f AudioFormat) Valid() bool {
	return f.Frequency != 0 && f.SampleSize != 0 && f.Channels != 0
}

// BytesPerFrame returns the number of bytes the engine produces in one frame
// of emulation at the given frames per second. Returns zero if the format is
// not valid or fps is not positive.
func (f AudioFormat) BytesPerFrame(fps float64) int {
	if !f.Valid() || fps <= 0 {
		return 0
	}
	samples := int(float64(f.Frequency) / fps)
	return samples * int(f.SampleSize) * int(f.Channels)
}

func (f AudioFormat) String() string {
	if !f.Valid() {
		return "no audio format"
	}
	return fmt.Sprintf("%dHz %d-bit %dch (buffer %dms/%d frames)",
		f.Frequency, f.SampleSize*8, f.Channels, f.BufferMS, f.BufferFrames)
}

func readAudioFormat(b []byte) AudioFormat {
	return AudioFormat{
		Frequency:    binary.LittleEndian.Uint16(b[0:]),
		SampleSize:   binary.LittleEndian.Uint16(b[2:]),
		Channels:     binary.LittleEndian.Uint16(b[4:]),
		BufferMS:     binary.LittleEndian.Uint16(b[6:]),
		BufferFrames: binary.LittleEndian.Uint16(b[8:]),
	}
}

func writeAudioFormat(b []byte, f AudioFormat) {
	binary.LittleEndian.PutUint16(b[0:], f.Frequency)
	binary.LittleEndian.PutUint16(b[2:], f.SampleSize)
	binary.LittleEndian.PutUint16(b[4:], f.Channels)
	binary.LittleEndian.PutUint16(b[6:], f.BufferMS)
	binary.LittleEndian.PutUint16(b[8:], f.BufferFrames)
}
