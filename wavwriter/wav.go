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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when End() is called. It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/shmem800/exchange"
	"github.com/jetsetilly/shmem800/logger"
)

// WavWriter collects the contents of the audio plane, frame by frame.
type WavWriter struct {
	filename string
	format   exchange.AudioFormat
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type. The
// audio format must be valid and have a sample size of one or two bytes.
func New(filename string, format exchange.AudioFormat) (*WavWriter, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("wavwriter: %s", format)
	}
	if format.SampleSize != 1 && format.SampleSize != 2 {
		return nil, fmt.Errorf("wavwriter: unsupported sample size (%d)", format.SampleSize)
	}

	aw := &WavWriter{
		filename: filename,
		format:   format,
		buffer:   make([]int, 0),
	}

	return aw, nil
}

// Write implements the io.Writer interface. Data is interpreted according to
// the audio format. Incomplete samples at the end of the data are ignored.
func (aw *WavWriter) Write(p []byte) (int, error) {
	switch aw.format.SampleSize {
	case 1:
		for _, v := range p {
			aw.buffer = append(aw.buffer, int(v))
		}
	case 2:
		for i := 0; i+1 < len(p); i += 2 {
			aw.buffer = append(aw.buffer, int(int16(binary.LittleEndian.Uint16(p[i:]))))
		}
	}
	return len(p), nil
}

// Samples returns the number of samples collected so far. Each channel counts
// as a separate sample.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// End writes the collected audio to disk.
func (aw *WavWriter) End() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	bitDepth := int(aw.format.SampleSize) * 8
	numChans := int(aw.format.Channels)
	sampleRate := int(aw.format.Frequency)

	// 1 is the PCM audio format
	enc := wav.NewEncoder(f, sampleRate, bitDepth, numChans, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChans,
			SampleRate:  sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}

// Reset discards collected audio.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}
