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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/shmem800/exchange"
	"github.com/jetsetilly/shmem800/test"
	"github.com/jetsetilly/shmem800/wavwriter"
)

func TestUnsupportedFormat(t *testing.T) {
	_, err := wavwriter.New("x.wav", exchange.AudioFormat{})
	test.ExpectFailure(t, err)

	_, err = wavwriter.New("x.wav", exchange.AudioFormat{Frequency: 44100, SampleSize: 3, Channels: 1})
	test.ExpectFailure(t, err)
}

func TestWriteSixteenBit(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "audio.wav")
	format := exchange.AudioFormat{Frequency: 22050, SampleSize: 2, Channels: 2}

	aw, err := wavwriter.New(filename, format)
	test.DemandSuccess(t, err)

	// two stereo samples: (1, -1) and (256, -256). the trailing byte is
	// an incomplete sample
	n, err := aw.Write([]byte{0x01, 0x00, 0xff, 0xff, 0x00, 0x01, 0x00, 0xff, 0x7f})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 9)
	test.ExpectEquality(t, aw.Samples(), 4)
	test.DemandSuccess(t, aw.End())

	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandEquality(t, dec.IsValidFile(), true)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, int(dec.SampleRate), 22050)
	test.ExpectEquality(t, int(dec.NumChans), 2)
	test.ExpectEquality(t, int(dec.BitDepth), 16)
	test.DemandEquality(t, len(buf.Data), 4)
	test.ExpectEquality(t, buf.Data[0], 1)
	test.ExpectEquality(t, buf.Data[1], -1)
	test.ExpectEquality(t, buf.Data[2], 256)
	test.ExpectEquality(t, buf.Data[3], -256)
}

func TestReset(t *testing.T) {
	aw, err := wavwriter.New("unused.wav", engineFormat())
	test.DemandSuccess(t, err)
	_, _ = aw.Write(make([]byte, 100))
	test.ExpectEquality(t, aw.Samples(), 100)
	aw.Reset()
	test.ExpectEquality(t, aw.Samples(), 0)
}

func engineFormat() exchange.AudioFormat {
	return exchange.AudioFormat{Frequency: 44100, SampleSize: 1, Channels: 1}
}
