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
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/jetsetilly/shmem800/exchange"
	"github.com/jetsetilly/shmem800/handshake"
	"github.com/jetsetilly/shmem800/logger"
	"github.com/spf13/pflag"
)

// ErrPatternExit is returned by Pattern when the exit-after option is used.
var ErrPatternExit = errors.New("engine: pattern exited early")

// PatternAudioFormat is the audio format written by Pattern.
var PatternAudioFormat = exchange.AudioFormat{
	Frequency:    44100,
	SampleSize:   1,
	Channels:     1,
	BufferMS:     20,
	BufferFrames: 1,
}

// EchoPixels is the number of pixels at the start of the video plane used by
// Pattern to echo the input of the frame.
const EchoPixels = 12

// Echo returns the pixels Pattern writes at the start of the video plane for
// the input.
//
//	0      keychar
//	1      keycode
//	2      special key
//	3      modifiers (shift = bit 0, control = bit 1)
//	4      console (start = bit 0, select = bit 1, option = bit 2)
//	5-8    joystick direction bits, trigger = bit 4
//	9      mouse buttons
//	10-11  mouse x and y
func Echo(inp exchange.Input) [EchoPixels]uint8 {
	var e [EchoPixels]uint8

	switch inp.Key.Kind {
	case exchange.KeyChar:
		e[0] = inp.Key.Value
	case exchange.KeyCode:
		e[1] = inp.Key.Value
	case exchange.KeySpecial:
		e[2] = inp.Key.Value
	}

	if inp.Shift {
		e[3] |= 0x01
	}
	if inp.Control {
		e[3] |= 0x02
	}
	if inp.Start {
		e[4] |= 0x01
	}
	if inp.Select {
		e[4] |= 0x02
	}
	if inp.Option {
		e[4] |= 0x04
	}

	for i := range inp.Joy {
		e[5+i] = inp.Joy[i] & 0x0f
		if inp.Trig[i] {
			e[5+i] |= 0x10
		}
	}

	e[9] = inp.MouseButtons
	e[10] = uint8(inp.MouseX)
	e[11] = uint8(inp.MouseY)

	return e
}

// PatternPixel returns the colour Pattern renders at x, y on the given frame.
// Bands of colour move one column of eight pixels to the right every frame.
func PatternPixel(x, y int, frame uint64) uint8 {
	hue := uint8((uint64(x/8) + frame) & 0x0f)
	lum := uint8((y / 16) & 0x0f)
	return hue<<4 | lum
}

// Pattern is an engine function that renders a test pattern. It follows the
// engine side of the handshake exactly.
//
// Each frame the video plane is filled using PatternPixel(), after which the
// first EchoPixels pixels are overwritten with the result of Echo() for the
// input of the frame. The audio plane is filled with a sawtooth wave. If the
// state region is at least eight bytes long then the number of frames
// rendered is written to it as a little-endian value.
//
// The following arguments are recognised:
//
//	--exit-after N    terminate without completing frame N
//	--stall-after N   stop responding after frame N
func Pattern(ctx context.Context, args []string, buf *exchange.Buffer) error {
	flgs := pflag.NewFlagSet("pattern", pflag.ContinueOnError)
	exitAfter := flgs.Uint64("exit-after", 0, "terminate without completing frame N")
	stallAfter := flgs.Uint64("stall-after", 0, "stop responding after frame N")
	err := flgs.Parse(args)
	if err != nil {
		return fmt.Errorf("engine: pattern: %w", err)
	}

	buf.SetAudioFormat(PatternAudioFormat)

	l := buf.Layout()
	video := buf.VideoPlane()
	audio := buf.AudioPlane()
	state := buf.StateRegion()

	eng := handshake.NewEngine(buf.Semaphore())

	var frame uint64
	var phase uint8

	for eng.Await(ctx) {
		if *exitAfter > 0 && frame+1 >= *exitAfter {
			return fmt.Errorf("%w: frame %d", ErrPatternExit, frame+1)
		}

		inp := buf.Input().Load()

		i := 0
		for y := 0; y < l.Config.Height; y++ {
			for x := 0; x < l.Config.Width; x++ {
				video[i] = PatternPixel(x, y, frame)
				i++
			}
		}
		echo := Echo(inp)
		copy(video, echo[:])

		for i := range audio {
			audio[i] = phase
			phase += 4
		}

		frame++
		if len(state) >= 8 {
			binary.LittleEndian.PutUint64(state, frame)
		}

		if *stallAfter > 0 && frame >= *stallAfter {
			logger.Logf(logger.Allow, "pattern", "stalled after frame %d", frame)
			<-ctx.Done()
			return ctx.Err()
		}

		eng.FrameDone()
	}

	logger.Logf(logger.Allow, "pattern", "terminated after %d frames", frame)

	return nil
}
