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

package controller_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jetsetilly/shmem800/akey"
	"github.com/jetsetilly/shmem800/colourgen"
	"github.com/jetsetilly/shmem800/controller"
	"github.com/jetsetilly/shmem800/engine"
	"github.com/jetsetilly/shmem800/exchange"
	"github.com/jetsetilly/shmem800/handshake"
	"github.com/jetsetilly/shmem800/logger"
	"github.com/jetsetilly/shmem800/test"
)

func newPreferences(t *testing.T) *controller.Preferences {
	t.Helper()
	p, err := controller.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	return p
}

func newController(t *testing.T, launcher engine.Launcher) *controller.Controller {
	t.Helper()
	c, err := controller.NewController(newPreferences(t), launcher)
	test.DemandSuccess(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = c.Stop(ctx)
	})
	return c
}

var pattern = engine.Routine{Name: "pattern", Run: engine.Pattern}

// advance the controller by one frame and wait for the next frame
func step(t *testing.T, c *controller.Controller) {
	t.Helper()
	test.DemandSuccess(t, c.NextFrame())
	test.DemandSuccess(t, c.WaitFrame(context.Background()))
}

func TestNewController(t *testing.T) {
	_, err := controller.NewController(nil, pattern)
	test.ExpectFailure(t, err)
	_, err = controller.NewController(newPreferences(t), nil)
	test.ExpectFailure(t, err)
}

func TestFrames(t *testing.T) {
	c := newController(t, pattern)

	test.ExpectFailure(t, c.Running())
	test.DemandSuccess(t, c.Start(nil))
	test.ExpectSuccess(t, c.Running())
	test.ExpectEquality(t, c.Start(nil), controller.ErrRunning)
	test.ExpectEquality(t, c.Layout().Video.Offset, exchange.VideoOffsetStandard)

	test.DemandSuccess(t, c.WaitFrame(context.Background()))
	test.ExpectSuccess(t, c.IsFrameReady())
	test.ExpectSuccess(t, c.Alive())

	tab := colourgen.NTSC()

	for i := range 5 {
		img, err := c.Frame(1)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, img.Width, 336)
		test.ExpectEquality(t, img.Height, 240)

		r, g, b := tab.RGB(engine.PatternPixel(100, 100, uint64(i)))
		test.ExpectEquality(t, [3]uint8(img.Pixel(100, 100)), [3]uint8{r, g, b}, i)

		step(t, c)
	}

	test.ExpectEquality(t, c.FrameCount(), uint64(5))

	img, err := c.Frame(2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Width, 672)
	test.ExpectEquality(t, img.Height, 480)

	flipped, err := c.FlippedFrame(1)
	test.DemandSuccess(t, err)
	r, g, b := tab.RGB(engine.PatternPixel(30, 239, 5))
	test.ExpectEquality(t, [3]uint8(flipped.Pixel(30, 0)), [3]uint8{r, g, b})

	plane, err := c.VideoPlane()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plane[336*100+100], engine.PatternPixel(100, 100, 5))

	test.DemandSuccess(t, c.Stop(context.Background()))
	test.ExpectFailure(t, c.Running())
	test.ExpectFailure(t, c.Alive())
	test.ExpectFailure(t, c.IsFrameReady())

	// the frame counter is not reset by stopping
	test.ExpectEquality(t, c.FrameCount(), uint64(5))
}

func TestAudio(t *testing.T) {
	c := newController(t, pattern)
	test.DemandSuccess(t, c.Start(nil))
	test.DemandSuccess(t, c.WaitFrame(context.Background()))

	test.ExpectEquality(t, c.AudioFormat(), engine.PatternAudioFormat)

	audio, err := c.Audio()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(audio), exchange.DefaultAudioSize)
	test.ExpectEquality(t, audio[0], uint8(0))
	test.ExpectEquality(t, audio[1], uint8(4))

	step(t, c)

	// the sawtooth continues from the previous frame
	audio, err = c.Audio()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, audio[0], uint8(512*4%256))

	state, err := c.StateRegion()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(state), 0)
}

func TestNotRunning(t *testing.T) {
	c := newController(t, pattern)

	test.ExpectEquality(t, c.NextFrame(), controller.ErrNotRunning)
	test.ExpectEquality(t, c.WaitFrame(context.Background()), controller.ErrNotRunning)
	_, err := c.Frame(1)
	test.ExpectEquality(t, err, controller.ErrNotRunning)
	_, err = c.Audio()
	test.ExpectEquality(t, err, controller.ErrNotRunning)
	test.ExpectEquality(t, c.AudioFormat(), exchange.AudioFormat{})
	test.ExpectFailure(t, c.IsFrameReady())
}

func TestStopWhenStopped(t *testing.T) {
	c := newController(t, pattern)

	test.ExpectSuccess(t, c.Stop(context.Background()))

	var last logger.Entry
	logger.BorrowLog(func(entries []logger.Entry) {
		if len(entries) > 0 {
			last = entries[len(entries)-1]
		}
	})
	test.ExpectEquality(t, last.Tag, "controller")
	test.ExpectSuccess(t, strings.Contains(last.Detail, "not running"))

	// and again after a real stop
	test.DemandSuccess(t, c.Start(nil))
	test.ExpectSuccess(t, c.Stop(context.Background()))
	test.ExpectSuccess(t, c.Stop(context.Background()))
}

func TestNotReady(t *testing.T) {
	gate := make(chan struct{})

	// an engine that only completes a frame when told to
	gated := engine.Routine{Run: func(ctx context.Context, _ []string, buf *exchange.Buffer) error {
		eng := handshake.NewEngine(buf.Semaphore())
		for eng.Await(ctx) {
			select {
			case <-gate:
			case <-ctx.Done():
				return nil
			}
			eng.FrameDone()
		}
		return nil
	}}

	c := newController(t, gated)
	test.DemandSuccess(t, c.Start(nil))

	test.ExpectFailure(t, c.IsFrameReady())
	test.ExpectEquality(t, c.NextFrame(), controller.ErrNotReady)
	_, err := c.Frame(1)
	test.ExpectEquality(t, err, controller.ErrNotReady)
	_, err = c.InputRecord()
	test.ExpectEquality(t, err, controller.ErrNotReady)

	gate <- struct{}{}
	test.DemandSuccess(t, c.WaitFrame(context.Background()))
	test.DemandSuccess(t, c.NextFrame())

	// the engine has been released and cannot have completed the frame
	test.ExpectEquality(t, c.NextFrame(), controller.ErrNotReady)
	test.ExpectEquality(t, c.FrameCount(), uint64(1))

	gate <- struct{}{}
	test.DemandSuccess(t, c.WaitFrame(context.Background()))
	test.DemandSuccess(t, c.Stop(context.Background()))
}

func TestKeyExclusive(t *testing.T) {
	c := newController(t, pattern)
	test.DemandSuccess(t, c.Start(nil))
	test.DemandSuccess(t, c.WaitFrame(context.Background()))

	c.SendChar('a')
	c.SendKeycode(akey.Return)
	test.ExpectEquality(t, c.PendingInput().Key, exchange.CodeKey(akey.Return))

	step(t, c)

	inp, err := c.InputRecord()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, inp.Key, exchange.CodeKey(akey.Return))

	// the engine saw the keycode and not the character
	plane, err := c.VideoPlane()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plane[0], uint8(0))
	test.ExpectEquality(t, plane[1], akey.Return)

	c.ClearKeys()
	step(t, c)
	inp, err = c.InputRecord()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, inp.Key, exchange.NoKey)
}

func TestSpecialKey(t *testing.T) {
	c := newController(t, pattern)
	test.DemandSuccess(t, c.Start(nil))
	test.DemandSuccess(t, c.WaitFrame(context.Background()))

	c.SendSpecialKey(akey.ColdStart)

	// the key is held for two frames
	expected := []exchange.Key{
		exchange.SpecialKey(akey.ColdStart),
		exchange.SpecialKey(akey.ColdStart),
		exchange.NoKey,
		exchange.NoKey,
	}
	for i, k := range expected {
		step(t, c)
		inp, err := c.InputRecord()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, inp.Key, k, i)
	}

	// a key pressed while the special key is held is not released
	c.SendSpecialKey(akey.WarmStart)
	step(t, c)
	c.SendChar('z')
	step(t, c)
	step(t, c)
	test.ExpectEquality(t, c.PendingInput().Key, exchange.CharKey('z'))
	inp, err := c.InputRecord()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, inp.Key, exchange.CharKey('z'))
}

func TestInputFields(t *testing.T) {
	c := newController(t, pattern)

	// input staged before the engine starts is seen by the first frame
	c.SetConsole(true, false, true)
	c.SetModifiers(true, false)
	test.ExpectSuccess(t, c.SetJoystick(1, exchange.JoyUp|exchange.JoyLeft, true))
	test.ExpectFailure(t, c.SetJoystick(4, 0, false))
	test.ExpectFailure(t, c.SetJoystick(0, 0x10, false))
	c.SetMouse(-5, 5, 1, exchange.MouseDirect)

	test.DemandSuccess(t, c.Start(nil))
	test.DemandSuccess(t, c.WaitFrame(context.Background()))

	inp, err := c.InputRecord()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, inp, c.PendingInput())

	plane, err := c.VideoPlane()
	test.DemandSuccess(t, err)
	echo := engine.Echo(inp)
	test.ExpectEquality(t, [engine.EchoPixels]uint8(plane[:engine.EchoPixels]), echo)
	test.ExpectEquality(t, plane[3], uint8(0x01))
	test.ExpectEquality(t, plane[4], uint8(0x05))
	test.ExpectEquality(t, plane[6], uint8(0x15))
}

func TestEngineExited(t *testing.T) {
	c := newController(t, pattern)
	test.DemandSuccess(t, c.Start([]string{"--exit-after", "2"}))
	test.DemandSuccess(t, c.WaitFrame(context.Background()))
	test.DemandSuccess(t, c.NextFrame())

	err := c.WaitFrame(context.Background())
	test.ExpectSuccess(t, errors.Is(err, handshake.ErrEngineExited))
	test.ExpectFailure(t, c.Alive())
	test.ExpectSuccess(t, c.Running())

	// stopping an engine that has exited reports the reason it exited
	err = c.Stop(context.Background())
	test.ExpectSuccess(t, errors.Is(err, engine.ErrPatternExit))
	test.ExpectFailure(t, c.Running())
}

func TestEngineUnresponsive(t *testing.T) {
	c := newController(t, pattern)
	test.DemandSuccess(t, c.Prefs.Timeout.Set(50))

	test.DemandSuccess(t, c.Start([]string{"--stall-after", "1"}))
	err := c.WaitFrame(context.Background())
	test.ExpectSuccess(t, errors.Is(err, handshake.ErrUnresponsive))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err = c.Stop(ctx)
	test.ExpectSuccess(t, errors.Is(err, handshake.ErrUnresponsive))
	test.ExpectFailure(t, c.Running())
}

func TestEngineIgnoresContext(t *testing.T) {
	var quit atomic.Bool
	t.Cleanup(func() { quit.Store(true) })

	stubborn := engine.Routine{Name: "stubborn", Run: func(context.Context, []string, *exchange.Buffer) error {
		for !quit.Load() {
			time.Sleep(time.Millisecond)
		}
		return nil
	}}

	c := newController(t, stubborn)
	test.DemandSuccess(t, c.Prefs.Timeout.Set(50))
	test.DemandSuccess(t, c.Start(nil))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := c.Stop(ctx)
	test.ExpectSuccess(t, errors.Is(err, handshake.ErrUnresponsive))
	test.ExpectSuccess(t, time.Since(start) < 2*time.Second)
	test.ExpectFailure(t, c.Running())
}

func TestInvalidConfig(t *testing.T) {
	c := newController(t, pattern)
	test.DemandSuccess(t, c.Prefs.VideoOffset.Set(100))
	err := c.Start(nil)
	test.ExpectSuccess(t, errors.Is(err, exchange.ErrConfiguration))
	test.ExpectFailure(t, c.Running())

	test.DemandSuccess(t, c.Prefs.VideoOffset.Set(exchange.VideoOffsetDebug))
	test.DemandSuccess(t, c.Prefs.Format.Set("YUV"))
	test.ExpectFailure(t, c.Start(nil))
	test.ExpectFailure(t, c.Running())
}

func TestDebugLayout(t *testing.T) {
	c := newController(t, pattern)
	test.DemandSuccess(t, c.Prefs.VideoOffset.Set(exchange.VideoOffsetDebug))
	test.DemandSuccess(t, c.Prefs.StateSize.Set(16))
	test.DemandSuccess(t, c.Prefs.Format.Set("RGBA"))

	test.DemandSuccess(t, c.Start(nil))
	test.ExpectEquality(t, c.Layout().Video.Offset, 640)
	test.DemandSuccess(t, c.WaitFrame(context.Background()))

	img, err := c.Frame(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(img.Pix), 336*240*4)

	state, err := c.StateRegion()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, state[0], uint8(1))
}
