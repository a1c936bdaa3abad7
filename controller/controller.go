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

package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/jetsetilly/shmem800/deferred"
	"github.com/jetsetilly/shmem800/engine"
	"github.com/jetsetilly/shmem800/exchange"
	"github.com/jetsetilly/shmem800/frame"
	"github.com/jetsetilly/shmem800/handshake"
	"github.com/jetsetilly/shmem800/logger"
	"github.com/jetsetilly/shmem800/sharedmem"
)

// Sentinel errors returned by the Controller.
var (
	ErrRunning    = errors.New("controller: engine is already running")
	ErrNotRunning = errors.New("controller: engine is not running")
	ErrNotReady   = errors.New("controller: frame is not ready")
)

// Controller is the controlling side of the exchange.
type Controller struct {
	Prefs *Preferences

	launcher engine.Launcher

	// input staged for the next frame. access is guarded by crit
	input input

	// frame counter. incremented once per call to NextFrame() and never
	// reset
	frameCount uint64

	queue *deferred.Queue

	// valid between Start() and Stop()
	seg    *sharedmem.Segment
	buf    *exchange.Buffer
	unit   engine.Unit
	poller *handshake.Poller

	decoder *frame.Decoder
	scaler  frame.Scaler
	flipper frame.Flipper
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController(prefs *Preferences, launcher engine.Launcher) (*Controller, error) {
	if prefs == nil {
		return nil, fmt.Errorf("controller: preferences are required")
	}
	if launcher == nil {
		return nil, fmt.Errorf("controller: launcher is required")
	}

	return &Controller{
		Prefs:    prefs,
		launcher: launcher,
		queue:    deferred.NewQueue(),
	}, nil
}

// Start allocates the exchange and launches the engine with the arguments.
// The engine begins the first frame immediately.
func (c *Controller) Start(args []string) error {
	if c.unit != nil {
		return ErrRunning
	}

	layout, err := exchange.NewLayout(c.Prefs.ExchangeConfig())
	if err != nil {
		return err
	}

	format, err := c.Prefs.FrameFormat()
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	c.decoder, err = frame.NewDecoder(nil, format)
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}

	var seg *sharedmem.Segment
	if c.launcher.Shared() {
		seg, err = sharedmem.Create(layout.Size)
	} else {
		seg, err = sharedmem.NewPrivate(layout.Size)
	}
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}

	buf, err := exchange.NewBuffer(seg.Bytes(), layout)
	if err != nil {
		_ = seg.Close()
		return fmt.Errorf("controller: %w", err)
	}

	// the engine starts running immediately so the initial input is written
	// before launch
	buf.Reset()
	buf.Input().Store(c.input.load())

	unit, err := c.launcher.Launch(args, seg, layout)
	if err != nil {
		_ = seg.Close()
		return fmt.Errorf("controller: %w", err)
	}

	c.seg = seg
	c.buf = buf
	c.unit = unit
	c.poller = c.Prefs.poller(unit.Alive)

	logger.Logf(logger.Allow, "controller", "started %s with exchange %s", unit, seg)

	return nil
}

// Running returns true if the engine has been started and not stopped. The
// engine may have terminated of its own accord. See Alive().
func (c *Controller) Running() bool {
	return c.unit != nil
}

// Alive returns true if the engine is running.
func (c *Controller) Alive() bool {
	return c.unit != nil && c.unit.Alive()
}

// Layout returns the layout of the exchange.
func (c *Controller) Layout() exchange.Layout {
	if c.buf == nil {
		return exchange.Layout{}
	}
	return c.buf.Layout()
}

// FrameCount returns the number of frames consumed by the controller.
func (c *Controller) FrameCount() uint64 {
	return c.frameCount
}

// IsFrameReady returns true if the engine has completed a frame and is waiting
// for the controller.
func (c *Controller) IsFrameReady() bool {
	return c.buf != nil && c.buf.Semaphore().Load() == exchange.FrameReady
}

// WaitFrame blocks until the engine has completed a frame. Returns an error
// wrapping handshake.ErrEngineExited or handshake.ErrUnresponsive if the
// engine stops running or does not respond in time.
func (c *Controller) WaitFrame(ctx context.Context) error {
	if c.unit == nil {
		return ErrNotRunning
	}
	return c.poller.Wait(ctx, c.buf.Semaphore(), exchange.FrameReady)
}

// NextFrame consumes the current frame. The frame counter is incremented,
// the staged input is written to the exchange, deferred events are triggered
// and the engine is released to run the next frame.
//
// Changes made to the staged input by deferred events are written to the
// exchange on the following call to NextFrame().
//
// Frames, audio and other views of the exchange obtained before calling
// NextFrame() must not be used afterwards.
func (c *Controller) NextFrame() error {
	if c.unit == nil {
		return ErrNotRunning
	}
	if !c.IsFrameReady() {
		return ErrNotReady
	}

	c.frameCount++
	c.buf.Input().Store(c.input.load())
	c.queue.Advance(c.frameCount)
	c.buf.Semaphore().Store(exchange.Running)

	return nil
}

func (c *Controller) owned() error {
	if c.unit == nil {
		return ErrNotRunning
	}
	if !c.IsFrameReady() {
		return ErrNotReady
	}
	return nil
}

// Frame decodes the video plane and scales it by the factor. The returned
// image is reused by the next call to Frame().
func (c *Controller) Frame(scale int) (*frame.Image, error) {
	if err := c.owned(); err != nil {
		return nil, err
	}
	l := c.buf.Layout()
	img, err := c.decoder.Decode(c.buf.VideoPlane(), l.Config.Width, l.Config.Height)
	if err != nil {
		return nil, err
	}
	return c.scaler.Scale(img, scale)
}

// FlippedFrame is the same as Frame() except that the row order is reversed.
func (c *Controller) FlippedFrame(scale int) (*frame.Image, error) {
	img, err := c.Frame(scale)
	if err != nil {
		return nil, err
	}
	return c.flipper.Flip(img)
}

// VideoPlane returns the raw video plane.
func (c *Controller) VideoPlane() ([]byte, error) {
	if err := c.owned(); err != nil {
		return nil, err
	}
	return c.buf.VideoPlane(), nil
}

// Audio returns the audio plane.
func (c *Controller) Audio() ([]byte, error) {
	if err := c.owned(); err != nil {
		return nil, err
	}
	return c.buf.AudioPlane(), nil
}

// StateRegion returns the engine state region.
func (c *Controller) StateRegion() ([]byte, error) {
	if err := c.owned(); err != nil {
		return nil, err
	}
	return c.buf.StateRegion(), nil
}

// AudioFormat returns the audio format written by the engine. The format is
// not valid until the engine has completed its first frame.
func (c *Controller) AudioFormat() exchange.AudioFormat {
	if c.owned() != nil {
		return exchange.AudioFormat{}
	}
	return c.buf.AudioFormat()
}

// Stop the engine and release the exchange. The controller waits for the
// engine to complete the current frame before asking it to terminate. If the
// engine does not terminate before the context is done then it is killed.
//
// Calling Stop() when the engine is not running does nothing.
func (c *Controller) Stop(ctx context.Context) error {
	if c.unit == nil {
		logger.Log(logger.Allow, "controller", "stop: engine is not running")
		return nil
	}

	defer c.release()

	sem := c.buf.Semaphore()

	pollErr := c.poller.Wait(ctx, sem, exchange.FrameReady)
	if pollErr != nil {
		if errors.Is(pollErr, handshake.ErrEngineExited) {
			logger.Logf(logger.Allow, "controller", "stop: %v", pollErr)
			pollErr = nil
		} else {
			logger.Logf(logger.Allow, "controller", "stop: %v: killing engine", pollErr)
			c.unit.Kill()
		}
	}

	sem.Store(exchange.Shutdown)

	err := c.unit.Wait(ctx)
	if pollErr != nil {
		return fmt.Errorf("controller: stop: %w", pollErr)
	}
	if err != nil {
		return fmt.Errorf("controller: stop: %w", err)
	}

	logger.Logf(logger.Allow, "controller", "stopped after %d frames", c.frameCount)

	return nil
}

func (c *Controller) release() {
	if err := c.seg.Close(); err != nil {
		logger.Log(logger.Allow, "controller", err)
	}
	c.seg = nil
	c.buf = nil
	c.unit = nil
	c.poller = nil
}
