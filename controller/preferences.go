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
	"errors"
	"fmt"
	"time"

	"github.com/jetsetilly/shmem800/exchange"
	"github.com/jetsetilly/shmem800/frame"
	"github.com/jetsetilly/shmem800/handshake"
	"github.com/jetsetilly/shmem800/prefs"
	"github.com/jetsetilly/shmem800/resources"
)

// Preferences for the controller.
type Preferences struct {
	dsk *prefs.Disk

	// dimensions of the exchange. see exchange.Config
	Width       prefs.Int
	Height      prefs.Int
	AudioSize   prefs.Int
	StateSize   prefs.Int
	VideoOffset prefs.Int

	// pixel format of decoded frames. "RGB" or "RGBA"
	Format prefs.String

	// handshake polling interval in microseconds and timeout in
	// milliseconds. a timeout of zero means wait forever
	PollInterval prefs.Int
	Timeout      prefs.Int

	// number of frames a special key is held for
	SpecialKeyFrames prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If path is empty then the default preferences file in
// the resources directory is used.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	validatePositive := func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("controller: value must be positive (%d)", v.(int))
		}
		return nil
	}
	p.Width.SetHookPre(validatePositive)
	p.Height.SetHookPre(validatePositive)
	p.AudioSize.SetHookPre(validatePositive)
	p.PollInterval.SetHookPre(validatePositive)
	p.SpecialKeyFrames.SetHookPre(validatePositive)

	var err error

	if path == "" {
		path, err = resources.JoinPath(prefs.DefaultPrefsFile)
		if err != nil {
			return nil, fmt.Errorf("controller: %w", err)
		}
	}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}

	for k, v := range map[string]prefsValue{
		"exchange.width":       &p.Width,
		"exchange.height":      &p.Height,
		"exchange.audio":       &p.AudioSize,
		"exchange.state":       &p.StateSize,
		"exchange.videooffset": &p.VideoOffset,
		"display.format":       &p.Format,
		"handshake.interval":   &p.PollInterval,
		"handshake.timeout":    &p.Timeout,
		"input.specialframes":  &p.SpecialKeyFrames,
	} {
		err = p.dsk.Add(k, v)
		if err != nil {
			return nil, fmt.Errorf("controller: %w", err)
		}
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !errors.Is(err, prefs.ErrNoPrefsFile) {
			return nil, fmt.Errorf("controller: %w", err)
		}
	}

	return p, nil
}

// the interface required by prefs.Disk.Add()
type prefsValue interface {
	fmt.Stringer
	Set(value prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	def := exchange.DefaultConfig()
	_ = p.Width.Set(def.Width)
	_ = p.Height.Set(def.Height)
	_ = p.AudioSize.Set(def.AudioSize)
	_ = p.StateSize.Set(def.StateSize)
	_ = p.VideoOffset.Set(def.VideoOffset)
	_ = p.Format.Set(frame.RGB.String())
	_ = p.PollInterval.Set(int(handshake.DefaultInterval / time.Microsecond))
	_ = p.Timeout.Set(int(handshake.DefaultTimeout / time.Millisecond))
	_ = p.SpecialKeyFrames.Set(2)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	err := p.dsk.Load()
	if err != nil && !errors.Is(err, prefs.ErrNoPrefsFile) {
		return fmt.Errorf("controller: %w", err)
	}
	return nil
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	err := p.dsk.Save()
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	return nil
}

// ExchangeConfig returns the exchange configuration described by the
// preferences.
func (p *Preferences) ExchangeConfig() exchange.Config {
	return exchange.Config{
		Width:       p.Width.Get().(int),
		Height:      p.Height.Get().(int),
		AudioSize:   p.AudioSize.Get().(int),
		StateSize:   p.StateSize.Get().(int),
		VideoOffset: p.VideoOffset.Get().(int),
	}
}

// FrameFormat returns the pixel format described by the preferences.
func (p *Preferences) FrameFormat() (frame.Format, error) {
	return frame.ParseFormat(p.Format.Get().(string))
}

func (p *Preferences) poller(alive func() bool) *handshake.Poller {
	h := handshake.NewPoller(alive)
	h.Interval = time.Duration(p.PollInterval.Get().(int)) * time.Microsecond
	h.Timeout = time.Duration(p.Timeout.Get().(int)) * time.Millisecond
	return h
}
