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
	"strconv"
	"strings"
)

// ErrConfiguration is wrapped by all errors caused by an invalid Config.
var ErrConfiguration = errors.New("exchange: configuration error")

// Sizes and offsets of the control header.
const (
	// size of the input record. only the first InputFields bytes are used
	InputRecordSize = 128

	// the audio format record follows the input record
	AudioFormatOffset = InputRecordSize
	AudioFormatSize   = 10

	// the control header is the input record, the audio format record and
	// reserved space. the video plane must not start inside the header
	HeaderSize = 384
)

// The two known offsets of the video plane.
const (
	// the memory map of the standard engine build. the space between the
	// header and the video plane is where older engine builds placed the audio
	// plane
	VideoOffsetStandard = HeaderSize + 512 + 512

	// the memory map of the engine when built with debug video
	VideoOffsetDebug = 640
)

// Default dimensions.
const (
	DefaultWidth     = 336
	DefaultHeight    = 240
	DefaultAudioSize = 512
)

// Config values are used to calculate the Layout of the exchange.
type Config struct {
	// dimensions of the video plane in pixels
	Width  int
	Height int

	// size of the audio plane in bytes
	AudioSize int

	// size of the state region in bytes. can be zero
	StateSize int

	// offset of the video plane from the start of the exchange
	VideoOffset int
}

// DefaultConfig returns the configuration of the standard engine build.
func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		AudioSize:   DefaultAudioSize,
		VideoOffset: VideoOffsetStandard,
	}
}

// String returns the config as a comma separated list of values. The
// result can be parsed with ParseConfig().
func (cfg Config) String() string {
	return fmt.Sprintf("%d,%d,%d,%d,%d", cfg.Width, cfg.Height, cfg.AudioSize, cfg.StateSize, cfg.VideoOffset)
}

// ParseConfig parses a string created by Config.String(). The config is not
// validated. Use NewLayout() for that.
func ParseConfig(s string) (Config, error) {
	p := strings.Split(s, ",")
	if len(p) != 5 {
		return Config{}, fmt.Errorf("%w: malformed config string (%s)", ErrConfiguration, s)
	}

	var v [5]int
	for i := range p {
		var err error
		v[i], err = strconv.Atoi(strings.TrimSpace(p[i]))
		if err != nil {
			return Config{}, fmt.Errorf("%w: malformed config string (%s)", ErrConfiguration, s)
		}
	}

	return Config{
		Width:       v[0],
		Height:      v[1],
		AudioSize:   v[2],
		StateSize:   v[3],
		VideoOffset: v[4],
	}, nil
}

// Region is a range of bytes in the exchange.
type Region struct {
	Offset int
	Size   int
}

// End returns the offset of the first byte after the region.
func (r Region) End() int {
	return r.Offset + r.Size
}

func (r Region) String() string {
	return fmt.Sprintf("%#06x-%#06x (%d bytes)", r.Offset, r.End(), r.Size)
}

// Layout is the memory map of the exchange.
type Layout struct {
	Config Config

	Input  Region
	Header Region
	Video  Region
	Audio  Region
	State  Region

	// total size of the exchange in bytes
	Size int
}

// NewLayout calculates the Layout for the Config. An error wrapping
// ErrConfiguration is returned if the Config is invalid.
func NewLayout(cfg Config) (Layout, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Layout{}, fmt.Errorf("%w: video dimensions must be positive (%dx%d)", ErrConfiguration, cfg.Width, cfg.Height)
	}
	if cfg.AudioSize <= 0 {
		return Layout{}, fmt.Errorf("%w: audio size must be positive (%d)", ErrConfiguration, cfg.AudioSize)
	}
	if cfg.StateSize < 0 {
		return Layout{}, fmt.Errorf("%w: state size must not be negative (%d)", ErrConfiguration, cfg.StateSize)
	}
	if cfg.VideoOffset < HeaderSize {
		return Layout{}, fmt.Errorf("%w: video offset must be at least %d (%d)", ErrConfiguration, HeaderSize, cfg.VideoOffset)
	}

	// guard against overflow of the video plane size
	const maxPlane = 1 << 30
	if cfg.Width > maxPlane/cfg.Height {
		return Layout{}, fmt.Errorf("%w: video dimensions too large (%dx%d)", ErrConfiguration, cfg.Width, cfg.Height)
	}

	l := Layout{Config: cfg}
	l.Input = Region{Offset: 0, Size: InputRecordSize}
	l.Header = Region{Offset: 0, Size: HeaderSize}
	l.Video = Region{Offset: cfg.VideoOffset, Size: cfg.Width * cfg.Height}
	l.Audio = Region{Offset: l.Video.End(), Size: cfg.AudioSize}
	l.State = Region{Offset: l.Audio.End(), Size: cfg.StateSize}
	l.Size = l.State.End()

	return l, nil
}

func (l Layout) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("input:  %s\n", l.Input))
	s.WriteString(fmt.Sprintf("header: %s\n", l.Header))
	s.WriteString(fmt.Sprintf("video:  %s [%dx%d]\n", l.Video, l.Config.Width, l.Config.Height))
	s.WriteString(fmt.Sprintf("audio:  %s\n", l.Audio))
	s.WriteString(fmt.Sprintf("state:  %s\n", l.State))
	s.WriteString(fmt.Sprintf("total:  %d bytes", l.Size))
	return s.String()
}
