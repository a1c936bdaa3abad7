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
	"path/filepath"
	"testing"

	"github.com/jetsetilly/shmem800/controller"
	"github.com/jetsetilly/shmem800/exchange"
	"github.com/jetsetilly/shmem800/frame"
	"github.com/jetsetilly/shmem800/prefs"
	"github.com/jetsetilly/shmem800/test"
)

func TestPreferencesDefaults(t *testing.T) {
	p := newPreferences(t)
	test.ExpectEquality(t, p.ExchangeConfig(), exchange.DefaultConfig())

	f, err := p.FrameFormat()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, frame.RGB)

	test.ExpectEquality(t, p.PollInterval.Get().(int), 1000)
	test.ExpectEquality(t, p.Timeout.Get().(int), 5000)
	test.ExpectEquality(t, p.SpecialKeyFrames.Get().(int), 2)

	test.ExpectFailure(t, p.Width.Set(0))
	test.ExpectFailure(t, p.SpecialKeyFrames.Set(-1))
	test.ExpectEquality(t, p.Width.Get().(int), exchange.DefaultWidth)
}

func TestPreferencesSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := controller.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.VideoOffset.Set(exchange.VideoOffsetDebug))
	test.DemandSuccess(t, p.Format.Set("RGBA"))
	test.DemandSuccess(t, p.Save())

	q, err := controller.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.VideoOffset.Get().(int), exchange.VideoOffsetDebug)
	test.ExpectEquality(t, q.Format.Get().(string), "RGBA")

	q.SetDefaults()
	test.ExpectEquality(t, q.VideoOffset.Get().(int), exchange.VideoOffsetStandard)
	test.DemandSuccess(t, q.Load())
	test.ExpectEquality(t, q.VideoOffset.Get().(int), exchange.VideoOffsetDebug)
}

func TestPreferencesCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("exchange.width::100; exchange.state::64")
	defer prefs.PopCommandLineStack()

	p := newPreferences(t)
	cfg := p.ExchangeConfig()
	test.ExpectEquality(t, cfg.Width, 100)
	test.ExpectEquality(t, cfg.StateSize, 64)
	test.ExpectEquality(t, cfg.Height, exchange.DefaultHeight)
}
