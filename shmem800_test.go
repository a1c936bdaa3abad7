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

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/jetsetilly/shmem800/test"
)

// execute the command line and return the output
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// use a preferences file that does not exist so that the defaults are
	// used regardless of the user's preferences
	args = append([]string{args[0], "--prefsfile", filepath.Join(t.TempDir(), "prefs")}, args[1:]...)

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestLayout(t *testing.T) {
	out, err := execute(t, "layout")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "video:  0x0580-"), out)
	test.ExpectSuccess(t, strings.Contains(out, "[336x240]"))

	out, err = execute(t, "layout", "--preset", "debug")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "video:  0x0280-"), out)

	out, err = execute(t, "layout", "--prefs", "exchange.width::100; exchange.height::10")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "(1000 bytes) [100x10]"), out)

	_, err = execute(t, "layout", "--preset", "other")
	test.ExpectFailure(t, err)
}

func TestPalette(t *testing.T) {
	out, err := execute(t, "palette")
	test.DemandSuccess(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	test.DemandEquality(t, len(lines), 16)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "0_: 0f0f0f "))
	test.ExpectSuccess(t, strings.HasSuffix(lines[0], " ffffff"))

	filename := filepath.Join(t.TempDir(), "palette.png")
	_, err = execute(t, "palette", "--png", filename, "--size", "2")
	test.DemandSuccess(t, err)

	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Width, 32)
	test.ExpectEquality(t, cfg.Height, 32)
}

func TestRunInProcess(t *testing.T) {
	digests := regexp.MustCompile(`video digest: ([0-9a-f]{40})\naudio digest: ([0-9a-f]{40})`)

	out, err := execute(t, "run", "--inprocess", "--frames", "4", "--digest")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "exchange: 336,240,512,0,1408\n"), out)
	test.ExpectSuccess(t, strings.Contains(out, "frames: 4\n"), out)

	first := digests.FindStringSubmatch(out)
	test.DemandEquality(t, len(first), 3)

	// the test pattern is deterministic
	out, err = execute(t, "run", "--inprocess", "--frames", "4", "--digest")
	test.DemandSuccess(t, err)
	second := digests.FindStringSubmatch(out)
	test.DemandEquality(t, len(second), 3)
	test.ExpectEquality(t, second[1], first[1])
	test.ExpectEquality(t, second[2], first[2])

	// typing into the engine changes the video but not the audio
	out, err = execute(t, "run", "--inprocess", "--frames", "4", "--digest", "--type", "hi")
	test.DemandSuccess(t, err)
	typed := digests.FindStringSubmatch(out)
	test.DemandEquality(t, len(typed), 3)
	test.ExpectInequality(t, typed[1], first[1])
	test.ExpectEquality(t, typed[2], first[2])
}

func TestRunOutputFiles(t *testing.T) {
	dir := t.TempDir()
	pngFile := filepath.Join(dir, "frame.png")
	wavFile := filepath.Join(dir, "audio.wav")

	_, err := execute(t, "run", "--inprocess", "--frames", "3", "--png", pngFile, "--scale", "2", "--wav", wavFile)
	test.DemandSuccess(t, err)

	f, err := os.Open(pngFile)
	test.DemandSuccess(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Width, 672)
	test.ExpectEquality(t, cfg.Height, 480)

	info, err := os.Stat(wavFile)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.Size() > 3*512)

	// the png file is never overwritten
	_, err = execute(t, "run", "--inprocess", "--frames", "1", "--png", pngFile)
	test.ExpectFailure(t, err)
}

func TestRunBadArguments(t *testing.T) {
	_, err := execute(t, "run", "--inprocess", "--scale", "0")
	test.ExpectFailure(t, err)

	// the engine rejects unknown arguments
	_, err = execute(t, "run", "--inprocess", "--frames", "1", "--", "--unknown")
	test.ExpectFailure(t, err)
}
