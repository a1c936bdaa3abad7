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

package colourgen_test

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"image/color"
	"math"
	"testing"

	"github.com/jetsetilly/shmem800/colourgen"
	"github.com/jetsetilly/shmem800/test"
)

func TestDeterministic(t *testing.T) {
	a, err := colourgen.NewTable(colourgen.NTSCChroma)
	test.DemandSuccess(t, err)
	b, err := colourgen.NewTable(colourgen.NTSCChroma)
	test.DemandSuccess(t, err)

	for v := range 256 {
		ar, ag, ab := a.RGB(uint8(v))
		br, bg, bb := b.RGB(uint8(v))
		test.ExpectEquality(t, ar, br, v)
		test.ExpectEquality(t, ag, bg, v)
		test.ExpectEquality(t, ab, bb, v)
	}

	// the shared table is the same as a freshly built one
	test.ExpectEquality(t, *colourgen.NTSC(), *a)
	test.ExpectEquality(t, colourgen.NTSC(), colourgen.NTSC())
}

func TestKnownValues(t *testing.T) {
	tab := colourgen.NTSC()

	expected := []struct {
		v       uint8
		r, g, b uint8
	}{
		// no colour component and minimum luma
		{v: 0x00, r: 15, g: 15, b: 15},

		// no colour component and maximum luma
		{v: 0x0f, r: 255, g: 255, b: 255},

		// red and green clamp to 255 for maximum luma
		{v: 0xff, r: 255, g: 255, b: 181},
		{v: 0x1f, r: 255, g: 255, b: 181},

		// blue clamps to zero for minimum luma
		{v: 0x10, r: 31, g: 21, b: 0},

		// red clamps to zero
		{v: 0x80, r: 0, g: 8, b: 88},

		// the two colours of the memo pad boot screen
		{v: 0x94, r: 82, g: 61, b: 157},
		{v: 0x9a, r: 178, g: 157, b: 253},

		{v: 0x36, r: 88, g: 135, b: 42},
		{v: 0x88, r: 126, g: 136, b: 216},
	}

	for _, e := range expected {
		r, g, b := tab.RGB(e.v)
		tag := fmt.Sprintf("%#02x", e.v)
		test.ExpectEquality(t, r, e.r, tag)
		test.ExpectEquality(t, g, e.g, tag)
		test.ExpectEquality(t, b, e.b, tag)
	}
}

// the luma component of greys is exact
func TestGreys(t *testing.T) {
	tab := colourgen.NTSC()
	for lm := range 16 {
		y := uint8(255 * (lm + 1) / 16)
		r, g, b := tab.RGB(uint8(lm))
		test.ExpectEquality(t, r, y, lm)
		test.ExpectEquality(t, g, y, lm)
		test.ExpectEquality(t, b, y, lm)
	}
}

// downstream golden images depend on every value in the table. the digest is
// of the red, green and blue arrays in that order
func TestGolden(t *testing.T) {
	tab := colourgen.NTSC()

	data := make([]byte, 0, 768)
	data = append(data, tab.Red[:]...)
	data = append(data, tab.Green[:]...)
	data = append(data, tab.Blue[:]...)

	test.ExpectEquality(t, fmt.Sprintf("%x", sha1.Sum(data)), "ba3528a0f82c36ac10665a75d3b6b095a68af766")
}

// out of range intermediate values are clamped. a chroma table with extreme
// values makes sure that every channel will be out of range for some index
func TestClamping(t *testing.T) {
	var chroma [16]colourgen.Chroma
	for i := range chroma {
		chroma[i] = colourgen.Chroma{I: float64(i-8) / 2, Q: float64(8-i) / 2}
	}

	tab, err := colourgen.NewTable(chroma)
	test.DemandSuccess(t, err)

	var zeros, maxes int
	for v := range 256 {
		r, g, b := tab.RGB(uint8(v))
		for _, c := range []uint8{r, g, b} {
			if c == 0 {
				zeros++
			}
			if c == 255 {
				maxes++
			}
		}
	}
	test.ExpectSuccess(t, zeros > 0)
	test.ExpectSuccess(t, maxes > 0)
}

func TestInvalidChroma(t *testing.T) {
	chroma := colourgen.NTSCChroma
	chroma[3].Q = math.NaN()
	_, err := colourgen.NewTable(chroma)
	test.ExpectSuccess(t, errors.Is(err, colourgen.ErrInvalidChroma))

	chroma = colourgen.NTSCChroma
	chroma[0].I = math.Inf(1)
	_, err = colourgen.NewTable(chroma)
	test.ExpectSuccess(t, errors.Is(err, colourgen.ErrInvalidChroma))
}

func TestPalette(t *testing.T) {
	tab := colourgen.NTSC()
	p := tab.Palette()
	test.DemandEquality(t, len(p), 256)
	test.ExpectEquality(t, p[0x94].(color.RGBA), tab.Colour(0x94))
}
