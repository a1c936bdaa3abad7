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

package colourgen

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sync"
)

// ErrInvalidChroma is returned by NewTable() if the chroma table contains a
// value that cannot be used to generate a colour.
var ErrInvalidChroma = errors.New("colourgen: invalid chroma table")

// Chroma is one row of the chroma table. The values are in the range -1.0 to
// 1.0 and are scaled by 255 when the table is built.
type Chroma struct {
	I float64
	Q float64
}

// NTSCChroma is the chroma table for NTSC machines. Hue zero has no colour
// component. Hues one through fifteen are points on the colour wheel, each
// 25.7 degrees apart, with hue one and hue fifteen being close to one another.
var NTSCChroma = [16]Chroma{
	{I: 0.000, Q: 0.000},
	{I: 0.124, Q: -0.089},
	{I: 0.073, Q: -0.134},
	{I: 0.007, Q: -0.152},
	{I: -0.060, Q: -0.141},
	{I: -0.115, Q: -0.101},
	{I: -0.147, Q: -0.041},
	{I: -0.150, Q: 0.027},
	{I: -0.124, Q: 0.089},
	{I: -0.073, Q: 0.134},
	{I: -0.008, Q: 0.152},
	{I: 0.059, Q: 0.141},
	{I: 0.114, Q: 0.101},
	{I: 0.147, Q: 0.041},
	{I: 0.150, Q: -0.026},
	{I: 0.124, Q: -0.089},
}

// Table maps an index value to its red, green and blue intensities.
type Table struct {
	Red   [256]uint8
	Green [256]uint8
	Blue  [256]uint8
}

// clamp to the range 0 to 255 and truncate. the value is not rounded
func clamp(v float64) uint8 {
	if v < 0.0 {
		return 0
	}
	if v > 255.0 {
		return 255
	}
	return uint8(v)
}

// NewTable builds a new colour table from the chroma table. The function is
// pure and the result for the same chroma table is always the same.
func NewTable(chroma [16]Chroma) (*Table, error) {
	for i, c := range chroma {
		if math.IsNaN(c.I) || math.IsNaN(c.Q) || math.IsInf(c.I, 0) || math.IsInf(c.Q, 0) {
			return nil, fmt.Errorf("%w: row %d", ErrInvalidChroma, i)
		}
	}

	t := &Table{}
	for v := range 256 {
		cr := (v >> 4) & 15
		lm := v & 15

		// integer division
		y := float64(255 * (lm + 1) / 16)

		i := chroma[cr].I * 255
		q := chroma[cr].Q * 255

		// YIQ to RGB conversion. the explicit conversions prevent the compiler
		// from fusing the multiply and add, which would change the result on
		// some platforms
		r := y + float64(0.956*i) + float64(0.621*q)
		g := y - float64(0.272*i) - float64(0.647*q)
		b := y - float64(1.107*i) + float64(1.704*q)

		t.Red[v] = clamp(r)
		t.Green[v] = clamp(g)
		t.Blue[v] = clamp(b)
	}

	return t, nil
}

// RGB returns the red, green and blue values for the index.
func (t *Table) RGB(v uint8) (uint8, uint8, uint8) {
	return t.Red[v], t.Green[v], t.Blue[v]
}

// Colour returns the index as a color.RGBA value, with full alpha.
func (t *Table) Colour(v uint8) color.RGBA {
	return color.RGBA{R: t.Red[v], G: t.Green[v], B: t.Blue[v], A: 255}
}

// Palette returns the table as a color.Palette. The palette can be used with
// image.Paletted to represent the indexed video plane directly.
func (t *Table) Palette() color.Palette {
	p := make(color.Palette, 256)
	for v := range 256 {
		p[v] = t.Colour(uint8(v))
	}
	return p
}

var ntsc *Table
var ntscOnce sync.Once

// NTSC returns the table built from NTSCChroma. The table is built on first
// use and the same instance is returned every time.
func NTSC() *Table {
	ntscOnce.Do(func() {
		var err error
		ntsc, err = NewTable(NTSCChroma)
		if err != nil {
			panic(err)
		}
	})
	return ntsc
}
