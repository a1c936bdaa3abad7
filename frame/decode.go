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

package frame

import (
	"fmt"

	"github.com/jetsetilly/shmem800/colourgen"
)

// Decoder converts an indexed video plane to an Image.
type Decoder struct {
	table  *colourgen.Table
	format Format
	out    Image
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
// If the table is nil then the NTSC table is used.
func NewDecoder(table *colourgen.Table, format Format) (*Decoder, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("frame: invalid format (%d)", format)
	}
	if table == nil {
		table = colourgen.NTSC()
	}
	return &Decoder{
		table:  table,
		format: format,
	}, nil
}

// Format returns the format of the images produced by the decoder.
func (d *Decoder) Format() Format {
	return d.format
}

// Decode converts the video plane to an image of the given dimensions. The
// plane must contain at least width*height bytes.
//
// The returned image is only valid until the next call to Decode().
func (d *Decoder) Decode(plane []byte, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	n := width * height
	if len(plane) < n {
		return nil, fmt.Errorf("%w: video plane too short for %dx%d (%d bytes)", ErrDimensions, width, height, len(plane))
	}

	d.out.prepare(width, height, d.format)

	r := &d.table.Red
	g := &d.table.Green
	b := &d.table.Blue
	pix := d.out.Pix

	switch d.format {
	case RGB:
		j := 0
		for _, v := range plane[:n] {
			pix[j] = r[v]
			pix[j+1] = g[v]
			pix[j+2] = b[v]
			j += 3
		}
	case RGBA:
		j := 0
		for _, v := range plane[:n] {
			pix[j] = r[v]
			pix[j+1] = g[v]
			pix[j+2] = b[v]
			pix[j+3] = 0xff
			j += 4
		}
	}

	return &d.out, nil
}
