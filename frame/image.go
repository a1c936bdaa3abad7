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
	"errors"
	"fmt"
	"image"
	"strings"
)

// ErrDimensions is wrapped by errors caused by invalid image dimensions.
var ErrDimensions = errors.New("frame: invalid dimensions")

// Format of pixels in an Image. The value is the number of bytes per pixel.
type Format int

// List of valid Format values.
const (
	RGB  Format = 3
	RGBA Format = 4
)

func (f Format) String() string {
	switch f {
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	}
	return "unknown"
}

// Valid returns true if the Format is one of the listed values.
func (f Format) Valid() bool {
	return f == RGB || f == RGBA
}

// ParseFormat converts a string to a Format. Case insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RGB":
		return RGB, nil
	case "RGBA":
		return RGBA, nil
	}
	return 0, fmt.Errorf("frame: unknown format (%s)", s)
}

// Image is an interleaved RGB or RGBA image.
type Image struct {
	Width  int
	Height int
	Format Format

	// pixel data, row major with no padding between rows
	Pix []byte
}

// Stride returns the number of bytes in one row of the image.
func (img *Image) Stride() int {
	return img.Width * int(img.Format)
}

// Pixel returns the bytes of the pixel at x, y.
func (img *Image) Pixel(x, y int) []byte {
	n := int(img.Format)
	i := y*img.Stride() + x*n
	return img.Pix[i : i+n : i+n]
}

// Copy returns a copy of the image that does not share pixel data with the
// original.
func (img *Image) Copy() *Image {
	c := *img
	c.Pix = make([]byte, len(img.Pix))
	copy(c.Pix, img.Pix)
	return &c
}

// RGBA converts the image to an image.RGBA. The pixel data is copied.
func (img *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))

	if img.Format == RGBA {
		copy(out.Pix, img.Pix)
		return out
	}

	s := 0
	for d := 0; d < len(out.Pix); d += 4 {
		out.Pix[d] = img.Pix[s]
		out.Pix[d+1] = img.Pix[s+1]
		out.Pix[d+2] = img.Pix[s+2]
		out.Pix[d+3] = 0xff
		s += 3
	}

	return out
}

// prepare resizes the image, allocating a new pixel buffer only if the
// existing buffer is too small.
func (img *Image) prepare(width, height int, format Format) {
	img.Width = width
	img.Height = height
	img.Format = format

	sz := width * height * int(format)
	if cap(img.Pix) < sz {
		img.Pix = make([]byte, sz)
	}
	img.Pix = img.Pix[:sz]
}

func (img *Image) check() error {
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, img.Width, img.Height)
	}
	if !img.Format.Valid() {
		return fmt.Errorf("frame: invalid format (%d)", img.Format)
	}
	if len(img.Pix) < img.Width*img.Height*int(img.Format) {
		return fmt.Errorf("%w: pixel data too short for %dx%d %s", ErrDimensions, img.Width, img.Height, img.Format)
	}
	return nil
}
