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
	"image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/draw"
)

// Thumbnail returns a copy of the image resized to fit within the given
// dimensions. The aspect ratio of the image is preserved.
func Thumbnail(img *Image, width, height int) (*image.RGBA, error) {
	if err := img.check(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: thumbnail %dx%d", ErrDimensions, width, height)
	}

	w := width
	h := img.Height * width / img.Width
	if h > height {
		h = height
		w = img.Width * height / img.Height
	}
	w = max(w, 1)
	h = max(h, 1)

	src := img.RGBA()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst, nil
}

// SavePNG writes the image to a new PNG file. The file must not already exist.
func SavePNG(img *Image, filename string) error {
	if err := img.check(); err != nil {
		return err
	}

	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("frame: image file (%s) already exists", filename)
		}
		return fmt.Errorf("frame: %w", err)
	}
	defer f.Close()

	err = png.Encode(f, img.RGBA())
	if err != nil {
		return fmt.Errorf("frame: %w", err)
	}

	return nil
}

// WriteText writes the area of the video plane described by the rectangle as
// text. Each pixel is represented by one character. Rows are prefixed with
// the offset of the row in the video plane.
//
// The background colour (0x00) is written as a space and the two colours of
// the default text screen (0x94 and 0x9a) as a period and an X. All other
// colours are written as a question mark.
func WriteText(w io.Writer, plane []byte, width, height int, r image.Rectangle) error {
	if width <= 0 || height <= 0 || len(plane) < width*height {
		return fmt.Errorf("%w: video plane %dx%d (%d bytes)", ErrDimensions, width, height, len(plane))
	}

	r = r.Intersect(image.Rect(0, 0, width, height))
	if r.Empty() {
		return nil
	}

	s := strings.Builder{}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		offset := y * width
		s.WriteString(fmt.Sprintf("%06x: ", offset+r.Min.X))
		for x := r.Min.X; x < r.Max.X; x++ {
			switch plane[offset+x] {
			case 0x00:
				s.WriteByte(' ')
			case 0x94:
				s.WriteByte('.')
			case 0x9a:
				s.WriteByte('X')
			default:
				s.WriteByte('?')
			}
		}
		s.WriteByte('\n')
	}

	_, err := io.WriteString(w, s.String())
	return err
}
