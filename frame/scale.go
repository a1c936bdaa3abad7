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
)

// the largest image, in bytes, that Scale() will produce
const maxScaledSize = 1 << 30

// Scaler enlarges images by an integer factor.
type Scaler struct {
	out Image
}

// Scale returns an image where each pixel of the source image is a
// factor×factor block of pixels.
//
// If the factor is one then the source image is returned. Otherwise, the
// returned image is only valid until the next call to Scale(). The image
// returned by a previous call can be scaled again.
func (s *Scaler) Scale(img *Image, factor int) (*Image, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: scale factor must be at least one (%d)", ErrDimensions, factor)
	}
	if err := img.check(); err != nil {
		return nil, err
	}
	if factor == 1 {
		return img, nil
	}

	// guard against overflow of the scaled image size
	rowBytes := img.Width * int(img.Format)
	if factor > maxScaledSize/rowBytes || factor > maxScaledSize/img.Height ||
		img.Height*factor > maxScaledSize/(rowBytes*factor) {
		return nil, fmt.Errorf("%w: scale factor too large for %dx%d (%d)", ErrDimensions, img.Width, img.Height, factor)
	}

	// the output of the previous call is overwritten by prepare()
	if img == &s.out {
		img = img.Copy()
	}

	s.out.prepare(img.Width*factor, img.Height*factor, img.Format)

	n := int(img.Format)
	srcStride := img.Stride()
	dstStride := s.out.Stride()

	for y := 0; y < img.Height; y++ {
		src := img.Pix[y*srcStride : (y+1)*srcStride]
		row := s.out.Pix[y*factor*dstStride : (y*factor+1)*dstStride]

		// widen the first row of the block
		d := 0
		for x := 0; x < srcStride; x += n {
			for range factor {
				copy(row[d:d+n], src[x:x+n])
				d += n
			}
		}

		// and repeat it for the remainder of the block
		for i := 1; i < factor; i++ {
			o := (y*factor + i) * dstStride
			copy(s.out.Pix[o:o+dstStride], row)
		}
	}

	return &s.out, nil
}
