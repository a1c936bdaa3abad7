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

// Flipper reverses the row order of images.
type Flipper struct {
	out Image
}

// Flip returns a copy of the image with the order of rows reversed. An image
// returned by a previous call is flipped in place. The returned image is only
// valid until the next call to Flip().
func (f *Flipper) Flip(img *Image) (*Image, error) {
	if err := img.check(); err != nil {
		return nil, err
	}

	stride := img.Stride()

	// the output of the previous call is flipped in place
	if img == &f.out {
		tmp := make([]byte, stride)
		for y := 0; y < img.Height/2; y++ {
			a := img.Pix[y*stride : (y+1)*stride]
			b := img.Pix[(img.Height-1-y)*stride : (img.Height-y)*stride]
			copy(tmp, a)
			copy(a, b)
			copy(b, tmp)
		}
		return &f.out, nil
	}

	f.out.prepare(img.Width, img.Height, img.Format)

	for y := 0; y < img.Height; y++ {
		s := y * stride
		d := (img.Height - 1 - y) * stride
		copy(f.out.Pix[d:d+stride], img.Pix[s:s+stride])
	}

	return &f.out, nil
}
