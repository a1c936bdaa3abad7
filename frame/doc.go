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

// Package frame converts the indexed video plane of the exchange into RGB
// images.
//
// The Decoder type maps each byte of the video plane through a colour
// table. The Scaler type enlarges an image by an integer factor using nearest
// neighbour sampling. The Flipper type reverses the order of rows, for display
// backends that expect the first row of a texture to be the bottom of the
// image.
//
// Each of these types owns its output buffer and reuses it for as long as the
// dimensions of the output do not change. An Image returned by one of these
// types is therefore only valid until the next call on the same instance.
// Use Image.Copy() to keep an image for longer.
package frame
