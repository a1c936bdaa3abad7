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

// Package colourgen builds the lookup table used to turn the indexed colour
// values produced by the emulation engine into RGB values.
//
// Each index byte is split into a chroma nibble (the upper four bits) and a
// luma nibble (the lower four bits). The luma nibble selects one of sixteen
// brightness levels. The chroma nibble selects a row of a sixteen row table of
// I and Q values. The resulting YIQ triple is converted to RGB using the NTSC
// 1953 coefficients.
//
// Tables are built once and are immutable afterwards. They can be shared
// safely between any number of frame decoders.
package colourgen
