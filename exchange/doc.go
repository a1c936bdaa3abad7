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

// Package exchange defines the memory map of the block of memory shared
// between the controller and the emulation engine, and the accessors over it.
//
// The block is divided into four regions at fixed offsets:
//
//	control header   input record, audio format record, reserved space
//	video plane      one indexed colour byte per pixel, row major
//	audio plane      raw audio bytes produced by the engine each frame
//	state region     opaque engine state (optional)
//
// Offsets are computed once, by NewLayout(), from the Config type. The
// offset of the video plane is a required part of the configuration because
// the engine can be built with more than one memory map. The two known maps
// are named by the VideoOffsetStandard and VideoOffsetDebug constants.
//
// Views onto the regions are slices of the original memory. Nothing is copied.
//
// The first byte of the input record is the semaphore that coordinates the
// two sides of the exchange. It is always accessed through the Semaphore type.
// Other bytes in the same 32-bit word as the semaphore are also written
// atomically so that the engine's polling of the semaphore never races with
// the controller's writes.
package exchange
