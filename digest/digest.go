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

// Package digest produces cryptographic hashes of the output of the engine.
// The hash can be used to compare the output of one run of the engine with
// another. If the hash differs from a previously recorded value then
// something has changed. This is the basis of golden value testing.
//
// Hashes are chained. The hash for each frame includes the hash of the
// previous frame, so a hash describes the entire sequence of frames up to that
// point.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
package digest

// Digest implementations return a cryptographic hash in response to a Hash()
// request. Generation of the hash is achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
