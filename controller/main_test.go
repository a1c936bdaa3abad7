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

package controller_test

import (
	"context"
	"os"
	"testing"

	"github.com/jetsetilly/shmem800/engine"
)

// the test binary doubles as the engine executable for tests using
// engine.Process
func TestMain(m *testing.M) {
	if engine.Attached() {
		seg, buf, err := engine.Attach()
		if err != nil {
			os.Exit(10)
		}
		err = engine.Pattern(context.Background(), os.Args[1:], buf)
		_ = seg.Close()
		if err != nil {
			os.Exit(11)
		}
		os.Exit(0)
	}
	os.Exit(m.Run())
}
