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

package engine_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jetsetilly/shmem800/engine"
	"github.com/jetsetilly/shmem800/logger"
)

// the test binary doubles as the engine executable for the Process tests
func TestMain(m *testing.M) {
	if engine.Attached() {
		os.Exit(child())
	}
	os.Exit(m.Run())
}

func child() int {
	logger.SetEcho(os.Stderr, false)

	seg, buf, err := engine.Attach()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 10
	}
	defer seg.Close()

	err = engine.Pattern(context.Background(), os.Args[1:], buf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 11
	}

	return 0
}
