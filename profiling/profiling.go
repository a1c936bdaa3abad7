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

// Package profiling writes Go runtime profiles of the controller for use with
// "go tool pprof".
package profiling

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// RunProfiler runs the function with CPU profiling written to the named
// file. If the filename is empty then the function is run without
// profiling.
func RunProfiler(outFile string, run func() error) (rerr error) {
	if outFile == "" {
		return run()
	}

	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("profiling: %w", err)
	}
	defer func() {
		rerr = errors.Join(rerr, f.Close())
	}()

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return fmt.Errorf("profiling: %w", err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

// WriteHeap writes the current state of the heap to the named file. Nothing
// is written if the filename is empty.
func WriteHeap(outFile string) error {
	if outFile == "" {
		return nil
	}

	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("profiling: %w", err)
	}

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("profiling: %w", err)
	}

	return f.Close()
}
