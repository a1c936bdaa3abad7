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

package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync/atomic"

	"github.com/jetsetilly/shmem800/exchange"
	"github.com/jetsetilly/shmem800/logger"
	"github.com/jetsetilly/shmem800/sharedmem"
)

// Environment variables used to describe the exchange to a child process.
const (
	EnvSize   = "SHMEM800_EXCHANGE_SIZE"
	EnvLayout = "SHMEM800_LAYOUT"
)

// the file descriptor of the exchange in the child process. the first of
// exec.Cmd.ExtraFiles is always file descriptor three
const exchangeFD = 3

// Process launches an engine executable as a child process.
type Process struct {
	// path to the executable
	Path string

	// arguments placed before the arguments given to Launch()
	Args []string
}

// Shared implements the Launcher interface.
func (p Process) Shared() bool {
	return true
}

// Launch implements the Launcher interface.
func (p Process) Launch(args []string, seg *sharedmem.Segment, layout exchange.Layout) (Unit, error) {
	if !seg.Shared() {
		return nil, ErrNotShared
	}

	cmd := exec.Command(p.Path, append(append([]string{}, p.Args...), args...)...)
	cmd.ExtraFiles = []*os.File{seg.File()}
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("%s=%d", EnvSize, seg.Size()),
		fmt.Sprintf("%s=%s", EnvLayout, layout.Config.String()),
	)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	err = cmd.Start()
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	u := &processUnit{
		cmd:  cmd,
		done: make(chan struct{}),
	}
	u.alive.Store(true)

	logger.Logf(logger.Allow, "engine", "started %s (pid %d)", p.Path, cmd.Process.Pid)

	// the stderr pipe must be drained before cmd.Wait() is called
	logged := make(chan struct{})
	go func() {
		defer close(logged)
		u.logStderr(stderr)
	}()

	go func() {
		defer close(u.done)
		<-logged
		u.err = cmd.Wait()
		u.alive.Store(false)
		if u.err != nil {
			logger.Logf(logger.Allow, "engine", "pid %d exited: %v", cmd.Process.Pid, u.err)
		} else {
			logger.Logf(logger.Allow, "engine", "pid %d exited cleanly", cmd.Process.Pid)
		}
	}()

	return u, nil
}

type processUnit struct {
	cmd   *exec.Cmd
	alive atomic.Bool

	// err is valid once done is closed
	done chan struct{}
	err  error
}

// forward the engine's stderr to the log
func (u *processUnit) logStderr(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		logger.Logf(logger.Allow, "engine", "[%d] %s", u.cmd.Process.Pid, scanner.Text())
	}
}

func (u *processUnit) Alive() bool {
	return u.alive.Load()
}

func (u *processUnit) Wait(ctx context.Context) error {
	select {
	case <-u.done:
	case <-ctx.Done():
		logger.Logf(logger.Allow, "engine", "pid %d did not terminate in time", u.cmd.Process.Pid)
		u.Kill()
		<-u.done
	}
	return u.err
}

func (u *processUnit) Kill() {
	if !u.alive.Load() {
		return
	}
	err := u.cmd.Process.Kill()
	if err != nil {
		logger.Logf(logger.Allow, "engine", "kill pid %d: %v", u.cmd.Process.Pid, err)
	}
}

func (u *processUnit) String() string {
	return fmt.Sprintf("%s (pid %d)", u.cmd.Path, u.cmd.Process.Pid)
}
