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

//go:build unix

package terminput

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/shmem800/logger"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// DefaultDevice is the terminal opened when no other device is specified.
const DefaultDevice = "/dev/tty"

// how long a read of the terminal will block before the context is checked
const readTimeout = 100 * time.Millisecond

// Interactive returns true if the standard input is a terminal.
func Interactive() bool {
	return xterm.IsTerminal(int(os.Stdin.Fd()))
}

// Terminal is a terminal device in cbreak mode.
type Terminal struct {
	t    *term.Term
	name string
}

// Open the terminal device and put it into cbreak mode. The device should be
// closed with Close(), which restores the original mode.
func Open(device string) (*Terminal, error) {
	if device == "" {
		device = DefaultDevice
	}

	t, err := term.Open(device)
	if err != nil {
		return nil, fmt.Errorf("terminput: %w", err)
	}

	err = t.SetCbreak()
	if err != nil {
		_ = t.Close()
		return nil, fmt.Errorf("terminput: %w", err)
	}

	err = t.SetReadTimeout(readTimeout)
	if err != nil {
		_ = t.Restore()
		_ = t.Close()
		return nil, fmt.Errorf("terminput: %w", err)
	}

	return &Terminal{t: t, name: device}, nil
}

func (tm *Terminal) String() string {
	return tm.name
}

// Close restores the terminal to its original mode and closes the device.
func (tm *Terminal) Close() error {
	return errors.Join(tm.t.Restore(), tm.t.Close())
}

// Run reads from the terminal and applies decoded events to the input. Run
// returns when the context is done.
func (tm *Terminal) Run(ctx context.Context, in *Input) error {
	logger.Logf(logger.Allow, "terminput", "reading keys from %s", tm.name)

	b := make([]byte, 32)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := tm.t.Read(b)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("terminput: %w", err)
		}

		for _, ev := range Decode(b[:n]) {
			in.Apply(ev)
		}
	}
}
