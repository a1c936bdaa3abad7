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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/shmem800/logger"
	"github.com/jetsetilly/shmem800/prefs"
	"github.com/jetsetilly/shmem800/version"
	"github.com/spf13/cobra"
)

// options shared by all commands
type globalOptions struct {
	prefs     string
	prefsFile string
	log       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts globalOptions

	root := &cobra.Command{
		Use:           "shmem800",
		Short:         "drive an emulation engine through a shared exchange buffer",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.log {
				logger.SetEcho(cmd.ErrOrStderr(), false)
			}
			if opts.prefs != "" {
				prefs.PushCommandLineStack(opts.prefs)
			}
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.prefs == "" {
				return
			}
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, version.ApplicationName, "unused prefs: %s", unused)
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.prefs, "prefs", "", `override preferences ("key::value; key::value")`)
	root.PersistentFlags().StringVar(&opts.prefsFile, "prefsfile", "", "preferences file (default is in the user config directory)")
	root.PersistentFlags().BoolVar(&opts.log, "log", false, "echo log to stderr")

	root.AddCommand(newRunCmd(&opts))
	root.AddCommand(newEngineCmd())
	root.AddCommand(newLayoutCmd(&opts))
	root.AddCommand(newPaletteCmd())

	return root
}
