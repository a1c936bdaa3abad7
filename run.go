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
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/shmem800/controller"
	"github.com/jetsetilly/shmem800/digest"
	"github.com/jetsetilly/shmem800/engine"
	"github.com/jetsetilly/shmem800/frame"
	"github.com/jetsetilly/shmem800/limiter"
	"github.com/jetsetilly/shmem800/logger"
	"github.com/jetsetilly/shmem800/profiling"
	"github.com/jetsetilly/shmem800/statsview"
	"github.com/jetsetilly/shmem800/terminput"
	"github.com/jetsetilly/shmem800/wavwriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// how long to wait for the engine to shut down
const stopTimeout = 5 * time.Second

type runOptions struct {
	*globalOptions

	frames    int
	inprocess bool
	wav       string
	png       string
	scale     int
	digest    bool
	keys      bool
	fps       float32
	text      string
	stats     bool
	cpuFile   string
	memFile   string
}

func newRunCmd(global *globalOptions) *cobra.Command {
	opts := runOptions{globalOptions: global}

	cmd := &cobra.Command{
		Use:   "run [flags] [-- engine arguments]",
		Short: "start an engine and exchange frames with it",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := profiling.RunProfiler(opts.cpuFile, func() error {
				return run(cmd.Context(), cmd.OutOrStdout(), opts, args)
			})
			if err != nil {
				return err
			}
			return profiling.WriteHeap(opts.memFile)
		},
	}

	flgs := cmd.Flags()
	flgs.IntVar(&opts.frames, "frames", 0, "number of frames to run for (0 runs until interrupted)")
	flgs.BoolVar(&opts.inprocess, "inprocess", false, "run the engine in this process rather than as a child process")
	flgs.StringVar(&opts.wav, "wav", "", "record audio to WAV file")
	flgs.StringVar(&opts.png, "png", "", "save the last frame to PNG file")
	flgs.IntVar(&opts.scale, "scale", 1, "scale factor of the saved frame")
	flgs.BoolVar(&opts.digest, "digest", false, "print digests of the video and audio output")
	flgs.BoolVar(&opts.keys, "keys", false, "read keys from the terminal")
	flgs.Float32Var(&opts.fps, "fps", limiter.Unlimited, "limit the frame rate (0 is unlimited)")
	flgs.StringVar(&opts.text, "type", "", "type text into the engine, one character every two frames")
	flgs.BoolVar(&opts.stats, "stats", false, "launch the statistics server")
	flgs.StringVar(&opts.cpuFile, "cpuprofile", "", "write CPU profile to file")
	flgs.StringVar(&opts.memFile, "memprofile", "", "write heap profile to file on exit")

	return cmd
}

func launcher(inprocess bool) (engine.Launcher, error) {
	if inprocess {
		return engine.Routine{Name: "pattern", Run: engine.Pattern}, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}
	return engine.Process{Path: exe, Args: []string{"engine"}}, nil
}

// output of the run that is collected frame by frame
type recording struct {
	video *digest.Video
	audio *digest.Audio
	wav   *wavwriter.WavWriter
	last  *frame.Image
}

func run(ctx context.Context, out io.Writer, opts runOptions, args []string) (rerr error) {
	if opts.scale < 1 {
		return fmt.Errorf("run: scale must be at least one (%d)", opts.scale)
	}
	if opts.keys && !terminput.Interactive() {
		return fmt.Errorf("run: keys requires an interactive terminal")
	}

	p, err := controller.NewPreferences(opts.prefsFile)
	if err != nil {
		return err
	}

	lnchr, err := launcher(opts.inprocess)
	if err != nil {
		return err
	}

	c, err := controller.NewController(p, lnchr)
	if err != nil {
		return err
	}

	err = c.Start(args)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
		defer cancel()
		rerr = errors.Join(rerr, c.Stop(ctx))
	}()

	fmt.Fprintf(out, "exchange: %s\n", c.Layout().Config)

	if opts.stats {
		if !statsview.Available() {
			logger.Log(logger.Allow, "run", "statistics server not available in this build")
		}
		statsview.Launch(ctx, out)
	}

	lmtr := limiter.NewLimiter(opts.fps)
	defer lmtr.Stop()

	var rec recording
	if opts.digest {
		rec.video = digest.NewVideo()
		rec.audio = digest.NewAudio()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	var input *terminput.Input
	if opts.keys {
		tm, err := terminput.Open(terminput.DefaultDevice)
		if err != nil {
			return err
		}
		defer tm.Close()

		input = terminput.NewInput(c, terminput.DefaultHold)
		g.Go(func() error {
			return tm.Run(gctx, input)
		})
	}

	g.Go(func() error {
		// the terminal reader stops when the frame loop has finished
		defer cancel()

		text := []byte(opts.text)
		var typed bool

		for n := 0; opts.frames == 0 || n < opts.frames; n++ {
			err := c.WaitFrame(gctx)
			if err != nil {
				if gctx.Err() != nil {
					return nil
				}
				return err
			}

			err = rec.collect(c, opts)
			if err != nil {
				return err
			}

			// a key is typed on even frames and released on odd frames so
			// that repeated characters are seen as separate key presses
			if n%2 == 0 && len(text) > 0 {
				c.SendChar(text[0])
				text = text[1:]
				typed = true
			} else if typed {
				c.ClearKeys()
				typed = false
			}

			if input != nil {
				input.Frame()
			}

			lmtr.CheckFrame()
			lmtr.MeasureActual()

			err = c.NextFrame()
			if err != nil {
				return err
			}
		}

		return nil
	})

	err = g.Wait()
	if err != nil {
		return err
	}

	return rec.finish(out, opts, c.FrameCount(), lmtr)
}

func (rec *recording) collect(c *controller.Controller, opts runOptions) error {
	if rec.video != nil {
		img, err := c.Frame(1)
		if err != nil {
			return err
		}
		err = rec.video.Frame(img)
		if err != nil {
			return err
		}
	}

	if opts.png != "" {
		img, err := c.Frame(opts.scale)
		if err != nil {
			return err
		}
		rec.last = img.Copy()
	}

	if rec.audio == nil && opts.wav == "" {
		return nil
	}

	audio, err := c.Audio()
	if err != nil {
		return err
	}

	if rec.audio != nil {
		_, _ = rec.audio.Write(audio)
	}

	if opts.wav != "" {
		// the audio format is written by the engine during its
		// initialisation so it is not known until the first frame
		if rec.wav == nil {
			rec.wav, err = wavwriter.New(opts.wav, c.AudioFormat())
			if err != nil {
				return err
			}
		}
		_, _ = rec.wav.Write(audio)
	}

	return nil
}

func (rec *recording) finish(out io.Writer, opts runOptions, frames uint64, lmtr *limiter.Limiter) error {
	fmt.Fprintf(out, "frames: %d\n", frames)

	if m := lmtr.Measured.Load().(float32); m > 0 {
		fmt.Fprintf(out, "fps: %.2f\n", m)
	}

	if rec.video != nil {
		rec.audio.Flush()
		fmt.Fprintf(out, "video digest: %s\n", rec.video.Hash())
		fmt.Fprintf(out, "audio digest: %s\n", rec.audio.Hash())
	}

	if rec.wav != nil {
		err := rec.wav.End()
		if err != nil {
			return err
		}
	}

	if rec.last != nil {
		err := frame.SavePNG(rec.last, opts.png)
		if err != nil {
			return err
		}
		logger.Logf(logger.Allow, "run", "saved frame to %s", opts.png)
	}

	return nil
}
