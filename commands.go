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
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/shmem800/colourgen"
	"github.com/jetsetilly/shmem800/controller"
	"github.com/jetsetilly/shmem800/engine"
	"github.com/jetsetilly/shmem800/exchange"
	"github.com/jetsetilly/shmem800/frame"
	"github.com/jetsetilly/shmem800/logger"
	"github.com/spf13/cobra"
)

// engine mode is run by the controller when it starts the engine as a child
// process. the arguments are passed to the engine unchanged.
func newEngineCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "engine [engine arguments]",
		Short:              "run the test pattern engine attached to the exchange of the parent process",
		Hidden:             true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !engine.Attached() {
				return fmt.Errorf("engine: not started by a controller")
			}

			// the controller forwards stderr to its own log
			logger.SetEcho(os.Stderr, false)

			seg, buf, err := engine.Attach()
			if err != nil {
				return err
			}
			defer seg.Close()

			return engine.Pattern(cmd.Context(), args, buf)
		},
	}
}

func newLayoutCmd(global *globalOptions) *cobra.Command {
	var preset string

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "print the memory map of the exchange",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := controller.NewPreferences(global.prefsFile)
			if err != nil {
				return err
			}

			cfg := p.ExchangeConfig()
			switch strings.ToLower(preset) {
			case "":
			case "standard":
				cfg.VideoOffset = exchange.VideoOffsetStandard
			case "debug":
				cfg.VideoOffset = exchange.VideoOffsetDebug
			default:
				return fmt.Errorf("layout: unknown preset (%s)", preset)
			}

			l, err := exchange.NewLayout(cfg)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), l)
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", `video offset preset ("standard" or "debug")`)

	return cmd
}

func newPaletteCmd() *cobra.Command {
	var png string
	var size int

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "print the colour table or save it as an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tab := colourgen.NTSC()

			if png == "" {
				out := cmd.OutOrStdout()
				for hue := 0; hue < 16; hue++ {
					fmt.Fprintf(out, "%x_:", hue)
					for lum := 0; lum < 16; lum++ {
						r, g, b := tab.RGB(uint8(hue<<4 | lum))
						fmt.Fprintf(out, " %02x%02x%02x", r, g, b)
					}
					fmt.Fprintln(out)
				}
				return nil
			}

			// one pixel for every index value. hue increases down the image
			// and luminance increases across
			plane := make([]byte, 256)
			for i := range plane {
				plane[i] = uint8(i)
			}

			dec, err := frame.NewDecoder(tab, frame.RGB)
			if err != nil {
				return err
			}
			img, err := dec.Decode(plane, 16, 16)
			if err != nil {
				return err
			}

			var scl frame.Scaler
			img, err = scl.Scale(img, size)
			if err != nil {
				return err
			}

			return frame.SavePNG(img, png)
		},
	}

	cmd.Flags().StringVar(&png, "png", "", "save the palette to PNG file")
	cmd.Flags().IntVar(&size, "size", 16, "size of each colour swatch in the PNG file")

	return cmd
}
