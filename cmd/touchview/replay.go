package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phanxgames/touchview"
)

type replayOptions struct {
	width, height float64
	maxFrames     int
	frame         time.Duration
}

func newReplayCmd(a *app) *cobra.Command {
	opts := replayOptions{}
	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Run a gesture script headlessly and print the resulting events",
		Long: `replay feeds a YAML or JSON gesture script through a simulated clock and
prints every zoom, pan, double-tap and long-press the engine emits, followed
by the final view transform.

Example script:

  steps:
    - action: pinch
      from: [{x: 100, y: 100}, {x: 200, y: 100}]
      to:   [{x: 50, y: 100}, {x: 250, y: 100}]
      frames: 10
    - action: doubletap
      x: 150
      y: 100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			cfg, err := a.engineConfig()
			if err != nil {
				return err
			}
			return replay(cmd.OutOrStdout(), data, cfg, opts)
		},
	}
	cmd.Flags().Float64Var(&opts.width, "width", 800, "surface width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", 600, "surface height in pixels")
	cmd.Flags().IntVar(&opts.maxFrames, "max-frames", 100000, "abort after this many simulated frames")
	cmd.Flags().DurationVar(&opts.frame, "frame", touchview.DefaultFrameDuration, "simulated frame duration")
	return cmd
}

func replay(w io.Writer, script []byte, cfg touchview.Config, opts replayOptions) error {
	runner, err := touchview.LoadScript(script)
	if err != nil {
		return err
	}

	engine := touchview.New(touchview.FixedSurface{Width: opts.width, Height: opts.height}, cfg)
	defer engine.Close()
	sim := touchview.NewSimulator(engine, time.Unix(0, 0))
	sim.SetFrameDuration(opts.frame)

	zoomC := color.New(color.FgCyan)
	panC := color.New(color.FgGreen)
	tapC := color.New(color.FgYellow)
	pressC := color.New(color.FgMagenta)

	engine.OnZoom(func(scale, ox, oy float64) {
		zoomC.Fprintf(w, "%6d  zoom       scale=%.4f origin=(%.1f, %.1f)\n", sim.Frames(), scale, ox, oy)
	})
	engine.OnPan(func(dx, dy float64) {
		panC.Fprintf(w, "%6d  pan        delta=(%.1f, %.1f)\n", sim.Frames(), dx, dy)
	})
	engine.OnDoubleTap(func(x, y float64) {
		tapC.Fprintf(w, "%6d  doubletap  at=(%.1f, %.1f)\n", sim.Frames(), x, y)
	})
	engine.OnLongPress(func(x, y float64) {
		pressC.Fprintf(w, "%6d  longpress  at=(%.1f, %.1f)\n", sim.Frames(), x, y)
	})

	frames := runner.Run(sim, opts.maxFrames)
	if !runner.Done() {
		return fmt.Errorf("script did not finish within %d frames", opts.maxFrames)
	}

	v := engine.Transform()
	fmt.Fprintf(w, "final: scale=%.4f position=(%.1f, %.1f) frames=%d\n", v.Scale, v.Position.X, v.Position.Y, frames)
	return nil
}
