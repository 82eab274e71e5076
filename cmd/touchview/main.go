// Command touchview replays gesture scripts against the touchview engine
// and hosts an interactive Ebitengine demo.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "touchview:", err)
		os.Exit(1)
	}
}
