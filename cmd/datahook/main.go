package main

import (
	"fmt"
	"os"

	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/ui/output"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, output.RenderError(err))
		os.Exit(1)
	}
}
