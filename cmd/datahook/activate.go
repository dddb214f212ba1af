package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/config"
	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/errors"
	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/filesystem"
	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/logging"
	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/materialize"
	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/paths"
	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/ui/output"
)

var activateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Materialize the example data directory",
	Long: `Runs the activation sequence from the current working directory:
removes a stale 'data' symlink if one exists, ensures 'data' is a real
directory, and incrementally copies the example dataset into it. Files
already current at the destination are left untouched.

A missing dataset mount is reported and leaves the (empty) directory in
place; it does not fail the activation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logging.LogDuration(time.Now(), "activate")

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		// The config file can raise verbosity when no flag was given
		if verbosity == 0 && cfg.Verbosity > 0 {
			logging.SetupLogger(cfg.Verbosity)
		}

		target, err := paths.ResolveTarget(cfg.TargetName)
		if err != nil {
			return err
		}

		result, err := materialize.Materialize(
			filesystem.NewOS(),
			logging.NewCapability("activate"),
			materialize.Options{
				SourceRoot: cfg.SourceRoot,
				TargetPath: target,
			},
		)
		if err != nil && !errors.IsErrorCode(err, errors.ErrSourceMissing) {
			return err
		}
		// A missing source was already reported through the logger; the
		// activation itself still succeeds with an empty directory.

		fmt.Fprintln(cmd.OutOrStdout(), output.RenderSummary(result, target))
		return nil
	},
}
