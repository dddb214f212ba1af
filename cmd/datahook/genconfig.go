package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/config"
	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/paths"
)

var genConfigCmd = &cobra.Command{
	Use:   "gen-config",
	Short: "Generate a starter configuration file",
	Long: `Prints a starter configuration with every value commented out. With
--write the file is placed in the hook's config directory instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := config.GenerateConfigContent()
		if err != nil {
			return err
		}

		write, _ := cmd.Flags().GetBool("write")
		if !write {
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		}

		dir := paths.ConfigDir()
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		path := filepath.Join(dir, paths.ConfigFileName+".toml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	genConfigCmd.Flags().BoolP("write", "w", false, "Write config to file instead of stdout")
}
