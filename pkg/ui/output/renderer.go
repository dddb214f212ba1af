// Package output renders activation results for the terminal.
package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/types"
	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/ui/output/styles"
)

func init() {
	// degrade to plain text when output is piped
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// RenderSummary formats a one-line summary of an activation run.
func RenderSummary(result *types.Result, targetPath string) string {
	target := styles.GetStyle("FilePath").Render(targetPath)

	if result.SourceMissing {
		return fmt.Sprintf("%s %s created but left empty, source missing",
			styles.GetStyle("Error").Render("datahook:"), target)
	}

	summary := fmt.Sprintf("%s %s up to date, %d copied, %d skipped",
		styles.GetStyle("Success").Render("datahook:"),
		target, result.FilesCopied, result.FilesSkipped)

	if result.SymlinkRemoved {
		summary += styles.GetStyle("Muted").Render(" (stale symlink removed)")
	}
	return summary
}

// RenderError formats a fatal error for stderr.
func RenderError(err error) string {
	return styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err))
}
