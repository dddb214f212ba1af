package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/MSD-LIVE/jupyter-notebook-statemodify/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/MSD-LIVE/jupyter-notebook-statemodify/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/MSD-LIVE/jupyter-notebook-statemodify/internal/version.Date={{.Date}}
)
