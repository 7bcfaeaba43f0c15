package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/boxtext/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/boxtext/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/boxtext/internal/version.Date={{.Date}}
)

// String returns the version line printed by the CLI.
func String() string {
	return "boxtext version " + Version
}
