package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/fzf-alt/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/fzf-alt/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/fzf-alt/internal/version.Date={{.Date}}
)
