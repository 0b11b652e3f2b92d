package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/rcops/mkmodule/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/rcops/mkmodule/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/rcops/mkmodule/internal/version.Date={{.Date}}
)
