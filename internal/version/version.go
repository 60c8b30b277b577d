package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/RobertLuptonTheGood/eups/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/RobertLuptonTheGood/eups/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/RobertLuptonTheGood/eups/internal/version.Date={{.Date}}
)
