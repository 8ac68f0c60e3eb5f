// Package version exposes build metadata stamped in via ldflags:
//
//	go build -ldflags "-X github.com/rickgao/fluxgen/internal/version.Version=0.3.0 \
//	                   -X github.com/rickgao/fluxgen/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X github.com/rickgao/fluxgen/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Unstamped builds report "dev".
package version

var (
	// Version is the semantic version.
	Version = "dev"

	// Commit is the short git commit hash.
	Commit = "unknown"

	// BuildTime is the UTC build timestamp, ISO 8601.
	BuildTime = "unknown"
)

// String renders the stamped build info on one line.
func String() string {
	return Version + " (" + Commit + ") built " + BuildTime
}
