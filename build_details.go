package gl3w

import "fmt"

var (
	// version is set via ldflags during release builds.
	// For development builds, this will show "dev"
	version = "dev"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// UserAgent returns the User-Agent string sent when downloading headers.
// Some registry mirrors reject non-browser agents, so it leads with a
// Mozilla token.
func UserAgent() string {
	return fmt.Sprintf("Mozilla/5.0 (compatible; gl3wgen/%s)", version)
}
