package gl3w

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVersion verifies that Version() returns the version variable.
func TestVersion(t *testing.T) {
	result := Version()

	assert.NotEmpty(t, result, "Version() should not return empty string")
	assert.True(t,
		result == "dev" || strings.HasPrefix(result, "v"),
		"Version() should be 'dev' or start with 'v', got: %s", result)
}

// TestUserAgent verifies the User-Agent is browser-like and carries the version.
func TestUserAgent(t *testing.T) {
	ua := UserAgent()

	assert.True(t, strings.HasPrefix(ua, "Mozilla/5.0"),
		"UserAgent() should start with a Mozilla token, got: %s", ua)
	assert.Contains(t, ua, "gl3wgen/"+Version())
	assert.NotContains(t, ua, "\n")
	assert.NotContains(t, ua, "\r")
}
