package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhedye/gl3w-Single-File/glerrors"
)

func TestDefaultManifest(t *testing.T) {
	m, err := DefaultManifest()
	require.NoError(t, err)

	assert.Equal(t, "gl3w.h", m.Output)
	require.Len(t, m.Sources, 2)
	assert.Equal(t, "glcorearb.h", m.Sources[0].File)
	assert.Equal(t, "https://registry.khronos.org/OpenGL/api/GL/glcorearb.h", m.Sources[0].URL)
	assert.Equal(t, "khrplatform.h", m.Sources[1].File)
	assert.Equal(t, "https://registry.khronos.org/EGL/api/KHR/khrplatform.h", m.Sources[1].URL)

	api := m.APIHeader()
	assert.Equal(t, "glcorearb.h", api.File)
	assert.True(t, api.API)
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			name:    "invalid yaml",
			yaml:    "output: [",
			wantMsg: "invalid yaml",
		},
		{
			name:    "missing output",
			yaml:    "sources:\n  - {file: a.h, url: u, api: true}\n",
			wantMsg: "output: must not be empty",
		},
		{
			name:    "output with directory",
			yaml:    "output: out/gl3w.h\nsources:\n  - {file: a.h, url: u, api: true}\n",
			wantMsg: "must be a bare file name",
		},
		{
			name:    "no api header",
			yaml:    "output: gl3w.h\nsources:\n  - {file: a.h, url: u}\n",
			wantMsg: "exactly one api header",
		},
		{
			name:    "two api headers",
			yaml:    "output: gl3w.h\nsources:\n  - {file: a.h, url: u, api: true}\n  - {file: b.h, url: u, api: true}\n",
			wantMsg: "exactly one api header",
		},
		{
			name:    "missing url",
			yaml:    "output: gl3w.h\nsources:\n  - {file: a.h, api: true}\n",
			wantMsg: "file and url are required",
		},
		{
			name:    "duplicate file",
			yaml:    "output: gl3w.h\nsources:\n  - {file: a.h, url: u, api: true}\n  - {file: a.h, url: v}\n",
			wantMsg: "duplicate file",
		},
		{
			name:    "source path traversal",
			yaml:    "output: gl3w.h\nsources:\n  - {file: ../a.h, url: u, api: true}\n",
			wantMsg: "file must be a bare file name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, glerrors.ErrConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load(true, "include/GL")
	require.NoError(t, err)

	assert.True(t, cfg.IncludeExtensions)
	assert.Equal(t, "include/GL", cfg.Root)
	assert.Equal(t, "gl3w.h", cfg.Output)
	assert.Equal(t, "glcorearb.h", cfg.APIHeader().File)
}

func TestLoadEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		// t.Setenv restores the originals after the test.
		t.Setenv("GL3W_LOG_LEVEL", "unset")
		t.Setenv("GL3W_LOG_FORMAT", "unset")
		require.NoError(t, os.Unsetenv("GL3W_LOG_LEVEL"))
		require.NoError(t, os.Unsetenv("GL3W_LOG_FORMAT"))
		env, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, "info", env.LogLevel)
		assert.Equal(t, "console", env.LogFormat)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("GL3W_LOG_LEVEL", "debug")
		t.Setenv("GL3W_LOG_FORMAT", "json")
		env, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, "debug", env.LogLevel)
		assert.Equal(t, "json", env.LogFormat)
	})
}
