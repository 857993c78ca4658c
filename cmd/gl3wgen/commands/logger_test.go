package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapter(zerolog.New(&buf)).With("component", "fetcher")

	l.Info("downloading", "path", "glcorearb.h", "dangling")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "downloading", entry["message"])
	assert.Equal(t, "glcorearb.h", entry["path"])
	assert.Equal(t, "fetcher", entry["component"])
	assert.NotContains(t, entry, "dangling")
}

func TestZerologAdapterLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.WarnLevel))

	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"warn"`)
	assert.Contains(t, lines[1], `"level":"error"`)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{in: "debug", want: zerolog.DebugLevel},
		{in: "INFO", want: zerolog.InfoLevel},
		{in: "", want: zerolog.InfoLevel},
		{in: "warn", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	zl, err := newLogger(&buf, "info", "console")
	require.NoError(t, err)
	zl.Info().Str("path", "gl3w.h").Msg("generating")
	assert.Contains(t, buf.String(), "generating")
	assert.Contains(t, buf.String(), "path=gl3w.h")

	buf.Reset()
	zl, err = newLogger(&buf, "info", "json")
	require.NoError(t, err)
	zl.Info().Msg("generating")
	assert.True(t, strings.HasPrefix(buf.String(), "{"))

	_, err = newLogger(&buf, "info", "xml")
	assert.Error(t, err)
}
