// Package fetcher downloads upstream headers into a local directory.
//
// A file that already exists at the destination is reused as-is: there is
// no staleness or integrity check. Delete the file to force a fresh download.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	gl3w "github.com/zhedye/gl3w-Single-File"
	"github.com/zhedye/gl3w-Single-File/glerrors"
	"github.com/zhedye/gl3w-Single-File/internal/fileutil"
	"github.com/zhedye/gl3w-Single-File/logging"
)

// Result describes the outcome of a single Fetch.
type Result struct {
	// URL is the address the file came from
	URL string
	// Path is the local file path
	Path string
	// Reused is true if the file already existed and no request was made
	Reused bool
	// Size is the number of bytes written (0 when Reused)
	Size int64
}

// Fetcher downloads files over HTTP, skipping any that already exist.
type Fetcher struct {
	// HTTPClient is the client used for requests.
	// If nil, a client without a timeout is used: downloads block until
	// they finish or ctx is cancelled.
	HTTPClient *http.Client

	// UserAgent is the User-Agent header sent with each request.
	// If empty, gl3w.UserAgent() is used.
	UserAgent string

	// Logger receives progress messages. If nil, nothing is logged.
	Logger logging.Logger
}

// New creates a Fetcher with default settings.
func New() *Fetcher {
	return &Fetcher{
		HTTPClient: &http.Client{},
		UserAgent:  gl3w.UserAgent(),
	}
}

func (f *Fetcher) log() logging.Logger {
	return logging.OrNop(f.Logger)
}

// Fetch downloads url to dst unless a file already exists at dst.
//
// The destination directory is created first. The body is streamed into a
// temporary file next to dst and renamed into place only after the whole
// response was read, so an interrupted download never satisfies a later
// existence check. A single attempt is made; non-2xx responses are errors.
func (f *Fetcher) Fetch(ctx context.Context, url, dst string) (*Result, error) {
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, fileutil.DirMode); err != nil {
		return nil, &glerrors.FetchError{URL: url, Path: dst, Message: "failed to create directory", Cause: err}
	}

	exists, err := fileutil.Exists(dst)
	if err != nil {
		return nil, &glerrors.FetchError{URL: url, Path: dst, Message: "failed to stat destination", Cause: err}
	}
	if exists {
		f.log().Info("reusing", "path", dst)
		return &Result{URL: url, Path: dst, Reused: true}, nil
	}

	f.log().Info("downloading", "path", dst, "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &glerrors.FetchError{URL: url, Path: dst, Message: "failed to create request", Cause: err}
	}
	userAgent := f.UserAgent
	if userAgent == "" {
		userAgent = gl3w.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	client := f.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	resp, err := client.Do(req) //nolint:gosec // URLs come from the embedded manifest
	if err != nil {
		return nil, &glerrors.FetchError{URL: url, Path: dst, Message: "request failed", Cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &glerrors.FetchError{URL: url, Path: dst, StatusCode: resp.StatusCode, Message: resp.Status}
	}

	size, err := writeAtomic(dst, resp.Body)
	if err != nil {
		return nil, &glerrors.FetchError{URL: url, Path: dst, Message: "failed to write file", Cause: err}
	}

	f.log().Debug("downloaded", "path", dst, "size", humanize.Bytes(uint64(size)))
	return &Result{URL: url, Path: dst, Size: size}, nil
}

// writeAtomic streams r into a temporary file in dst's directory and renames
// it to dst once the copy succeeds.
func writeAtomic(dst string, r io.Reader) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.part")
	if err != nil {
		return 0, err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	n, err := io.Copy(tmp, r)
	if err != nil {
		return 0, fmt.Errorf("copying body: %w", err)
	}
	if err := tmp.Chmod(fileutil.ReadableByAll); err != nil {
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return 0, err
	}
	committed = true
	return n, nil
}
