package extractor

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zhedye/gl3w-Single-File/glerrors"
	"github.com/zhedye/gl3w-Single-File/logging"
)

// Result holds the names found in one header.
type Result struct {
	// Procs are the kept procedure names in first-seen order
	Procs []string
	// Extensions are the vendor-suffixed names that were excluded.
	// Empty when extensions are included.
	Extensions []string
	// Duplicates counts declarations whose name had already been seen
	Duplicates int
}

// Extractor filters the names produced by a Strategy.
type Extractor struct {
	// Strategy finds candidate names. If nil, NewPatternStrategy() is used.
	Strategy Strategy

	// IncludeExtensions keeps vendor-suffixed names.
	IncludeExtensions bool

	// Logger receives progress messages. If nil, nothing is logged.
	Logger logging.Logger
}

// New creates an Extractor with the default pattern strategy.
func New() *Extractor {
	return &Extractor{Strategy: NewPatternStrategy()}
}

// ExtractProcNames scans the header at path with the default strategy.
func ExtractProcNames(path string, includeExtensions bool) ([]string, error) {
	e := New()
	e.IncludeExtensions = includeExtensions
	res, err := e.ExtractFile(path)
	if err != nil {
		return nil, err
	}
	return res.Procs, nil
}

// ExtractFile opens path and scans it.
func (e *Extractor) ExtractFile(path string) (*Result, error) {
	logging.OrNop(e.Logger).Info("parsing", "path", path)

	f, err := os.Open(path) //nolint:gosec // path is the configured API header
	if err != nil {
		return nil, &glerrors.ParseError{Path: path, Message: "failed to open header", Cause: err}
	}
	defer func() {
		_ = f.Close()
	}()

	res, err := e.Extract(f)
	if err != nil {
		var parseErr *glerrors.ParseError
		if errors.As(err, &parseErr) && parseErr.Path == "" {
			parseErr.Path = path
		}
		return nil, err
	}
	return res, nil
}

// Extract scans r. Each name is reported once, at its first occurrence.
func (e *Extractor) Extract(r io.Reader) (*Result, error) {
	strategy := e.Strategy
	if strategy == nil {
		strategy = NewPatternStrategy()
	}

	names, err := strategy.Names(r)
	if err != nil {
		var parseErr *glerrors.ParseError
		if errors.As(err, &parseErr) {
			return nil, err
		}
		return nil, &glerrors.ParseError{Message: fmt.Sprintf("%T failed", strategy), Cause: err}
	}

	res := &Result{}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			res.Duplicates++
			continue
		}
		seen[name] = true
		if !e.IncludeExtensions && IsExtension(name) {
			res.Extensions = append(res.Extensions, name)
			continue
		}
		res.Procs = append(res.Procs, name)
	}

	logging.OrNop(e.Logger).Debug("extracted procedures",
		"procs", len(res.Procs),
		"extensions_skipped", len(res.Extensions),
		"duplicates", res.Duplicates)
	return res, nil
}
