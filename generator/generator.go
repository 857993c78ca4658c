package generator

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/zhedye/gl3w-Single-File/extractor"
	"github.com/zhedye/gl3w-Single-File/fetcher"
	"github.com/zhedye/gl3w-Single-File/glerrors"
	"github.com/zhedye/gl3w-Single-File/internal/config"
	"github.com/zhedye/gl3w-Single-File/logging"
	"github.com/zhedye/gl3w-Single-File/proc"
)

// Fetcher downloads a URL to a local path unless the path already exists.
// *fetcher.Fetcher implements it.
type Fetcher interface {
	Fetch(ctx context.Context, url, dst string) (*fetcher.Result, error)
}

// Source is one upstream header.
type Source = config.Source

// GenerateResult contains the results of one generator run
type GenerateResult struct {
	// Content is the generated gl3w.h
	Content []byte
	// OutputName is the file name the header is meant to be written as
	OutputName string
	// Fetched describes each source, in manifest order
	Fetched []fetcher.Result
	// Records are the emitted procedures, sorted by name
	Records []proc.Record
	// SkippedExtensions are the vendor procedures left out
	SkippedExtensions []string
	// Duplicates counts repeated declarations in the API header
	Duplicates int
	// FetchTime is the time spent downloading or reusing sources
	FetchTime time.Duration
	// GenerateTime is the time spent parsing and rendering
	GenerateTime time.Duration
}

// ProcCount returns the number of emitted procedures
func (r *GenerateResult) ProcCount() int {
	return len(r.Records)
}

// DownloadedCount returns how many sources were fetched over the network
func (r *GenerateResult) DownloadedCount() int {
	n := 0
	for _, f := range r.Fetched {
		if !f.Reused {
			n++
		}
	}
	return n
}

// Generator runs the fetch, extract, derive, and emit pipeline.
type Generator struct {
	// IncludeExtensions keeps vendor-suffixed procedures
	IncludeExtensions bool

	// Root is the directory sources are read from and downloaded into.
	// Empty means the current directory.
	Root string

	// Sources are the upstream headers; exactly one must have API set.
	// Default: the embedded manifest (glcorearb.h and khrplatform.h)
	Sources []Source

	// OutputName is the generated file name.
	// Default: "gl3w.h"
	OutputName string

	// Fetcher downloads sources. Default: fetcher.New()
	Fetcher Fetcher

	// Strategy finds procedure names. Default: extractor.NewPatternStrategy()
	Strategy extractor.Strategy

	// Logger receives progress messages. If nil, nothing is logged.
	Logger logging.Logger
}

// New creates a Generator with the embedded source manifest.
func New() *Generator {
	g := &Generator{
		OutputName: DefaultOutputName,
		Fetcher:    fetcher.New(),
		Strategy:   extractor.NewPatternStrategy(),
	}
	if m, err := config.DefaultManifest(); err == nil {
		g.Sources = m.Sources
		g.OutputName = m.Output
	}
	return g
}

// NewFromConfig creates a Generator from a loaded configuration.
func NewFromConfig(cfg *config.Config, logger logging.Logger) *Generator {
	f := fetcher.New()
	f.Logger = logger
	return &Generator{
		IncludeExtensions: cfg.IncludeExtensions,
		Root:              cfg.Root,
		Sources:           cfg.Sources,
		OutputName:        cfg.Output,
		Fetcher:           f,
		Strategy:          extractor.NewPatternStrategy(),
		Logger:            logger,
	}
}

func (g *Generator) log() logging.Logger {
	return logging.OrNop(g.Logger)
}

// Generate fetches every source into Root, scans the API header, and
// renders the header. Any failure stops the run; nothing is written.
func (g *Generator) Generate(ctx context.Context) (*GenerateResult, error) {
	manifest := config.Manifest{Output: g.OutputName, Sources: g.Sources}
	if manifest.Output == "" {
		manifest.Output = DefaultOutputName
	}
	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	result := &GenerateResult{OutputName: manifest.Output}

	fetchStart := time.Now()
	f := g.Fetcher
	if f == nil {
		f = fetcher.New()
	}
	for _, src := range manifest.Sources {
		res, err := f.Fetch(ctx, src.URL, filepath.Join(g.Root, src.File))
		if err != nil {
			return nil, fmt.Errorf("generator: %w", err)
		}
		result.Fetched = append(result.Fetched, *res)
	}
	result.FetchTime = time.Since(fetchStart)

	genStart := time.Now()
	api := manifest.APIHeader()
	ex := &extractor.Extractor{
		Strategy:          g.Strategy,
		IncludeExtensions: g.IncludeExtensions,
		Logger:            g.Logger,
	}
	extracted, err := ex.ExtractFile(filepath.Join(g.Root, api.File))
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	if len(extracted.Procs) == 0 {
		return nil, fmt.Errorf("generator: %s: %w", api.File, glerrors.ErrNoProcs)
	}
	result.SkippedExtensions = extracted.Extensions
	result.Duplicates = extracted.Duplicates

	records, err := proc.DeriveAll(extracted.Procs)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	result.Records = records

	g.log().Info("generating", "output", manifest.Output, "procs", len(records))
	emitter := &Emitter{APIHeader: api.File, OutputName: manifest.Output}
	content, err := emitter.Emit(records, g.IncludeExtensions)
	if err != nil {
		return nil, err
	}
	result.Content = content
	result.GenerateTime = time.Since(genStart)

	return result, nil
}
