// Package commands implements the gl3wgen command line.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/zhedye/gl3w-Single-File/generator"
	"github.com/zhedye/gl3w-Single-File/internal/config"
)

// Flags holds the values of the command-line flags.
type Flags struct {
	Ext  bool
	Root string
}

// NewRootCmd builds the gl3wgen command. Log output goes to stderr.
func NewRootCmd(stderr io.Writer) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:   "gl3wgen",
		Short: "Generate gl3w.h, a runtime loader for the OpenGL core profile.",
		Long: `Generate gl3w.h, a runtime loader for the OpenGL core profile.

gl3wgen downloads glcorearb.h and khrplatform.h into the root directory
(reusing copies that already exist there), collects every procedure declared
in glcorearb.h, and writes gl3w.h to the current directory.

Environment:
  GL3W_LOG_LEVEL   debug, info, warn, or error (default info)
  GL3W_LOG_FORMAT  console or json (default console)
`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), stderr, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.Ext, "ext", false, "include vendor extension procedures (ARB, EXT, KHR, ...)")
	cmd.Flags().StringVar(&flags.Root, "root", "", "directory the upstream headers are read from and downloaded into")
	cmd.SetErr(stderr)

	return cmd
}

// Execute runs the gl3wgen command with os.Args.
func Execute() error {
	return NewRootCmd(os.Stderr).ExecuteContext(context.Background())
}

func run(ctx context.Context, stderr io.Writer, flags *Flags) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	zl, err := newLogger(stderr, env.LogLevel, env.LogFormat)
	if err != nil {
		return err
	}
	logger := NewZerologAdapter(zl)

	cfg, err := config.Load(flags.Ext, flags.Root)
	if err != nil {
		return err
	}

	result, err := generator.NewFromConfig(cfg, logger).Generate(ctx)
	if err != nil {
		return err
	}

	// The output lands in the working directory, not in --root.
	if err := result.WriteFile(result.OutputName); err != nil {
		return err
	}

	logger.Info("wrote header",
		"path", result.OutputName,
		"procs", result.ProcCount(),
		"extensions_skipped", len(result.SkippedExtensions),
		"downloaded", result.DownloadedCount(),
		"size", humanize.Bytes(uint64(len(result.Content))),
		"fetch_time", result.FetchTime.String(),
		"generate_time", result.GenerateTime.String())
	return nil
}
