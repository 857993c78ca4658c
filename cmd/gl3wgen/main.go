// Command gl3wgen downloads the OpenGL core profile headers and generates
// gl3w.h in the current directory.
//
// Usage:
//
//	gl3wgen [--ext] [--root DIR]
//
// The fetched glcorearb.h and khrplatform.h are kept in DIR and reused on
// later runs. Set GL3W_LOG_LEVEL=debug for more detail.
package main

import (
	"os"

	"github.com/zhedye/gl3w-Single-File/cmd/gl3wgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
