// Package gl3w generates gl3w.h, a single-header C library that loads the
// OpenGL core profile at runtime.
//
// The generator downloads the Khronos glcorearb.h and khrplatform.h headers,
// scans glcorearb.h for exported procedures, and emits a header that exposes
// every procedure through a table of function pointers filled in by a
// platform-specific loader.
//
// # Packages
//
//   - fetcher: Download the upstream headers, reusing files already on disk
//   - extractor: Scan a header for procedure names
//   - proc: Derive the alias and pointer-type names for each procedure
//   - generator: Emit gl3w.h and run the whole pipeline
//   - glerrors: Structured error types for errors.Is and errors.As
//   - logging: The logger interface used by every package
//
// # Quick Start
//
//	g := generator.New()
//	g.Root = "include/GL"
//	result, err := g.Generate(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFile("gl3w.h"); err != nil {
//		log.Fatal(err)
//	}
//
// The gl3wgen command wraps the same pipeline:
//
//	gl3wgen --root include/GL --ext
package gl3w
