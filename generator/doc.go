// Package generator renders gl3w.h and runs the whole generation pipeline.
//
// # Pipeline
//
// [Generator.Generate] runs four steps in order, stopping at the first error:
//
//  1. Fetch every source into Root, reusing files that already exist
//  2. Scan the API header for procedure names (see package extractor)
//  3. Derive alias and pointer-type names and sort by name (see package proc)
//  4. Render the header from the embedded templates
//
// The result is written with [GenerateResult.WriteFile].
//
// # Generated Header
//
// The header is rendered from templates/header.tmpl, which includes, in order:
//
//   - banner.tmpl: license and usage notes
//   - api.tmpl: error codes, typedefs, and the gl3w_* entry points
//   - procs.tmpl: union GL3WProcs, GL3WContext, and one macro per procedure
//   - impl.tmpl: the GL3W_IMPLEMENTATION block, which pulls in one of
//     platform_windows.tmpl, platform_apple.tmpl, or platform_unix.tmpl
//     and ends with loader.tmpl
//
// Every platform template implements the same three static functions:
// gl3w__open_libgl, gl3w__close_libgl, and gl3w__get_proc. The C
// preprocessor of the consuming build picks one; the generator always emits
// all three.
//
// Each macro maps an OpenGL name onto a field of the current context:
//
//	#define glClear    gl3w_current->procs.gl.gl3wClear
//
// so existing code keeps calling glClear while the call goes through a
// runtime-resolved pointer.
//
// # Determinism
//
// Output depends only on the record set, the extension flag, and the file
// names. Records are sorted byte-wise before rendering, so the same inputs
// always produce identical bytes.
package generator
