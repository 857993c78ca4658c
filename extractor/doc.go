// Package extractor scans OpenGL API headers for exported procedure names.
//
// The default [PatternStrategy] matches one anchored regular expression per
// line:
//
//	^GLAPI.*APIENTRY\s+(\w+)
//
// which fits the layout Khronos uses in glcorearb.h:
//
//	GLAPI void APIENTRY glCullFace (GLenum mode);
//
// Declarations wrapped over several lines, or written without the GLAPI and
// APIENTRY markers, are not recognised. A stricter scanner can be plugged in
// by implementing [Strategy].
//
// Names ending in a vendor suffix (see [ExtensionSuffixes]) are dropped
// unless IncludeExtensions is set.
package extractor
