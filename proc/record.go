// Package proc derives the identifiers gl3w uses for each OpenGL procedure.
package proc

import (
	"slices"
	"strings"

	"github.com/zhedye/gl3w-Single-File/glerrors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Naming constants for derived identifiers.
const (
	// GLPrefix is the prefix every OpenGL procedure name starts with
	GLPrefix = "gl"
	// AliasPrefix replaces GLPrefix in alias names
	AliasPrefix = "gl3w"
	// PointerTypePrefix and PointerTypeSuffix wrap the upper-cased name
	// to form the glcorearb.h function-pointer typedef
	PointerTypePrefix = "PFN"
	PointerTypeSuffix = "PROC"
)

// Record is one procedure and the names derived from it.
type Record struct {
	// OriginalName is the name as declared, e.g. glGetIntegerv
	OriginalName string
	// AliasName is the gl3w field name, e.g. gl3wGetIntegerv
	AliasName string
	// PointerTypeName is the typedef of the function pointer, e.g. PFNGLGETINTEGERVPROC
	PointerTypeName string
}

// Derive builds the Record for name.
// Names that do not start with "gl" followed by at least one more
// character are rejected with a *glerrors.NameError.
func Derive(name string) (Record, error) {
	if len(name) <= len(GLPrefix) {
		return Record{}, &glerrors.NameError{Name: name, Message: "shorter than a gl procedure name"}
	}
	if !strings.HasPrefix(name, GLPrefix) {
		return Record{}, &glerrors.NameError{Name: name, Message: "missing \"" + GLPrefix + "\" prefix"}
	}
	// Casers are stateful, so one is built per call.
	upper := cases.Upper(language.Und).String(name)
	return Record{
		OriginalName:    name,
		AliasName:       AliasPrefix + name[len(GLPrefix):],
		PointerTypeName: PointerTypePrefix + upper + PointerTypeSuffix,
	}, nil
}

// DeriveAll derives a Record for every name and returns them sorted by
// OriginalName. The first invalid name aborts with its error.
func DeriveAll(names []string) ([]Record, error) {
	records := make([]Record, 0, len(names))
	for _, name := range names {
		r, err := Derive(name)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	Sort(records)
	return records, nil
}

// Sort orders records by OriginalName using byte-wise comparison, so the
// result does not depend on locale.
func Sort(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return strings.Compare(a.OriginalName, b.OriginalName)
	})
}

// Sorted returns a sorted copy of records.
func Sorted(records []Record) []Record {
	out := slices.Clone(records)
	Sort(out)
	return out
}
