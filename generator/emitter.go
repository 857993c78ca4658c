package generator

import (
	"fmt"

	"github.com/zhedye/gl3w-Single-File/glerrors"
	"github.com/zhedye/gl3w-Single-File/proc"
)

// Column widths of the aligned union fields and macro names.
const (
	fieldTypeWidth = 55
	macroNameWidth = 48
)

// Default names of the API header and the generated file.
const (
	DefaultAPIHeader  = "glcorearb.h"
	DefaultOutputName = "gl3w.h"
)

// HeaderData is the data passed to the header templates.
type HeaderData struct {
	// Records are the procedures in emission order
	Records []proc.Record
	// IncludeExtensions records whether vendor procedures were kept
	IncludeExtensions bool
	// APIHeader is the header gl3w.h includes for the GL typedefs
	APIHeader string
	// OutputName is the generated file name, used in the usage banner
	OutputName string
}

// Emitter renders gl3w.h.
type Emitter struct {
	// APIHeader is the file name the generated header includes.
	// Default: "glcorearb.h"
	APIHeader string

	// OutputName is the generated file name shown in the usage banner.
	// Default: "gl3w.h"
	OutputName string
}

// NewEmitter creates an Emitter with default settings.
func NewEmitter() *Emitter {
	return &Emitter{
		APIHeader:  DefaultAPIHeader,
		OutputName: DefaultOutputName,
	}
}

// Emit renders gl3w.h for records using the default Emitter.
func Emit(records []proc.Record, includeExtensions bool) ([]byte, error) {
	return NewEmitter().Emit(records, includeExtensions)
}

// Emit renders gl3w.h for records.
//
// Records are emitted sorted by OriginalName. The union slots, the struct
// fields, the macros, and the loader's name table all follow that one order,
// which is what lets the loader fill slot i from name i.
//
// An empty record set returns glerrors.ErrNoProcs, and two records with the
// same OriginalName return a *glerrors.NameError: neither would compile.
func (e *Emitter) Emit(records []proc.Record, includeExtensions bool) ([]byte, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("generator: %w", glerrors.ErrNoProcs)
	}

	sorted := proc.Sorted(records)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].OriginalName == sorted[i-1].OriginalName {
			return nil, &glerrors.NameError{Name: sorted[i].OriginalName, Message: "duplicate procedure"}
		}
	}

	data := HeaderData{
		Records:           sorted,
		IncludeExtensions: includeExtensions,
		APIHeader:         e.APIHeader,
		OutputName:        e.OutputName,
	}
	if data.APIHeader == "" {
		data.APIHeader = DefaultAPIHeader
	}
	if data.OutputName == "" {
		data.OutputName = DefaultOutputName
	}

	out, err := executeTemplate("header.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("generator: rendering %s: %w", data.OutputName, err)
	}
	return out, nil
}
