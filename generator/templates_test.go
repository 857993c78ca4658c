package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhedye/gl3w-Single-File/proc"
)

// TestTemplatesParsed verifies every section template is embedded.
func TestTemplatesParsed(t *testing.T) {
	for _, name := range []string{
		"header.tmpl",
		"banner.tmpl",
		"api.tmpl",
		"procs.tmpl",
		"impl.tmpl",
		"platform_windows.tmpl",
		"platform_apple.tmpl",
		"platform_unix.tmpl",
		"loader.tmpl",
	} {
		assert.NotNil(t, templates.Lookup(name), "template %s not found", name)
	}
}

func TestExecuteTemplateUnknown(t *testing.T) {
	_, err := executeTemplate("missing.tmpl", nil)
	assert.Error(t, err)
}

func TestExecuteLoaderTemplate(t *testing.T) {
	data := HeaderData{Records: []proc.Record{
		{OriginalName: "glA", AliasName: "gl3wA", PointerTypeName: "PFNGLAPROC"},
		{OriginalName: "glB", AliasName: "gl3wB", PointerTypeName: "PFNGLBPROC"},
	}}
	out, err := executeTemplate("loader.tmpl", data)
	require.NoError(t, err)
	assert.Contains(t, string(out), "static const char *gl3w__proc_names[] = {\n\t\"glA\",\n\t\"glB\",\n};\n")
}
