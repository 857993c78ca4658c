package extractor

import (
	"bufio"
	"io"
	"regexp"

	"github.com/zhedye/gl3w-Single-File/glerrors"
)

// maxLineSize bounds a single header line. glcorearb.h lines are well under
// 1 KiB; anything longer is treated as a malformed input.
const maxLineSize = 1 << 20

// DefaultPattern matches GL procedure declarations in glcorearb.h.
// The first submatch is the procedure name.
var DefaultPattern = regexp.MustCompile(`^GLAPI.*APIENTRY\s+(\w+)`)

// Strategy finds procedure names in a header.
type Strategy interface {
	// Names returns every declared procedure name in r, in the order found.
	Names(r io.Reader) ([]string, error)
}

// PatternStrategy matches a regular expression against each line and takes
// the first submatch as the procedure name. Lines that do not match are
// skipped.
type PatternStrategy struct {
	Pattern *regexp.Regexp
}

// NewPatternStrategy returns a PatternStrategy using DefaultPattern.
func NewPatternStrategy() *PatternStrategy {
	return &PatternStrategy{Pattern: DefaultPattern}
}

// Names implements Strategy.
func (s *PatternStrategy) Names(r io.Reader) ([]string, error) {
	pattern := s.Pattern
	if pattern == nil {
		pattern = DefaultPattern
	}

	var names []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		m := pattern.FindSubmatch(scanner.Bytes())
		if len(m) < 2 || len(m[1]) == 0 {
			continue
		}
		names = append(names, string(m[1]))
	}
	if err := scanner.Err(); err != nil {
		return nil, &glerrors.ParseError{Line: line + 1, Message: "failed to read line", Cause: err}
	}
	return names, nil
}

var _ Strategy = (*PatternStrategy)(nil)
