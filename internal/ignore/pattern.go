package ignore

import (
	"strings"

	"github.com/dl/pathwalk/internal/glob"
)

// Pattern is one compiled line of an ignore file: a glob plus the negation
// and directory-only flags parsed from the line's leading/trailing
// punctuation. Equality is defined on OriginalText, per §3.
type Pattern struct {
	OriginalText string
	Glob         *glob.Matcher
	Negated      bool
	DirOnly      bool
}

// Equal reports whether two patterns were compiled from the same source
// line.
func (p Pattern) Equal(other Pattern) bool {
	return p.OriginalText == other.OriginalText
}

// CompilePattern transforms one ignore-file line into a Pattern, per §4.4.
// A comment or blank line (after trimming) yields (nil, nil): the caller
// should skip it.
func CompilePattern(line string, caseSensitive bool) (*Pattern, error) {
	original := line

	if strings.HasPrefix(line, "#") {
		return nil, nil
	}

	trimmed := trimTrailingWhitespace(line)
	if trimmed == "" {
		return nil, nil
	}

	var negated, absolute, dirOnly bool
	var body string

	switch {
	case strings.HasPrefix(trimmed, `\!`), strings.HasPrefix(trimmed, `\#`):
		body = trimmed[1:]
		if len(body) > 1 && body[1] == '/' {
			absolute = true
			body = body[:1] + body[2:]
		}
	default:
		body = trimmed
		if strings.HasPrefix(body, "!") {
			negated = true
			body = body[1:]
		}
		if strings.HasPrefix(body, "/") {
			absolute = true
			body = body[1:]
		}
	}

	if strings.HasSuffix(body, "/") && !strings.HasSuffix(body, `\/`) {
		dirOnly = true
		body = body[:len(body)-1]
	}
	if strings.HasSuffix(body, `\`) {
		body = body[:len(body)-1]
	}

	if !absolute && !strings.Contains(body, "/") {
		if !(strings.HasPrefix(body, "**/") || body == "**") {
			body = "**/" + body
		}
	}
	if strings.HasSuffix(body, "/**") {
		body = body + "/*"
	}

	tokens, err := glob.Parse(body)
	if err != nil {
		return nil, &CompileError{Line: original, Err: err}
	}
	matcher, err := glob.Compile(body, tokens, caseSensitive)
	if err != nil {
		return nil, &CompileError{Line: original, Err: err}
	}

	return &Pattern{
		OriginalText: original,
		Glob:         matcher,
		Negated:      negated,
		DirOnly:      dirOnly,
	}, nil
}

// trimTrailingWhitespace strips trailing spaces/tabs unless the final one
// is escaped with a preceding backslash, in which case the backslash is
// dropped and the whitespace character survives.
func trimTrailingWhitespace(s string) string {
	for len(s) > 0 {
		last := s[len(s)-1]
		if last != ' ' && last != '\t' {
			break
		}
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + string(last)
			break
		}
		s = s[:len(s)-1]
	}
	return s
}
