package glob

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher is a compiled glob: either a literal string comparison or a
// generated regular expression, chosen by Compile per §4.3.
type Matcher struct {
	pattern string
	literal string // valid when re == nil
	re      *regexp.Regexp
}

// String returns the original pattern text the Matcher was compiled from.
func (m *Matcher) String() string {
	return m.pattern
}

// Match reports whether path (already using '/' separators) satisfies the
// compiled glob.
func (m *Matcher) Match(path string) bool {
	if m.re == nil {
		return path == m.literal
	}
	return m.re.MatchString(path)
}

// IsLiteral reports whether this Matcher took the literal-string fast path.
func (m *Matcher) IsLiteral() bool {
	return m.re == nil
}

// Compile converts a token sequence into a Matcher. caseSensitive selects
// between the literal fast path and a case-insensitive regex.
func Compile(pattern string, tokens []Token, caseSensitive bool) (*Matcher, error) {
	if caseSensitive && isAllLiteral(tokens) {
		lit := joinLiterals(tokens)
		if lit != "" {
			return &Matcher{pattern: pattern, literal: lit}, nil
		}
	}

	expr := buildRegex(tokens, caseSensitive)
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCouldNotCompileRegex, err)
	}
	return &Matcher{pattern: pattern, re: re}, nil
}

func isAllLiteral(tokens []Token) bool {
	for _, t := range tokens {
		if t.Kind != Literal {
			return false
		}
	}
	return true
}

func joinLiterals(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteRune(t.Lit)
	}
	return b.String()
}

// buildRegex renders tokens into an RE2 expression per the translation
// table in §4.3. Go's regexp (RE2) has no equivalent of the Rust-regex
// "(?-u)" Unicode-disable flag, so that prefix is omitted. Go matches by
// rune, and its "(?i)" applies Unicode simple case folding, so
// case-insensitive matching is not limited to ASCII letters (for example
// "k" also matches the Kelvin sign U+212A). Non-printable escapes use
// Go's "\x{hhhh}" code-point syntax rather than the design's "\u{hhhh}",
// since the latter has no meaning to Go's regexp/syntax parser.
func buildRegex(tokens []Token, caseSensitive bool) string {
	var b strings.Builder
	if !caseSensitive {
		b.WriteString("(?i)")
	}
	b.WriteByte('^')

	if len(tokens) == 1 && tokens[0].Kind == RecursivePrefix {
		b.WriteString(".*")
		b.WriteByte('$')
		return b.String()
	}

	for _, t := range tokens {
		switch t.Kind {
		case Literal:
			b.WriteString(escapeRune(t.Lit))
		case Any:
			b.WriteString(`[^/]`)
		case ZeroOrMore:
			b.WriteString(`[^/]*`)
		case RecursivePrefix:
			b.WriteString(`(?:/?|.*/)`)
		case RecursiveSuffix:
			b.WriteString(`/.*`)
		case RecursiveMiddle:
			b.WriteString(`(?:/|/.*/)`)
		case CharClass:
			b.WriteString(buildCharClass(t))
		}
	}

	b.WriteByte('$')
	return b.String()
}

const regexMeta = `^$.|?*+()[]{}`

func escapeRune(r rune) string {
	if strings.ContainsRune(regexMeta, r) {
		return `\` + string(r)
	}
	if r < 0x20 || r > 0x7E {
		return fmt.Sprintf(`\x{%04x}`, r)
	}
	return string(r)
}

// escapeInClass escapes a rune for use inside a "[...]" regex class, where
// only a narrower set of characters are special.
func escapeInClass(r rune) string {
	switch r {
	case '^', '[', ']', '\\', '-':
		return `\` + string(r)
	}
	if r < 0x20 || r > 0x7E {
		return fmt.Sprintf(`\x{%04x}`, r)
	}
	return string(r)
}

func buildCharClass(t Token) string {
	var b strings.Builder
	b.WriteByte('[')
	if t.Negated {
		b.WriteByte('^')
	}
	for _, rg := range t.Ranges {
		if rg.Lo == rg.Hi {
			b.WriteString(escapeInClass(rg.Lo))
		} else {
			b.WriteString(escapeInClass(rg.Lo))
			b.WriteByte('-')
			b.WriteString(escapeInClass(rg.Hi))
		}
	}
	b.WriteByte(']')
	return b.String()
}
