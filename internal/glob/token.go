// Package glob implements the extended glob grammar used throughout this
// module: a pattern compiles to a token sequence (Parse), and a token
// sequence compiles to an efficient Matcher (Compile) — either a literal
// string comparison or a generated regular expression.
package glob

// Kind tags the variant a Token holds.
type Kind int

const (
	// Literal holds a single literal rune in Token.Lit.
	Literal Kind = iota
	// Any matches exactly one non-separator character ('?').
	Any
	// ZeroOrMore matches zero or more non-separator characters ('*').
	ZeroOrMore
	// RecursivePrefix matches a leading "**/" (or bare "**" at start).
	RecursivePrefix
	// RecursiveSuffix matches a trailing "/**".
	RecursiveSuffix
	// RecursiveMiddle matches an internal "/**/".
	RecursiveMiddle
	// CharClass matches one character against a bracketed class in
	// Token.Negated / Token.Ranges.
	CharClass
)

// Range is an inclusive character range (start <= end).
type Range struct {
	Lo, Hi rune
}

// Token is a single lexical unit of a compiled glob pattern.
type Token struct {
	Kind    Kind
	Lit     rune    // valid when Kind == Literal
	Negated bool    // valid when Kind == CharClass
	Ranges  []Range // valid when Kind == CharClass
}
