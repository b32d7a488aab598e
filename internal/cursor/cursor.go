// Package cursor provides a bidirectional single-rune cursor over a string,
// the shared scanning primitive used by every hand-rolled parser in this
// module (glob patterns, ignore-file lines, config files).
package cursor

// EOF is the sentinel rune returned once the cursor runs out of input in
// either direction. It is negative so it can never collide with a valid
// Unicode code point.
const EOF rune = -1

// Cursor walks a string one rune at a time, tracking how many runes have
// been consumed by Next so Prev/PeekPrev can look backwards.
type Cursor struct {
	runes []rune
	pos   int // number of runes consumed so far
}

// New returns a Cursor positioned at the start of s.
func New(s string) *Cursor {
	return &Cursor{runes: []rune(s)}
}

// HasNext reports whether Next would return a real rune.
func (c *Cursor) HasNext() bool {
	return c.pos < len(c.runes)
}

// HasPrev reports whether PeekPrev would return a real rune.
func (c *Cursor) HasPrev() bool {
	return c.pos >= 2
}

// Next returns the current rune and advances the cursor, or EOF if no input
// remains.
func (c *Cursor) Next() rune {
	if !c.HasNext() {
		return EOF
	}
	r := c.runes[c.pos]
	c.pos++
	return r
}

// PeekNext returns the rune Next would return, without advancing.
func (c *Cursor) PeekNext() rune {
	if !c.HasNext() {
		return EOF
	}
	return c.runes[c.pos]
}

// PeekPrev returns the rune two positions behind the cursor's current
// position — that is, the rune immediately preceding the one most recently
// consumed by Next. This offset (two, not one) is deliberate: after Next has
// consumed a character, the character "one back" is the one just consumed,
// and callers scanning for the character that preceded it need the one
// before that.
func (c *Cursor) PeekPrev() rune {
	if c.pos < 2 {
		return EOF
	}
	return c.runes[c.pos-2]
}

// Prev rewinds the cursor by one rune (undoing the last Next) and returns
// the rune two positions behind the new position, using the same offset as
// PeekPrev.
func (c *Cursor) Prev() rune {
	if c.pos == 0 {
		return EOF
	}
	c.pos--
	return c.PeekPrev()
}

// Reset returns the cursor to position zero.
func (c *Cursor) Reset() {
	c.pos = 0
}

// Pos returns the number of runes consumed so far, for callers that report
// error offsets.
func (c *Cursor) Pos() int {
	return c.pos
}
