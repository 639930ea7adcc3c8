// Package scanner provides the reference cursor implementations and terminal
// parsers that drive the parserkit combinators: a rune-level Scanner over an
// in-memory string and a TokenCursor over a pre-lexed token slice.
package scanner

import (
	"unicode/utf8"

	"github.com/shibukawa/parserkit"
	"golang.org/x/text/unicode/norm"
)

// Scanner is a rune-level cursor over a string, tracking line and column.
// It implements parserkit.Cursor. All mutable state lives in the Pos
// checkpoint and the input is immutable, so Restore is a total rollback.
type Scanner struct {
	input string
	pos   parserkit.Pos
}

// Options are options for the scanner
type Options struct {
	// NFC normalizes the input to Unicode NFC form before scanning.
	NFC bool
}

// New creates a Scanner over input, starting at line 1, column 1.
func New(input string, options ...Options) *Scanner {
	var opts Options
	if len(options) > 0 {
		opts = options[0]
	}

	if opts.NFC {
		input = norm.NFC.String(input)
	}

	return &Scanner{
		input: input,
		pos:   parserkit.Pos{Index: 0, Line: 1, Col: 1},
	}
}

// Position implements parserkit.Cursor.
func (s *Scanner) Position() parserkit.Pos {
	return s.pos
}

// Restore implements parserkit.Cursor.
func (s *Scanner) Restore(p parserkit.Pos) {
	s.pos = p
}

// EOF reports whether the scanner is at end of input.
func (s *Scanner) EOF() bool {
	return s.pos.Index >= len(s.input)
}

// Peek returns the rune at the current position without advancing.
func (s *Scanner) Peek() (rune, bool) {
	if s.EOF() {
		return 0, false
	}

	r, _ := utf8.DecodeRuneInString(s.input[s.pos.Index:])

	return r, true
}

// Next consumes and returns the rune at the current position.
func (s *Scanner) Next() (rune, bool) {
	if s.EOF() {
		return 0, false
	}

	r, size := utf8.DecodeRuneInString(s.input[s.pos.Index:])
	s.pos.Index += size

	if r == '\n' {
		s.pos.Line++
		s.pos.Col = 1
	} else {
		s.pos.Col++
	}

	return r, true
}

// Rest returns the unscanned remainder of the input.
func (s *Scanner) Rest() string {
	return s.input[s.pos.Index:]
}

// Slice returns the input text between two checkpoints.
func (s *Scanner) Slice(start, end parserkit.Pos) string {
	return s.input[start.Index:end.Index]
}
