package scanner

import (
	"fmt"
	"slices"

	"github.com/shibukawa/parserkit"
)

// TokenType represents the type of a token. Values are defined by the host
// grammar; the zero value is conventionally EOF or "untyped".
type TokenType int

// Token is one lexed input element for token-stream grammars.
type Token struct {
	Type  TokenType
	Value string
	Pos   parserkit.Pos
}

// TokenCursor is a parserkit.Cursor over a pre-lexed token slice. The
// checkpoint's Index counts tokens; Line and Col mirror the current token's
// source position so diagnostics stay meaningful.
type TokenCursor struct {
	tokens []Token
	pos    parserkit.Pos
}

// NewTokenCursor creates a cursor over tokens. The slice is copied; the
// cursor never mutates it.
func NewTokenCursor(tokens []Token) *TokenCursor {
	tc := &TokenCursor{tokens: slices.Clone(tokens)}
	tc.pos = tc.posAt(0)

	return tc
}

func (c *TokenCursor) posAt(i int) parserkit.Pos {
	if i < len(c.tokens) {
		p := c.tokens[i].Pos
		return parserkit.Pos{Index: i, Line: p.Line, Col: p.Col}
	}

	return parserkit.Pos{Index: i}
}

// Position implements parserkit.Cursor.
func (c *TokenCursor) Position() parserkit.Pos {
	return c.pos
}

// Restore implements parserkit.Cursor.
func (c *TokenCursor) Restore(p parserkit.Pos) {
	c.pos = p
}

// EOF reports whether all tokens are consumed.
func (c *TokenCursor) EOF() bool {
	return c.pos.Index >= len(c.tokens)
}

// Peek returns the current token without advancing.
func (c *TokenCursor) Peek() (Token, bool) {
	if c.EOF() {
		return Token{}, false
	}

	return c.tokens[c.pos.Index], true
}

// Next consumes and returns the current token.
func (c *TokenCursor) Next() (Token, bool) {
	if c.EOF() {
		return Token{}, false
	}

	t := c.tokens[c.pos.Index]
	c.pos = c.posAt(c.pos.Index + 1)

	return t, true
}

// tokenCursor asserts that pctx is driving a *TokenCursor.
func tokenCursor(pctx *parserkit.Context) *TokenCursor {
	tc, ok := pctx.Cursor.(*TokenCursor)
	if !ok {
		panic(fmt.Errorf("scanner: %w: %T", parserkit.ErrCursorType, pctx.Cursor))
	}

	return tc
}

type tokenOfType struct {
	label string
	types []TokenType
}

// TokenOfType builds a parser matching a single token whose type is one of
// types, producing the token.
func TokenOfType(label string, types ...TokenType) parserkit.Parser[Token] {
	return &tokenOfType{label: label, types: slices.Clone(types)}
}

func (p *tokenOfType) Label() string {
	return p.label
}

func (p *tokenOfType) Parse(pctx *parserkit.Context, result *parserkit.Result[Token]) bool {
	pctx.Enter(p.label)

	tc := tokenCursor(pctx)
	start := tc.Position()

	t, ok := tc.Next()
	if !ok || !slices.Contains(p.types, t.Type) {
		pctx.Leave(p.label, false, nil)
		return false
	}

	result.Set(start, tc.Position(), t)
	pctx.Leave(p.label, true, t)

	return true
}

func (p *tokenOfType) Compile(cc *parserkit.Compiler) parserkit.Fragment[Token] {
	return parserkit.LeafFragment[Token](cc, p)
}
