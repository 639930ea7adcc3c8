package scanner

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/shibukawa/parserkit"
)

// Sentinel errors
var (
	ErrNilPredicate = errors.New("nil rune predicate")
)

// textCursor asserts that pctx is driving a *Scanner. Wiring a text terminal
// to another cursor kind is a programmer error, reported at the first parse.
func textCursor(pctx *parserkit.Context) *Scanner {
	sc, ok := pctx.Cursor.(*Scanner)
	if !ok {
		panic(fmt.Errorf("scanner: %w: %T", parserkit.ErrCursorType, pctx.Cursor))
	}

	return sc
}

type literal struct {
	label string
	text  string
}

// Literal builds a parser matching text exactly, producing the matched
// string. On a mismatch it stops where the mismatch happened; rollback is the
// composing combinator's job.
func Literal(text string) parserkit.Parser[string] {
	return &literal{label: fmt.Sprintf("literal(%q)", text), text: text}
}

func (p *literal) Label() string {
	return p.label
}

func (p *literal) Parse(pctx *parserkit.Context, result *parserkit.Result[string]) bool {
	pctx.Enter(p.label)

	sc := textCursor(pctx)
	start := sc.Position()

	for _, want := range p.text {
		got, ok := sc.Next()
		if !ok || got != want {
			pctx.Leave(p.label, false, nil)
			return false
		}
	}

	result.Set(start, sc.Position(), p.text)
	pctx.Leave(p.label, true, p.text)

	return true
}

func (p *literal) Compile(cc *parserkit.Compiler) parserkit.Fragment[string] {
	return parserkit.LeafFragment[string](cc, p)
}

type runeRun struct {
	label string
	pred  func(rune) bool
}

// RuneWhile builds a parser matching one or more consecutive runes for which
// pred holds, producing the matched text.
func RuneWhile(label string, pred func(rune) bool) parserkit.Parser[string] {
	if pred == nil {
		panic(fmt.Errorf("scanner: RuneWhile(%q): %w", label, ErrNilPredicate))
	}

	return &runeRun{label: label, pred: pred}
}

func (p *runeRun) Label() string {
	return p.label
}

func (p *runeRun) Parse(pctx *parserkit.Context, result *parserkit.Result[string]) bool {
	pctx.Enter(p.label)

	sc := textCursor(pctx)
	start := sc.Position()
	count := 0

	for {
		r, ok := sc.Peek()
		if !ok || !p.pred(r) {
			break
		}

		sc.Next()
		count++
	}

	if count == 0 {
		pctx.Leave(p.label, false, nil)
		return false
	}

	end := sc.Position()
	text := sc.Slice(start, end)
	result.Set(start, end, text)
	pctx.Leave(p.label, true, text)

	return true
}

func (p *runeRun) Compile(cc *parserkit.Compiler) parserkit.Fragment[string] {
	return parserkit.LeafFragment[string](cc, p)
}

// DigitRun matches a run of decimal digits.
func DigitRun() parserkit.Parser[string] {
	return RuneWhile("digits", unicode.IsDigit)
}

// LetterRun matches a run of letters.
func LetterRun() parserkit.Parser[string] {
	return RuneWhile("letters", unicode.IsLetter)
}
