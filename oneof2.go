package parserkit

import (
	"fmt"
	"slices"
)

// oneOf2 is the two-alternative specialization of ordered choice for a pair
// of distinct result types sharing a common type T. It skips the slice walk
// and allocation of the n-ary form.
type oneOf2[A, B, T any] struct {
	label string
	a     Parser[A]
	aToT  func(A) T
	b     Parser[B]
	bToT  func(B) T
}

// OneOf2 builds an ordered two-way choice. aToT and bToT lift each
// alternative's result to the common type; Go generics carry no variance, so
// the upcast is explicit at the point of assignment. Whichever alternative
// actually matches is the one whose start, end and value are reported. Nil
// arguments are programmer errors and panic at construction.
func OneOf2[A, B, T any](label string, a Parser[A], aToT func(A) T, b Parser[B], bToT func(B) T) Parser[T] {
	if a == nil || b == nil {
		panic(fmt.Errorf("parserkit: OneOf2(%q): %w", label, ErrNilAlternative))
	}

	if aToT == nil || bToT == nil {
		panic(fmt.Errorf("parserkit: OneOf2(%q): %w", label, ErrNilConversion))
	}

	return &oneOf2[A, B, T]{label: label, a: a, aToT: aToT, b: b, bToT: bToT}
}

func (p *oneOf2[A, B, T]) Label() string {
	return p.label
}

func (p *oneOf2[A, B, T]) Parse(pctx *Context, result *Result[T]) bool {
	pctx.Enter(p.label)

	cursor := pctx.Cursor
	start := cursor.Position()

	var ra Result[A]
	if p.a.Parse(pctx, &ra) {
		result.Set(ra.Start, ra.End, p.aToT(ra.Value))
		pctx.Leave(p.label, true, result.Value)

		return true
	}

	cursor.Restore(start)

	var rb Result[B]
	if p.b.Parse(pctx, &rb) {
		// Report b's own span and value, never a's stale attempt.
		result.Set(rb.Start, rb.End, p.bToT(rb.Value))
		pctx.Leave(p.label, true, result.Value)

		return true
	}

	cursor.Restore(start)
	pctx.Leave(p.label, false, nil)

	return false
}

// Compile mirrors the interpreted two-way choice: splice a's statements,
// branch on its success, and only then splice b's, with the starting
// checkpoint restored before b runs and again when both fail.
func (p *oneOf2[A, B, T]) Compile(cc *Compiler) Fragment[T] {
	success := NewSlot[bool](cc)
	out := NewSlot[Result[T]](cc)
	start := NewSlot[Pos](cc)

	fa := p.a.Compile(cc)
	fb := p.b.Compile(cc)

	bTail := append(slices.Clip(fb.Stmts), func(m *Machine) {
		if fb.Success.Get(m) {
			rb := fb.Result.Get(m)
			success.Set(m, true)
			out.Set(m, Result[T]{Start: rb.Start, End: rb.End, Value: p.bToT(rb.Value)})

			return
		}

		success.Set(m, false)
		m.Ctx.Cursor.Restore(start.Get(m))
	})

	stmts := make([]Stmt, 0, len(fa.Stmts)+3)
	stmts = append(stmts, func(m *Machine) {
		m.Ctx.Enter(p.label)
		start.Set(m, m.Ctx.Cursor.Position())
	})
	stmts = append(stmts, fa.Stmts...)
	stmts = append(stmts, func(m *Machine) {
		if fa.Success.Get(m) {
			ra := fa.Result.Get(m)
			success.Set(m, true)
			out.Set(m, Result[T]{Start: ra.Start, End: ra.End, Value: p.aToT(ra.Value)})

			return
		}

		m.Ctx.Cursor.Restore(start.Get(m))

		for _, stmt := range bTail {
			stmt(m)
		}
	})
	stmts = append(stmts, func(m *Machine) {
		var value any
		if success.Get(m) {
			value = out.Get(m).Value
		}

		m.Ctx.Leave(p.label, success.Get(m), value)
	})

	return Fragment[T]{Stmts: stmts, Success: success, Result: out}
}
