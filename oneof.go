package parserkit

import (
	"fmt"
	"slices"
)

// oneOf is the n-ary homogeneous ordered choice.
type oneOf[T any] struct {
	label string
	alts  []Parser[T]
}

// OneOf builds an ordered choice over alternatives sharing one result type.
// The first alternative to match wins and its consumed span is kept; a failed
// alternative is rolled back to the starting checkpoint before the next one
// runs. Zero alternatives is legal and always fails without moving the
// cursor. A nil alternative is a programmer error and panics here rather than
// at parse time.
func OneOf[T any](label string, alts ...Parser[T]) Parser[T] {
	for i, alt := range alts {
		if alt == nil {
			panic(fmt.Errorf("parserkit: OneOf(%q): alternative %d: %w", label, i, ErrNilAlternative))
		}
	}

	return &oneOf[T]{label: label, alts: slices.Clone(alts)}
}

func (p *oneOf[T]) Label() string {
	return p.label
}

func (p *oneOf[T]) Parse(pctx *Context, result *Result[T]) bool {
	pctx.Enter(p.label)

	if len(p.alts) == 0 {
		pctx.Leave(p.label, false, nil)
		return false
	}

	cursor := pctx.Cursor
	start := cursor.Position()

	for _, alt := range p.alts {
		if alt.Parse(pctx, result) {
			// The consumed span is the genuine result; no rollback.
			pctx.Leave(p.label, true, result.Value)
			return true
		}

		cursor.Restore(start)
	}

	pctx.Leave(p.label, false, nil)

	return false
}

// Compile builds the choice as a right fold over the alternatives. Each
// step splices alternative i's statements and branches on its success flag;
// the else path restores the starting checkpoint and falls through to the
// fold built so far. All child locals and statements end up hoisted into the
// one enclosing fragment, so the assembled program runs without per-node
// dispatch.
func (p *oneOf[T]) Compile(cc *Compiler) Fragment[T] {
	success := NewSlot[bool](cc)
	out := NewSlot[Result[T]](cc)

	if len(p.alts) == 0 {
		stmt := func(m *Machine) {
			m.Ctx.Enter(p.label)
			success.Set(m, false)
			m.Ctx.Leave(p.label, false, nil)
		}

		return Fragment[T]{Stmts: []Stmt{stmt}, Success: success, Result: out}
	}

	start := NewSlot[Pos](cc)

	// Base case: every alternative failed.
	inner := []Stmt{func(m *Machine) {
		success.Set(m, false)
		m.Ctx.Cursor.Restore(start.Get(m))
	}}

	for i := len(p.alts) - 1; i >= 0; i-- {
		alt := p.alts[i].Compile(cc)
		altSuccess, altResult, next := alt.Success, alt.Result, inner

		branch := func(m *Machine) {
			if altSuccess.Get(m) {
				success.Set(m, true)
				out.Set(m, altResult.Get(m))

				return
			}

			m.Ctx.Cursor.Restore(start.Get(m))

			for _, stmt := range next {
				stmt(m)
			}
		}

		inner = append(slices.Clip(alt.Stmts), branch)
	}

	stmts := make([]Stmt, 0, len(inner)+2)
	stmts = append(stmts, func(m *Machine) {
		m.Ctx.Enter(p.label)
		// Captured exactly once, before any alternative runs.
		start.Set(m, m.Ctx.Cursor.Position())
	})
	stmts = append(stmts, inner...)
	stmts = append(stmts, func(m *Machine) {
		var value any
		if success.Get(m) {
			value = out.Get(m).Value
		}

		m.Ctx.Leave(p.label, success.Get(m), value)
	})

	return Fragment[T]{Stmts: stmts, Success: success, Result: out}
}
