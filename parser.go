// Package parserkit is the execution core of a parser combinator toolkit:
// immutable parser values that match input either by direct recursive
// interpretation or through an ahead-of-time compiled program assembled from
// spliceable fragments. Both execution modes are observably identical.
package parserkit

import "fmt"

// Pos identifies a point in the input. Combinators treat it as an opaque,
// comparable checkpoint: store it, compare it, hand it back to Cursor.Restore.
type Pos struct {
	Index int
	Line  int
	Col   int
}

// Cursor is the mutable scan state threaded through one parse call. Exactly
// one caller mutates it at a time; no combinator keeps a reference to it
// beyond the call.
type Cursor interface {
	// Position returns a checkpoint for the current scan state.
	Position() Pos
	// Restore rolls all cursor-visible state back to the moment the
	// checkpoint was taken. Partial advances leave no residue.
	Restore(Pos)
}

// EnterHook observes one combinator invocation. The wider framework uses it
// for recursion and left-recursion diagnostics; combinators invoke it and
// never interpret its effect.
type EnterHook func(label string, pos Pos)

// Context carries the state of one top-level parse call: the active cursor,
// the recursion depth, and the diagnostic hooks. It is created per call and
// discarded afterwards, never persisted.
type Context struct {
	Cursor Cursor
	Depth  int

	onEnter EnterHook
	tracer  Tracer
}

// Option configures a Context.
type Option func(*Context)

// WithEnterHook installs the per-invocation entry hook.
func WithEnterHook(hook EnterHook) Option {
	return func(c *Context) {
		c.onEnter = hook
	}
}

// WithTracer installs a tracer observing combinator entry and exit.
func WithTracer(tr Tracer) Option {
	return func(c *Context) {
		c.tracer = tr
	}
}

// NewContext creates the context for one parse call over cursor.
func NewContext(cursor Cursor, opts ...Option) *Context {
	if cursor == nil {
		panic(fmt.Errorf("parserkit: NewContext: %w", ErrNilCursor))
	}

	c := &Context{Cursor: cursor}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Enter reports one combinator invocation to the entry hook and tracer.
func (c *Context) Enter(label string) {
	if c.onEnter == nil && c.tracer == nil {
		c.Depth++
		return
	}

	pos := c.Cursor.Position()
	if c.onEnter != nil {
		c.onEnter(label, pos)
	}

	if c.tracer != nil {
		c.tracer.Enter(label, pos, c.Depth)
	}

	c.Depth++
}

// Leave reports the outcome of the invocation opened by the matching Enter.
// value is the matched value when ok is true, nil otherwise.
func (c *Context) Leave(label string, ok bool, value any) {
	c.Depth--
	if c.tracer != nil {
		c.tracer.Leave(label, c.Cursor.Position(), c.Depth, ok, value)
	}
}

// Result records one successful match. Its fields are well defined only when
// the producing call reported success.
type Result[T any] struct {
	Start Pos
	End   Pos
	Value T
}

// Set overwrites all three fields together. Callers must not rely on fields
// surviving a failed attempt.
func (r *Result[T]) Set(start, end Pos, value T) {
	r.Start = start
	r.End = end
	r.Value = value
}

// Parser is the capability contract every combinator implements. Parser
// values are stateless and immutable after construction; one graph may serve
// concurrent parse calls as long as each call brings its own Context.
type Parser[T any] interface {
	// Label names the parser for tracing and recursion diagnostics.
	Label() string
	// Parse attempts a match at the current cursor position. On success it
	// writes start, end and value through result and returns true, leaving
	// the cursor at the end of the consumed span. On failure it returns
	// false; any partial advance is the composing combinator's to roll back
	// via its own checkpoint.
	Parse(pctx *Context, result *Result[T]) bool
	// Compile returns this parser's behavior as a spliceable fragment.
	// Compile runs nothing by itself; assemble with CompileProgram.
	Compile(cc *Compiler) Fragment[T]
}
