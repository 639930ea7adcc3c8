package parserkit

// Compiler allocates frame slots while a parser graph is being compiled. One
// Compiler underlies one assembled program; slots from different compilations
// are not interchangeable.
type Compiler struct {
	slots int
}

// NewCompiler creates an empty slot allocator.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// FrameLen reports how many locals the compiled program materializes per
// execution.
func (cc *Compiler) FrameLen() int {
	return cc.slots
}

// Slot is a typed local introduced during compilation. Every execution of the
// assembled program gets a fresh cell per slot, which is what keeps compiled
// programs reentrant across concurrent runs.
type Slot[T any] struct {
	index int
}

// NewSlot allocates a local in cc's frame layout.
func NewSlot[T any](cc *Compiler) Slot[T] {
	s := Slot[T]{index: cc.slots}
	cc.slots++

	return s
}

// Get reads the slot from the current frame. An unwritten slot reads as T's
// zero value.
func (s Slot[T]) Get(m *Machine) T {
	v, _ := m.frame[s.index].(T)
	return v
}

// Set writes the slot in the current frame.
func (s Slot[T]) Set(m *Machine, v T) {
	m.frame[s.index] = v
}

// Machine is the per-execution state of a compiled program: the parse context
// plus one fresh frame cell per allocated slot.
type Machine struct {
	Ctx   *Context
	frame []any
}

// Stmt is one compiled statement. Fragments splice statements in program
// order; nothing runs until the assembled program does.
type Stmt func(m *Machine)

// Fragment is the composable compiled form of one parser: the statements to
// splice into the enclosing fragment, a success flag, and the result holder.
// The holder carries the full start/end/value record so compiled execution
// reports spans exactly like the interpreted path. It is valid only while
// Success reads true; composing code must not look at it otherwise.
type Fragment[T any] struct {
	Stmts   []Stmt
	Success Slot[bool]
	Result  Slot[Result[T]]
}

// LeafFragment wraps an arbitrary parser as a single-statement fragment so it
// can take part in composition without a bespoke compiled form.
func LeafFragment[T any](cc *Compiler, p Parser[T]) Fragment[T] {
	success := NewSlot[bool](cc)
	out := NewSlot[Result[T]](cc)

	stmt := func(m *Machine) {
		var r Result[T]

		ok := p.Parse(m.Ctx, &r)
		success.Set(m, ok)

		if ok {
			out.Set(m, r)
		}
	}

	return Fragment[T]{Stmts: []Stmt{stmt}, Success: success, Result: out}
}

// Program is an assembled, reusable compiled parser. Composition cost is paid
// once in CompileProgram; Run pays only execution cost.
type Program[T any] struct {
	stmts    []Stmt
	frameLen int
	success  Slot[bool]
	result   Slot[Result[T]]
}

// CompileProgram compiles p once into a standalone executable unit. The
// returned program is immutable and safe for concurrent Run calls, each call
// bringing its own Context.
func CompileProgram[T any](p Parser[T]) *Program[T] {
	cc := NewCompiler()
	f := p.Compile(cc)

	return &Program[T]{
		stmts:    f.Stmts,
		frameLen: cc.FrameLen(),
		success:  f.Success,
		result:   f.Result,
	}
}

// Run executes the program against pctx's cursor. The outcome is identical to
// calling Parse on the parser the program was compiled from.
func (pr *Program[T]) Run(pctx *Context, result *Result[T]) bool {
	m := &Machine{Ctx: pctx, frame: make([]any, pr.frameLen)}
	for _, stmt := range pr.stmts {
		stmt(m)
	}

	if !pr.success.Get(m) {
		return false
	}

	r := pr.result.Get(m)
	result.Set(r.Start, r.End, r.Value)

	return true
}
