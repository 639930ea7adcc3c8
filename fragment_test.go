package parserkit_test

import (
	"sync"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/parserkit"
	"github.com/shibukawa/parserkit/scanner"
)

// outcome is the full observable tuple of one parse attempt.
type outcome struct {
	ok     bool
	start  parserkit.Pos
	end    parserkit.Pos
	value  string
	cursor parserkit.Pos
}

func runInterpreted(p parserkit.Parser[string], input string) outcome {
	sc := scanner.New(input)
	pctx := parserkit.NewContext(sc)

	var result parserkit.Result[string]

	ok := p.Parse(pctx, &result)
	o := outcome{ok: ok, cursor: sc.Position()}

	if ok {
		o.start = result.Start
		o.end = result.End
		o.value = result.Value
	}

	return o
}

func runCompiled(prog *parserkit.Program[string], input string) outcome {
	sc := scanner.New(input)
	pctx := parserkit.NewContext(sc)

	var result parserkit.Result[string]

	ok := prog.Run(pctx, &result)
	o := outcome{ok: ok, cursor: sc.Position()}

	if ok {
		o.start = result.Start
		o.end = result.End
		o.value = result.Value
	}

	return o
}

func TestCompiledMatchesInterpreted(t *testing.T) {
	parsers := map[string]parserkit.Parser[string]{
		"two literals": parserkit.OneOf("choice",
			scanner.Literal("foo"), scanner.Literal("bar")),
		"digit or letter runs": parserkit.OneOf("choice",
			scanner.DigitRun(), scanner.LetterRun()),
		"partial overlap": parserkit.OneOf("choice",
			scanner.Literal("bax"), scanner.Literal("bar"), scanner.Literal("b")),
		"empty": parserkit.OneOf[string]("choice"),
		"nested": parserkit.OneOf("outer",
			parserkit.OneOf("inner", scanner.Literal("aa"), scanner.Literal("ab")),
			scanner.Literal("b")),
		"single": parserkit.OneOf("choice", scanner.Literal("x")),
	}

	inputs := []string{"", "foo", "bar", "barrel", "123abc", "abc123", "b", "ab", "aab", "x", "quux", "日本語abc"}

	for name, p := range parsers {
		prog := parserkit.CompileProgram(p)

		t.Run(name, func(t *testing.T) {
			for _, input := range inputs {
				want := runInterpreted(p, input)
				got := runCompiled(prog, input)
				assert.Equal(t, want, got, "input=%q", input)
			}
		})
	}
}

func TestCompiledEmptyChoice(t *testing.T) {
	prog := parserkit.CompileProgram(parserkit.OneOf[string]("empty"))

	sc := scanner.New("anything")
	sc.Next()
	before := sc.Position()
	pctx := parserkit.NewContext(sc)

	var result parserkit.Result[string]

	ok := prog.Run(pctx, &result)
	assert.False(t, ok)
	assert.Equal(t, before, sc.Position())
}

func TestLeafFragment(t *testing.T) {
	cc := parserkit.NewCompiler()
	frag := parserkit.LeafFragment[string](cc, scanner.Literal("hi"))
	assert.True(t, len(frag.Stmts) == 1)

	prog := parserkit.CompileProgram[string](scanner.Literal("hi"))

	sc := scanner.New("hi there")
	pctx := parserkit.NewContext(sc)

	var result parserkit.Result[string]

	ok := prog.Run(pctx, &result)
	assert.True(t, ok)
	assert.Equal(t, "hi", result.Value)
	assert.Equal(t, 2, sc.Position().Index)
}

func TestProgramConcurrentReuse(t *testing.T) {
	prog := parserkit.CompileProgram(parserkit.OneOf("choice",
		scanner.Literal("foo"), scanner.Literal("bar")))

	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for _, input := range []string{"foo", "bar", "baz"} {
				sc := scanner.New(input)
				pctx := parserkit.NewContext(sc)

				var result parserkit.Result[string]

				ok := prog.Run(pctx, &result)
				if input == "baz" {
					if ok {
						t.Error("expected failure for baz")
					}
				} else if !ok || result.Value != input {
					t.Errorf("expected match for %q", input)
				}
			}
		}()
	}

	wg.Wait()
}

func TestCompiledEntryHook(t *testing.T) {
	var entered []string

	hook := func(label string, pos parserkit.Pos) {
		entered = append(entered, label)
	}

	prog := parserkit.CompileProgram(parserkit.OneOf("choice",
		scanner.Literal("foo"), scanner.Literal("bar")))

	sc := scanner.New("bar")
	pctx := parserkit.NewContext(sc, parserkit.WithEnterHook(hook))

	var result parserkit.Result[string]

	ok := prog.Run(pctx, &result)
	assert.True(t, ok)
	// Same invocation stream as the interpreted path.
	assert.Equal(t, []string{"choice", `literal("foo")`, `literal("bar")`}, entered)
}

var benchChoice = parserkit.OneOf("choice",
	scanner.Literal("alpha"),
	scanner.Literal("beta"),
	scanner.Literal("gamma"),
	scanner.Literal("delta"),
)

func BenchmarkOneOfInterpreted(b *testing.B) {
	var result parserkit.Result[string]

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		sc := scanner.New("delta")
		pctx := parserkit.NewContext(sc)

		if !benchChoice.Parse(pctx, &result) {
			b.Fatal("no match")
		}
	}
}

func BenchmarkOneOfCompiled(b *testing.B) {
	prog := parserkit.CompileProgram(benchChoice)

	var result parserkit.Result[string]

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		sc := scanner.New("delta")
		pctx := parserkit.NewContext(sc)

		if !prog.Run(pctx, &result) {
			b.Fatal("no match")
		}
	}
}
