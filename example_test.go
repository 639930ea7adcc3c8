package parserkit_test

import (
	"fmt"

	"github.com/shibukawa/parserkit"
	"github.com/shibukawa/parserkit/scanner"
)

func ExampleOneOf() {
	keyword := parserkit.OneOf("keyword",
		scanner.Literal("select"),
		scanner.Literal("insert"),
		scanner.Literal("update"),
	)

	sc := scanner.New("insert into users")
	pctx := parserkit.NewContext(sc)

	var result parserkit.Result[string]

	if keyword.Parse(pctx, &result) {
		fmt.Printf("%s (%d..%d)\n", result.Value, result.Start.Index, result.End.Index)
	}
	// Output: insert (0..6)
}

func ExampleCompileProgram() {
	keyword := parserkit.OneOf("keyword",
		scanner.Literal("select"),
		scanner.Literal("insert"),
	)

	// Composition cost is paid once; the program is reusable.
	prog := parserkit.CompileProgram(keyword)

	for _, input := range []string{"select 1", "insert 2", "delete 3"} {
		sc := scanner.New(input)
		pctx := parserkit.NewContext(sc)

		var result parserkit.Result[string]

		if prog.Run(pctx, &result) {
			fmt.Println("matched:", result.Value)
		} else {
			fmt.Println("no match")
		}
	}
	// Output:
	// matched: select
	// matched: insert
	// no match
}
