package parserkit

import (
	"io"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"
)

// Tracer observes combinator entry and exit during one parse call.
type Tracer interface {
	// Enter is called when a combinator starts at pos, nested depth levels deep.
	Enter(label string, pos Pos, depth int)
	// Leave is called when the combinator finishes. value is the matched
	// value when ok is true, nil otherwise.
	Leave(label string, pos Pos, depth int, ok bool, value any)
}

var (
	traceEnterColor = color.New(color.FgCyan)
	traceMatchColor = color.New(color.FgGreen)
	traceFailColor  = color.New(color.FgYellow)
)

// ColorTracer writes an indented, colorized trace of one parse call. Matched
// values are rendered as Go syntax.
type ColorTracer struct {
	w io.Writer
}

// NewColorTracer creates a tracer writing to w.
func NewColorTracer(w io.Writer) *ColorTracer {
	return &ColorTracer{w: w}
}

func (t *ColorTracer) Enter(label string, pos Pos, depth int) {
	indent := strings.Repeat("  ", depth)
	traceEnterColor.Fprintf(t.w, "%s? %s @%d:%d\n", indent, label, pos.Line, pos.Col)
}

func (t *ColorTracer) Leave(label string, pos Pos, depth int, ok bool, value any) {
	indent := strings.Repeat("  ", depth)
	if ok {
		traceMatchColor.Fprintf(t.w, "%s= %s @%d:%d -> %s\n", indent, label, pos.Line, pos.Col, repr.String(value))
	} else {
		traceFailColor.Fprintf(t.w, "%sx %s @%d:%d\n", indent, label, pos.Line, pos.Col)
	}
}
