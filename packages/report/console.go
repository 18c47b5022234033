package report

import (
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/assertive/packages/assert"
	"github.com/abdul-hamid-achik/assertive/packages/stringify"
	"github.com/fatih/color"
)

type Formatter struct {
	writer  io.Writer
	noColor bool
}

type Option func(*Formatter)

func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) Option {
	return func(f *Formatter) {
		f.writer = w
	}
}

func WithNoColor(nc bool) Option {
	return func(f *Formatter) {
		f.noColor = nc
	}
}

// Format writes a bounded rendering of an assertion failure.
func (f *Formatter) Format(e *assert.Error) {
	red := color.New(color.FgRed).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(f.writer, "%s %s\n", red("✗"), bold(e.Message))
	fmt.Fprintf(f.writer, "  Operator: %s\n", cyan(e.Operator))
	fmt.Fprintf(f.writer, "  Expected: %s\n", stringify.Stringify(e.Expected))
	fmt.Fprintf(f.writer, "  Actual:   %s\n", stringify.Stringify(e.Actual))
	if e.File != "" {
		fmt.Fprintf(f.writer, "  At:       %s:%d\n", e.File, e.Line)
	}
}

// FormatError writes any error; assertion failures get the structured
// rendering, everything else a single line.
func (f *Formatter) FormatError(err error) {
	if e, ok := err.(*assert.Error); ok {
		f.Format(e)
		return
	}
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}
