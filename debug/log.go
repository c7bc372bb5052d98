package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/treejson/tree"

	"github.com/fatih/color"
)

var (
	out    io.Writer = os.Stderr
	prefix           = color.New(color.FgMagenta).SprintFunc()
)

// Logf writes a trace line to stderr. Values and nodes among args are
// rendered in their literal form.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case tree.Value:
			args[i] = x.Literal()
		case *tree.Node:
			args[i] = fmt.Sprintf("%q=%s (%d children)", x.Key, x.Value.Literal(), len(x.Children))
		}
	}
	fmt.Fprint(out, prefix("treejson: "))
	fmt.Fprintf(out, msg, args...)
}
