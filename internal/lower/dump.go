package lower

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-ooc/ast"
	"github.com/cwbudde/go-ooc/internal/classreg"
)

// Dump renders the same lowered program as Emit but with a line-number
// gutter, mirroring the teacher's bytecode disassembler — a debugging aid
// with no effect on the program text itself.
func Dump(reg *classreg.Registry, topLevel *ast.Block) string {
	text := Emit(reg, topLevel)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	var b strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&b, "%4d | %s\n", i+1, line)
	}
	return b.String()
}
