package lower

import (
	"github.com/cwbudde/go-ooc/ast"
	"github.com/cwbudde/go-ooc/internal/classreg"
)

// lowerCtx carries the per-body state needed while lowering one
// constructor body, method body, or the top-level block: which class
// (if any) "self" refers to, which method (if any) governs Return, and
// which local names have already been declared in the emitted C text.
type lowerCtx struct {
	l      *Lowerer
	class  *classreg.Class // nil at top level
	method *classreg.Method
	inCtor bool
	locals map[string]bool
}

func newLowerCtx(l *Lowerer, class *classreg.Class, method *classreg.Method, inCtor bool) *lowerCtx {
	ctx := &lowerCtx{l: l, class: class, method: method, inCtor: inCtor, locals: map[string]bool{}}
	if inCtor {
		for _, p := range class.Params {
			ctx.locals[p.Name] = true
		}
	} else if method != nil {
		for _, p := range method.Params {
			ctx.locals[p.Name] = true
		}
	}
	return ctx
}

// typeRefOf returns n's inferred type name, or Obj if inference left the
// node untyped.
func typeRefOf(n ast.Expr) string {
	if t := n.InferredType(); t != nil {
		return t.TypeName()
	}
	return classreg.Obj
}
