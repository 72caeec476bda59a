package lower

import (
	"github.com/cwbudde/go-ooc/ast"
	"github.com/cwbudde/go-ooc/internal/classreg"
)

// emitBlock lowers every statement of b in order.
func (ctx *lowerCtx) emitBlock(b *ast.Block) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		ctx.emitStmt(s)
	}
}

func (ctx *lowerCtx) emitStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Block:
		ctx.emitBlock(n)

	case *ast.ExprStmt:
		ctx.exprValue(n.X)

	case *ast.If:
		ctx.emitIf(n)

	case *ast.While:
		ctx.emitWhile(n)

	case *ast.Return:
		ctx.emitReturn(n)

	case *ast.Typecase:
		ctx.emitTypecase(n)

	default:
		panic("lower: unhandled statement type")
	}
}

// emitIf lowers a conditional into a two-label branch, else_<n> and
// end_if_<m>, each label taking its own counter value. No if_ label is
// emitted: the true branch directly follows the condition test.
func (ctx *lowerCtx) emitIf(n *ast.If) {
	elseLabel := ctx.l.nextLabel("else")
	endLabel := ctx.l.nextLabel("end_if")

	cond := ctx.exprValue(n.Cond)
	ctx.l.line("\tif (%s != lit_true) goto %s;", cond, elseLabel)
	ctx.emitBlock(n.True)
	ctx.l.line("\tgoto %s;", endLabel)
	ctx.l.line("%s:", elseLabel)
	ctx.emitBlock(n.False)
	ctx.l.line("%s:;", endLabel)
}

// emitWhile lowers a pre-tested loop into test_cond_<n> and end_while_<m>
// labels: the condition is tested at test_cond, and the body ends with a
// jump back to it. No loop_again label is emitted.
func (ctx *lowerCtx) emitWhile(n *ast.While) {
	testLabel := ctx.l.nextLabel("test_cond")
	endLabel := ctx.l.nextLabel("end_while")

	ctx.l.line("%s:", testLabel)
	cond := ctx.exprValue(n.Cond)
	ctx.l.line("\tif (%s != lit_true) goto %s;", cond, endLabel)
	ctx.emitBlock(n.Body)
	ctx.l.line("\tgoto %s;", testLabel)
	ctx.l.line("%s:;", endLabel)
}

// emitReturn lowers a return statement, casting its result to the
// declared return type (spec §4.6, grounded in the cast Assn and
// FunctionCall emit elsewhere in the original): a method's declared
// type, Nothing for the top-level block, and the owning class inside a
// constructor.
func (ctx *lowerCtx) emitReturn(n *ast.Return) {
	retType := classreg.Nothing
	switch {
	case ctx.inCtor:
		retType = ctx.class.Name
	case ctx.method != nil && ctx.method.ReturnType != nil:
		retType = ctx.method.ReturnType.TypeName()
	}
	if n.Value == nil {
		ctx.l.line("\treturn (%s)none;", objTypeName(retType))
		return
	}
	v := ctx.exprValue(n.Value)
	ctx.l.line("\treturn (%s)%s;", objTypeName(retType), v)
}

// emitTypecase lowers a typecase as a chain of runtime subtype checks:
// is_subtype walks the scrutinee's clazz record's super_ chain looking
// for the alternative's dispatch record (spec §4.6, grounded in
// Typecase::generate_code). A failed check falls through to the next
// alternative's label; the last alternative's failure reaches the
// typecase's end directly, with no error raised.
func (ctx *lowerCtx) emitTypecase(n *ast.Typecase) {
	scrutinee := ctx.exprValue(n.Scrutinee)
	endLabel := ctx.l.nextLabel("end_typecase")

	for _, alt := range n.Alts {
		nextLabel := ctx.l.nextLabel("typecase_next")
		altClass := ctx.l.reg.MustLookup(alt.TypeName)
		ctx.l.line("\tif (!is_subtype((%s)%s->clazz, (%s)&%s)) goto %s;",
			classTypeName(classreg.Obj), scrutinee, classTypeName(classreg.Obj), dispatchStructName(altClass), nextLabel)
		ctx.l.line("\t%s %s = (%s)%s;", objTypeName(alt.TypeName), alt.Var, objTypeName(alt.TypeName), scrutinee)
		ctx.locals[alt.Var] = true
		ctx.emitBlock(alt.Block)
		ctx.l.line("\tgoto %s;", endLabel)
		ctx.l.line("%s:;", nextLabel)
	}
	ctx.l.line("%s:;", endLabel)
}
