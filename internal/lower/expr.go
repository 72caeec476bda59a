package lower

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/go-ooc/ast"
	"github.com/cwbudde/go-ooc/internal/classreg"
)

// exprValue lowers n to a sequence of statements and returns the name of
// the variable (a local, a parameter, or a freshly allocated temp) that
// holds its value. Every intermediate result gets its own temp, mirroring
// the three-address style the rest of the target text uses.
func (ctx *lowerCtx) exprValue(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.IntLit:
		return ctx.declareTemp(classreg.Int, "int_literal(%d)", n.Value)

	case *ast.BoolLit:
		if n.Value {
			return "lit_true"
		}
		return "lit_false"

	case *ast.StringLit:
		return ctx.declareTemp(classreg.String, "str_literal(%s)", cQuote(n.Value))

	case *ast.NothingLit:
		return "none"

	case *ast.This:
		return "self"

	case *ast.Identifier:
		return n.Name

	case *ast.Access:
		return ctx.exprAccess(n)

	case *ast.Call:
		return ctx.exprCall(n)

	case *ast.UnaryOp:
		return ctx.exprUnary(n)

	case *ast.BinaryOp:
		return ctx.exprBinary(n)

	case *ast.BoolOp:
		return ctx.exprBool(n)

	case *ast.TypeAnnotation:
		return ctx.exprValue(n.Target)

	case *ast.Assignment:
		return ctx.exprAssignment(n)
	}
	panic("lower: unhandled expression type")
}

// declareTemp allocates a fresh temp of the given class name, initialized
// by the given C expression, and emits its declaration.
func (ctx *lowerCtx) declareTemp(className, initExprFormat string, args ...any) string {
	name := ctx.l.nextTemp()
	init := fmt.Sprintf(initExprFormat, args...)
	ctx.l.line("\t%s %s = %s;", objTypeName(className), name, init)
	return name
}

// castArgs casts each evaluated argument to its corresponding declared
// parameter type, matching FunctionCall::generate_code and
// FunctionCall::generate_object_call's argument casts.
func castArgs(args []string, params []ast.Param) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if i < len(params) {
			out[i] = fmt.Sprintf("(%s)%s", objTypeName(params[i].Resolved.TypeName()), a)
		} else {
			out[i] = a
		}
	}
	return out
}

// exprAccess lowers a field read directly, and a method call through the
// receiver's dispatch record: obj->clazz->method(cast-receiver,
// cast-args...), with the receiver cast to the method's declared owner
// class and each argument cast to its declared parameter type (spec
// §4.6, grounded in FunctionCall::generate_object_call).
func (ctx *lowerCtx) exprAccess(n *ast.Access) string {
	obj := ctx.exprValue(n.Object)
	resultType := typeRefOf(n)

	if !n.IsMethodCall() {
		name := ctx.l.nextTemp()
		ctx.l.line("\t%s %s = %s->%s;", objTypeName(resultType), name, obj, n.Name)
		return name
	}

	receiverClass := ctx.l.reg.MustLookup(typeRefOf(n.Object))
	owner, ok := receiverClass.ResolveMethodImpl(n.Name)
	if !ok {
		panic("lower: unresolved method " + n.Name + " on " + receiverClass.Name)
	}
	m := owner.Methods[n.Name]

	args := make([]string, 0, len(n.Args))
	for _, a := range n.Args {
		args = append(args, ctx.exprValue(a))
	}
	args = castArgs(args, m.Params)

	name := ctx.l.nextTemp()
	call := fmt.Sprintf("%s->clazz->%s((%s)%s", obj, n.Name, objTypeName(owner.Name), obj)
	for _, a := range args {
		call += ", " + a
	}
	call += ")"
	ctx.l.line("\t%s %s = %s;", objTypeName(resultType), name, call)
	return name
}

// exprCall lowers a constructor call, casting each argument to the
// class's declared parameter type (spec §4.6, grounded in
// FunctionCall::generate_code).
func (ctx *lowerCtx) exprCall(n *ast.Call) string {
	cls := ctx.l.reg.MustLookup(n.Name)
	args := make([]string, 0, len(n.Args))
	for _, a := range n.Args {
		args = append(args, ctx.exprValue(a))
	}
	args = castArgs(args, cls.Params)

	name := ctx.l.nextTemp()
	call := "new_" + n.Name + "(" + strings.Join(args, ", ") + ")"
	ctx.l.line("\t%s %s = %s;", objTypeName(n.Name), name, call)
	return name
}

// exprUnary lowers negation as the spec'd desugaring `0 - right`: a
// synthetic zero literal dispatched through Int's MINUS method, with the
// same receiver/argument casts as any other method dispatch.
func (ctx *lowerCtx) exprUnary(n *ast.UnaryOp) string {
	zero := ctx.declareTemp(classreg.Int, "int_literal(0)")
	right := ctx.exprValue(n.Right)

	intC := ctx.l.reg.MustLookup(classreg.Int)
	owner, _ := intC.ResolveMethodImpl("MINUS")
	m := owner.Methods["MINUS"]

	name := ctx.l.nextTemp()
	call := fmt.Sprintf("%s->clazz->MINUS((%s)%s, (%s)%s)",
		zero, objTypeName(owner.Name), zero, objTypeName(m.Params[0].Resolved.TypeName()), right)
	ctx.l.line("\t%s %s = %s;", objTypeName(typeRefOf(n)), name, call)
	return name
}

// exprBinary dispatches to the operator's method on the left operand's
// class, per the desugaring recorded in ast.OpMethod, casting the
// receiver and the argument to their declared types.
func (ctx *lowerCtx) exprBinary(n *ast.BinaryOp) string {
	left := ctx.exprValue(n.Left)
	right := ctx.exprValue(n.Right)
	method := ast.OpMethod[n.Op]

	leftClass := ctx.l.reg.MustLookup(typeRefOf(n.Left))
	owner, ok := leftClass.ResolveMethodImpl(method)
	if !ok {
		panic("lower: unresolved operator method " + method + " on " + leftClass.Name)
	}
	m := owner.Methods[method]

	name := ctx.l.nextTemp()
	call := fmt.Sprintf("%s->clazz->%s((%s)%s, (%s)%s)",
		left, method, objTypeName(owner.Name), left, objTypeName(m.Params[0].Resolved.TypeName()), right)
	ctx.l.line("\t%s %s = %s;", objTypeName(typeRefOf(n)), name, call)
	return name
}

// exprBool lowers the short-circuit boolean operators into branches
// rather than a dispatched call, using bool_skip_<n>/bool_done_<m> labels.
// Boolean values are the singleton tokens lit_true/lit_false (spec §6),
// so truth tests compare against lit_true by pointer rather than reading
// a field off the operand.
func (ctx *lowerCtx) exprBool(n *ast.BoolOp) string {
	switch n.Op {
	case ast.BoolNot:
		v := ctx.exprValue(n.Left)
		name := ctx.l.nextTemp()
		ctx.l.line("\t%s %s = (%s == lit_false) ? lit_true : lit_false;", objTypeName(classreg.Boolean), name, v)
		return name

	case ast.BoolAnd:
		return ctx.exprShortCircuit(n, false)

	case ast.BoolOr:
		return ctx.exprShortCircuit(n, true)
	}
	panic("lower: unknown boolean operator " + n.Op)
}

// exprShortCircuit lowers `and`/`or`: shortOn is the left-hand value
// (true for `or`, false for `and`) that skips evaluating the right side.
func (ctx *lowerCtx) exprShortCircuit(n *ast.BoolOp, shortOn bool) string {
	left := ctx.exprValue(n.Left)
	name := ctx.l.nextTemp()
	ctx.l.line("\t%s %s;", objTypeName(classreg.Boolean), name)

	skip := ctx.l.nextLabel("bool_skip")
	done := ctx.l.nextLabel("bool_done")

	cmp := "!="
	if shortOn {
		cmp = "=="
	}
	ctx.l.line("\tif (%s %s lit_true) goto %s;", left, cmp, skip)
	right := ctx.exprValue(n.Right)
	ctx.l.line("\t%s = %s;", name, right)
	ctx.l.line("\tgoto %s;", done)
	ctx.l.line("%s:", skip)
	ctx.l.line("\t%s = %s;", name, boolToken(shortOn))
	ctx.l.line("%s:;", done)
	return name
}

func boolToken(b bool) string {
	if b {
		return "lit_true"
	}
	return "lit_false"
}

// exprAssignment lowers an assignment used as an expression (e.g. nested
// inside a call argument); the common case of a bare assignment statement
// goes through the same path from emitStmt's ExprStmt case. The RHS is
// cast to the LHS's declared/inferred type, matching Assn::generate_code.
func (ctx *lowerCtx) exprAssignment(n *ast.Assignment) string {
	rhs := ctx.exprValue(n.RHS)
	target := n.LHS.Target
	lhsType := objTypeName(typeRefOf(n.LHS))

	if access, ok := target.(*ast.Access); ok {
		obj := ctx.exprValue(access.Object)
		ctx.l.line("\t%s->%s = (%s)%s;", obj, access.Name, lhsType, rhs)
		return rhs
	}

	ident := target.(*ast.Identifier)
	if !ctx.locals[ident.Name] {
		ctx.locals[ident.Name] = true
		ctx.l.line("\t%s %s = (%s)%s;", lhsType, ident.Name, lhsType, rhs)
	} else {
		ctx.l.line("\t%s = (%s)%s;", ident.Name, lhsType, rhs)
	}
	return ident.Name
}

func cQuote(s string) string { return strconv.Quote(s) }
