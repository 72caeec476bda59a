package typeinfer

import (
	"github.com/cwbudde/go-ooc/ast"
	"github.com/cwbudde/go-ooc/internal/classreg"
	"github.com/cwbudde/go-ooc/internal/errdiag"
	"github.com/cwbudde/go-ooc/internal/symtab"
)

// inferExpr is the per-node inference rule set (spec §4.5). It may leave a
// node untyped for this iteration (returning nil) when one of its operands
// has no type yet; the fixed-point loop revisits it.
func (ctx *inferCtx) inferExpr(e ast.Expr) *errdiag.Error {
	switch n := e.(type) {
	case *ast.IntLit:
		bump(n, ctx.reg.MustLookup(classreg.Int))
		return nil
	case *ast.BoolLit:
		bump(n, ctx.reg.MustLookup(classreg.Boolean))
		return nil
	case *ast.StringLit:
		bump(n, ctx.reg.MustLookup(classreg.String))
		return nil
	case *ast.NothingLit:
		bump(n, ctx.reg.MustLookup(classreg.Nothing))
		return nil
	case *ast.This:
		if ctx.class == nil {
			return errdiag.New(errdiag.ThisError, "this is not valid in the top-level block")
		}
		bump(n, ctx.class)
		return nil

	case *ast.Identifier:
		t, ok := ctx.table.Get(symtab.Key{Name: n.Name, IsField: false})
		if ok {
			bump(n, t)
		}
		return nil

	case *ast.Access:
		return ctx.inferAccess(n)

	case *ast.Call:
		return ctx.inferCall(n)

	case *ast.UnaryOp:
		intClass := ctx.reg.MustLookup(classreg.Int)
		if err := ctx.inferExpr(n.Right); err != nil {
			return err
		}
		if rt := n.Right.InferredType(); rt != nil && asClass(rt) != intClass {
			return errdiag.New(errdiag.UniOp, "operand of unary %q must be Int, got %s", n.Op, rt.TypeName())
		}
		bump(n, intClass)
		return nil

	case *ast.BinaryOp:
		return ctx.inferBinaryOp(n)

	case *ast.BoolOp:
		return ctx.inferBoolOp(n)

	case *ast.TypeAnnotation:
		return ctx.inferTypeAnnotation(n)

	case *ast.Assignment:
		return ctx.inferAssignment(n)
	}
	return nil
}

func (ctx *inferCtx) inferAccess(n *ast.Access) *errdiag.Error {
	if _, isThis := n.Object.(*ast.This); isThis && !n.IsMethodCall() {
		if err := ctx.inferExpr(n.Object); err != nil {
			return err
		}
		t, ok := ctx.table.Get(symtab.Key{Name: n.Name, IsField: true})
		if ok {
			bump(n, t)
		}
		return nil
	}

	if err := ctx.inferExpr(n.Object); err != nil {
		return err
	}
	objType := n.Object.InferredType()
	if objType == nil {
		return nil
	}
	objClass := asClass(objType)

	if n.IsMethodCall() {
		m, _, found := objClass.FindMethod(n.Name)
		if !found {
			return errdiag.New(errdiag.MethodError, "class %q has no method %q", objClass.Name, n.Name)
		}
		if len(n.Args) != len(m.Params) {
			return errdiag.New(errdiag.FunctionCall, "method %q of class %q expects %d argument(s), got %d",
				n.Name, objClass.Name, len(m.Params), len(n.Args))
		}
		for i, a := range n.Args {
			if err := ctx.inferExpr(a); err != nil {
				return err
			}
			at := a.InferredType()
			if at == nil {
				continue
			}
			want := asClass(m.Params[i].Resolved)
			if !classreg.IsSubtype(asClass(at), want) {
				return errdiag.New(errdiag.FunctionCall,
					"argument %d to %q is not a subtype of declared parameter type %s", i+1, n.Name, want.Name)
			}
		}
		bump(n, m.ReturnType)
		return nil
	}

	f, _, found := objClass.FindField(n.Name)
	if !found {
		return errdiag.New(errdiag.FieldError, "class %q has no field %q", objClass.Name, n.Name)
	}
	if f.Type != nil {
		bump(n, f.Type)
	}
	return nil
}

func (ctx *inferCtx) inferCall(n *ast.Call) *errdiag.Error {
	cls, ok := ctx.reg.Lookup(n.Name)
	if !ok {
		return errdiag.New(errdiag.UnknownConstructor, "no class named %q", n.Name)
	}
	if len(n.Args) != len(cls.Params) {
		return errdiag.New(errdiag.FunctionCall, "constructor %q expects %d argument(s), got %d",
			n.Name, len(cls.Params), len(n.Args))
	}
	for i, a := range n.Args {
		if err := ctx.inferExpr(a); err != nil {
			return err
		}
		at := a.InferredType()
		if at == nil {
			continue
		}
		want := asClass(cls.Params[i].Resolved)
		if !classreg.IsSubtype(asClass(at), want) {
			return errdiag.New(errdiag.FunctionCall,
				"argument %d to constructor %q is not a subtype of declared parameter type %s", i+1, n.Name, want.Name)
		}
	}
	bump(n, cls)
	return nil
}

func (ctx *inferCtx) inferBinaryOp(n *ast.BinaryOp) *errdiag.Error {
	if err := ctx.inferExpr(n.Left); err != nil {
		return err
	}
	leftType := n.Left.InferredType()
	if leftType == nil {
		return nil
	}
	leftClass := asClass(leftType)
	methodName := ast.OpMethod[n.Op]
	m, _, found := leftClass.FindMethod(methodName)
	if !found {
		return errdiag.New(errdiag.BinOp, "class %q has no operator method %q for %q", leftClass.Name, methodName, n.Op)
	}
	if len(m.Params) != 1 {
		return errdiag.New(errdiag.BinOp, "operator method %q of class %q must take exactly one parameter", methodName, leftClass.Name)
	}
	if err := ctx.inferExpr(n.Right); err != nil {
		return err
	}
	if rightType := n.Right.InferredType(); rightType != nil {
		want := asClass(m.Params[0].Resolved)
		if !classreg.IsSubtype(asClass(rightType), want) {
			return errdiag.New(errdiag.BinOp, "right operand of %q is not a subtype of %s", n.Op, want.Name)
		}
	}
	bump(n, m.ReturnType)
	return nil
}

func (ctx *inferCtx) inferBoolOp(n *ast.BoolOp) *errdiag.Error {
	boolClass := ctx.reg.MustLookup(classreg.Boolean)
	if n.Left != nil {
		if err := ctx.inferExpr(n.Left); err != nil {
			return err
		}
		if lt := n.Left.InferredType(); lt != nil && asClass(lt) != boolClass {
			return errdiag.New(errdiag.BoolOp, "left operand of %q must be Boolean, got %s", n.Op, lt.TypeName())
		}
	}
	if n.Right != nil {
		if err := ctx.inferExpr(n.Right); err != nil {
			return err
		}
		if rt := n.Right.InferredType(); rt != nil && asClass(rt) != boolClass {
			return errdiag.New(errdiag.BoolOp, "right operand of %q must be Boolean, got %s", n.Op, rt.TypeName())
		}
	}
	bump(n, boolClass)
	return nil
}

func (ctx *inferCtx) inferTypeAnnotation(n *ast.TypeAnnotation) *errdiag.Error {
	if err := ctx.inferExpr(n.Target); err != nil {
		return err
	}
	targetType := n.Target.InferredType()
	if n.TypeName == "" {
		if targetType != nil {
			bump(n, targetType)
		}
		return nil
	}
	cls, ok := ctx.reg.Lookup(n.TypeName)
	if !ok {
		return errdiag.New(errdiag.UnknownType, "unknown type %q", n.TypeName)
	}
	if targetType != nil && !classreg.IsSubtype(asClass(targetType), cls) {
		return errdiag.New(errdiag.TypingError, "expression of type %s is not a subtype of annotated type %s",
			targetType.TypeName(), cls.Name)
	}
	bump(n, cls)
	return nil
}

// inferAssignment implements the assignment rule (spec §4.5): the rhs is
// inferred first, then its type is propagated into the lhs target and the
// symbol table cell it names, under the constructor-field LCA-merge or
// general subtype-check rule.
func (ctx *inferCtx) inferAssignment(n *ast.Assignment) *errdiag.Error {
	if access, ok := n.LHS.Target.(*ast.Access); ok {
		if _, isThis := access.Object.(*ast.This); isThis && ctx.class == nil {
			return errdiag.New(errdiag.ThisError, "this is not valid in the top-level block")
		}
	}
	if err := ctx.inferExpr(n.RHS); err != nil {
		return err
	}
	rhsType := n.RHS.InferredType()

	finalType := rhsType
	if n.LHS.TypeName != "" {
		cls, ok := ctx.reg.Lookup(n.LHS.TypeName)
		if !ok {
			return errdiag.New(errdiag.UnknownType, "unknown type %q", n.LHS.TypeName)
		}
		if rhsType != nil && !classreg.IsSubtype(asClass(rhsType), cls) {
			return errdiag.New(errdiag.TypingError, "assigned value of type %s is not a subtype of annotated type %s",
				rhsType.TypeName(), cls.Name)
		}
		finalType = cls
	}

	key, ok := targetKey(n.LHS.Target)
	if ok {
		existing, _ := ctx.table.Get(key)
		if ctx.inCtor && key.IsField {
			switch {
			case existing == nil:
				ctx.table.Set(key, finalType)
			case finalType != nil:
				ctx.table.Set(key, classreg.LCA(asClass(existing), asClass(finalType)))
			}
		} else {
			if existing != nil && finalType != nil && !classreg.IsSubtype(asClass(finalType), asClass(existing)) {
				return errdiag.New(errdiag.TypingError, "assigned value of type %s is not a subtype of %q's declared type %s",
					finalType.TypeName(), key.Name, existing.TypeName())
			}
			if existing == nil && finalType != nil {
				ctx.table.Set(key, finalType)
			}
		}
	}

	if finalType != nil {
		bump(n, finalType)
		n.LHS.SetInferredType(finalType)
		bump(n.LHS.Target, finalType)
	}
	return nil
}

// targetKey extracts the (name, is-field) symbol an assignment target
// names, mirroring definite.assignKey for the inference layer.
func targetKey(target ast.Expr) (symtab.Key, bool) {
	switch t := target.(type) {
	case *ast.Identifier:
		return symtab.Key{Name: t.Name, IsField: false}, true
	case *ast.Access:
		if _, ok := t.Object.(*ast.This); ok && !t.IsMethodCall() {
			return symtab.Key{Name: t.Name, IsField: true}, true
		}
	}
	return symtab.Key{}, false
}
