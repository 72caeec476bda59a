package typeinfer

import (
	"fmt"

	"github.com/cwbudde/go-ooc/ast"
	"github.com/cwbudde/go-ooc/internal/classreg"
	"github.com/cwbudde/go-ooc/internal/errdiag"
	"github.com/cwbudde/go-ooc/internal/symtab"
)

// inferStmt is the per-statement inference rule set (spec §4.5).
func (ctx *inferCtx) inferStmt(s ast.Stmt) *errdiag.Error {
	switch n := s.(type) {
	case *ast.Block:
		for _, stmt := range n.Stmts {
			if err := ctx.inferStmt(stmt); err != nil {
				return err
			}
		}
		return nil

	case *ast.ExprStmt:
		return ctx.inferExpr(n.X)

	case *ast.If:
		if err := ctx.inferExpr(n.Cond); err != nil {
			return err
		}
		if err := ctx.requireBoolean(n.Cond, errdiag.IfCondType); err != nil {
			return err
		}
		if err := ctx.inferStmt(n.True); err != nil {
			return err
		}
		if n.False != nil {
			return ctx.inferStmt(n.False)
		}
		return nil

	case *ast.While:
		if err := ctx.inferExpr(n.Cond); err != nil {
			return err
		}
		if err := ctx.requireBoolean(n.Cond, errdiag.WhileCondType); err != nil {
			return err
		}
		return ctx.inferStmt(n.Body)

	case *ast.Return:
		return ctx.inferReturn(n)

	case *ast.Typecase:
		return ctx.inferTypecase(n)
	}
	return nil
}

func (ctx *inferCtx) requireBoolean(cond ast.Expr, kind errdiag.Kind) *errdiag.Error {
	ct := cond.InferredType()
	if ct == nil {
		return nil
	}
	if asClass(ct) != ctx.reg.MustLookup(classreg.Boolean) {
		return errdiag.New(kind, "condition must be Boolean, got %s", ct.TypeName())
	}
	return nil
}

// inferReturn implements the constructor-vs-method return rules (spec
// §4.5): inside a constructor, a returned value must match the owning
// class exactly; everywhere else (an ordinary method, or the top-level
// block, which behaves as a method declared to return Nothing), the
// presence of a return value must match whether the declared return type
// is Nothing, and the value must be a subtype of the declared type.
func (ctx *inferCtx) inferReturn(n *ast.Return) *errdiag.Error {
	if ctx.inCtor {
		if n.Value == nil {
			return nil
		}
		if err := ctx.inferExpr(n.Value); err != nil {
			return err
		}
		vt := n.Value.InferredType()
		if vt != nil && asClass(vt) != ctx.class {
			return errdiag.New(errdiag.ReturnType, "constructor of %q may only return %q, got %s",
				ctx.class.Name, ctx.class.Name, vt.TypeName())
		}
		return nil
	}

	declared := asClass(ctx.returnType)
	nothing := ctx.reg.MustLookup(classreg.Nothing)
	who := "the top-level block"
	if ctx.method != nil {
		who = fmt.Sprintf("method %q", ctx.method.Name)
	}

	if declared == nothing {
		if n.Value != nil {
			return errdiag.New(errdiag.ReturnNothing,
				"%s is declared to return Nothing and may not return a value", who)
		}
		return nil
	}

	if n.Value == nil {
		return errdiag.New(errdiag.ReturnNothing,
			"%s must return a value of type %s", who, declared.Name)
	}
	if err := ctx.inferExpr(n.Value); err != nil {
		return err
	}
	vt := n.Value.InferredType()
	if vt != nil && !classreg.IsSubtype(asClass(vt), declared) {
		return errdiag.New(errdiag.ReturnType, "%s returns %s, not a subtype of declared return type %s",
			who, vt.TypeName(), declared.Name)
	}
	return nil
}

// inferTypecase resolves each alternative's named type, sets the bound
// variable's symbol-table entry to it, and verifies the block did not
// itself change the bound variable's type (spec §4.5). The entry is not
// restored after the block, so a later alternative (or a later use) of
// the same name sees the last type bound; an alternative whose type is
// neither a subtype nor a supertype of that entry fails with
// TypecaseMismatch.
func (ctx *inferCtx) inferTypecase(n *ast.Typecase) *errdiag.Error {
	if err := ctx.inferExpr(n.Scrutinee); err != nil {
		return err
	}

	for _, alt := range n.Alts {
		cls, ok := ctx.reg.Lookup(alt.TypeName)
		if !ok {
			return errdiag.New(errdiag.UnknownType, "unknown type %q in typecase alternative", alt.TypeName)
		}
		alt.Resolved = cls

		key := symtab.Key{Name: alt.Var, IsField: false}
		existing, has := ctx.table.Get(key)
		if has && existing != nil {
			ec := asClass(existing)
			if !classreg.IsSubtype(cls, ec) && !classreg.IsSubtype(ec, cls) {
				return errdiag.New(errdiag.TypecaseMismatch,
					"typecase alternative binds %q to incompatible type %s (existing type %s)",
					alt.Var, cls.Name, ec.Name)
			}
		}
		ctx.table.Set(key, cls)

		if err := ctx.inferStmt(alt.Block); err != nil {
			return err
		}

		after, _ := ctx.table.Get(key)
		if asClass(after) != cls {
			return errdiag.New(errdiag.TypecaseError,
				"typecase variable %q changed type inside its alternative block", alt.Var)
		}
	}
	return nil
}
