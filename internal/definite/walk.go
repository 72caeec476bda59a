package definite

import (
	"github.com/cwbudde/go-ooc/ast"
	"github.com/cwbudde/go-ooc/internal/classreg"
	"github.com/cwbudde/go-ooc/internal/errdiag"
	"github.com/cwbudde/go-ooc/internal/initset"
)

// walker threads the must/may-init lattice through one method or
// constructor body. allInits is non-nil only while analyzing a
// constructor (spec §4.4).
type walker struct {
	reg      *classreg.Registry
	class    *classreg.Class
	inCtor   bool
	allInits *initset.Set
}

func (w *walker) addInit(k initset.Key, inits *initset.Set) {
	inits.Add(k)
	if w.allInits != nil {
		w.allInits.Add(k)
	}
}

// checkExpr is the transfer function for expressions (spec §4.4). It
// mutates inits in place for assignments and returns the first
// UninitializedVar error found, if any.
func (w *walker) checkExpr(e ast.Expr, inits *initset.Set) *errdiag.Error {
	switch n := e.(type) {
	case *ast.IntLit, *ast.BoolLit, *ast.StringLit, *ast.NothingLit, *ast.This:
		return nil

	case *ast.Identifier:
		if !inits.Has(initset.Key{Name: n.Name, IsField: false}) {
			return errdiag.New(errdiag.UninitializedVar, "variable %q is used before being assigned", n.Name)
		}
		return nil

	case *ast.Access:
		if _, isThis := n.Object.(*ast.This); isThis && !n.IsMethodCall() {
			if w.inCtor && !inits.Has(initset.Key{Name: n.Name, IsField: true}) {
				return errdiag.New(errdiag.UninitializedVar, "field %q is used before being assigned in the constructor", n.Name)
			}
			return nil
		}
		if err := w.checkExpr(n.Object, inits); err != nil {
			return err
		}
		for _, a := range n.Args {
			if err := w.checkExpr(a, inits); err != nil {
				return err
			}
		}
		return nil

	case *ast.Call:
		for _, a := range n.Args {
			if err := w.checkExpr(a, inits); err != nil {
				return err
			}
		}
		return nil

	case *ast.UnaryOp:
		return w.checkExpr(n.Right, inits)

	case *ast.BinaryOp:
		if err := w.checkExpr(n.Left, inits); err != nil {
			return err
		}
		return w.checkExpr(n.Right, inits)

	case *ast.BoolOp:
		if n.Left != nil {
			if err := w.checkExpr(n.Left, inits); err != nil {
				return err
			}
		}
		if n.Right != nil {
			return w.checkExpr(n.Right, inits)
		}
		return nil

	case *ast.TypeAnnotation:
		return w.checkExpr(n.Target, inits)

	case *ast.Assignment:
		if err := w.checkExpr(n.RHS, inits); err != nil {
			return err
		}
		if key, ok := assignKey(n.LHS); ok {
			w.addInit(key, inits)
		}
		return w.checkExpr(n.LHS, inits)
	}
	return nil
}

// assignKey extracts the (name, is-field) pair an assignment's annotated
// left-hand side binds, if it is a local identifier or a `this.field`.
func assignKey(ann *ast.TypeAnnotation) (initset.Key, bool) {
	switch t := ann.Target.(type) {
	case *ast.Identifier:
		return initset.Key{Name: t.Name, IsField: false}, true
	case *ast.Access:
		if _, ok := t.Object.(*ast.This); ok && !t.IsMethodCall() {
			return initset.Key{Name: t.Name, IsField: true}, true
		}
	}
	return initset.Key{}, false
}

// checkStmt is the transfer function for statements (spec §4.4). It
// returns the must-init set in effect after s executes, threading
// allInits updates as a side effect on w.
func (w *walker) checkStmt(s ast.Stmt, inits *initset.Set) (*initset.Set, *errdiag.Error) {
	switch n := s.(type) {
	case *ast.Block:
		cur := inits
		for _, stmt := range n.Stmts {
			var err *errdiag.Error
			cur, err = w.checkStmt(stmt, cur)
			if err != nil {
				return nil, err
			}
		}
		return cur, nil

	case *ast.ExprStmt:
		if err := w.checkExpr(n.X, inits); err != nil {
			return nil, err
		}
		return inits, nil

	case *ast.If:
		if err := w.checkExpr(n.Cond, inits); err != nil {
			return nil, err
		}
		trueResult, err := w.checkStmt(n.True, inits.Clone())
		if err != nil {
			return nil, err
		}
		falseResult := inits.Clone()
		if n.False != nil {
			falseResult, err = w.checkStmt(n.False, falseResult)
			if err != nil {
				return nil, err
			}
		}
		if w.allInits != nil {
			w.allInits = initset.Union(w.allInits, initset.Union(trueResult, falseResult))
		}
		return initset.Intersect(trueResult, falseResult), nil

	case *ast.While:
		if err := w.checkExpr(n.Cond, inits); err != nil {
			return nil, err
		}
		bodyResult, err := w.checkStmt(n.Body, inits.Clone())
		if err != nil {
			return nil, err
		}
		if w.allInits != nil {
			w.allInits = initset.Union(w.allInits, bodyResult)
		}
		return inits, nil

	case *ast.Typecase:
		if err := w.checkExpr(n.Scrutinee, inits); err != nil {
			return nil, err
		}
		for _, alt := range n.Alts {
			altInits := inits.Clone()
			altInits.Add(initset.Key{Name: alt.Var, IsField: false})
			altResult, err := w.checkStmt(alt.Block, altInits)
			if err != nil {
				return nil, err
			}
			if w.allInits != nil {
				w.allInits = initset.Union(w.allInits, altResult)
			}
		}
		return inits, nil

	case *ast.Return:
		if n.Value != nil {
			if err := w.checkExpr(n.Value, inits); err != nil {
				return nil, err
			}
		}
		return inits, nil
	}
	return inits, nil
}
