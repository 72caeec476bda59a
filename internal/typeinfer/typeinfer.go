// Package typeinfer implements the flow-insensitive, fixed-point type
// inference engine (spec §4.5): it assigns each symbol and AST expression
// its least-upper-bound type, resolves method dispatch, and validates
// subtype obligations.
package typeinfer

import (
	"github.com/cwbudde/go-ooc/ast"
	"github.com/cwbudde/go-ooc/internal/classreg"
	"github.com/cwbudde/go-ooc/internal/errdiag"
	"github.com/cwbudde/go-ooc/internal/initset"
	"github.com/cwbudde/go-ooc/internal/symtab"
)

// Infer runs the engine over every user class in reg: first every
// constructor (so field types are known), then every other method, then
// the post-inference field-subtype check. It returns the first error
// encountered.
func Infer(reg *classreg.Registry) *errdiag.Error {
	classes := reg.TopoUserClasses()

	for _, c := range classes {
		if err := inferConstructor(reg, c); err != nil {
			return err
		}
	}
	for _, c := range classes {
		for _, m := range c.Methods {
			if m.IsConstructor(c) {
				continue
			}
			if err := inferMethod(reg, c, m); err != nil {
				return err
			}
		}
	}
	return checkFieldSubtypes(reg, classes)
}

// MaxIterationsOverride, when non-zero, replaces the computed bound in
// MaxIterationsFor for every subsequent call — set from the CLI's
// --max-iterations flag to let an operator raise or lower the fixed-point
// guard without rebuilding (spec §5 "bounded ... to guarantee termination").
var MaxIterationsOverride int

// MaxIterationsFor bounds the fixed-point loop for a method with the given
// symbol count, analyzed in a class at the given hierarchy depth (spec §5:
// "bounded by number of symbols × class hierarchy depth").
func MaxIterationsFor(symbolCount, hierarchyDepth int) int {
	if MaxIterationsOverride > 0 {
		return MaxIterationsOverride
	}
	bound := symbolCount * hierarchyDepth
	if bound < 4 {
		bound = 4
	}
	return bound
}

func inferConstructor(reg *classreg.Registry, c *classreg.Class) *errdiag.Error {
	table := symtab.New()
	seed := c.CtorInits
	if seed == nil {
		seed = initset.New()
	}
	seedTable(table, seed, c, nil)

	ctx := &inferCtx{reg: reg, class: c, table: table, inCtor: true}
	if err := runFixedPoint(ctx, c.CtorBody, len(table.Keys()), len(c.SelfAndAncestors())); err != nil {
		return err
	}

	for name, f := range c.Fields {
		ty, ok := table.Get(symtab.Key{Name: name, IsField: true})
		if ok {
			f.Type = ty
		}
	}
	return nil
}

func inferMethod(reg *classreg.Registry, c *classreg.Class, m *classreg.Method) *errdiag.Error {
	table := symtab.New()
	seed := m.Inits
	if seed == nil {
		seed = initset.New()
	}
	seedTable(table, seed, c, m)

	ctx := &inferCtx{reg: reg, class: c, method: m, table: table, returnType: m.ReturnType}
	if err := runFixedPoint(ctx, m.Body, len(table.Keys()), len(c.SelfAndAncestors())); err != nil {
		return err
	}
	m.Symbols = table
	return nil
}

// InferTopLevel runs inference over the program's top-level block (spec
// §4.6 "the program's top-level statements"), which behaves as a method
// declared to return Nothing and has no enclosing class — `this` is
// invalid there. It seeds no symbols: every identifier used at the top
// level must be bound by an assignment within the block itself.
func InferTopLevel(reg *classreg.Registry, body *ast.Block) *errdiag.Error {
	table := symtab.New()
	ctx := &inferCtx{reg: reg, table: table, returnType: reg.MustLookup(classreg.Nothing)}
	return runFixedPoint(ctx, body, 0, 1)
}

// seedTable populates table from seed's (name, is-field) keys: fields get
// the class's already-known field type (or nil), parameters get their
// declared/resolved type (spec §4.5).
func seedTable(table *symtab.Table, seed *initset.Set, c *classreg.Class, m *classreg.Method) {
	params := c.Params
	if m != nil {
		params = m.Params
	}
	paramType := make(map[string]ast.TypeRef, len(params))
	for _, p := range params {
		paramType[p.Name] = p.Resolved
	}

	for _, k := range seed.Keys() {
		if k.IsField {
			var ty ast.TypeRef
			if f, ok := c.Fields[k.Name]; ok {
				ty = f.Type
			}
			table.Seed(symtab.Key{Name: k.Name, IsField: true}, ty)
		} else {
			table.Seed(symtab.Key{Name: k.Name, IsField: false}, paramType[k.Name])
		}
	}
}

// runFixedPoint iterates inference over body until the table's dirty flag
// stays clear, guarded by a maximum iteration count (spec §5).
func runFixedPoint(ctx *inferCtx, body *ast.Block, symbolCount, hierarchyDepth int) *errdiag.Error {
	limit := MaxIterationsFor(symbolCount, hierarchyDepth)
	for iter := 0; ; iter++ {
		if iter >= limit {
			return errdiag.New(errdiag.AmbiguousInference,
				"type inference did not converge after %d iterations", limit)
		}
		ctx.table.ClearDirty()
		if err := ctx.inferStmt(body); err != nil {
			return err
		}
		if !ctx.table.Dirty() {
			return nil
		}
	}
}

func checkFieldSubtypes(reg *classreg.Registry, classes []*classreg.Class) *errdiag.Error {
	for _, c := range classes {
		if c.Super == nil {
			continue
		}
		for name, superField := range c.Super.Fields {
			childField, ok := c.Fields[name]
			if !ok || childField.Type == nil || superField.Type == nil {
				continue
			}
			childClass, _ := childField.Type.(*classreg.Class)
			superClass, _ := superField.Type.(*classreg.Class)
			if childClass == nil || superClass == nil || !classreg.IsSubtype(childClass, superClass) {
				return errdiag.New(errdiag.SubtypeFieldType,
					"field %q of class %q has type %s, not a subtype of super class %q's field type %s",
					name, c.Name, childField.Type.TypeName(), c.Super.Name, superField.Type.TypeName())
			}
		}
	}
	return nil
}

// inferCtx carries the fixed-point state for one method, constructor, or
// top-level-block walk. class is nil only at the top level, where `this`
// is invalid. method is nil for both a constructor and the top level.
type inferCtx struct {
	reg        *classreg.Registry
	class      *classreg.Class
	method     *classreg.Method
	table      *symtab.Table
	inCtor     bool
	returnType ast.TypeRef // governs Return statements outside a constructor
}

// bump applies the monotone-upward update rule to an expression node: its
// type moves to LCA(current, newType), or simply becomes newType if it had
// none yet (spec §3 "monotone" invariant).
func bump(n ast.Expr, newType ast.TypeRef) {
	if newType == nil {
		return
	}
	cur := n.InferredType()
	if cur == nil {
		n.SetInferredType(newType)
		return
	}
	curClass, ok1 := cur.(*classreg.Class)
	newClass, ok2 := newType.(*classreg.Class)
	if !ok1 || !ok2 {
		n.SetInferredType(newType)
		return
	}
	n.SetInferredType(classreg.LCA(curClass, newClass))
}

func asClass(t ast.TypeRef) *classreg.Class {
	c, _ := t.(*classreg.Class)
	return c
}
