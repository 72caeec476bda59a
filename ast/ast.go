// Package ast defines the tagged expression/statement tree consumed by the
// hierarchy checker, the definite-assignment pass, the type inference
// engine, and the lowerer.
//
// The tree is built by an external collaborator (a parser, or in this repo
// the fixture loader in internal/fixture) and is never constructed by the
// phases themselves. Each phase owns a read-only "this class" context it
// threads through the walk rather than storing back-pointers on nodes, so
// the tree stays exclusively owned by its parent (class, method, block).
package ast

// TypeRef is the minimal contract an inferred type must satisfy. It exists
// so this package never imports the class registry that owns the concrete
// type (internal/classreg.Class) — storing a back-reference here would
// create an import cycle, since the registry in turn owns constructor and
// method bodies built from this package's node types.
type TypeRef interface {
	TypeName() string
}

// Expr is any expression node. Every expression carries a nullable,
// monotone inferred-type slot: once set to a non-nil type it only moves
// upward in the subtype lattice during inference (see internal/typeinfer).
type Expr interface {
	exprNode()
	InferredType() TypeRef
	SetInferredType(TypeRef)
}

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
}

// typed is embedded by every expression node to provide the inferred-type
// slot without repeating the same two methods on every variant.
type typed struct {
	Typ TypeRef
}

func (t *typed) InferredType() TypeRef      { return t.Typ }
func (t *typed) SetInferredType(ty TypeRef) { t.Typ = ty }

// Param is a constructor or method parameter: a name, the type name as
// written, and the type it resolves to once the hierarchy checker runs.
// The type name "Nothing" is forbidden for parameters.
type Param struct {
	Name             string
	DeclaredTypeName string
	Resolved         TypeRef
}
