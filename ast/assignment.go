package ast

// TypeAnnotation wraps an assignment target with an optional declared type
// name (e.g. `x : Int = ...`). TypeName is empty when no annotation was
// written. Target is an Identifier or a field Access (Object must be This
// or nil for a bare field name used outside the constructor is never
// legal — loaders are responsible for producing a well-formed target).
type TypeAnnotation struct {
	typed
	Target   Expr
	TypeName string
}

func (*TypeAnnotation) exprNode() {}

// Assignment is `LHS = RHS`. The right-hand side is inferred first, then
// its type is propagated into the annotated left-hand side (spec §4.5).
type Assignment struct {
	typed
	LHS *TypeAnnotation
	RHS Expr
}

func (*Assignment) exprNode() {}
