package ast

// IntLit is an integer literal.
type IntLit struct {
	typed
	Value int
}

func (*IntLit) exprNode() {}

// BoolLit is a boolean literal.
type BoolLit struct {
	typed
	Value bool
}

func (*BoolLit) exprNode() {}

// StringLit is a string literal.
type StringLit struct {
	typed
	Value string
}

func (*StringLit) exprNode() {}

// NothingLit is the literal value of the Nothing type (written `none`).
type NothingLit struct {
	typed
}

func (*NothingLit) exprNode() {}

// Identifier is a bare name reference to a local variable or parameter.
type Identifier struct {
	typed
	Name string
}

func (*Identifier) exprNode() {}

// This is the `this` keyword. It is always considered initialized and
// resolves to the owning class during inference.
type This struct {
	typed
}

func (*This) exprNode() {}
