package ast

// Access is a field read or method call reached through an object
// expression: `Object.Name` (field access, Args == nil) or
// `Object.Name(Args...)` (method call, Args != nil — even when empty).
// A qualified chain such as `this.f.g()` is represented by nesting: the
// outer Access's Object is itself an Access.
type Access struct {
	typed
	Object Expr
	Name   string
	Args   []Expr
}

func (*Access) exprNode() {}

// IsMethodCall reports whether this access is a method call rather than a
// field read.
func (a *Access) IsMethodCall() bool { return a.Args != nil }

// Call is a bare `Name(Args...)`, always a constructor invocation of the
// class named Name.
type Call struct {
	typed
	Name string
	Args []Expr
}

func (*Call) exprNode() {}
