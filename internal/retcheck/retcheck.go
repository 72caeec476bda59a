// Package retcheck implements the return-path check (spec §4.3): every
// user-class method whose declared return type does not admit Nothing
// must return on every path. Methods that admit Nothing get an implicit
// `return none` appended when they do not already return on all paths.
package retcheck

import (
	"github.com/cwbudde/go-ooc/ast"
	"github.com/cwbudde/go-ooc/internal/classreg"
	"github.com/cwbudde/go-ooc/internal/errdiag"
)

// Check runs the return-path check over every method of every user class
// in reg, mutating constructor-less void-ish method bodies in place to
// append an implicit `return none`, and returns the first MissingReturn
// error encountered.
//
// Per spec §9's resolved open question, the implicit `return none` is
// only appended when Nothing is a subtype of the declared return type —
// i.e. only for methods declared to return Obj or Nothing. Any other
// declared return type without a return on every path is a hard error.
func Check(reg *classreg.Registry) *errdiag.Error {
	for _, c := range reg.UserClasses() {
		for _, m := range c.Methods {
			if m.IsConstructor(c) {
				continue
			}
			if returnsOnAllPaths(m.Body) {
				continue
			}

			ret, _ := m.ReturnType.(*classreg.Class)
			nothing := reg.MustLookup(classreg.Nothing)
			if ret != nil && classreg.IsSubtype(nothing, ret) {
				m.Body.Stmts = append(m.Body.Stmts, &ast.Return{Value: &ast.NothingLit{}})
				continue
			}

			return errdiag.New(errdiag.MissingReturn,
				"method %q of class %q does not return on every path", m.Name, c.Name)
		}
	}
	return nil
}

// returnsOnAllPaths implements the conservative analysis from spec §4.3:
// a block has a return on all paths iff any contained statement does; an
// if has one iff both branches do; while and typecase are always treated
// as not returning on all paths; a return statement always does.
func returnsOnAllPaths(s ast.Stmt) bool {
	switch n := s.(type) {
	case *ast.Return:
		return true
	case *ast.Block:
		for _, stmt := range n.Stmts {
			if returnsOnAllPaths(stmt) {
				return true
			}
		}
		return false
	case *ast.If:
		return returnsOnAllPaths(n.True) && n.False != nil && returnsOnAllPaths(n.False)
	case *ast.While, *ast.Typecase:
		return false
	default:
		return false
	}
}
