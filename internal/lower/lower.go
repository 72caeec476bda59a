// Package lower implements the code emitter (spec §4.6): it turns the
// typed class registry and top-level block into a single target-language
// text, built from struct layouts, a constant per-class dispatch record,
// constructor and method functions, and a distinguished entry function.
package lower

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-ooc/ast"
	"github.com/cwbudde/go-ooc/internal/classreg"
)

// Lowerer drives one emission pass. Its temp and label counters are
// instance fields, not globals, so they reset for every compilation
// (spec §5 "owned by the single driver for the duration of one
// compilation").
type Lowerer struct {
	reg  *classreg.Registry
	buf  strings.Builder
	temp int
	lbl  int
}

// Emit lowers reg and topLevel into the single target-language text
// described by spec §4.6 "Output": an includes block, then every user
// class in topological super-first order, then the entry wrappers.
func Emit(reg *classreg.Registry, topLevel *ast.Block) string {
	l := &Lowerer{reg: reg}
	l.emitIncludes()

	classes := reg.TopoUserClasses()
	for _, c := range classes {
		l.emitForwardTypedef(c)
	}
	for _, c := range classes {
		l.emitObjectStruct(c)
		l.emitClassStruct(c)
	}
	for _, c := range classes {
		l.emitPrototypes(c)
	}
	for _, c := range classes {
		l.emitDispatchRecord(c)
	}
	for _, c := range classes {
		l.emitConstructor(c)
		for _, name := range c.MethodOrder() {
			if m, found := c.Methods[name]; found {
				l.emitMethod(c, m)
			}
		}
	}
	l.emitEntry(topLevel)

	return l.buf.String()
}

func (l *Lowerer) line(format string, args ...any) {
	fmt.Fprintf(&l.buf, format, args...)
	l.buf.WriteByte('\n')
}

func (l *Lowerer) nextTemp() string {
	l.temp++
	return fmt.Sprintf("t%d", l.temp-1)
}

func (l *Lowerer) nextLabel(prefix string) string {
	l.lbl++
	return fmt.Sprintf("%s_%d", prefix, l.lbl-1)
}

func (l *Lowerer) emitIncludes() {
	l.line("#include <stdio.h>")
	l.line("#include <stdlib.h>")
	l.line("#include \"builtins.h\"")
	l.line("")
}

// ctorFieldName is the dispatch-record slot holding the class's
// constructor function pointer (keywords.h METHOD_CONSTRUCTOR).
const ctorFieldName = "constructor"

// objStructNameOf returns the object-struct tag for a class name (spec
// §4.6 "object struct"), e.g. obj_Dog_struct. objTypeName is the pointer
// typedef built on top of it and is what every variable, field, and
// parameter of the class's type actually uses.
func objStructNameOf(name string) string { return fmt.Sprintf("obj_%s_struct", name) }

// structName is objStructNameOf applied to a resolved class.
func structName(c *classreg.Class) string { return objStructNameOf(c.Name) }

// classStructName returns the dispatch-record struct tag for a class,
// e.g. class_Dog_struct. classTypeName is its pointer typedef.
func classStructName(c *classreg.Class) string { return fmt.Sprintf("class_%s_struct", c.Name) }

// objTypeName is the opaque pointer typedef for a class's object struct,
// e.g. obj_Dog. This, not "obj_Dog_struct *", is the type every emitted
// signature, field, and local actually spells.
func objTypeName(name string) string { return fmt.Sprintf("obj_%s", name) }

// classTypeName is the opaque pointer typedef for a class's dispatch
// struct, e.g. class_Dog.
func classTypeName(name string) string { return fmt.Sprintf("class_%s", name) }

// dispatchStructName is the class's dispatch-record global, e.g.
// the_class_Dog_struct.
func dispatchStructName(c *classreg.Class) string { return fmt.Sprintf("the_class_%s_struct", c.Name) }

// dispatchVarName is the pointer variable backed by dispatchStructName,
// e.g. the_class_Dog.
func dispatchVarName(c *classreg.Class) string { return fmt.Sprintf("the_class_%s", c.Name) }

func (l *Lowerer) emitForwardTypedef(c *classreg.Class) {
	l.line("struct %s;", structName(c))
	l.line("struct %s;", classStructName(c))
	l.line("typedef struct %s *%s;", structName(c), objTypeName(c.Name))
	l.line("typedef struct %s *%s;", classStructName(c), classTypeName(c.Name))
}

func (l *Lowerer) emitObjectStruct(c *classreg.Class) {
	l.line("struct %s {", structName(c))
	l.line("\t%s clazz;", classTypeName(c.Name))
	for _, name := range c.FieldOrder() {
		f := c.Fields[name]
		l.line("\t%s %s;", fieldTypeName(f), name)
	}
	l.line("};")
}

func fieldTypeName(f *classreg.Field) string {
	if f.Type == nil {
		return objTypeName(classreg.Obj)
	}
	return objTypeName(f.Type.TypeName())
}

// emitClassStruct emits the dispatch-record layout: a super_ pointer
// (typed as the root Obj's class-struct pointer) first, then the
// constructor pointer, then one slot per method in MethodOrder order.
// Every class's record shares this super_+constructor prefix, which is
// what lets the typecase subtype walk (is_subtype, see emitTypecase)
// follow the super_ chain regardless of which subclass it started from.
func (l *Lowerer) emitClassStruct(c *classreg.Class) {
	l.line("struct %s {", classStructName(c))
	l.line("\t%s super_;", classTypeName(classreg.Obj))
	l.line("\t%s;", ctorPointerDecl(c))
	for _, name := range c.MethodOrder() {
		owner, ok := c.ResolveMethodImpl(name)
		if !ok {
			continue
		}
		l.line("\t%s;", methodPointerDecl(owner, owner.Methods[name]))
	}
	l.line("};")
}

func ctorPointerDecl(c *classreg.Class) string {
	return fmt.Sprintf("%s (*%s)(%s)", objTypeName(c.Name), ctorFieldName, ctorParamList(c))
}

func methodPointerDecl(owner *classreg.Class, m *classreg.Method) string {
	var params strings.Builder
	fmt.Fprintf(&params, "%s self", objTypeName(owner.Name))
	for _, p := range m.Params {
		fmt.Fprintf(&params, ", %s %s", objTypeName(p.Resolved.TypeName()), p.Name)
	}
	return fmt.Sprintf("%s (*%s)(%s)", objTypeName(m.ReturnType.TypeName()), m.Name, params.String())
}

func (l *Lowerer) emitPrototypes(c *classreg.Class) {
	l.line("%s new_%s(%s);", objTypeName(c.Name), c.Name, ctorParamList(c))
	for _, name := range c.MethodOrder() {
		m, ok := c.Methods[name]
		if !ok {
			continue
		}
		l.line("%s;", methodFuncSignature(c, m))
	}
}

func ctorParamList(c *classreg.Class) string {
	var b strings.Builder
	for i, p := range c.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s %s", objTypeName(p.Resolved.TypeName()), p.Name)
	}
	if b.Len() == 0 {
		return "void"
	}
	return b.String()
}

func methodFuncSignature(owner *classreg.Class, m *classreg.Method) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s_%s(%s self", objTypeName(m.ReturnType.TypeName()), m.Name, owner.Name, objTypeName(owner.Name))
	for _, p := range m.Params {
		fmt.Fprintf(&b, ", %s %s", objTypeName(p.Resolved.TypeName()), p.Name)
	}
	b.WriteString(")")
	return b.String()
}

// emitDispatchRecord emits the class's constant dispatch record (spec
// §4.6 "a constant per-class dispatch record"): the super_ slot cast from
// the super's record, the constructor function, then each method slot
// resolved to whichever class in the chain actually implements it
// (override or inherited). Function names are stored bare (they decay to
// pointers), matching quack_class.h:generate_clazz_object.
func (l *Lowerer) emitDispatchRecord(c *classreg.Class) {
	l.line("struct %s %s = {", classStructName(c), dispatchStructName(c))
	l.line("\t.super_ = (%s)&%s,", classTypeName(classreg.Obj), dispatchStructName(c.Super))
	l.line("\t.%s = new_%s,", ctorFieldName, c.Name)
	order := c.MethodOrder()
	for i, name := range order {
		owner, ok := c.ResolveMethodImpl(name)
		if !ok {
			continue
		}
		comma := ","
		if i == len(order)-1 {
			comma = ""
		}
		l.line("\t.%s = %s_%s%s", name, name, owner.Name, comma)
	}
	l.line("};")
	l.line("%s %s = &%s;", classTypeName(c.Name), dispatchVarName(c), dispatchStructName(c))
}

func (l *Lowerer) emitConstructor(c *classreg.Class) {
	l.line("%s new_%s(%s) {", objTypeName(c.Name), c.Name, ctorParamList(c))
	l.line("\t%s self = (%s)malloc(sizeof(struct %s));", objTypeName(c.Name), objTypeName(c.Name), structName(c))
	l.line("\tself->clazz = %s;", dispatchVarName(c))
	ctx := newLowerCtx(l, c, nil, true)
	ctx.emitBlock(c.CtorBody)
	l.line("\treturn self;")
	l.line("}")
}

func (l *Lowerer) emitMethod(c *classreg.Class, m *classreg.Method) {
	l.line("%s {", methodFuncSignature(c, m))
	ctx := newLowerCtx(l, c, m, false)
	ctx.emitBlock(m.Body)
	l.line("}")
}

// emitEntry wraps the top-level block as described by spec §4.6 "Entry
// emission".
func (l *Lowerer) emitEntry(topLevel *ast.Block) {
	nothing := l.reg.MustLookup(classreg.Nothing)
	l.line("%s _main(void) {", objTypeName(nothing.Name))
	ctx := newLowerCtx(l, nil, nil, false)
	ctx.emitBlock(topLevel)
	l.line("\treturn none;")
	l.line("}")
	l.line("")
	l.line("int main(void) {")
	l.line("\t_main();")
	l.line("\treturn 0;")
	l.line("}")
}
