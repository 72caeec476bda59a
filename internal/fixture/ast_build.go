package fixture

import (
	"fmt"

	"github.com/cwbudde/go-ooc/ast"
)

// Statement and expression documents are tagged unions decoded from YAML
// as generic maps (kept dynamic because their shape varies by "kind" —
// a fixed struct per node type would force one YAML schema per AST
// variant, which is more ceremony than this stand-in front end needs).

func buildStmts(docs []map[string]any) []ast.Stmt {
	out := make([]ast.Stmt, 0, len(docs))
	for _, d := range docs {
		out = append(out, buildStmt(d))
	}
	return out
}

func buildStmt(d map[string]any) ast.Stmt {
	switch kind(d) {
	case "expr":
		return &ast.ExprStmt{X: buildExpr(mapField(d, "x"))}

	case "assign":
		lhsDoc := mapField(d, "lhs")
		return &ast.ExprStmt{X: &ast.Assignment{
			LHS: buildTypeAnnotation(lhsDoc),
			RHS: buildExpr(mapField(d, "rhs")),
		}}

	case "if":
		var elseBlock *ast.Block
		if raw, ok := d["else"]; ok {
			elseBlock = &ast.Block{Stmts: buildStmts(toMapSlice(raw))}
		}
		return &ast.If{
			Cond:  buildExpr(mapField(d, "cond")),
			True:  &ast.Block{Stmts: buildStmts(toMapSlice(d["then"]))},
			False: elseBlock,
		}

	case "while":
		return &ast.While{
			Cond: buildExpr(mapField(d, "cond")),
			Body: &ast.Block{Stmts: buildStmts(toMapSlice(d["body"]))},
		}

	case "return":
		var value ast.Expr
		if raw, ok := d["value"]; ok {
			value = buildExpr(toMap(raw))
		}
		return &ast.Return{Value: value}

	case "typecase":
		var alts []*ast.TypecaseAlt
		for _, rawAlt := range toMapSlice(d["alts"]) {
			alts = append(alts, &ast.TypecaseAlt{
				Var:      str(rawAlt, "var"),
				TypeName: str(rawAlt, "type"),
				Block:    &ast.Block{Stmts: buildStmts(toMapSlice(rawAlt["body"]))},
			})
		}
		return &ast.Typecase{Scrutinee: buildExpr(mapField(d, "scrutinee")), Alts: alts}
	}
	panic(fmt.Sprintf("fixture: unknown statement kind %q", kind(d)))
}

func buildExpr(d map[string]any) ast.Expr {
	if d == nil {
		return nil
	}
	switch kind(d) {
	case "int":
		return &ast.IntLit{Value: intField(d, "value")}
	case "bool":
		return &ast.BoolLit{Value: boolField(d, "value")}
	case "string":
		return &ast.StringLit{Value: str(d, "value")}
	case "nothing":
		return &ast.NothingLit{}
	case "this":
		return &ast.This{}
	case "ident":
		return &ast.Identifier{Name: str(d, "name")}

	case "access":
		var args []ast.Expr
		if raw, ok := d["args"]; ok {
			args = buildExprs(toMapSlice(raw))
			if args == nil {
				args = []ast.Expr{}
			}
		}
		return &ast.Access{Object: buildExpr(mapField(d, "object")), Name: str(d, "name"), Args: args}

	case "call":
		return &ast.Call{Name: str(d, "name"), Args: buildExprs(toMapSlice(d["args"]))}

	case "unary":
		return &ast.UnaryOp{Op: str(d, "op"), Right: buildExpr(mapField(d, "right"))}

	case "binary":
		return &ast.BinaryOp{Op: str(d, "op"), Left: buildExpr(mapField(d, "left")), Right: buildExpr(mapField(d, "right"))}

	case "boolop":
		var right ast.Expr
		if raw, ok := d["right"]; ok {
			right = buildExpr(toMap(raw))
		}
		return &ast.BoolOp{Op: str(d, "op"), Left: buildExpr(mapField(d, "left")), Right: right}

	case "typeannotation":
		return buildTypeAnnotation(d)
	}
	panic(fmt.Sprintf("fixture: unknown expression kind %q", kind(d)))
}

func buildExprs(docs []map[string]any) []ast.Expr {
	out := make([]ast.Expr, 0, len(docs))
	for _, d := range docs {
		out = append(out, buildExpr(d))
	}
	return out
}

func buildTypeAnnotation(d map[string]any) *ast.TypeAnnotation {
	return &ast.TypeAnnotation{Target: buildExpr(mapField(d, "target")), TypeName: str(d, "type")}
}

func kind(d map[string]any) string { return str(d, "kind") }

func mapField(d map[string]any, key string) map[string]any { return toMap(d[key]) }

func toMap(v any) map[string]any {
	if v == nil {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}

func toMapSlice(v any) []map[string]any {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		out = append(out, toMap(item))
	}
	return out
}

func str(d map[string]any, key string) string {
	s, _ := d[key].(string)
	return s
}

func boolField(d map[string]any, key string) bool {
	b, _ := d[key].(bool)
	return b
}

func intField(d map[string]any, key string) int {
	switch v := d[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
