// Package fixture loads a pre-built program description — a class table
// plus a top-level statement block — from a YAML document, standing in
// for the lexer/parser front end the core compiler does not implement
// (spec §2 "Non-goals"). It is the concrete external collaborator that
// drives the four core phases end to end in tests and the CLI.
package fixture

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/go-ooc/ast"
	"github.com/cwbudde/go-ooc/internal/classreg"
	"github.com/cwbudde/go-ooc/internal/hierarchy"
)

// Program is the raw YAML document shape: a list of class declarations
// plus the program's top-level statements.
type Program struct {
	Classes  []classDoc       `yaml:"classes"`
	TopLevel []map[string]any `yaml:"top_level"`
}

type classDoc struct {
	Name        string           `yaml:"name"`
	Super       string           `yaml:"super"`
	Params      []paramDoc       `yaml:"params"`
	Constructor []map[string]any `yaml:"constructor"`
	Methods     []methodDoc      `yaml:"methods"`
}

type paramDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type methodDoc struct {
	Name       string           `yaml:"name"`
	Params     []paramDoc       `yaml:"params"`
	ReturnType string           `yaml:"return_type"`
	Body       []map[string]any `yaml:"body"`
}

// Load reads and parses the YAML fixture at path, builds the class
// registry from its class declarations, and resolves every super and
// declared-type reference (spec §4.1). It returns the registry and the
// top-level block, ready for the definite-assignment and inference
// passes.
func Load(path string) (*classreg.Registry, *ast.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("fixture: reading %s: %w", path, err)
	}
	return LoadBytes(data)
}

// LoadBytes parses a YAML fixture document already in memory.
func LoadBytes(data []byte) (*classreg.Registry, *ast.Block, error) {
	var doc Program
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("fixture: invalid YAML: %w", err)
	}

	reg := classreg.New()
	superNames := make(map[string]string, len(doc.Classes))

	for _, cd := range doc.Classes {
		c := classreg.NewClass(cd.Name, nil, true)
		c.Params = buildParams(cd.Params)
		c.CtorBody = &ast.Block{Stmts: buildStmts(cd.Constructor)}
		for _, md := range cd.Methods {
			c.Methods[md.Name] = &classreg.Method{
				Name:       md.Name,
				Params:     buildParams(md.Params),
				ReturnType: declaredTypeRef(md.ReturnType),
				Body:       &ast.Block{Stmts: buildStmts(md.Body)},
			}
		}
		if err := reg.Declare(c); err != nil {
			return nil, nil, fmt.Errorf("fixture: %w", err)
		}
		superNames[cd.Name] = cd.Super
	}

	if err := hierarchy.ResolveSupers(reg, superNames); err != nil {
		return nil, nil, fmt.Errorf("fixture: %w", err)
	}

	return reg, &ast.Block{Stmts: buildStmts(doc.TopLevel)}, nil
}

// buildParams converts param docs into ast.Param, leaving Resolved nil —
// hierarchy.ResolveSupers fills it in once every class is declared.
func buildParams(docs []paramDoc) []ast.Param {
	out := make([]ast.Param, len(docs))
	for i, p := range docs {
		out[i] = ast.Param{Name: p.Name, DeclaredTypeName: p.Type}
	}
	return out
}

// declaredTypeRef wraps a YAML type name as a placeholder TypeRef until
// hierarchy resolution replaces it with the resolved *classreg.Class; an
// empty name defers to the Nothing default.
func declaredTypeRef(name string) ast.TypeRef {
	if name == "" {
		return nil
	}
	return unresolvedType(name)
}

// unresolvedType is a transient ast.TypeRef placeholder; hierarchy's
// resolution pass only reads Method.ReturnType's name via TypeName()
// before replacing it with the real *classreg.Class.
type unresolvedType string

func (u unresolvedType) TypeName() string { return string(u) }
