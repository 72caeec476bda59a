package retcheck_test

import (
	"testing"

	"github.com/cwbudde/go-ooc/ast"
	"github.com/cwbudde/go-ooc/internal/errdiag"
	"github.com/cwbudde/go-ooc/internal/fixture"
	"github.com/cwbudde/go-ooc/internal/hierarchy"
	"github.com/cwbudde/go-ooc/internal/retcheck"
)

const missingReturnDoc = `
classes:
  - name: Counter
    super: Obj
    methods:
      - name: value
        params: []
        return_type: Int
        body:
          - kind: expr
            x: { kind: int, value: 1 }
top_level: []
`

func TestCheck_MissingReturnOnIntMethodRejected(t *testing.T) {
	reg, _, err := fixture.LoadBytes([]byte(missingReturnDoc))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if err := hierarchy.Check(reg); err != nil {
		t.Fatalf("hierarchy.Check: %v", err)
	}

	got := retcheck.Check(reg)
	if got == nil {
		t.Fatal("expected a MissingReturn error, got nil")
	}
	if got.Kind != errdiag.MissingReturn {
		t.Errorf("Kind = %s, want %s", got.Kind, errdiag.MissingReturn)
	}
}

const implicitNothingReturnDoc = `
classes:
  - name: Logger
    super: Obj
    methods:
      - name: log
        params: []
        return_type: Nothing
        body:
          - kind: expr
            x: { kind: int, value: 1 }
top_level: []
`

func TestCheck_NothingMethodGetsImplicitReturn(t *testing.T) {
	reg, _, err := fixture.LoadBytes([]byte(implicitNothingReturnDoc))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if err := hierarchy.Check(reg); err != nil {
		t.Fatalf("hierarchy.Check: %v", err)
	}

	if got := retcheck.Check(reg); got != nil {
		t.Fatalf("unexpected error: %v", got)
	}

	logger, ok := reg.Lookup("Logger")
	if !ok {
		t.Fatal("class Logger not found in registry")
	}
	m, ok := logger.Methods["log"]
	if !ok {
		t.Fatal("method log not found on Logger")
	}
	last := m.Body.Stmts[len(m.Body.Stmts)-1]
	ret, ok := last.(*ast.Return)
	if !ok {
		t.Fatalf("last statement = %T, want *ast.Return", last)
	}
	if _, ok := ret.Value.(*ast.NothingLit); !ok {
		t.Errorf("implicit return value = %T, want *ast.NothingLit", ret.Value)
	}
}
