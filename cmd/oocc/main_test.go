package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"
)

const counterFixture = `
classes:
  - name: Counter
    super: Obj
    params:
      - name: start
        type: Int
    constructor:
      - kind: assign
        lhs:
          kind: typeannotation
          target: { kind: access, object: { kind: this }, name: count }
          type: ""
        rhs: { kind: ident, name: start }
    methods:
      - name: value
        params: []
        return_type: Int
        body:
          - kind: return
            value: { kind: access, object: { kind: this }, name: count }
top_level: []
`

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "counter.yaml")
	if err := os.WriteFile(path, []byte(counterFixture), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestCompileFixture_WritesOutputFile(t *testing.T) {
	path := writeFixture(t)
	outputFile = filepath.Join(filepath.Dir(path), "out.c")
	disassemble = false
	compileVerbose = false
	defer func() { outputFile = "" }()

	if err := compileFixture(nil, []string{path}); err != nil {
		t.Fatalf("compileFixture: %v", err)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("reading compiled output: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty emitted output")
	}
}

func TestCheckFixture_SucceedsOnWellFormedInput(t *testing.T) {
	path := writeFixture(t)
	if err := checkFixture(nil, []string{path}); err != nil {
		t.Fatalf("checkFixture: %v", err)
	}
}

func TestFixtureGetAndSet_RoundTripThroughYAML(t *testing.T) {
	path := writeFixture(t)

	if err := fixtureSet(nil, []string{path, "classes.0.name", "Accumulator"}); err != nil {
		t.Fatalf("fixtureSet: %v", err)
	}

	jsonDoc, err := yamlFileToJSON(path)
	if err != nil {
		t.Fatalf("yamlFileToJSON: %v", err)
	}
	got := gjson.GetBytes(jsonDoc, "classes.0.name")
	if got.String() != "Accumulator" {
		t.Errorf("classes.0.name = %q, want %q", got.String(), "Accumulator")
	}
}
