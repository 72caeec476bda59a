package driver_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/go-ooc/internal/driver"
	"github.com/cwbudde/go-ooc/internal/fixture"
)

func TestCompileCounterFixture(t *testing.T) {
	reg, topLevel, err := fixture.Load("testdata/counter.yaml")
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	result, failure := driver.Compile(reg, topLevel)
	if failure != nil {
		t.Fatalf("Compile failed in phase %s: %v", failure.Phase, failure.Err)
	}

	if result.Stats.ClassCount != 1 {
		t.Errorf("ClassCount = %d, want 1", result.Stats.ClassCount)
	}
	if result.Stats.MethodCount != 1 {
		t.Errorf("MethodCount = %d, want 1", result.Stats.MethodCount)
	}
	if result.Stats.FieldCount != 1 {
		t.Errorf("FieldCount = %d, want 1", result.Stats.FieldCount)
	}

	snaps.MatchSnapshot(t, "counter_output", result.Output)
}

func TestCheckCounterFixtureStopsBeforeLowering(t *testing.T) {
	reg, topLevel, err := fixture.Load("testdata/counter.yaml")
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	if failure := driver.Check(reg, topLevel); failure != nil {
		t.Fatalf("Check failed in phase %s: %v", failure.Phase, failure.Err)
	}
}
