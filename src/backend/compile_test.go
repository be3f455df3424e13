package backend

import (
	"strings"
	"testing"

	"rtlgen/src/artifact"
)

func TestCompileSequentialProducesOneArtifactPerModule(t *testing.T) {
	c := Fixtures()
	arts, err := Compile(c, Options{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(arts) != 3 {
		t.Fatalf("got %d artifacts, want 3", len(arts))
	}
	for _, a := range arts {
		if a.Kind != artifact.Verilog {
			t.Errorf("artifact %s: got kind %v, want Verilog", a.Name, a.Kind)
		}
		if !strings.Contains(a.Text, "module "+a.Name+"(") {
			t.Errorf("artifact %s: missing module header, got:\n%s", a.Name, a.Text)
		}
	}
}

// TestCompileParallelMatchesSequential exercises the residual-split worker
// pool: splitting 3 modules across 2 threads gives one thread 2 modules and
// the other 1, and the result must not depend on which thread finishes
// first.
func TestCompileParallelMatchesSequential(t *testing.T) {
	seq, err := Compile(Fixtures(), Options{Threads: 1})
	if err != nil {
		t.Fatalf("sequential Compile: %v", err)
	}
	par, err := Compile(Fixtures(), Options{Threads: 2})
	if err != nil {
		t.Fatalf("parallel Compile: %v", err)
	}
	if len(seq) != len(par) {
		t.Fatalf("got %d sequential artifacts, %d parallel", len(seq), len(par))
	}
	for i := range seq {
		if seq[i].Name != par[i].Name || seq[i].Text != par[i].Text {
			t.Errorf("artifact %d differs: sequential %q, parallel %q", i, seq[i].Name, par[i].Name)
		}
	}
}

func TestCompileEmitLIRAddsCircuitAndPerModuleArtifacts(t *testing.T) {
	arts, err := Compile(Fixtures(), Options{EmitLIR: true})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	// 3 Verilog + 1 circuit-level LIR + 3 per-module LIR = 7.
	if len(arts) != 7 {
		t.Fatalf("got %d artifacts, want 7", len(arts))
	}
	var sawCircuit bool
	for _, a := range arts {
		if a.Kind == artifact.LIR && a.Level == artifact.CircuitLevel {
			sawCircuit = true
		}
	}
	if !sawCircuit {
		t.Errorf("expected a circuit-level LIR artifact")
	}
}
