package lir

import (
	"testing"

	"rtlgen/src/lir/types"
)

func TestCollectNamesGathersPortsAndBodyDeclarations(t *testing.T) {
	m := &InternalModule{
		Name: "M",
		Ports: []*Port{
			{Name: "clock", Dir: types.Input, Typ: ClockT()},
			{Name: "out", Dir: types.Output, Typ: UIntT(8)},
		},
		Body: &Block{Stmts: []Statement{
			&DefWire{Name: "w", Typ: UIntT(8)},
			&DefRegister{Name: "r", Typ: UIntT(8)},
			&DefNode{Name: "n", Typ: UIntT(8)},
			&DefInstance{Name: "inst", Module: "Other"},
			&DefMemory{Mem: &Memory{Name: "mem", DataType: UIntT(8), Depth: 4}},
		}},
	}

	got := CollectNames(m)
	want := []string{"clock", "out", "w", "r", "n", "inst", "mem"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGetModuleReturnsNilForUnknownName(t *testing.T) {
	c := &Circuit{Modules: []Module{&InternalModule{Name: "A"}}}
	if c.GetModule("B") != nil {
		t.Error("expected nil for an unknown module name")
	}
	if c.GetModule("A") == nil {
		t.Error("expected to find module A")
	}
}
