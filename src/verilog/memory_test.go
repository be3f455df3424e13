package verilog

import (
	"strings"
	"testing"

	"rtlgen/src/lir"
	"rtlgen/src/lir/types"
	"rtlgen/src/namespace"
	"rtlgen/src/netlist"
)

// TestNonPowerOfTwoMemoryRead implements spec scenario S4: depth 6 (not a
// power of two), reader "p", guarded RANDOMIZE_GARBAGE_ASSIGN read with the
// depth rendered as a sized literal matching the address width (3 bits).
func TestNonPowerOfTwoMemoryRead(t *testing.T) {
	mem := &lir.Memory{
		Name: "ram", DataType: lir.UIntT(8), Depth: 6,
		Readers: []string{"p"}, Writers: nil,
		ReadLatency: 0, WriteLatency: 1,
	}
	addr := &lir.Reference{Name: "addr", Ref: types.PortRef, Typ: lir.UIntT(3)}
	nl := netlist.New()
	nl.Set(lir.MemPortField(mem, "p", "addr", lir.UIntT(3)), addr)

	ns := namespace.New(nil)
	out, err := lowerMemory(mem, nl, ns.Fresh)
	if err != nil {
		t.Fatalf("lowerMemory: %v", err)
	}

	joined := strings.Join(out.Assigns, "\n")
	if !strings.Contains(joined, "assign p_addr = addr;") {
		t.Errorf("missing addr assign, got:\n%s", joined)
	}
	if !strings.Contains(joined, "`ifndef RANDOMIZE_GARBAGE_ASSIGN") {
		t.Errorf("missing RANDOMIZE_GARBAGE_ASSIGN guard, got:\n%s", joined)
	}
	if !strings.Contains(joined, "p_addr >= 3'h6") {
		t.Errorf("expected guard comparing against 3'h6, got:\n%s", joined)
	}
	if !strings.Contains(joined, "`else") {
		t.Errorf("missing guarded fallback, got:\n%s", joined)
	}
}

func TestPowerOfTwoMemoryReadIsUnconditional(t *testing.T) {
	mem := &lir.Memory{
		Name: "ram", DataType: lir.UIntT(8), Depth: 8,
		Readers: []string{"p"}, Writers: nil,
		ReadLatency: 0, WriteLatency: 1,
	}
	addr := &lir.Reference{Name: "addr", Ref: types.PortRef, Typ: lir.UIntT(3)}
	nl := netlist.New()
	nl.Set(lir.MemPortField(mem, "p", "addr", lir.UIntT(3)), addr)

	ns := namespace.New(nil)
	out, err := lowerMemory(mem, nl, ns.Fresh)
	if err != nil {
		t.Fatalf("lowerMemory: %v", err)
	}
	joined := strings.Join(out.Assigns, "\n")
	if strings.Contains(joined, "RANDOMIZE_GARBAGE_ASSIGN") {
		t.Errorf("power-of-two depth must not be garbage-guarded, got:\n%s", joined)
	}
	if !strings.Contains(joined, "assign p_data = ram[p_addr];") {
		t.Errorf("expected unconditional read assign, got:\n%s", joined)
	}
}

func TestMemoryRejectsUnsupportedLatency(t *testing.T) {
	mem := &lir.Memory{Name: "m", DataType: lir.UIntT(8), Depth: 4, ReadLatency: 1, WriteLatency: 1}
	ns := namespace.New(nil)
	_, err := lowerMemory(mem, netlist.New(), ns.Fresh)
	if err == nil || !unsupportedErr(err) {
		t.Fatalf("expected ErrUnsupportedIR, got %v", err)
	}
}
