package verilog

import (
	"math/big"
	"strconv"

	"rtlgen/src/lir"
	"rtlgen/src/netlist"
)

const sparseThresholdBits = 1 << 29 // 2^29, spec.md §4.4's "mark /* sparse */" cutoff.

// memoryLowering is the C4 output: text destined for each of the module
// lowerer's buffers (declares, continuous assigns, initials, per-clock
// always-block bodies), kept separate so the caller (C5) can splice them
// into its own ordered streams.
type memoryLowering struct {
	Declares    []string
	Assigns     []string
	Initials    []string
	ClockOrder  []string            // first-seen order of ClockBodies keys, for deterministic output
	ClockBodies map[string][]string // keyed by the rendered clock expression token
}

// addClockBody appends lines to the body for clkTok, recording clkTok in
// ClockOrder the first time it is seen so iteration order matches insertion
// order instead of Go's randomized map order.
func (out *memoryLowering) addClockBody(clkTok string, lines ...string) {
	if _, ok := out.ClockBodies[clkTok]; !ok {
		out.ClockOrder = append(out.ClockOrder, clkTok)
	}
	out.ClockBodies[clkTok] = append(out.ClockBodies[clkTok], lines...)
}

// lowerMemory implements C4 (spec.md §4.4). fresh mints the fresh rand_string
// names used by RANDOMIZE_MEM_INIT; the init loop counts with the module's
// shared "integer initvar;" that LowerModule declares.
func lowerMemory(mem *lir.Memory, nl *netlist.Netlist, fresh func(prefix string) string) (*memoryLowering, error) {
	if mem.ReadLatency != 0 || mem.WriteLatency != 1 {
		return nil, unsupported("memory %q: only readLatency=0, writeLatency=1 is supported (got %d,%d)",
			mem.Name, mem.ReadLatency, mem.WriteLatency)
	}

	out := &memoryLowering{ClockBodies: make(map[string][]string)}

	vec := lir.VectorType{Elem: mem.DataType, Size: mem.Depth}
	sparse := ""
	if mem.Depth*mem.DataType.Width > sparseThresholdBits {
		sparse = " /* sparse */"
	}
	out.Declares = append(out.Declares, "reg"+sparse+" "+vec.VerilogRange()+" "+mem.Name+vec.VerilogIndexRange()+";")

	initVar := "initvar"
	randName := fresh("_RAND")
	out.Initials = append(out.Initials,
		"`ifdef RANDOMIZE_MEM_INIT",
		"for ("+initVar+" = 0; "+initVar+" < "+strconv.Itoa(mem.Depth)+"; "+initVar+" = "+initVar+" + 1) begin",
		"  "+mem.Name+"["+initVar+"] = "+randName+";",
		"end",
		"`endif",
	)

	for _, r := range mem.Readers {
		if err := lowerReadPort(out, mem, r, nl, fresh); err != nil {
			return nil, err
		}
	}
	for _, wp := range mem.Writers {
		if err := lowerWritePort(out, mem, wp, nl, fresh); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func lowerReadPort(out *memoryLowering, mem *lir.Memory, port string, nl *netlist.Netlist, fresh func(string) string) error {
	addrRef := lir.MemPortField(mem, port, "addr", lir.UIntT(mem.AddrWidth()))
	dataRef := lir.MemPortField(mem, port, "data", mem.DataType)

	out.Declares = append(out.Declares,
		"wire"+dataRef.Typ.VerilogRange()+" "+dataRef.Name+";",
		"wire"+addrRef.Typ.VerilogRange()+" "+addrRef.Name+";")

	addrDrv, _ := nl.Lookup(addrRef)
	if addrDrv == nil {
		return malformed("memory %q read port %q: no driver for addr", mem.Name, port)
	}
	addrTok, err := RenderExpr(addrDrv)
	if err != nil {
		return err
	}
	out.Assigns = append(out.Assigns, "assign "+addrRef.Name+" = "+addrTok+";")

	memPort := mem.Name + "[" + addrRef.Name + "]"
	if mem.IsPowerOfTwoDepth() {
		out.Assigns = append(out.Assigns, "assign "+dataRef.Name+" = "+memPort+";")
		return nil
	}

	randName := fresh("_RAND")
	depthLit := uintHex(mem.AddrWidth(), big.NewInt(int64(mem.Depth)))
	out.Assigns = append(out.Assigns,
		"`ifndef RANDOMIZE_GARBAGE_ASSIGN",
		"assign "+dataRef.Name+" = "+memPort+";",
		"`else",
		"assign "+dataRef.Name+" = ("+addrRef.Name+" >= "+depthLit+") ? "+randName+" : "+memPort+";",
		"`endif",
	)
	return nil
}

func lowerWritePort(out *memoryLowering, mem *lir.Memory, port string, nl *netlist.Netlist, fresh func(string) string) error {
	addrRef := lir.MemPortField(mem, port, "addr", lir.UIntT(mem.AddrWidth()))
	dataRef := lir.MemPortField(mem, port, "data", mem.DataType)
	enRef := lir.MemPortField(mem, port, "en", lir.UIntT(1))
	maskRef := lir.MemPortField(mem, port, "mask", lir.UIntT(1))
	clkRef := lir.MemPortField(mem, port, "clk", lir.ClockT())

	out.Declares = append(out.Declares,
		"wire"+dataRef.Typ.VerilogRange()+" "+dataRef.Name+";",
		"wire"+addrRef.Typ.VerilogRange()+" "+addrRef.Name+";",
		"wire "+enRef.Name+";",
		"wire "+maskRef.Name+";")

	fields := []*lir.Reference{addrRef, dataRef, enRef, maskRef}
	for _, f := range fields {
		drv, ok := nl.Lookup(f)
		if !ok {
			return malformed("memory %q write port %q: no driver for %s", mem.Name, port, f.Name)
		}
		tok, err := RenderExpr(drv)
		if err != nil {
			return err
		}
		out.Assigns = append(out.Assigns, "assign "+f.Name+" = "+tok+";")
	}

	clkDrv, ok := nl.Lookup(clkRef)
	if !ok {
		return malformed("memory %q write port %q: no driver for clk", mem.Name, port)
	}
	clkTok, err := RenderExpr(clkDrv)
	if err != nil {
		return err
	}

	out.addClockBody(clkTok,
		"if ("+enRef.Name+" & "+maskRef.Name+") begin",
		"  "+mem.Name+"["+addrRef.Name+"] <= "+dataRef.Name+";",
		"end")
	return nil
}
