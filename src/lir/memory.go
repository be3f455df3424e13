package lir

import (
	"fmt"

	"rtlgen/src/lir/types"
)

// Memory describes a synchronous memory with independent read and write
// ports. Readwrite ports must already be split into a read port and a write
// port upstream; the emitter requires ReadLatency == 0 and WriteLatency == 1.
type Memory struct {
	Name         string
	DataType     GroundType
	Depth        int
	Readers      []string
	Writers      []string
	ReadLatency  int
	WriteLatency int
}

// IsPowerOfTwoDepth reports whether m.Depth is a power of two (the
// unguarded-combinational-read case).
func (m *Memory) IsPowerOfTwoDepth() bool {
	return m.Depth > 0 && m.Depth&(m.Depth-1) == 0
}

// AddrWidth returns the number of bits needed to address m.Depth entries.
func (m *Memory) AddrWidth() int {
	w := 0
	for n := m.Depth - 1; n > 0; n >>= 1 {
		w++
	}
	if w == 0 {
		w = 1
	}
	return w
}

// MemPortField returns a MemoryRef-kind reference to the synthesized wire for one field
// ("addr", "data", "en", "mask", "clk") of a read or write port. Every
// memory port field lowers to its own declared wire, named by joining
// memory name, port name and field with underscores — the same convention
// LoweredName applies to an ordinary Subfield chain.
func MemPortField(mem *Memory, port, field string, typ GroundType) *Reference {
	return &Reference{
		Name: fmt.Sprintf("%s_%s_%s", mem.Name, port, field),
		Ref:  types.MemoryRef,
		Typ:  typ,
	}
}
