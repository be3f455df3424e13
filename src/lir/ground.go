// Package lir provides the register-transfer intermediate representation
// consumed by the Verilog back end: circuits, modules, ports, statements and
// expressions in the "low" normal form (ground types only, no bundles, no
// complex primop arguments, split readwrite memory ports).
package lir

import (
	"fmt"

	"rtlgen/src/lir/types"
)

// GroundType is a non-aggregate LIR type: UInt/SInt/Clock/Analog plus a bit
// width. Width is meaningless for Clock.
type GroundType struct {
	Kind  types.GroundKind
	Width int
}

// VectorType is an array of GroundType elements, used only for memory
// register-array declarations (never inside an expression).
type VectorType struct {
	Elem GroundType
	Size int
}

// UIntT is a convenience constructor for a UInt GroundType of width w.
func UIntT(w int) GroundType { return GroundType{Kind: types.UInt, Width: w} }

// SIntT is a convenience constructor for a SInt GroundType of width w.
func SIntT(w int) GroundType { return GroundType{Kind: types.SInt, Width: w} }

// ClockT is the singleton Clock GroundType.
func ClockT() GroundType { return GroundType{Kind: types.Clock} }

// AnalogT is a convenience constructor for an Analog GroundType of width w.
func AnalogT(w int) GroundType { return GroundType{Kind: types.Analog, Width: w} }

// IsSigned reports whether t is SInt.
func (t GroundType) IsSigned() bool {
	return t.Kind == types.SInt
}

// String renders t the way LIR text does: "UInt<8>", "SInt<4>", "Clock".
func (t GroundType) String() string {
	switch t.Kind {
	case types.Clock:
		return "Clock"
	case types.Analog:
		return fmt.Sprintf("Analog<%d>", t.Width)
	default:
		return fmt.Sprintf("%s<%d>", t.Kind.String(), t.Width)
	}
}

// VerilogRange renders the Verilog bit-range suffix for a GroundType: empty
// for a single bit or Clock, "[w-1:0]" otherwise.
func (t GroundType) VerilogRange() string {
	if t.Kind == types.Clock || t.Width <= 1 {
		return ""
	}
	return fmt.Sprintf("[%d:0]", t.Width-1)
}

// String renders a VectorType the way LIR text does: "UInt<8>[16]".
func (t VectorType) String() string {
	return fmt.Sprintf("%s[%d]", t.Elem.String(), t.Size)
}

// VerilogRange renders only the element range, e.g. "[7:0]" for UInt<8>
// elements; the index range comes from VerilogIndexRange.
func (t VectorType) VerilogRange() string {
	return t.Elem.VerilogRange()
}

// VerilogIndexRange renders the declaration-time index range of a
// VectorType, e.g. "[15:0]" for 16 entries.
func (t VectorType) VerilogIndexRange() string {
	return fmt.Sprintf("[%d:0]", t.Size-1)
}
