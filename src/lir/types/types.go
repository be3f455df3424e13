// Package types defines LIR ground types, reference kinds, primitive
// operations and the other small closed enumerations shared by the lir and
// verilog packages.
package types

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// GroundKind identifies the four non-aggregate LIR types.
type GroundKind uint

// Direction identifies a port's signal direction.
type Direction uint

// ReferenceKind identifies what a Reference resolves to: a declaration that
// the netlist can rewrite (Wire, Node) or one that it must not (Port,
// Register, Instance, Memory).
type ReferenceKind uint

// PrimOp identifies a primitive operation applied to LIR expressions.
type PrimOp uint

// ---------------------
// ----- Constants -----
// ---------------------

const (
	UInt GroundKind = iota // UInt is an unsigned integer of some width.
	SInt                   // SInt is a signed (two's complement) integer of some width.
	Clock                  // Clock is a single-bit clock signal.
	Analog                 // Analog is a bidirectional net of some width; lowers to Verilog inout.
)

const (
	Input  Direction = iota // Input marks a port driven from outside the module.
	Output                  // Output marks a port driven from inside the module.
)

const (
	PortRef ReferenceKind = iota // PortRef identifies a module port.
	WireRef                      // WireRef identifies a DefWire target; resolved through the netlist.
	NodeRef                      // NodeRef identifies a DefNode target; resolved through the netlist.
	RegisterRef                  // RegisterRef identifies a DefRegister target; never rewritten.
	InstanceRef                  // InstanceRef identifies a sub-module instance output; never rewritten.
	MemoryRef                    // MemoryRef identifies a memory port field; never rewritten.
)

const (
	Add PrimOp = iota
	Sub
	Mul
	Div
	Rem
	Addw
	Subw
	Lt
	Leq
	Gt
	Geq
	Eq
	Neq
	And
	Or
	Xor
	Not
	Andr
	Orr
	Xorr
	Shl
	Shlw
	Shr
	Dshl
	Dshlw
	Dshr
	Pad
	Neg
	Cvt
	AsUInt
	AsSInt
	AsClock
	Cat
	Bits
	Head
	Tail
)

// -------------------
// ----- Globals -----
// -------------------

var groundKindNames = [...]string{"UInt", "SInt", "Clock", "Analog"}

var directionNames = [...]string{"Input", "Output"}

var referenceKindNames = [...]string{"Port", "Wire", "Node", "Register", "Instance", "Memory"}

var primOpNames = [...]string{
	"add", "sub", "mul", "div", "rem", "addw", "subw",
	"lt", "leq", "gt", "geq", "eq", "neq",
	"and", "or", "xor", "not", "andr", "orr", "xorr",
	"shl", "shlw", "shr", "dshl", "dshlw", "dshr",
	"pad", "neg", "cvt", "asUInt", "asSInt", "asClock",
	"cat", "bits", "head", "tail",
}

// ---------------------
// ----- Functions -----
// ---------------------

// String renders the GroundKind for diagnostics and LIR text.
func (k GroundKind) String() string {
	return groundKindNames[k]
}

// String renders the Direction for diagnostics and LIR text.
func (d Direction) String() string {
	return directionNames[d]
}

// String renders the ReferenceKind for diagnostics.
func (k ReferenceKind) String() string {
	return referenceKindNames[k]
}

// String renders the PrimOp mnemonic used in LIR text.
func (op PrimOp) String() string {
	return primOpNames[op]
}

// IsWireLike reports whether a reference of this kind is resolved through
// the netlist (Wire, Node) rather than left as-is (Port, Register, Instance,
// Memory).
func (k ReferenceKind) IsWireLike() bool {
	return k == WireRef || k == NodeRef
}
