package lir

import (
	"fmt"
	"math/big"
	"strings"

	"rtlgen/src/lir/types"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// ExprKind discriminates the closed set of Expression implementations.
type ExprKind uint

const (
	KindReference ExprKind = iota
	KindSubfield
	KindSubindex
	KindSubAccess
	KindUIntLiteral
	KindSIntLiteral
	KindMux
	KindValidIf
	KindPrimOp
	KindRandom
)

// Expression is the closed sum type of LIR expressions. Every case the
// emitter must handle is enumerated by ExprKind; dispatch is by exhaustive
// switch over Kind(), never by open interface assertion chains.
type Expression interface {
	Kind() ExprKind
	Type() GroundType
	String() string // LIR textual form.
	Key() string    // canonicalized value-equality key, used by the netlist.
}

// Reference names a Port, Wire, Node, Register, Instance or Memory declared
// somewhere in the enclosing module.
type Reference struct {
	Name string
	Ref  types.ReferenceKind
	Typ  GroundType
}

// Subfield projects a named field out of an aggregate-valued reference chain
// (instance output bundles, memory port bundles). Only ever nests over
// Reference/Subfield/Subindex per the "low" LIR form.
type Subfield struct {
	Expr  Expression
	Field string
	Typ   GroundType
}

// Subindex projects a statically known element out of a vector-valued
// reference chain.
type Subindex struct {
	Expr  Expression
	Index int
	Typ   GroundType
}

// SubAccess projects a dynamically indexed element; unlike Subfield/
// Subindex it cannot be folded into a single flattened identifier.
type SubAccess struct {
	Expr Expression
	Idx  Expression
	Typ  GroundType
}

// UIntLiteral is an unsigned literal of explicit width.
type UIntLiteral struct {
	Value *big.Int
	Width int
}

// SIntLiteral is a signed literal of explicit width.
type SIntLiteral struct {
	Value *big.Int // may be negative
	Width int
}

// Mux selects between two values based on a one-bit condition.
type Mux struct {
	Cond Expression
	Tru  Expression
	Fls  Expression
	Typ  GroundType
}

// ValidIf asserts a value is only meaningful when Cond holds; at the
// Verilog level the condition is dropped (invalid values randomize via the
// RANDOMIZE_* macros instead).
type ValidIf struct {
	Cond Expression
	Val  Expression
	Typ  GroundType
}

// PrimOpExpr applies a primitive operation to expression arguments plus
// optional integer constant arguments (e.g. shift amount, bit indices).
type PrimOpExpr struct {
	Op     types.PrimOp
	Args   []Expression
	Consts []int64
	Typ    GroundType
}

// Random produces a randomized value of a given width, used for simulation
// initialization and garbage reads.
type Random struct {
	Typ GroundType
}

// ---------------------
// ----- Functions -----
// ---------------------

func (e *Reference) Kind() ExprKind   { return KindReference }
func (e *Reference) Type() GroundType { return e.Typ }
func (e *Reference) String() string   { return e.Name }
func (e *Reference) Key() string      { return "ref:" + e.Name }

func (e *Subfield) Kind() ExprKind   { return KindSubfield }
func (e *Subfield) Type() GroundType { return e.Typ }
func (e *Subfield) String() string   { return e.Expr.String() + "." + e.Field }
func (e *Subfield) Key() string      { return e.Expr.Key() + ".f:" + e.Field }

func (e *Subindex) Kind() ExprKind   { return KindSubindex }
func (e *Subindex) Type() GroundType { return e.Typ }
func (e *Subindex) String() string   { return fmt.Sprintf("%s[%d]", e.Expr.String(), e.Index) }
func (e *Subindex) Key() string      { return fmt.Sprintf("%s.i:%d", e.Expr.Key(), e.Index) }

func (e *SubAccess) Kind() ExprKind   { return KindSubAccess }
func (e *SubAccess) Type() GroundType { return e.Typ }
func (e *SubAccess) String() string   { return fmt.Sprintf("%s[%s]", e.Expr.String(), e.Idx.String()) }
func (e *SubAccess) Key() string      { return fmt.Sprintf("%s.a:%s", e.Expr.Key(), e.Idx.Key()) }

func (e *UIntLiteral) Kind() ExprKind   { return KindUIntLiteral }
func (e *UIntLiteral) Type() GroundType { return UIntT(e.Width) }
func (e *UIntLiteral) String() string {
	return fmt.Sprintf("UInt<%d>(%s)", e.Width, e.Value.String())
}
func (e *UIntLiteral) Key() string { return fmt.Sprintf("uint:%d:%s", e.Width, e.Value.String()) }

func (e *SIntLiteral) Kind() ExprKind   { return KindSIntLiteral }
func (e *SIntLiteral) Type() GroundType { return SIntT(e.Width) }
func (e *SIntLiteral) String() string {
	return fmt.Sprintf("SInt<%d>(%s)", e.Width, e.Value.String())
}
func (e *SIntLiteral) Key() string { return fmt.Sprintf("sint:%d:%s", e.Width, e.Value.String()) }

func (e *Mux) Kind() ExprKind   { return KindMux }
func (e *Mux) Type() GroundType { return e.Typ }
func (e *Mux) String() string {
	return fmt.Sprintf("mux(%s, %s, %s)", e.Cond.String(), e.Tru.String(), e.Fls.String())
}
func (e *Mux) Key() string {
	return fmt.Sprintf("mux(%s,%s,%s)", e.Cond.Key(), e.Tru.Key(), e.Fls.Key())
}

func (e *ValidIf) Kind() ExprKind   { return KindValidIf }
func (e *ValidIf) Type() GroundType { return e.Typ }
func (e *ValidIf) String() string {
	return fmt.Sprintf("validif(%s, %s)", e.Cond.String(), e.Val.String())
}
func (e *ValidIf) Key() string { return fmt.Sprintf("validif(%s,%s)", e.Cond.Key(), e.Val.Key()) }

func (e *PrimOpExpr) Kind() ExprKind   { return KindPrimOp }
func (e *PrimOpExpr) Type() GroundType { return e.Typ }
func (e *PrimOpExpr) String() string {
	sb := strings.Builder{}
	sb.WriteString(e.Op.String())
	sb.WriteRune('(')
	for i, a := range e.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	for _, c := range e.Consts {
		sb.WriteString(", ")
		fmt.Fprintf(&sb, "%d", c)
	}
	sb.WriteRune(')')
	return sb.String()
}
func (e *PrimOpExpr) Key() string {
	sb := strings.Builder{}
	sb.WriteString(e.Op.String())
	for _, a := range e.Args {
		sb.WriteRune(':')
		sb.WriteString(a.Key())
	}
	for _, c := range e.Consts {
		fmt.Fprintf(&sb, ":c%d", c)
	}
	return sb.String()
}

func (e *Random) Kind() ExprKind   { return KindRandom }
func (e *Random) Type() GroundType { return e.Typ }
func (e *Random) String() string   { return fmt.Sprintf("rand(%d)", e.Typ.Width) }
func (e *Random) Key() string      { return fmt.Sprintf("rand:%d", e.Typ.Width) }

// LoweredName computes the flattened Verilog identifier for a reference
// chain of Reference/Subfield/Subindex nodes, joining the dotted path with
// underscores. SubAccess has no flattened name; callers must render it as
// "<loweredName(expr)>[<loweredName(idx)>]" instead of calling LoweredName
// on it directly.
func LoweredName(e Expression) string {
	switch v := e.(type) {
	case *Reference:
		return v.Name
	case *Subfield:
		return LoweredName(v.Expr) + "_" + v.Field
	case *Subindex:
		return fmt.Sprintf("%s_%d", LoweredName(v.Expr), v.Index)
	default:
		panic(fmt.Sprintf("lir: LoweredName: %T is not a subfield-lowerable reference chain", e))
	}
}

// RefKindOf returns the ReferenceKind of the base Reference at the root of a
// Reference/Subfield/Subindex chain.
func RefKindOf(e Expression) types.ReferenceKind {
	switch v := e.(type) {
	case *Reference:
		return v.Ref
	case *Subfield:
		return RefKindOf(v.Expr)
	case *Subindex:
		return RefKindOf(v.Expr)
	default:
		panic(fmt.Sprintf("lir: RefKindOf: %T is not a subfield-lowerable reference chain", e))
	}
}

// IsPrimOpArg reports whether e is a permitted primitive-op argument under
// the low-IR invariant of spec.md §4.2: a literal, a reference, or a
// subfield. Shared by the verilog emitter (which rejects violations as
// Malformed-IR) and the prep pre-pass (which lifts violations into fresh
// nodes so the invariant holds by the time the emitter sees them).
func IsPrimOpArg(e Expression) bool {
	switch e.Kind() {
	case KindUIntLiteral, KindSIntLiteral, KindReference, KindSubfield:
		return true
	default:
		return false
	}
}

// IsRefChain reports whether e is a Reference/Subfield/Subindex chain,
// i.e. a candidate for netlist resolution and LoweredName.
func IsRefChain(e Expression) bool {
	switch e.(type) {
	case *Reference, *Subfield, *Subindex:
		return true
	default:
		return false
	}
}
