package verilog

import (
	"testing"

	"rtlgen/src/lir"
	"rtlgen/src/lir/types"
)

// TestSignedAdd implements spec scenario S1: add(x, y), x and y both
// SInt<4>, each operand cast_if'd to signed.
func TestSignedAdd(t *testing.T) {
	x := &lir.Reference{Name: "x", Ref: types.PortRef, Typ: lir.SIntT(4)}
	y := &lir.Reference{Name: "y", Ref: types.PortRef, Typ: lir.SIntT(4)}
	op := &lir.PrimOpExpr{Op: types.Add, Args: []lir.Expression{x, y}, Typ: lir.SIntT(5)}

	got, err := translatePrimOp(op)
	if err != nil {
		t.Fatalf("translatePrimOp: %v", err)
	}
	want := "$signed(x) + $signed(y)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestConstRightShift implements spec scenario S2: shr(x, 2), x: UInt<8>.
func TestConstRightShift(t *testing.T) {
	x := &lir.Reference{Name: "x", Ref: types.PortRef, Typ: lir.UIntT(8)}
	op := &lir.PrimOpExpr{Op: types.Shr, Args: []lir.Expression{x}, Consts: []int64{2}, Typ: lir.UIntT(6)}

	got, err := translatePrimOp(op)
	if err != nil {
		t.Fatalf("translatePrimOp: %v", err)
	}
	want := "x[7:2]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestShrOverflowIsUnsupported(t *testing.T) {
	x := &lir.Reference{Name: "x", Ref: types.PortRef, Typ: lir.UIntT(4)}
	op := &lir.PrimOpExpr{Op: types.Shr, Args: []lir.Expression{x}, Consts: []int64{4}, Typ: lir.UIntT(0)}

	_, err := translatePrimOp(op)
	if err == nil {
		t.Fatal("expected an error for shr amount >= operand width")
	}
	if !unsupportedErr(err) {
		t.Errorf("expected ErrUnsupportedIR, got %v", err)
	}
}

func TestPrimOpArgMustBeLiteralRefOrSubfield(t *testing.T) {
	inner := &lir.PrimOpExpr{Op: types.Add,
		Args: []lir.Expression{
			&lir.UIntLiteral{Width: 4, Value: bigZero()},
			&lir.UIntLiteral{Width: 4, Value: bigZero()},
		},
		Typ: lir.UIntT(4),
	}
	op := &lir.PrimOpExpr{Op: types.Not, Args: []lir.Expression{inner}, Typ: lir.UIntT(4)}

	_, err := translatePrimOp(op)
	if err == nil {
		t.Fatal("expected Malformed-IR for a non-literal/ref/subfield primop argument")
	}
	if !malformedErr(err) {
		t.Errorf("expected ErrMalformedIR, got %v", err)
	}
}

func TestCatConcatenatesCastArgs(t *testing.T) {
	a := &lir.Reference{Name: "a", Ref: types.PortRef, Typ: lir.UIntT(4)}
	b := &lir.Reference{Name: "b", Ref: types.PortRef, Typ: lir.UIntT(4)}
	op := &lir.PrimOpExpr{Op: types.Cat, Args: []lir.Expression{a, b}, Typ: lir.UIntT(8)}

	got, err := translatePrimOp(op)
	if err != nil {
		t.Fatalf("translatePrimOp: %v", err)
	}
	if got != "{a, b}" {
		t.Errorf("got %q, want {a, b}", got)
	}
}

func TestBitsSingleBit(t *testing.T) {
	a := &lir.Reference{Name: "a", Ref: types.PortRef, Typ: lir.UIntT(8)}
	op := &lir.PrimOpExpr{Op: types.Bits, Args: []lir.Expression{a}, Consts: []int64{3, 3}, Typ: lir.UIntT(1)}
	got, err := translatePrimOp(op)
	if err != nil {
		t.Fatalf("translatePrimOp: %v", err)
	}
	if got != "a[3]" {
		t.Errorf("got %q, want a[3]", got)
	}
}
