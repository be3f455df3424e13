package lir

import (
	"math/big"
	"testing"

	"rtlgen/src/lir/types"
)

func TestLoweredNameFlattensSubfieldAndSubindexChains(t *testing.T) {
	base := &Reference{Name: "io", Ref: types.PortRef, Typ: UIntT(8)}
	sub := &Subfield{Expr: base, Field: "bits", Typ: UIntT(8)}
	idx := &Subindex{Expr: sub, Index: 3, Typ: UIntT(1)}

	if got := LoweredName(idx); got != "io_bits_3" {
		t.Errorf("got %q, want io_bits_3", got)
	}
}

func TestRefKindOfFollowsChainToRoot(t *testing.T) {
	base := &Reference{Name: "r", Ref: types.RegisterRef, Typ: UIntT(8)}
	sub := &Subfield{Expr: base, Field: "f", Typ: UIntT(8)}
	if got := RefKindOf(sub); got != types.RegisterRef {
		t.Errorf("got %v, want RegisterRef", got)
	}
}

func TestIsPrimOpArgAcceptsLiteralsRefsAndSubfields(t *testing.T) {
	ref := &Reference{Name: "x", Ref: types.PortRef, Typ: UIntT(8)}
	cases := []struct {
		e    Expression
		want bool
	}{
		{&UIntLiteral{Width: 8, Value: big.NewInt(1)}, true},
		{&SIntLiteral{Width: 8, Value: big.NewInt(-1)}, true},
		{ref, true},
		{&Subfield{Expr: ref, Field: "f", Typ: UIntT(8)}, true},
		{&Subindex{Expr: ref, Index: 0, Typ: UIntT(1)}, false},
		{&Mux{Cond: ref, Tru: ref, Fls: ref, Typ: UIntT(8)}, false},
	}
	for _, c := range cases {
		if got := IsPrimOpArg(c.e); got != c.want {
			t.Errorf("IsPrimOpArg(%T) = %v, want %v", c.e, got, c.want)
		}
	}
}

func TestIsRefChainRejectsComputedExpressions(t *testing.T) {
	ref := &Reference{Name: "x", Ref: types.PortRef, Typ: UIntT(8)}
	if !IsRefChain(ref) {
		t.Error("expected a bare Reference to be a ref chain")
	}
	if !IsRefChain(&Subfield{Expr: ref, Field: "f", Typ: UIntT(8)}) {
		t.Error("expected a Subfield to be a ref chain")
	}
	if IsRefChain(&PrimOpExpr{Op: types.Not, Args: []Expression{ref}, Typ: UIntT(8)}) {
		t.Error("expected a PrimOpExpr not to be a ref chain")
	}
}

func TestUIntLiteralKeyIsValueBased(t *testing.T) {
	a := &UIntLiteral{Width: 8, Value: big.NewInt(5)}
	b := &UIntLiteral{Width: 8, Value: big.NewInt(5)}
	if a.Key() != b.Key() {
		t.Errorf("expected two distinct UIntLiteral pointers with equal value to share a Key, got %q vs %q", a.Key(), b.Key())
	}
	c := &UIntLiteral{Width: 4, Value: big.NewInt(5)}
	if a.Key() == c.Key() {
		t.Errorf("expected width to participate in Key, got equal keys %q", a.Key())
	}
}
