package prep

import (
	"math/big"
	"testing"

	"rtlgen/src/lir"
	"rtlgen/src/lir/types"
)

func connectModule(name string, loc, rhs lir.Expression, ports ...*lir.Port) *lir.InternalModule {
	return &lir.InternalModule{
		Name:  name,
		Ports: ports,
		Body:  &lir.Block{Stmts: []lir.Statement{&lir.Connect{Loc: loc, Rhs: rhs}}},
	}
}

func TestModulusCleanupRejectsLiteralZeroDivisor(t *testing.T) {
	x := &lir.Reference{Name: "x", Ref: types.PortRef, Typ: lir.UIntT(8)}
	out := &lir.Reference{Name: "out", Ref: types.PortRef, Typ: lir.UIntT(8)}
	op := &lir.PrimOpExpr{Op: types.Rem, Args: []lir.Expression{x, &lir.UIntLiteral{Width: 8, Value: big.NewInt(0)}}, Typ: lir.UIntT(8)}
	m := connectModule("M", out, op)

	if _, err := ModulusCleanup(m); err == nil {
		t.Fatal("expected an error for rem by literal zero")
	}
}

func TestModulusCleanupNormalizesSignedRemToUnsigned(t *testing.T) {
	x := &lir.Reference{Name: "x", Ref: types.PortRef, Typ: lir.SIntT(8)}
	y := &lir.Reference{Name: "y", Ref: types.PortRef, Typ: lir.SIntT(8)}
	out := &lir.Reference{Name: "out", Ref: types.PortRef, Typ: lir.SIntT(8)}
	op := &lir.PrimOpExpr{Op: types.Rem, Args: []lir.Expression{x, y}, Typ: lir.SIntT(8)}
	m := connectModule("M", out, op)

	got, err := ModulusCleanup(m)
	if err != nil {
		t.Fatalf("ModulusCleanup: %v", err)
	}
	connect := got.Body.(*lir.Block).Stmts[0].(*lir.Connect)
	wrapped, ok := connect.Rhs.(*lir.PrimOpExpr)
	if !ok || wrapped.Op != types.AsSInt {
		t.Fatalf("expected the Rem to be wrapped in AsSInt, got %#v", connect.Rhs)
	}
	inner, ok := wrapped.Args[0].(*lir.PrimOpExpr)
	if !ok || inner.Op != types.Rem {
		t.Fatalf("expected an inner Rem, got %#v", wrapped.Args[0])
	}
	for _, arg := range inner.Args {
		if arg.Type().IsSigned() {
			t.Errorf("expected unsigned inner Rem operands, got %#v", arg)
		}
	}
}

func TestModulusCleanupLeavesUnsignedRemUntouched(t *testing.T) {
	x := &lir.Reference{Name: "x", Ref: types.PortRef, Typ: lir.UIntT(8)}
	y := &lir.Reference{Name: "y", Ref: types.PortRef, Typ: lir.UIntT(8)}
	out := &lir.Reference{Name: "out", Ref: types.PortRef, Typ: lir.UIntT(8)}
	op := &lir.PrimOpExpr{Op: types.Rem, Args: []lir.Expression{x, y}, Typ: lir.UIntT(8)}
	m := connectModule("M", out, op)

	got, err := ModulusCleanup(m)
	if err != nil {
		t.Fatalf("ModulusCleanup: %v", err)
	}
	connect := got.Body.(*lir.Block).Stmts[0].(*lir.Connect)
	rem, ok := connect.Rhs.(*lir.PrimOpExpr)
	if !ok || rem.Op != types.Rem {
		t.Fatalf("expected an untouched Rem, got %#v", connect.Rhs)
	}
}

func TestWidthWrapPadsMismatchedOperands(t *testing.T) {
	x := &lir.Reference{Name: "x", Ref: types.PortRef, Typ: lir.UIntT(4)}
	y := &lir.Reference{Name: "y", Ref: types.PortRef, Typ: lir.UIntT(8)}
	out := &lir.Reference{Name: "out", Ref: types.PortRef, Typ: lir.UIntT(8)}
	op := &lir.PrimOpExpr{Op: types.Add, Args: []lir.Expression{x, y}, Typ: lir.UIntT(8)}
	m := connectModule("M", out, op)

	got := WidthWrap(m)
	connect := got.Body.(*lir.Block).Stmts[0].(*lir.Connect)
	add := connect.Rhs.(*lir.PrimOpExpr)
	pad, ok := add.Args[0].(*lir.PrimOpExpr)
	if !ok || pad.Op != types.Pad {
		t.Fatalf("expected the narrower operand padded, got %#v", add.Args[0])
	}
	if pad.Type().Width != 8 {
		t.Errorf("expected padded width 8, got %d", pad.Type().Width)
	}
	if add.Args[1] != lir.Expression(y) {
		t.Errorf("expected the already-equal-width operand untouched")
	}
}

func TestWidthWrapLeavesEqualWidthOperandsAlone(t *testing.T) {
	x := &lir.Reference{Name: "x", Ref: types.PortRef, Typ: lir.UIntT(8)}
	y := &lir.Reference{Name: "y", Ref: types.PortRef, Typ: lir.UIntT(8)}
	out := &lir.Reference{Name: "out", Ref: types.PortRef, Typ: lir.UIntT(8)}
	op := &lir.PrimOpExpr{Op: types.Add, Args: []lir.Expression{x, y}, Typ: lir.UIntT(8)}
	m := connectModule("M", out, op)

	got := WidthWrap(m)
	connect := got.Body.(*lir.Block).Stmts[0].(*lir.Connect)
	add := connect.Rhs.(*lir.PrimOpExpr)
	if _, ok := add.Args[0].(*lir.PrimOpExpr); ok {
		t.Errorf("expected no Pad inserted for equal-width operands, got %#v", add.Args[0])
	}
}

func TestIdentifierRenameAvoidsReservedWords(t *testing.T) {
	wire := &lir.Reference{Name: "wire", Ref: types.WireRef, Typ: lir.UIntT(8)}
	out := &lir.Reference{Name: "out", Ref: types.PortRef, Typ: lir.UIntT(8)}
	m := &lir.InternalModule{
		Name:  "M",
		Ports: []*lir.Port{{Name: "out", Dir: types.Output, Typ: lir.UIntT(8)}},
		Body: &lir.Block{Stmts: []lir.Statement{
			&lir.DefWire{Name: "wire", Typ: lir.UIntT(8)},
			&lir.Connect{Loc: out, Rhs: wire},
		}},
	}

	got := IdentifierRename(m)
	defWire := got.Body.(*lir.Block).Stmts[0].(*lir.DefWire)
	if defWire.Name == "wire" {
		t.Fatalf("expected the reserved name \"wire\" to be renamed")
	}
	connect := got.Body.(*lir.Block).Stmts[1].(*lir.Connect)
	ref := connect.Rhs.(*lir.Reference)
	if ref.Name != defWire.Name {
		t.Errorf("expected every reference to the renamed wire to be updated, got %q vs declared %q", ref.Name, defWire.Name)
	}
}

func TestIdentifierRenameIsNoOpWithoutCollisions(t *testing.T) {
	out := &lir.Reference{Name: "out", Ref: types.PortRef, Typ: lir.UIntT(8)}
	m := &lir.InternalModule{
		Name:  "M",
		Ports: []*lir.Port{{Name: "out", Dir: types.Output, Typ: lir.UIntT(8)}},
		Body: &lir.Block{Stmts: []lir.Statement{
			&lir.Connect{Loc: out, Rhs: &lir.UIntLiteral{Width: 8, Value: big.NewInt(0)}},
		}},
	}
	if got := IdentifierRename(m); got != m {
		t.Errorf("expected IdentifierRename to return the same module when nothing collides")
	}
}

func TestRunReturnsNormalizedModule(t *testing.T) {
	x := &lir.Reference{Name: "x", Ref: types.PortRef, Typ: lir.UIntT(4)}
	y := &lir.Reference{Name: "y", Ref: types.PortRef, Typ: lir.UIntT(8)}
	out := &lir.Reference{Name: "out", Ref: types.PortRef, Typ: lir.UIntT(8)}
	op := &lir.PrimOpExpr{Op: types.Add, Args: []lir.Expression{x, y}, Typ: lir.UIntT(8)}
	m := connectModule("M", out, op, &lir.Port{Name: "out", Dir: types.Output, Typ: lir.UIntT(8)})

	got, err := Run(m)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got == nil || got.Name != "M" {
		t.Fatalf("expected a normalized module named M, got %#v", got)
	}
}
