package verilog

import (
	"fmt"
	"strings"

	"rtlgen/src/lir"
	"rtlgen/src/lir/types"
	"rtlgen/src/namespace"
	"rtlgen/src/netlist"
)

// directionToken renders a port's Verilog direction keyword, padded to the
// width of "output" (spec.md §4.5 step 2). Analog ports are inout
// regardless of their declared Direction.
func directionToken(p *lir.Port) string {
	if p.Typ.Kind == types.Analog {
		return "inout "
	}
	if p.Dir == types.Output {
		return "output"
	}
	return "input "
}

// moduleStreams accumulates the ordered text buffers built by the second
// recursive walk over a module body (spec.md §4.5 step 3), ready for
// concatenation by LowerModule's finalization step.
type moduleStreams struct {
	declares     []string
	instDeclares []string
	assigns      []string
	attachSynth  []string
	attachAlias  []string
	initials     []string
	clockOrder   []string
	clockBodies  map[string][]string
}

func newModuleStreams() *moduleStreams {
	return &moduleStreams{clockBodies: make(map[string][]string)}
}

func (s *moduleStreams) appendClock(clkTok string, lines ...string) {
	if _, ok := s.clockBodies[clkTok]; !ok {
		s.clockOrder = append(s.clockOrder, clkTok)
	}
	s.clockBodies[clkTok] = append(s.clockBodies[clkTok], lines...)
}

// LowerModule implements C5 (spec.md §4.5) for one internal module, given
// the full circuit (needed to resolve DefInstance's target module for its
// defname/ports).
func LowerModule(m *lir.InternalModule, c *lir.Circuit) (string, error) {
	ns := namespace.New(lir.CollectNames(m))
	nl := buildNetlist(m.Body, ns)

	portdefs, err := buildPortDefs(m.Ports)
	if err != nil {
		return "", err
	}

	streams := newModuleStreams()
	if err := walkModuleBody(m.Body, streams, nl, ns, c); err != nil {
		return "", err
	}

	w := &Writer{}
	w.Line("module %s(", m.Name)
	w.Indent()
	for i, pd := range portdefs {
		if i < len(portdefs)-1 {
			w.Line("%s,", pd)
		} else {
			w.Line("%s", pd)
		}
	}
	w.Dedent()
	w.Line(");")

	hasBody := len(streams.declares) > 0 || len(streams.instDeclares) > 0 || len(streams.assigns) > 0
	for _, d := range streams.declares {
		w.Line("%s", d)
	}
	for _, d := range streams.instDeclares {
		w.Raw(d)
	}
	for _, a := range streams.assigns {
		w.Line("%s", a)
	}

	if len(streams.attachSynth) > 0 || len(streams.attachAlias) > 0 {
		w.Line("`ifdef SYNTHESIS")
		for _, a := range streams.attachSynth {
			w.Line("%s", a)
		}
		w.Line("`elsif verilator")
		w.Line("`error \"Verilator does not support alias statements, use SYNTHESIS macro to disable them\"")
		w.Line("`else")
		for _, a := range streams.attachAlias {
			w.Line("%s", a)
		}
		w.Line("`endif")
	}

	if len(streams.initials) > 0 {
		w.Line("`ifdef RANDOMIZE")
		w.Line("integer initvar;")
		w.Line("initial begin")
		w.Indent()
		w.Line("`ifndef verilator")
		w.Line("#0.002 begin end")
		w.Line("`endif")
		for _, line := range streams.initials {
			w.Line("%s", line)
		}
		w.Dedent()
		w.Line("end")
		w.Line("`endif")
	}

	for _, clk := range streams.clockOrder {
		body := streams.clockBodies[clk]
		if len(body) == 0 {
			continue
		}
		w.Line("always @(posedge %s) begin", clk)
		w.Indent()
		for _, line := range body {
			w.Line("%s", line)
		}
		w.Dedent()
		w.Line("end")
	}

	if !hasBody {
		w.Line("initial begin end")
	}

	w.Line("endmodule")
	return w.String(), nil
}

func buildPortDefs(ports []*lir.Port) ([]string, error) {
	typeWidth := 0
	typeToks := make([]string, len(ports))
	for i, p := range ports {
		typeToks[i] = p.Typ.VerilogRange()
		if len(typeToks[i]) > typeWidth {
			typeWidth = len(typeToks[i])
		}
	}
	defs := make([]string, len(ports))
	for i, p := range ports {
		t := typeToks[i] + strings.Repeat(" ", typeWidth-len(typeToks[i]))
		defs[i] = fmt.Sprintf("%s %s %s", directionToken(p), t, p.Name)
	}
	return defs, nil
}

func walkModuleBody(s lir.Statement, streams *moduleStreams, nl *netlist.Netlist, ns *namespace.Namespace, c *lir.Circuit) error {
	if s == nil {
		return nil
	}
	switch v := s.(type) {
	case *lir.Block:
		for _, sub := range v.Stmts {
			if err := walkModuleBody(sub, streams, nl, ns, c); err != nil {
				return err
			}
		}
		return nil

	case *lir.Connect:
		return lowerConnect(v, streams)

	case *lir.DefWire:
		streams.declares = append(streams.declares, "wire"+declSuffix(v.Typ)+" "+v.Name+";")
		return nil

	case *lir.DefRegister:
		return lowerDefRegister(v, streams, nl, ns)

	case *lir.IsInvalid:
		return lowerIsInvalid(v, streams, nl, ns)

	case *lir.DefNode:
		tok, err := RenderExpr(v.Value)
		if err != nil {
			return err
		}
		streams.declares = append(streams.declares, "wire"+declSuffix(v.Typ)+" "+v.Name+";")
		streams.assigns = append(streams.assigns, "assign "+v.Name+" = "+tok+";")
		return nil

	case *lir.Stop:
		return lowerStop(v, streams)

	case *lir.Print:
		return lowerPrint(v, streams)

	case *lir.Attach:
		return lowerAttach(v, streams)

	case *lir.DefInstance:
		return lowerDefInstance(v, streams, c)

	case *lir.DefMemory:
		return lowerDefMemory(v, streams, nl, ns)

	case *lir.Skip:
		return nil

	default:
		return internalErr("module lowerer: unhandled statement %T", s)
	}
}

func declSuffix(t lir.GroundType) string {
	r := t.VerilogRange()
	if r == "" {
		return ""
	}
	return " " + r
}

func lowerConnect(v *lir.Connect, streams *moduleStreams) error {
	if !lir.IsRefChain(v.Loc) {
		return nil
	}
	switch lir.RefKindOf(v.Loc) {
	case types.PortRef, types.WireRef, types.InstanceRef:
	default:
		return nil
	}
	lhs, err := RenderExpr(v.Loc)
	if err != nil {
		return err
	}
	rhs, err := RenderExpr(v.Rhs)
	if err != nil {
		return err
	}
	streams.assigns = append(streams.assigns, "assign "+lhs+" = "+rhs+";")
	return nil
}

func lowerDefRegister(v *lir.DefRegister, streams *moduleStreams, nl *netlist.Netlist, ns *namespace.Namespace) error {
	streams.declares = append(streams.declares, "reg"+declSuffix(v.Typ)+" "+v.Name+";")

	sub := &Writer{}
	if err := registerUpdate(sub, v, nl); err != nil {
		return err
	}
	clkTok, err := RenderExpr(v.Clock)
	if err != nil {
		return err
	}
	streams.appendClock(clkTok, splitLines(sub.String())...)

	streams.initials = append(streams.initials, randomizeAssign(v.Name, v.Typ.Width, ns.FreshRand)...)
	return nil
}

func lowerIsInvalid(v *lir.IsInvalid, streams *moduleStreams, nl *netlist.Netlist, ns *namespace.Namespace) error {
	temp, ok := nl.Lookup(v.Target)
	if !ok {
		return internalErr("isInvalid target has no recorded temp in netlist")
	}
	tempRef, ok := temp.(*lir.Reference)
	if !ok {
		return internalErr("isInvalid netlist entry is a %T, not a Reference", temp)
	}

	streams.declares = append(streams.declares, "reg"+declSuffix(tempRef.Typ)+" "+tempRef.Name+";")
	streams.initials = append(streams.initials, randomizeAssign(tempRef.Name, tempRef.Typ.Width, ns.FreshRand)...)

	if lir.IsRefChain(v.Target) {
		switch lir.RefKindOf(v.Target) {
		case types.PortRef, types.WireRef, types.InstanceRef:
			lhs, err := RenderExpr(v.Target)
			if err != nil {
				return err
			}
			streams.assigns = append(streams.assigns,
				"`ifdef RANDOMIZE_INVALID_ASSIGN",
				"assign "+lhs+" = "+tempRef.Name+";",
				"`endif",
			)
		}
	}
	return nil
}

func lowerStop(v *lir.Stop, streams *moduleStreams) error {
	clkTok, err := RenderExpr(v.Clock)
	if err != nil {
		return err
	}
	enTok, err := RenderExpr(v.En)
	if err != nil {
		return err
	}
	call := "$finish;"
	if v.Ret != 0 {
		call = "$fatal;"
	}
	streams.appendClock(clkTok,
		"`ifndef SYNTHESIS",
		"`ifdef STOP_COND",
		"if (`STOP_COND) begin",
		"`endif",
		"if ("+enTok+") begin",
		"  "+call,
		"end",
		"`ifdef STOP_COND",
		"end",
		"`endif",
		"`endif",
	)
	return nil
}

func lowerPrint(v *lir.Print, streams *moduleStreams) error {
	clkTok, err := RenderExpr(v.Clock)
	if err != nil {
		return err
	}
	enTok, err := RenderExpr(v.En)
	if err != nil {
		return err
	}
	argToks := make([]string, len(v.Args))
	for i, a := range v.Args {
		t, err := RenderExpr(a)
		if err != nil {
			return err
		}
		argToks[i] = t
	}
	args := ""
	if len(argToks) > 0 {
		args = ", " + strings.Join(argToks, ", ")
	}
	streams.appendClock(clkTok,
		"`ifndef SYNTHESIS",
		"`ifdef PRINTF_COND",
		"if (`PRINTF_COND) begin",
		"`endif",
		"if ("+enTok+") begin",
		fmt.Sprintf("  $fwrite(32'h80000002, %q%s);", v.Fmt, args),
		"end",
		"`ifdef PRINTF_COND",
		"end",
		"`endif",
		"`endif",
	)
	return nil
}

func lowerAttach(v *lir.Attach, streams *moduleStreams) error {
	toks := make([]string, len(v.Exprs))
	for i, e := range v.Exprs {
		t, err := RenderExpr(e)
		if err != nil {
			return err
		}
		toks[i] = t
	}
	// Two assigns per unordered pair: quadratic in the attach group's size.
	for i := 0; i < len(toks); i++ {
		for j := i + 1; j < len(toks); j++ {
			streams.attachSynth = append(streams.attachSynth,
				"assign "+toks[i]+" = "+toks[j]+";",
				"assign "+toks[j]+" = "+toks[i]+";")
		}
	}
	streams.attachAlias = append(streams.attachAlias, "alias "+strings.Join(toks, " = ")+";")
	return nil
}

func lowerDefInstance(v *lir.DefInstance, streams *moduleStreams, c *lir.Circuit) error {
	target := c.GetModule(v.Module)
	if target == nil {
		return malformed("instance %q: no such module %q", v.Name, v.Module)
	}
	defname := v.Module
	var params []lir.Param
	if ext, ok := target.(*lir.ExternalModule); ok {
		defname = ext.Defname
		params = ext.Params
	}

	paramStr := ""
	if len(params) > 0 {
		parts := make([]string, len(params))
		for i, p := range params {
			parts[i] = "." + p.Name + "(" + p.Value + ")"
		}
		paramStr = " #(" + strings.Join(parts, ", ") + ")"
	}

	iw := &Writer{}
	iw.Line("%s %s (", defname+paramStr, v.Name)
	iw.Indent()
	for i, pc := range v.Ports {
		tok, err := RenderExpr(pc.Expr)
		if err != nil {
			return err
		}
		sep := ","
		if i == len(v.Ports)-1 {
			sep = ""
		}
		iw.Line(".%s(%s)%s", pc.Port, tok, sep)
	}
	iw.Dedent()
	iw.Line(");")
	streams.instDeclares = append(streams.instDeclares, iw.String())
	return nil
}

func lowerDefMemory(v *lir.DefMemory, streams *moduleStreams, nl *netlist.Netlist, ns *namespace.Namespace) error {
	out, err := lowerMemory(v.Mem, nl, ns.Fresh)
	if err != nil {
		return err
	}
	streams.declares = append(streams.declares, out.Declares...)
	streams.assigns = append(streams.assigns, out.Assigns...)
	streams.initials = append(streams.initials, out.Initials...)
	for _, clk := range out.ClockOrder {
		streams.appendClock(clk, out.ClockBodies[clk]...)
	}
	return nil
}

// randomizeAssign builds the RANDOMIZE_REG_INIT-guarded assignment lines
// for a width-bit target, concatenating as many 32-bit _RAND words as
// needed (spec.md §4.5's "append randomize-init line").
func randomizeAssign(target string, width int, freshRand func() string) []string {
	if width <= 0 {
		width = 1
	}
	words := (width + 31) / 32
	names := make([]string, words)
	for i := range names {
		names[i] = freshRand()
	}
	var concat string
	if words == 1 {
		concat = names[0]
	} else {
		parts := make([]string, words)
		for i, n := range names {
			parts[words-1-i] = n
		}
		concat = "{" + strings.Join(parts, ",") + "}"
	}
	return []string{
		"`ifdef RANDOMIZE_REG_INIT",
		fmt.Sprintf("%s = %s[%d:0];", target, concat, width-1),
		"`endif",
	}
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
