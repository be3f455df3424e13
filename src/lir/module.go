package lir

import "rtlgen/src/lir/types"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// ModuleKind discriminates Internal from External modules.
type ModuleKind uint

const (
	Internal ModuleKind = iota
	External
)

// Port is a single module port: a name, a direction and a GroundType.
// Analog-typed ports lower to Verilog inout regardless of Direction.
type Port struct {
	Name string
	Dir  types.Direction
	Typ  GroundType
}

// Param is a Verilog module instance parameter override, e.g. WIDTH=8.
type Param struct {
	Name  string
	Value string
}

// Module is the closed sum type of circuit modules: InternalModule (has a
// body to lower) or ExternalModule (a declaration only, skipped during
// lowering and referenced only where instantiated).
type Module interface {
	Kind() ModuleKind
	ModuleName() string
	ModulePorts() []*Port
}

// InternalModule has a statement-tree body that C5 lowers to Verilog.
type InternalModule struct {
	Name  string
	Ports []*Port
	Body  Statement
}

// ExternalModule has no body; DefInstance forms that target it get a
// Verilog instance of Defname with Params, but ExternalModule itself emits
// no module declaration.
type ExternalModule struct {
	Name    string
	Ports   []*Port
	Defname string
	Params  []Param
}

// ---------------------
// ----- Functions -----
// ---------------------

func (m *InternalModule) Kind() ModuleKind      { return Internal }
func (m *InternalModule) ModuleName() string    { return m.Name }
func (m *InternalModule) ModulePorts() []*Port  { return m.Ports }

func (m *ExternalModule) Kind() ModuleKind     { return External }
func (m *ExternalModule) ModuleName() string   { return m.Name }
func (m *ExternalModule) ModulePorts() []*Port { return m.Ports }

// CollectNames gathers every identifier declared in m (ports plus every
// wire/register/node/instance/memory name in its body), for seeding a
// Namespace that must never mint a name colliding with one already in use.
func CollectNames(m *InternalModule) []string {
	var names []string
	for _, p := range m.Ports {
		names = append(names, p.Name)
	}
	collectStmtNames(m.Body, &names)
	return names
}

func collectStmtNames(s Statement, names *[]string) {
	switch v := s.(type) {
	case *Block:
		for _, sub := range v.Stmts {
			collectStmtNames(sub, names)
		}
	case *DefWire:
		*names = append(*names, v.Name)
	case *DefRegister:
		*names = append(*names, v.Name)
	case *DefNode:
		*names = append(*names, v.Name)
	case *DefInstance:
		*names = append(*names, v.Name)
	case *DefMemory:
		*names = append(*names, v.Mem.Name)
	}
}
