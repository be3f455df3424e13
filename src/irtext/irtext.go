// Package irtext implements the IR passthrough emitter (C8, spec.md §4.8):
// re-serializing a lowered circuit back to LIR text, either whole or one
// module at a time with its dependencies downgraded to external stubs.
package irtext

import (
	"github.com/pkg/errors"

	"rtlgen/src/artifact"
	"rtlgen/src/lir"
)

// ErrMalformedIR mirrors package verilog's sentinel of the same name: C8
// reports its failures in the emitter's Malformed-IR class (spec.md §7)
// even though it has no dependency on package verilog itself.
var ErrMalformedIR = errors.New("malformed-ir")

// EmitCircuit serializes the whole circuit as a single LIR-text artifact
// named "circuit.main".
func EmitCircuit(c *lir.Circuit) *artifact.Artifact {
	return &artifact.Artifact{
		Name:  "circuit.main",
		Text:  lir.PrintCircuit(c),
		Kind:  artifact.LIR,
		Level: artifact.CircuitLevel,
	}
}

// EmitAllModules returns one LIR-text artifact per internal module in c: the
// module's body unchanged, plus an external stub for every module it
// directly instantiates (spec.md §4.8), so each artifact is independently
// parseable.
func EmitAllModules(c *lir.Circuit) ([]*artifact.Artifact, error) {
	var out []*artifact.Artifact
	for _, m := range c.Modules {
		internal, ok := m.(*lir.InternalModule)
		if !ok {
			continue
		}
		deps, err := instancedModules(internal.Body)
		if err != nil {
			return nil, err
		}

		stubs := make([]lir.Module, 0, len(deps))
		for _, name := range deps {
			target := c.GetModule(name)
			if target == nil {
				return nil, malformed("module %q instantiates unknown module %q", internal.Name, name)
			}
			stubs = append(stubs, &lir.ExternalModule{
				Name:    target.ModuleName(),
				Ports:   target.ModulePorts(),
				Defname: target.ModuleName(),
				Params:  nil,
			})
		}

		sub := &lir.Circuit{
			Name:    c.Name,
			Modules: append(stubs, internal),
			Top:     internal.Name,
		}
		out = append(out, &artifact.Artifact{
			Name:  internal.Name,
			Text:  lir.PrintCircuit(sub),
			Kind:  artifact.LIR,
			Level: artifact.ModuleLevel,
		})
	}
	return out, nil
}

// instancedModules returns the names of every module body directly
// instantiates, order-preserving and deduplicated.
func instancedModules(body lir.Statement) ([]string, error) {
	var order []string
	seen := make(map[string]bool)
	var walk func(s lir.Statement) error
	walk = func(s lir.Statement) error {
		if s == nil {
			return nil
		}
		switch v := s.(type) {
		case *lir.Block:
			for _, sub := range v.Stmts {
				if err := walk(sub); err != nil {
					return err
				}
			}
		case *lir.DefInstance:
			if !seen[v.Module] {
				seen[v.Module] = true
				order = append(order, v.Module)
			}
		}
		return nil
	}
	if err := walk(body); err != nil {
		return nil, err
	}
	return order, nil
}

func malformed(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedIR, format, args...)
}
