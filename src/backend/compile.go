package backend

import (
	"fmt"
	"sync"

	"rtlgen/src/artifact"
	"rtlgen/src/irtext"
	"rtlgen/src/lir"
	"rtlgen/src/prep"
	"rtlgen/src/verilog"
)

// Compile runs C9 then C5 (which drives C1-C4 and C6) over every internal
// module of c, and optionally C8's passthrough emitter, returning one
// Verilog artifact per internal module plus, if opt.EmitLIR, one LIR
// artifact per internal module and one for the whole circuit.
//
// Modules lower independently of one another (spec.md §5): a module's
// netlist and namespace never escape its own lowering pass, so splitting
// the module list across opt.Threads workers needs no synchronization
// beyond collecting results, the same shape as vslc's GenLLVM splitting
// root.Children across worker goroutines.
func Compile(c *lir.Circuit, opt Options) ([]*artifact.Artifact, error) {
	var internal []*lir.InternalModule
	for _, m := range c.Modules {
		if im, ok := m.(*lir.InternalModule); ok {
			internal = append(internal, im)
		}
	}

	prepped := make([]*lir.InternalModule, len(internal))
	verilogText := make([]string, len(internal))
	errs := make([]error, len(internal))

	t := opt.Threads
	l := len(internal)
	if t < 1 {
		t = 1
	}
	if t > l {
		t = l
	}

	lower := func(i int) {
		pm, err := prep.Run(internal[i])
		if err != nil {
			errs[i] = fmt.Errorf("module %s: %w", internal[i].Name, err)
			return
		}
		prepped[i] = pm
		text, err := verilog.LowerModule(pm, c)
		if err != nil {
			errs[i] = fmt.Errorf("module %s: %w", pm.Name, err)
			return
		}
		verilogText[i] = text
	}

	if t <= 1 {
		for i := range internal {
			lower(i)
		}
	} else {
		n := l / t
		res := l % t
		start := 0
		end := n

		wg := sync.WaitGroup{}
		wg.Add(t)
		for i1 := 0; i1 < t; i1++ {
			if i1 < res {
				end++
			}
			go func(start, end int) {
				defer wg.Done()
				for i := start; i < end; i++ {
					lower(i)
				}
			}(start, end)
			start = end
			end += n
		}
		wg.Wait()
	}

	col := newCollector()
	for _, e := range errs {
		col.Append(e)
	}
	col.Stop()
	if failed := col.Errors(); len(failed) > 0 {
		msg := failed[0].Error()
		for _, e := range failed[1:] {
			msg += "; " + e.Error()
		}
		return nil, fmt.Errorf("%d module(s) failed to lower: %s", len(failed), msg)
	}

	artifacts := make([]*artifact.Artifact, 0, len(internal)+1)
	for i, pm := range prepped {
		artifacts = append(artifacts, &artifact.Artifact{
			Name:  pm.Name,
			Text:  verilog.Preamble + verilogText[i],
			Kind:  artifact.Verilog,
			Level: artifact.ModuleLevel,
		})
	}

	if opt.EmitLIR {
		reassembled := &lir.Circuit{Name: c.Name, Top: c.Top}
		for _, m := range c.Modules {
			if im, ok := m.(*lir.InternalModule); ok {
				for _, pm := range prepped {
					if pm.Name == im.Name {
						reassembled.Modules = append(reassembled.Modules, pm)
					}
				}
				continue
			}
			reassembled.Modules = append(reassembled.Modules, m)
		}
		artifacts = append(artifacts, irtext.EmitCircuit(reassembled))
		perModule, err := irtext.EmitAllModules(reassembled)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, perModule...)
	}

	return artifacts, nil
}
