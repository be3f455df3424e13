package lir

import "fmt"

// Circuit is an ordered sequence of Modules plus the name of the top-level
// module.
type Circuit struct {
	Name    string
	Modules []Module
	Top     string
}

// TopModule returns the circuit's designated top-level module, or nil if no
// module with that name exists.
func (c *Circuit) TopModule() Module {
	return c.GetModule(c.Top)
}

// GetModule returns the named module, or nil if it does not exist.
func (c *Circuit) GetModule(name string) Module {
	for _, m := range c.Modules {
		if m.ModuleName() == name {
			return m
		}
	}
	return nil
}

// String renders a short diagnostic summary of the circuit; the full LIR
// textual form is produced by PrintCircuit.
func (c *Circuit) String() string {
	return fmt.Sprintf("circuit %s: %d module(s), top=%s", c.Name, len(c.Modules), c.Top)
}
