package backend

import "sync"

// collector gathers the per-module lowering errors, grounded on vslc's
// util.perror: a listener goroutine serializes writes to a shared slice.
// Compile appends each module's error after all workers have finished.
type collector struct {
	listen chan error
	stop   chan struct{}
	done   chan struct{}
	mu     sync.Mutex
	errs   []error
}

func newCollector() *collector {
	c := &collector{
		listen: make(chan error),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go c.run()
	return c
}

func (c *collector) run() {
	defer close(c.done)
	for {
		select {
		case err := <-c.listen:
			c.mu.Lock()
			c.errs = append(c.errs, err)
			c.mu.Unlock()
		case <-c.stop:
			return
		}
	}
}

// Append records err. Nil errors are ignored.
func (c *collector) Append(err error) {
	if err != nil {
		c.listen <- err
	}
}

// Stop halts the listener and waits for it to drain.
func (c *collector) Stop() {
	close(c.stop)
	<-c.done
}

// Errors returns every error recorded before Stop was called.
func (c *collector) Errors() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]error, len(c.errs))
	copy(out, c.errs)
	return out
}
