package intcode

// Counter counts occurrences of symbols, forming a histogram.  The zero
// Counter is empty and ready for use.
type Counter struct {
	counts map[Symbol]uint64
}

// Count increments the count of sym by one.
func (c *Counter) Count(sym Symbol) {
	c.Add(sym, 1)
}

// Add increments the count of sym by times.
func (c *Counter) Add(sym Symbol, times uint64) {
	if c.counts == nil {
		c.counts = make(map[Symbol]uint64)
	}
	c.counts[sym] += times
}

// Set overwrites the count of sym.
func (c *Counter) Set(sym Symbol, count uint64) {
	if c.counts == nil {
		c.counts = make(map[Symbol]uint64)
	}
	c.counts[sym] = count
}

// Get reports the count of sym, zero if it was never counted.
func (c *Counter) Get(sym Symbol) uint64 {
	return c.counts[sym]
}

// Contains reports whether sym was ever counted.
func (c *Counter) Contains(sym Symbol) bool {
	_, found := c.counts[sym]
	return found
}

// Len reports the number of distinct symbols counted.
func (c *Counter) Len() int {
	return len(c.counts)
}
