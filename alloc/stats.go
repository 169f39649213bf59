package alloc

// Stats is a snapshot of allocator bookkeeping.
type Stats struct {
	LiveCells int
	LiveBytes int64
	FreeCells int // reusable cells held in the free index (Arena only)
	FreeBytes int64
	Allocs    uint64
	Frees     uint64

	// RegionBytes is the size of the backing region (Arena only).
	RegionBytes int

	// ByClass counts live cells per Class.
	ByClass map[Class]int
}

type counters struct {
	liveCells int
	liveBytes int64
	allocs    uint64
	frees     uint64
	byClass   [classCount]int
}

func (c *counters) alloc(cls Class, size int32) {
	c.liveCells++
	c.liveBytes += int64(size)
	c.allocs++
	if int(cls) < len(c.byClass) {
		c.byClass[cls]++
	}
}

func (c *counters) free(cls Class, size int32) {
	c.liveCells--
	c.liveBytes -= int64(size)
	c.frees++
	if int(cls) < len(c.byClass) {
		c.byClass[cls]--
	}
}

func (c *counters) snapshot() Stats {
	s := Stats{
		LiveCells: c.liveCells,
		LiveBytes: c.liveBytes,
		Allocs:    c.allocs,
		Frees:     c.frees,
		ByClass:   make(map[Class]int, classCount),
	}
	for cls, n := range c.byClass {
		if n != 0 {
			s.ByClass[Class(cls)] = n
		}
	}
	return s
}
