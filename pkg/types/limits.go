package types

const (
	// DefaultMaxNodes bounds a list in the default profile.
	DefaultMaxNodes = 1 << 20

	// StrictMaxNodes is the node bound for constrained environments.
	StrictMaxNodes = 4096

	// StrictMaxArenaBytes caps an arena in the strict profile (1 MB).
	StrictMaxArenaBytes = 1 << 20

	// DefaultMaxArenaBytes caps an arena in the default profile (256 MB).
	DefaultMaxArenaBytes = 256 << 20

	// StrictLiveCellsSlack is the number of cells allowed beyond StrictMaxNodes
	// for the list header and open cursors.
	StrictLiveCellsSlack = 64
)

// Limits bounds the resources a list may consume. Zero means unbounded.
type Limits struct {
	// MaxNodes is the most nodes a list will hold. Inserts beyond it fail
	// before anything is allocated.
	MaxNodes int `yaml:"max_nodes"`

	// MaxLiveCells caps the cells outstanding from the allocator at once,
	// counting the header, nodes and cursors.
	MaxLiveCells int `yaml:"max_live_cells"`

	// MaxArenaBytes caps how far an arena may grow its region.
	MaxArenaBytes int `yaml:"max_arena_bytes"`
}

// DefaultLimits bounds the node count and arena size but not live cells.
func DefaultLimits() Limits {
	return Limits{
		MaxNodes:      DefaultMaxNodes,
		MaxArenaBytes: DefaultMaxArenaBytes,
	}
}

// RelaxedLimits removes every bound.
// Use with caution - a runaway producer can exhaust memory.
func RelaxedLimits() Limits {
	return Limits{}
}

// StrictLimits returns conservative limits for safety-critical applications.
func StrictLimits() Limits {
	return Limits{
		MaxNodes:      StrictMaxNodes,
		MaxLiveCells:  StrictMaxNodes + StrictLiveCellsSlack,
		MaxArenaBytes: StrictMaxArenaBytes,
	}
}

// Validate reports negative bounds and a live-cell cap too small to hold
// MaxNodes nodes plus the list header.
func (l Limits) Validate() error {
	switch {
	case l.MaxNodes < 0:
		return &Error{Kind: ErrKindLimit, Msg: "max_nodes is negative"}
	case l.MaxLiveCells < 0:
		return &Error{Kind: ErrKindLimit, Msg: "max_live_cells is negative"}
	case l.MaxArenaBytes < 0:
		return &Error{Kind: ErrKindLimit, Msg: "max_arena_bytes is negative"}
	case l.MaxLiveCells > 0 && l.MaxNodes > 0 && l.MaxLiveCells <= l.MaxNodes:
		return &Error{Kind: ErrKindLimit, Msg: "max_live_cells must exceed max_nodes to leave room for the header"}
	}
	return nil
}
