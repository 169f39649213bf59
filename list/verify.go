package list

import (
	"fmt"

	"github.com/joshuapare/slist/alloc"
	"github.com/joshuapare/slist/internal/format"
)

// ValidationError describes a structural problem found by Verify.
type ValidationError struct {
	Type    string
	Message string
	Ref     alloc.CellRef // cell the problem was found at (NilRef if N/A)
	Details map[string]any
}

func (e *ValidationError) Error() string {
	if e.Ref != format.NilRef {
		return fmt.Sprintf("%s at ref 0x%X: %s", e.Type, e.Ref, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Verify checks the header, that every link resolves to a node-sized cell,
// and that the chain terminates. It returns the first problem found.
func (l *List) Verify() error {
	if !l.usable() {
		return ErrNilList
	}

	b, err := l.a.Bytes(l.hdr)
	if err != nil {
		return &ValidationError{
			Type:    "Header",
			Message: fmt.Sprintf("header does not resolve: %v", err),
			Ref:     l.hdr,
		}
	}
	h := format.HeaderRecord(b)
	if !h.Valid() {
		return &ValidationError{
			Type:    "Header",
			Message: "missing list signature",
			Ref:     l.hdr,
		}
	}

	// Floyd: the hare moves two links per step, the tortoise one.
	slow, fast := h.Head(), h.Head()
	for steps := 0; ; steps++ {
		for range 2 {
			if fast == format.NilRef {
				return nil
			}
			n, err := l.a.Bytes(fast)
			if err != nil || !format.NodeRecord(n).Valid() {
				return &ValidationError{
					Type:    "Node",
					Message: "link does not resolve to a node",
					Ref:     fast,
					Details: map[string]any{"error": err, "position": steps},
				}
			}
			fast = format.NodeRecord(n).Next()
		}
		n, _ := l.a.Bytes(slow)
		slow = format.NodeRecord(n).Next()
		if slow == fast && fast != format.NilRef {
			return &ValidationError{
				Type:    "Chain",
				Message: "cycle detected",
				Ref:     fast,
				Details: map[string]any{"steps": steps},
			}
		}
	}
}
