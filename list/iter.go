package list

import (
	"iter"

	"github.com/joshuapare/slist/alloc"
	"github.com/joshuapare/slist/internal/format"
)

// All yields index/value pairs from front to back. Iteration stops silently
// on a deleted list or an unreadable node; use Values when the error
// matters. The list must not change shape during the range loop.
func (l *List) All() iter.Seq2[int, uint32] {
	return func(yield func(int, uint32) bool) {
		if !l.usable() {
			return
		}
		_ = l.walk(func(i int, _ alloc.CellRef, n format.NodeRecord) bool {
			return yield(i, n.Value())
		})
	}
}

// Values returns a copy of the sequence.
func (l *List) Values() ([]uint32, error) {
	if !l.usable() {
		return nil, ErrNilList
	}
	var out []uint32
	err := l.walk(func(_ int, _ alloc.CellRef, n format.NodeRecord) bool {
		out = append(out, n.Value())
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
