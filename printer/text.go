package printer

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/slist/list"
)

const EmptyListSymbol = "(empty)"

// printText prints the chain as "[0] 5 -> [1] 6".
func (p *Printer) printText(l *list.List, vals []uint32) error {
	if p.opts.PrintMetadata {
		// Counts get digit grouping so large lists stay readable.
		mp := message.NewPrinter(language.English)
		if _, err := mp.Fprintf(p.writer, "list: %d nodes, generation %d\n", len(vals), l.Generation()); err != nil {
			return err
		}
	}

	if len(vals) == 0 {
		_, err := fmt.Fprintln(p.writer, EmptyListSymbol)
		return err
	}

	vals, truncated := p.shown(vals)
	parts := make([]string, 0, len(vals)+1)
	for i, v := range vals {
		parts = append(parts, fmt.Sprintf("[%d] %d", i, v))
	}
	if truncated {
		parts = append(parts, Ellipsis)
	}
	_, err := fmt.Fprintln(p.writer, strings.Join(parts, " -> "))
	return err
}
