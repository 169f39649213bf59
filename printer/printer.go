package printer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/slist/list"
)

const (
	DefaultMaxItems = 0
	Ellipsis        = "..."
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for a Format other than text or json.
var ErrUnknownFormat = errors.New("printer: unknown format")

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// MaxItems limits how many nodes are shown. Longer lists end in an
	// ellipsis (text) or set "truncated" (json). Set to 0 for no limit.
	// Default: 0
	MaxItems int

	// PrintMetadata adds a header line with the node count and the list's
	// generation (text format only).
	// Default: false
	PrintMetadata bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:        FormatText,
		MaxItems:      DefaultMaxItems,
		PrintMetadata: false,
	}
}

// Printer handles formatted output of lists.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(l)
func New(w io.Writer, opts Options) *Printer {
	return &Printer{
		writer: w,
		opts:   opts,
	}
}

// Print writes l followed by a newline.
func (p *Printer) Print(l *list.List) error {
	vals, err := l.Values()
	if err != nil {
		return err
	}

	switch p.opts.Format {
	case FormatText, "":
		return p.printText(l, vals)
	case FormatJSON:
		return p.printJSON(vals)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, p.opts.Format)
	}
}

// Print writes l to w using opts.
func Print(w io.Writer, l *list.List, opts Options) error {
	return New(w, opts).Print(l)
}

// Sprint renders l as a string using opts, without the trailing newline.
func Sprint(l *list.List, opts Options) (string, error) {
	var sb strings.Builder
	if err := Print(&sb, l, opts); err != nil {
		return "", err
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// shown returns the prefix of vals to print and whether anything was cut.
func (p *Printer) shown(vals []uint32) ([]uint32, bool) {
	if p.opts.MaxItems > 0 && len(vals) > p.opts.MaxItems {
		return vals[:p.opts.MaxItems], true
	}
	return vals, false
}
