package types

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RegionKind selects what backs a list's cells.
type RegionKind string

const (
	// RegionHeap is an arena over a Go-allocated byte slice.
	RegionHeap RegionKind = "heap"

	// RegionMmap is an arena over anonymous mmap'd memory.
	RegionMmap RegionKind = "mmap"

	// RegionHandles gives every cell its own allocation behind a handle table.
	RegionHandles RegionKind = "handles"
)

const (
	DefaultInitialPages = 1
	DefaultGrowPages    = 1
	DefaultLogLevel     = ""
)

// Options configures a Store.
type Options struct {
	// Region selects the cell backing.
	// Default: RegionHeap
	Region RegionKind `yaml:"region"`

	// InitialPages is how many 4 KB pages an arena maps up front. Zero maps
	// lazily on the first allocation.
	// Default: 1
	InitialPages int `yaml:"initial_pages"`

	// GrowPages is the minimum number of pages an arena adds when it runs out.
	// Default: 1
	GrowPages int `yaml:"grow_pages"`

	// LogLevel is the allocator trace level (logrus level names). Empty
	// leaves the level as SLIST_LOG_ALLOC set it.
	// Default: ""
	LogLevel string `yaml:"log_level"`

	// Limits bounds the list and its allocator.
	Limits Limits `yaml:"limits"`
}

// DefaultOptions returns a heap arena with DefaultLimits.
func DefaultOptions() Options {
	return Options{
		Region:       RegionHeap,
		InitialPages: DefaultInitialPages,
		GrowPages:    DefaultGrowPages,
		LogLevel:     DefaultLogLevel,
		Limits:       DefaultLimits(),
	}
}

// Validate checks the region kind, page counts and limits.
func (o Options) Validate() error {
	switch o.Region {
	case RegionHeap, RegionMmap, RegionHandles:
	default:
		return &Error{Kind: ErrKindConfig, Msg: fmt.Sprintf("unknown region %q", o.Region)}
	}
	if o.InitialPages < 0 {
		return &Error{Kind: ErrKindConfig, Msg: "initial_pages is negative"}
	}
	if o.GrowPages < 0 {
		return &Error{Kind: ErrKindConfig, Msg: "grow_pages is negative"}
	}
	return o.Limits.Validate()
}

// ParseOptions decodes a YAML document over DefaultOptions and validates the
// result.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, &Error{Kind: ErrKindConfig, Msg: "parse options", Err: err}
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// LoadOptions reads and parses the YAML file at path.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, &Error{Kind: ErrKindConfig, Msg: "read options", Err: err}
	}
	return ParseOptions(data)
}
