// Package types holds the configuration shared by slist's packages: the
// Options that choose a backing region and the Limits that bound how much a
// list may hold.
//
// Options load from YAML so that a deployment can pin its bounds without a
// rebuild:
//
//	region: mmap
//	initial_pages: 4
//	log_level: debug
//	limits:
//	  max_nodes: 10000
//
// Fields omitted from a document keep their DefaultOptions value.
package types
