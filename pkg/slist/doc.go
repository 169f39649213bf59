// Package slist assembles a ready-to-use list from Options: it picks the
// backing region, layers the configured limits over the allocator, binds the
// allocate and release routines, and creates the list.
//
// Callers who want to supply their own allocator use the list and alloc
// packages directly; this package is the short path for everyone else.
//
//	st, err := slist.New(types.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer st.Close()
//	st.List().InsertEnd(5)
package slist
