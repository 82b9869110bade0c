// Package session holds the viewer's single source of truth: the
// loaded record store plus the filter, search, and navigation state
// derived over it.
//
// # State model
//
// A Session owns four pieces of state:
//
//   - the severity threshold (Debug shows everything)
//   - the visible subset, an ordered list of store indices recomputed
//     from the full store on every filter change — after a range query
//     it is a multiset, the same record may appear more than once
//   - the cursor, a 0-based index into the visible subset
//   - the active search terms, an insertion-ordered set of lowercase
//     strings
//
// Every operation is a complete, synchronous state transition; the UI
// renders from Snapshot, which is a value copy, so rendering never
// observes a partial update.
//
// # Invariants
//
// The visible subset always preserves store order. Whenever it is
// non-empty the cursor satisfies 0 <= cursor < len(visible); when it is
// empty the cursor is pinned to 0 and never dereferenced. Operations
// that fail (invalid level index, negative window) leave the session
// untouched.
//
// # Search semantics
//
// Search terms accumulate across commands and only affect rendering:
// Highlights computes non-overlapping case-insensitive spans per
// message, and the visible subset and cursor are never changed by a
// search. Reset drops the terms when Options.ClearTermsOnReset is set.
package session
