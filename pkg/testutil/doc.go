// Package testutil provides utilities for testing tre components.
//
// Key components:
//   - NewSeededFS: in-memory filesystem seeded with files and dirs
//   - FailingFS: filesystem whose files start failing after N writes
//   - StubLookup: map-backed types.StyleLookup
//
// All test data should be defined inline, not in external files.
package testutil
