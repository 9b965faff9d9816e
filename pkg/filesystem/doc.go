// Package filesystem provides filesystem implementations for tre.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used by the command, and an afero-backed one that
// tests use with in-memory or read-only filesystems.
package filesystem
