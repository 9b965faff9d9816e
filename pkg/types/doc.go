// Package types defines the data shared by tre's listing pipeline: the
// entries produced by the walker, the per-path styles produced by the style
// lookup, the filesystem abstraction and the host platform flag.
package types
