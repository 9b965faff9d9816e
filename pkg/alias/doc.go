// Package alias writes the edit-alias scripts that accompany a listing.
//
// For every listed entry the emitter defines a short command e<i>, where i
// is the index printed next to the entry, that opens the entry's path with
// the configured editor. The scripts land at a fixed per-user location so a
// shell wrapper can source them right after tre exits:
//
//	POSIX:   <tmp>/tre_aliases_<user>          shell aliases
//	Windows: <tmp>\tre_aliases_<user>.psm1     PowerShell module
//	         <tmp>\tre_aliases_<user>.bat      doskey macros for cmd.exe
//
// The emitter never returns errors. A file that cannot be opened, or a line
// that cannot be written, is reported on the error stream with a "[tre]"
// prefix and that file is abandoned. Concurrent runs by the same user race
// on the same path and the last writer wins.
package alias
