package testutil

import "github.com/arthur-debert/tre/pkg/types"

// StubLookup is a types.StyleLookup backed by a map of path to style
type StubLookup map[string]*types.Style

// StyleForPath implements types.StyleLookup
func (s StubLookup) StyleForPath(path string) (*types.Style, bool) {
	style, ok := s[path]
	return style, ok
}
