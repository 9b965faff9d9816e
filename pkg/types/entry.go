package types

// Entry is one line of a tree listing. The walker computes it, the renderer
// and the alias emitter only read it.
type Entry struct {
	// Prefix is the pre-rendered tree branch text, e.g. "│   ├── "
	Prefix string
	// Name is the display label
	Name string
	// Path resolves to the filesystem object the entry represents
	Path string
}
