// Package lscolors resolves path styles from an LS_COLORS value,
// the same source GNU ls and most tree listers color by.
package lscolors

import (
	"io/fs"
	"sort"
	"strings"

	"github.com/arthur-debert/tre/pkg/logging"
	"github.com/arthur-debert/tre/pkg/types"
)

// DefaultSpec is used when LS_COLORS is unset or empty. It is a subset of
// the dircolors defaults.
const DefaultSpec = "rs=0:di=01;34:ln=01;36:pi=40;33:so=01;35:do=01;35:" +
	"bd=40;33;01:cd=40;33;01:or=40;31;01:ex=01;32:" +
	"*.tar=01;31:*.tgz=01;31:*.zip=01;31:*.gz=01;31:*.bz2=01;31:*.xz=01;31:" +
	"*.jpg=01;35:*.jpeg=01;35:*.png=01;35:*.gif=01;35:*.svg=01;35"

// Indicator keys for file kinds
const (
	KeyNormal    = "no"
	KeyFile      = "fi"
	KeyDir       = "di"
	KeyLink      = "ln"
	KeyOrphan    = "or"
	KeyPipe      = "pi"
	KeySocket    = "so"
	KeyBlockDev  = "bd"
	KeyCharDev   = "cd"
	KeyExecOwner = "ex"
)

type suffixRule struct {
	suffix string
	style  *types.Style
}

// LsColors is a parsed LS_COLORS value. It implements types.StyleLookup.
type LsColors struct {
	fs       types.FS
	kinds    map[string]*types.Style
	suffixes []suffixRule
}

// Parse reads an LS_COLORS value. Malformed entries are skipped.
func Parse(spec string, fsys types.FS) *LsColors {
	l := &LsColors{
		fs:    fsys,
		kinds: make(map[string]*types.Style),
	}

	for _, item := range strings.Split(spec, ":") {
		key, value, ok := strings.Cut(item, "=")
		if !ok || key == "" {
			continue
		}
		style := ParseStyle(value)
		if strings.HasPrefix(key, "*") {
			l.suffixes = append(l.suffixes, suffixRule{suffix: strings.ToLower(key[1:]), style: style})
			continue
		}
		l.kinds[key] = style
	}

	// Longest suffix first so "*.tar.gz" beats "*.gz"
	sort.SliceStable(l.suffixes, func(i, j int) bool {
		return len(l.suffixes[i].suffix) > len(l.suffixes[j].suffix)
	})

	return l
}

// FromEnv parses $LS_COLORS, falling back to DefaultSpec
func FromEnv(getenv func(string) string, fsys types.FS) *LsColors {
	spec := getenv("LS_COLORS")
	if spec == "" {
		spec = DefaultSpec
	}
	return Parse(spec, fsys)
}

// StyleForPath implements types.StyleLookup
func (l *LsColors) StyleForPath(path string) (*types.Style, bool) {
	info, err := l.fs.Lstat(path)
	if err != nil {
		logger := logging.GetLogger("lscolors")
		logger.Trace().Err(err).Str("path", path).Msg("lstat failed, styling by name only")
		return l.styleForFile(path)
	}

	switch mode := info.Mode(); {
	case mode&fs.ModeSymlink != 0:
		if _, err := l.fs.Stat(path); err != nil {
			if style, ok := l.kinds[KeyOrphan]; ok {
				return style, true
			}
		}
		return l.kind(KeyLink)
	case mode.IsDir():
		return l.kind(KeyDir)
	case mode&fs.ModeNamedPipe != 0:
		return l.kind(KeyPipe)
	case mode&fs.ModeSocket != 0:
		return l.kind(KeySocket)
	case mode&fs.ModeCharDevice != 0:
		return l.kind(KeyCharDev)
	case mode&fs.ModeDevice != 0:
		return l.kind(KeyBlockDev)
	case mode.Perm()&0o111 != 0:
		if style, ok := l.kinds[KeyExecOwner]; ok {
			return style, true
		}
	}
	return l.styleForFile(path)
}

func (l *LsColors) styleForFile(path string) (*types.Style, bool) {
	lower := strings.ToLower(path)
	for _, rule := range l.suffixes {
		if strings.HasSuffix(lower, rule.suffix) {
			return rule.style, true
		}
	}
	if style, ok := l.kinds[KeyFile]; ok {
		return style, true
	}
	return l.kind(KeyNormal)
}

func (l *LsColors) kind(key string) (*types.Style, bool) {
	style, ok := l.kinds[key]
	return style, ok
}
