package tre

import (
	_ "embed"
	"strings"
)

// Root command
const (
	MsgRootShort = "List a directory as a tree, with editor aliases for every entry"
)

// Flags
const (
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Path to the config file (default $XDG_CONFIG_HOME/tre/config.toml)"
	MsgFlagAll         = "Include hidden files and directories"
	MsgFlagDirectories = "List directories only"
	MsgFlagLimit       = "Descend at most N levels (0 means no limit)"
	MsgFlagColor       = "Color output: auto, always or never"
	MsgFlagEdit        = "Print entry indices and create e<N> editor aliases"
	MsgFlagEditor      = "Program the aliases open entries with (default $EDITOR)"
	MsgFlagDefaults    = "Print the built-in defaults instead"
)

// Subcommands
const (
	MsgVersionShort = "Show version information"
	MsgConfigShort  = "Print the effective configuration as TOML"
	MsgSnippetShort = "Print a shell function that loads the edit aliases"
	MsgConfigLong   = `Print the configuration tre would use, after merging the built-in
defaults, the config file and TRE_* environment variables. The output is
a valid config file.`
)

// Errors
const (
	MsgErrInvalidColor = "invalid --color value %q"
	MsgErrResolvePath  = "failed to resolve path %q"
)

var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/snippet-long.txt
	msgSnippetLongRaw string
	MsgSnippetLong    = strings.TrimSpace(msgSnippetLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
