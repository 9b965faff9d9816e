// Package config handles configuration management for tre.
//
// Configuration is layered with koanf: embedded defaults, then the user's
// TOML file, then TRE_* environment variables. Command-line flags are
// applied on top by the command itself. The package also resolves the
// read-only Environment (user name and temp directory) the alias emitter
// needs.
package config
