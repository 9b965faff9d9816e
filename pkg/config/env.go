package config

import "github.com/arthur-debert/tre/pkg/types"

// posixTempDir is where shell wrappers look for the alias file
const posixTempDir = "/tmp"

// Environment is the process environment the alias emitter depends on.
// It is resolved once at startup.
type Environment struct {
	User    string
	TempDir string
}

// ResolveEnvironment reads the user name and temp directory for platform
// through lookupEnv, which has the signature of os.LookupEnv. Unset
// variables resolve to empty strings, except the Windows temp directory
// which falls back to HOME and then the working directory. A variable set
// to the empty string counts as set.
func ResolveEnvironment(platform types.Platform, lookupEnv func(string) (string, bool)) Environment {
	getenv := func(key string) string {
		value, _ := lookupEnv(key)
		return value
	}

	if platform == types.PlatformWindows {
		tmp, ok := lookupEnv("TEMP")
		if !ok {
			tmp, ok = lookupEnv("HOME")
		}
		if !ok {
			tmp = "."
		}
		return Environment{User: getenv("USERNAME"), TempDir: tmp}
	}

	return Environment{User: getenv("USER"), TempDir: posixTempDir}
}
