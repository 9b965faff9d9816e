package types

// Platform selects the host-specific behavior of tre, currently only the
// dialect of the generated alias scripts.
type Platform int

const (
	// PlatformPOSIX covers Linux, macOS and the BSDs
	PlatformPOSIX Platform = iota
	// PlatformWindows writes PowerShell and cmd.exe scripts
	PlatformWindows
)

// DetectPlatform maps a GOOS value to a Platform
func DetectPlatform(goos string) Platform {
	if goos == "windows" {
		return PlatformWindows
	}
	return PlatformPOSIX
}

// String returns the string representation of the platform
func (p Platform) String() string {
	switch p {
	case PlatformPOSIX:
		return "posix"
	case PlatformWindows:
		return "windows"
	default:
		return "unknown"
	}
}
