package scanner

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform is a host OS family with its own native inventory tool.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformLinux            // lsblk
	PlatformWindows          // diskpart
	PlatformDarwin           // diskutil
	PlatformHosted           // no native tool, e.g. js/wasm
)

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case PlatformLinux:
		return "linux"
	case PlatformWindows:
		return "windows"
	case PlatformDarwin:
		return "darwin"
	case PlatformHosted:
		return "hosted"
	default:
		return "unknown"
	}
}

// Tool returns the native inventory tool the platform is read with.
func (p Platform) Tool() string {
	switch p {
	case PlatformLinux:
		return "lsblk"
	case PlatformWindows:
		return "diskpart"
	case PlatformDarwin:
		return "diskutil"
	default:
		return "none"
	}
}

// PlatformForGOOS maps a GOOS value to its platform family.
func PlatformForGOOS(goos string) (Platform, error) {
	switch goos {
	case "linux", "android":
		return PlatformLinux, nil
	case "windows":
		return PlatformWindows, nil
	case "darwin":
		return PlatformDarwin, nil
	case "js", "wasip1":
		return PlatformHosted, nil
	default:
		return PlatformUnknown, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// DetectPlatform returns the platform of the running host.
func DetectPlatform() (Platform, error) {
	return PlatformForGOOS(runtime.GOOS)
}

// ParsePlatform converts a platform name to a Platform. "auto" and the
// empty string detect the running host.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DetectPlatform()
	case "linux":
		return PlatformLinux, nil
	case "windows":
		return PlatformWindows, nil
	case "darwin", "macos":
		return PlatformDarwin, nil
	case "hosted":
		return PlatformHosted, nil
	default:
		return PlatformUnknown, fmt.Errorf("%w: %q (valid: auto, linux, windows, darwin, hosted)", ErrUnsupportedPlatform, s)
	}
}
