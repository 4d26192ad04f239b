// Package platform classifies the host operating system and maps each
// category to an ffmpeg installation plan.
//
// Classification is a pure function of the OS identifier and the
// presence of distribution marker files, so every input maps to exactly
// one category and the resulting plan is deterministic.
package platform

import (
	"os"
	"runtime"
	"strings"
)

// Category identifies a provisioning target.
type Category string

const (
	Windows     Category = "windows"
	MacOS       Category = "macos"
	LinuxDebian Category = "linux-debian"
	LinuxArch   Category = "linux-arch"
	LinuxOther  Category = "linux-other"
	Unsupported Category = "unsupported"
)

// Distribution marker files. Presence of one of these reliably
// identifies the distribution family on Linux.
const (
	debianMarker = "/etc/debian_version"
	archMarker   = "/etc/arch-release"
)

// Classify maps an OS identifier to a Category. The identifier is
// matched case-insensitively; Linux hosts are further distinguished by
// marker files, with Debian checked first. Hosts matching neither
// marker classify as LinuxOther.
func Classify(goos string, exists func(string) bool) Category {
	switch strings.ToLower(strings.TrimSpace(goos)) {
	case "windows":
		return Windows
	case "darwin", "macos":
		return MacOS
	case "linux":
		if exists(debianMarker) {
			return LinuxDebian
		}
		if exists(archMarker) {
			return LinuxArch
		}
		return LinuxOther
	default:
		return Unsupported
	}
}

// Detect classifies the running host.
func Detect() Category {
	return Classify(runtime.GOOS, fileExists)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
