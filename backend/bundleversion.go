package backend

import (
	"os"

	"howett.net/plist"
)

// bundleInfo holds the version keys of an Info.plist.
type bundleInfo struct {
	ShortVersion string `plist:"CFBundleShortVersionString"`
	Version      string `plist:"CFBundleVersion"`
}

// readBundleVersion returns the short version of the bundle described by
// the Info.plist at path, or "" when it cannot be read.
func readBundleVersion(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var info bundleInfo
	if _, err := plist.Unmarshal(raw, &info); err != nil {
		return ""
	}
	if info.ShortVersion != "" {
		return info.ShortVersion
	}
	return info.Version
}
