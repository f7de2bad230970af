package backend

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// minimumWebView2Version is the oldest runtime webview_go works with.
const minimumWebView2Version = "86.0.616.0"

// WebView2Version is a four-part WebView2 runtime version.
type WebView2Version struct {
	Major, Minor, Build, Patch int
	Channel                    string
	Path                       string
}

// String returns the version as a string
func (v WebView2Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Patch)
}

// Compare returns -1, 0 or 1 as v is older than, equal to or newer than
// other. Channel and Path are ignored.
func (v WebView2Version) Compare(other WebView2Version) int {
	if c := cmp.Compare(v.Major, other.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Build, other.Build); c != 0 {
		return c
	}
	return cmp.Compare(v.Patch, other.Patch)
}

// parseWebView2Version parses a version string like "86.0.616.0"
func parseWebView2Version(versionStr string) (WebView2Version, error) {
	parts := strings.Split(versionStr, ".")
	if len(parts) != 4 {
		return WebView2Version{}, fmt.Errorf("invalid version format: %s", versionStr)
	}

	var nums [4]int
	for i, name := range []string{"major", "minor", "build", "patch"} {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return WebView2Version{}, fmt.Errorf("invalid %s version: %s", name, parts[i])
		}
		nums[i] = n
	}

	return WebView2Version{Major: nums[0], Minor: nums[1], Build: nums[2], Patch: nums[3]}, nil
}
