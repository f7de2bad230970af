//go:build !windows && !darwin && !(linux && cgo)

package backend

// engineVersion has no engine to ask on this platform.
func engineVersion() string {
	return ""
}
