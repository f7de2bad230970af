//go:build !cgo && !windows

package backend

import "errors"

// DefaultEngineFactory always fails: outside Windows the native webview
// needs cgo.
func DefaultEngineFactory(devtools bool) (Engine, error) {
	return nil, errors.New("native webview unavailable: built without cgo")
}

// engineLinked reports whether this build carries a native webview.
const engineLinked = false
