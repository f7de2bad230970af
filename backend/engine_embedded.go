//go:build !cgo && windows

package backend

import (
	"errors"

	webview "github.com/abemedia/go-webview"
	_ "github.com/abemedia/go-webview/embedded" // embed native library
)

// embeddedEngine adapts abemedia/go-webview, which loads the native library
// without cgo.
type embeddedEngine struct {
	webview.WebView
}

func (e embeddedEngine) SetSize(width, height int, hint SizeHint) {
	e.WebView.SetSize(width, height, webview.Hint(hint))
}

// DefaultEngineFactory creates a window through the embedded webview loader.
func DefaultEngineFactory(devtools bool) (Engine, error) {
	w := webview.New(devtools)
	if w == nil {
		return nil, errors.New("go-webview returned no window")
	}
	return embeddedEngine{WebView: w}, nil
}

// engineLinked reports whether this build carries a native webview.
const engineLinked = true
