//go:build cgo

package backend

import (
	"errors"

	webview "github.com/webview/webview_go"
)

// nativeEngine adapts webview_go. The embedded engine is WebKitGTK on Linux,
// WKWebView on macOS and WebView2 on Windows.
type nativeEngine struct {
	webview.WebView
}

func (e nativeEngine) SetSize(width, height int, hint SizeHint) {
	e.WebView.SetSize(width, height, webview.Hint(hint))
}

// DefaultEngineFactory creates a window through webview_go.
func DefaultEngineFactory(devtools bool) (Engine, error) {
	w := webview.New(devtools)
	if w == nil {
		return nil, errors.New("webview_go returned no window (is a display available?)")
	}
	return nativeEngine{WebView: w}, nil
}

// engineLinked reports whether this build carries a native webview.
const engineLinked = true
