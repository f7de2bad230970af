//go:build windows

package backend

// engineVersion reports the installed WebView2 runtime.
func engineVersion() string {
	v, err := NewWebView2Handler(nil).CheckWebView2()
	if err != nil {
		return ""
	}
	return v.String()
}
