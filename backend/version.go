package backend

import (
	"runtime/debug"
	"sync"
)

// Version is the version of this library. Release builds override it with
// -ldflags "-X glacier/backend.Version=...".
var Version = "0.1.0"

// fallbackWebviewVersion matches the webview_go requirement in go.mod. It is
// only reported when an engine is linked but neither the engine nor the
// build info yields a version.
const fallbackWebviewVersion = "v0.0.0-20240831120633-6173450d4dd6"

// unavailableWebviewVersion is reported when the binary has no native engine.
const unavailableWebviewVersion = "unavailable"

var webviewModules = []string{
	"github.com/webview/webview_go",
	"github.com/abemedia/go-webview",
}

// GetLibVersion returns the version of this library.
func GetLibVersion() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// GetWebviewVersion returns the version of the embedded webview engine:
// WebKitGTK on Linux, WebKit on macOS, the WebView2 runtime on Windows. It
// needs no window and always returns the same non-empty string.
func GetWebviewVersion() string {
	return webviewVersion()
}

var webviewVersion = sync.OnceValue(func() string {
	return resolveWebviewVersion(engineVersion, engineLinked, linkedModuleVersion)
})

// resolveWebviewVersion prefers the engine's own version, then the linked
// binding's module version, then the go.mod pin. Without a linked engine
// there is nothing to report.
func resolveWebviewVersion(engine func() string, linked bool, module func() string) string {
	if !linked {
		return unavailableWebviewVersion
	}
	if v := engine(); v != "" {
		return v
	}
	if v := module(); v != "" {
		return v
	}
	return fallbackWebviewVersion
}

// linkedModuleVersion looks up the webview binding compiled into the binary.
func linkedModuleVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, dep := range info.Deps {
		for _, path := range webviewModules {
			if dep.Path != path {
				continue
			}
			if dep.Replace != nil && dep.Replace.Version != "" {
				return dep.Replace.Version
			}
			return dep.Version
		}
	}
	return ""
}
