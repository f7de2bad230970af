package backend

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// webview2DataEnv is read by the WebView2 loader when the environment is
// created, so it has to be set before the engine is allocated.
const webview2DataEnv = "WEBVIEW2_USER_DATA_FOLDER"

// WebContextDir returns the profile directory used for an application:
// cookies, local storage and caches live there.
func WebContextDir(appName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, appName)
	if name == "" {
		name = defaultAppName
	}
	return filepath.Join(os.TempDir(), name)
}

func prepareWebContext(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create web context directory: %w", err)
	}
	if runtime.GOOS == "windows" {
		if err := os.Setenv(webview2DataEnv, dir); err != nil {
			return fmt.Errorf("failed to set %s: %w", webview2DataEnv, err)
		}
	}
	return nil
}
