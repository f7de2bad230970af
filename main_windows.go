//go:build windows

package main

import (
	"fmt"
	"os"

	"glacier/backend"
)

// ensureWebView2 offers to install the WebView2 runtime when it is missing.
// installerPath points at MicrosoftEdgeWebview2Setup.exe; without it the
// user is sent to the manual download.
func ensureWebView2(installerPath string) error {
	var installer []byte
	if installerPath != "" {
		b, err := os.ReadFile(installerPath)
		if err != nil {
			return fmt.Errorf("failed to read WebView2 installer: %w", err)
		}
		installer = b
	}

	handler := backend.NewWebView2Handler(installer)
	if _, err := handler.EnsureWebView2Available(); err != nil {
		return fmt.Errorf("WebView2 runtime is not available: %w", err)
	}
	return nil
}
