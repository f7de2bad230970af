//go:build !windows

package main

// ensureWebView2 is a no-op: the engine ships with the OS.
func ensureWebView2(string) error {
	return nil
}
