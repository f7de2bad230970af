//go:build windows

package backend

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/sqweek/dialog"
	"golang.org/x/sys/windows/registry"
)

const kInstallKeyPath = "Software\\Microsoft\\EdgeUpdate\\ClientState\\"

// WebView2 channel UUIDs, most stable first
var kChannels = []struct {
	uuid, name string
}{
	{"{F3017226-FE2A-4295-8BDF-00C3A9A7E4C5}", "stable"},
	{"{2CD8A007-E189-409D-A2C8-9AF4EF3C72AA}", "beta"},
	{"{0D50BFEC-CD6A-4F9A-964C-C7416E3ACB10}", "dev"},
	{"{65C35B14-6C1D-4122-AC46-7148CC9D6497}", "canary"},
}

// ErrWebView2Declined is returned when the user refuses to install the runtime.
var ErrWebView2Declined = errors.New("WebView2 runtime installation declined")

const manualInstallHint = "\n\nPlease download and install WebView2 manually from:\nhttps://developer.microsoft.com/microsoft-edge/webview2/"

// WebView2Handler detects the WebView2 runtime and installs it when missing.
type WebView2Handler struct {
	installerData []byte
	logger        *slog.Logger
}

// NewWebView2Handler creates a handler. installerData is the bootstrapper
// executable; it may be nil when only detection is needed.
func NewWebView2Handler(installerData []byte) *WebView2Handler {
	return &WebView2Handler{
		installerData: installerData,
		logger:        slog.Default().With("component", "webview2"),
	}
}

// CheckWebView2 returns the newest compatible runtime found in the registry.
func (h *WebView2Handler) CheckWebView2() (*WebView2Version, error) {
	minimumVersion, err := parseWebView2Version(minimumWebView2Version)
	if err != nil {
		return nil, fmt.Errorf("failed to parse minimum version: %w", err)
	}

	for _, channel := range kChannels {
		keyPath := kInstallKeyPath + channel.uuid

		// HKLM and HKCU, in both the 64-bit and 32-bit registry views
		for _, rootKey := range []registry.Key{registry.LOCAL_MACHINE, registry.CURRENT_USER} {
			for _, access := range []uint32{registry.READ, registry.READ | registry.WOW64_32KEY} {
				version, err := h.checkRegistryPath(rootKey, keyPath, access)
				if err != nil {
					continue
				}
				if version.Compare(minimumVersion) >= 0 {
					version.Channel = channel.name
					return version, nil
				}
			}
		}
	}

	return nil, fmt.Errorf("WebView2 not found or older than %s", minimumWebView2Version)
}

func (h *WebView2Handler) checkRegistryPath(rootKey registry.Key, keyPath string, access uint32) (*WebView2Version, error) {
	regKey, err := registry.OpenKey(rootKey, keyPath, access)
	if err != nil {
		return nil, err
	}
	defer regKey.Close()

	// EBWebView holds the install path; its last element is the version
	embeddedEdgeSubFolder, _, err := regKey.GetStringValue("EBWebView")
	if err != nil {
		return nil, err
	}
	if embeddedEdgeSubFolder == "" {
		return nil, errors.New("empty EBWebView value")
	}

	version, err := parseWebView2Version(filepath.Base(embeddedEdgeSubFolder))
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(embeddedEdgeSubFolder); err != nil {
		return nil, fmt.Errorf("WebView2 path does not exist: %s", embeddedEdgeSubFolder)
	}

	version.Path = embeddedEdgeSubFolder
	return &version, nil
}

// RunInstaller writes the bootstrapper to a temporary directory and runs it.
func (h *WebView2Handler) RunInstaller() error {
	if len(h.installerData) == 0 {
		return errors.New("no installer data provided")
	}

	tempDir, err := os.MkdirTemp("", "glacier_webview2_*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	installerPath := filepath.Join(tempDir, "MicrosoftEdgeWebview2Setup.exe")
	if err := os.WriteFile(installerPath, h.installerData, 0755); err != nil {
		return fmt.Errorf("failed to write installer: %w", err)
	}

	h.logger.Info("running WebView2 installer", "path", installerPath)
	if err := exec.Command(installerPath).Run(); err != nil {
		return fmt.Errorf("installer failed: %w", err)
	}
	return nil
}

// HandleMissingWebView2 asks the user whether to install the runtime and
// runs the installer if they agree.
func (h *WebView2Handler) HandleMissingWebView2() error {
	message := `WebView2 Runtime is required to run this application.

WebView2 Runtime is not installed on your system. Would you like to install it now?

Click "Yes" to run the installer, or "No" to close the application.`

	if !dialog.Message("%s", message).Title("WebView2 Runtime Required").YesNo() {
		h.logger.Warn("user declined WebView2 installation")
		return ErrWebView2Declined
	}

	h.logger.Info("user accepted WebView2 installation")
	go func() {
		dialog.Message("Installing WebView2 Runtime...\n\nPlease wait while the installer completes.").
			Title("Installing WebView2").
			Info()
	}()

	if err := h.RunInstaller(); err != nil {
		h.logger.Error("WebView2 installer failed", "err", err)
		return fmt.Errorf("failed to install WebView2 Runtime: %w"+manualInstallHint, err)
	}

	if _, err := h.CheckWebView2(); err != nil {
		h.logger.Error("WebView2 not detected after install", "err", err)
		return errors.New("WebView2 installation completed, but the runtime could not be detected" + manualInstallHint)
	}

	h.logger.Info("WebView2 installation completed")
	dialog.Message("WebView2 Runtime has been installed successfully!\n\nThe application will now continue loading.").
		Title("Installation Complete").
		Info()
	return nil
}

// EnsureWebView2Available checks for the runtime and offers to install it.
func (h *WebView2Handler) EnsureWebView2Available() (*WebView2Version, error) {
	version, err := h.CheckWebView2()
	if err != nil {
		h.logger.Warn("WebView2 not found", "err", err)

		if installErr := h.HandleMissingWebView2(); installErr != nil {
			return nil, installErr
		}

		version, err = h.CheckWebView2()
		if err != nil {
			return nil, errors.New("WebView2 Runtime is still not available" + manualInstallHint)
		}
	}

	h.logger.Info("WebView2 available", "version", version.String(), "channel", version.Channel, "path", version.Path)
	return version, nil
}
