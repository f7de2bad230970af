package backend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWebviewVersion(t *testing.T) {
	v := GetWebviewVersion()
	require.NotEmpty(t, v)
	for range 3 {
		assert.Equal(t, v, GetWebviewVersion())
	}
}

func TestGetLibVersion(t *testing.T) {
	v := GetLibVersion()
	require.NotEmpty(t, v)
	assert.Equal(t, v, GetLibVersion())

	saved := Version
	t.Cleanup(func() { Version = saved })
	Version = ""
	assert.Equal(t, "dev", GetLibVersion())
}

func TestParseWebView2Version(t *testing.T) {
	v, err := parseWebView2Version("120.0.2210.91")
	require.NoError(t, err)
	assert.Equal(t, WebView2Version{Major: 120, Minor: 0, Build: 2210, Patch: 91}, v)
	assert.Equal(t, "120.0.2210.91", v.String())

	for _, bad := range []string{"", "1.2.3", "1.2.3.x", "a.0.0.0", "1.-2.3.4"} {
		_, err := parseWebView2Version(bad)
		assert.Error(t, err, bad)
	}
}

func TestWebView2Version_Compare(t *testing.T) {
	minimum, err := parseWebView2Version(minimumWebView2Version)
	require.NoError(t, err)

	tests := []struct {
		version string
		want    int
	}{
		{"86.0.616.0", 0},
		{"86.0.616.1", 1},
		{"86.0.615.99", -1},
		{"85.9.999.999", -1},
		{"120.0.0.0", 1},
	}
	for _, tt := range tests {
		v, err := parseWebView2Version(tt.version)
		require.NoError(t, err)
		assert.Equal(t, tt.want, v.Compare(minimum), tt.version)
	}
}

func TestResolveWebviewVersion(t *testing.T) {
	none := func() string { return "" }
	engine := func() string { return "2.44.1" }
	module := func() string { return "v0.0.0-20240831120633-6173450d4dd6" }

	tests := []struct {
		name   string
		engine func() string
		linked bool
		module func() string
		want   string
	}{
		{"engine reports itself", engine, true, module, "2.44.1"},
		{"binding module when engine is silent", none, true, module, "v0.0.0-20240831120633-6173450d4dd6"},
		{"go.mod pin as last resort", none, true, none, fallbackWebviewVersion},
		{"no engine compiled in", none, false, module, unavailableWebviewVersion},
		{"no engine ignores system runtime", engine, false, module, unavailableWebviewVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveWebviewVersion(tt.engine, tt.linked, tt.module))
		})
	}
}

func TestGetWebviewVersion_WithoutEngine(t *testing.T) {
	if engineLinked {
		t.Skip("native engine linked into this build")
	}
	assert.Equal(t, unavailableWebviewVersion, GetWebviewVersion())
}

func TestReadBundleVersion(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		return path
	}

	full := write("full.plist", `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleIdentifier</key>
	<string>com.apple.WebKit</string>
	<key>CFBundleShortVersionString</key>
	<string>19618.2.12</string>
	<key>CFBundleVersion</key>
	<string>19618.2.12.11.6</string>
</dict>
</plist>`)
	assert.Equal(t, "19618.2.12", readBundleVersion(full))

	buildOnly := write("build.plist", `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>CFBundleVersion</key>
	<string>605.1.15</string>
</dict>
</plist>`)
	assert.Equal(t, "605.1.15", readBundleVersion(buildOnly))

	assert.Empty(t, readBundleVersion(filepath.Join(dir, "missing.plist")))
	assert.Empty(t, readBundleVersion(write("truncated.plist", "<?xml version=\"1.0\"?><plist version=\"1.0\"><dict><key>CFBundleVersion</key>")))
}
