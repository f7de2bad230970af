//go:build darwin

package backend

const webkitInfoPlist = "/System/Library/Frameworks/WebKit.framework/Resources/Info.plist"

// engineVersion reports the system WebKit framework's bundle version.
func engineVersion() string {
	return readBundleVersion(webkitInfoPlist)
}
