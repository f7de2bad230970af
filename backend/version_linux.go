//go:build linux && cgo

package backend

/*
#cgo pkg-config: webkit2gtk-4.0
#include <webkit2/webkit2.h>
*/
import "C"

import "fmt"

// engineVersion reports the WebKitGTK runtime webview_go renders with.
func engineVersion() string {
	return fmt.Sprintf("%d.%d.%d",
		uint(C.webkit_get_major_version()),
		uint(C.webkit_get_minor_version()),
		uint(C.webkit_get_micro_version()))
}
