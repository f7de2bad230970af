package main

import (
	"bytes"
	"html/template"
	"runtime"
)

var pageTemplate = template.Must(template.New("page").Parse(`<html>
    <head>
        <title>{{.Title}}</title>
    </head>
    <body>
        <h1>Glacier</h1>
        <p>Hello from Glacier</p>
        <pre>Go version: <code id="go-version">{{.GoVersion}}</code></pre>
        <pre>webview version: <code id="webview-version">{{.WebviewVersion}}</code></pre>
        <pre>glacier lib version: <code id="lib-version">{{.LibVersion}}</code></pre>
        <script>
            window.ipc.postMessage({{.Ping}});
        </script>
    </body>
</html>
`))

// pageData feeds the demo page.
type pageData struct {
	Title          string
	GoVersion      string
	WebviewVersion string
	LibVersion     string
	Ping           string
}

func newPageData(title, webviewVersion, libVersion string) pageData {
	return pageData{
		Title:          title,
		GoVersion:      runtime.Version(),
		WebviewVersion: webviewVersion,
		LibVersion:     libVersion,
		Ping:           "ping",
	}
}

func renderPage(data pageData) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
