package backend

import (
	"fmt"
	"regexp"
	"sync"
)

// postPattern finds the messages a loaded page would post on load.
var postPattern = regexp.MustCompile(`postMessage\('([^']*)'\)`)

// fakeEngine stands in for the native webview. Run plays the posts found in
// the loaded HTML through the bound bridge function, then either returns
// (autoClose) or waits for Terminate.
type fakeEngine struct {
	autoClose bool

	mu        sync.Mutex
	calls     []string
	title     string
	html      string
	url       string
	inits     []string
	bindings  map[string]interface{}
	destroyed int

	ran        chan struct{}
	terminated chan struct{}
	termOnce   sync.Once
}

func newFakeEngine(autoClose bool) *fakeEngine {
	return &fakeEngine{
		autoClose:  autoClose,
		bindings:   make(map[string]interface{}),
		ran:        make(chan struct{}),
		terminated: make(chan struct{}),
	}
}

func (f *fakeEngine) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeEngine) SetTitle(title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.title = title
	f.record("title:%s", title)
}

func (f *fakeEngine) SetSize(width, height int, hint SizeHint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("size:%dx%d:%d", width, height, hint)
}

func (f *fakeEngine) SetHtml(html string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.html = html
	f.record("html")
}

func (f *fakeEngine) Navigate(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.url = url
	f.record("navigate:%s", url)
}

func (f *fakeEngine) Init(js string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inits = append(f.inits, js)
	f.record("init")
}

func (f *fakeEngine) Bind(name string, fn interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bindings[name]; ok {
		return fmt.Errorf("binding %q already exists", name)
	}
	f.bindings[name] = fn
	f.record("bind:%s", name)
	return nil
}

func (f *fakeEngine) Run() {
	f.mu.Lock()
	f.record("run")
	html := f.html
	post, _ := f.bindings[bridgeBinding].(func(string))
	f.mu.Unlock()
	close(f.ran)

	if post != nil {
		for _, m := range postPattern.FindAllStringSubmatch(html, -1) {
			post(m[1])
		}
	}
	if f.autoClose {
		return
	}
	<-f.terminated
}

func (f *fakeEngine) Terminate() {
	f.termOnce.Do(func() { close(f.terminated) })
}

func (f *fakeEngine) Dispatch(fn func()) {
	fn()
}

func (f *fakeEngine) Destroy() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroyed++
	f.record("destroy")
}

func (f *fakeEngine) snapshot() (calls []string, title, html, url string, destroyed int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...), f.title, f.html, f.url, f.destroyed
}

// post simulates content calling window.ipc.postMessage while running.
func (f *fakeEngine) post(message string) {
	f.mu.Lock()
	fn, _ := f.bindings[bridgeBinding].(func(string))
	f.mu.Unlock()
	fn(message)
}
