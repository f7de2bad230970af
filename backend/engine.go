package backend

// SizeHint mirrors the native size hints.
type SizeHint int

const (
	HintNone SizeHint = iota
	HintMin
	HintMax
	HintFixed
)

// Engine is the subset of a native webview that a Window drives. Methods
// other than Dispatch and Terminate must be called on the thread that runs
// the loop.
type Engine interface {
	SetTitle(title string)
	SetSize(width, height int, hint SizeHint)
	SetHtml(html string)
	Navigate(url string)
	Init(js string)
	Bind(name string, fn interface{}) error
	Run()
	Terminate()
	Dispatch(fn func())
	Destroy()
}

// EngineFactory allocates one native webview. devtools enables the
// inspector.
type EngineFactory func(devtools bool) (Engine, error)
