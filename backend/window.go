package backend

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// State is a Window's position in its lifecycle. Transitions only move
// forward: Configured, Running, Closed.
type State int

const (
	StateConfigured State = iota
	StateRunning
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConfigured:
		return "configured"
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Option customizes NewWindow.
type Option func(*windowConfig)

type windowConfig struct {
	factory    EngineFactory
	logger     *slog.Logger
	contextDir string
}

// WithEngineFactory replaces the native engine, mostly for tests.
func WithEngineFactory(factory EngineFactory) Option {
	return func(c *windowConfig) {
		c.factory = factory
	}
}

// WithLogger sets the logger for lifecycle and IPC events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *windowConfig) {
		c.logger = logger
	}
}

// WithWebContextDir overrides the profile directory derived from AppName.
func WithWebContextDir(dir string) Option {
	return func(c *windowConfig) {
		c.contextDir = dir
	}
}

// content is what the window shows once the loop starts. The last call to
// LoadHTML or LoadURL wins.
type content struct {
	value string
	isURL bool
	set   bool
}

// Window owns one native webview window.
//
// A Window is created in StateConfigured. Create starts the native loop and
// blocks until the window closes, after which the native resources are
// released and the Window is StateClosed for good. SetTitle, LoadHTML and
// LoadURL are valid until then.
type Window struct {
	id     string
	logger *slog.Logger

	mu      sync.Mutex
	state   State
	opts    WindowOptions
	content content
	engine  Engine
	bridge  *bridge
}

// NewWindow allocates a native window. A nil opts uses DefaultWindowOptions.
// Allocation failures are returned as *ConstructionError.
func NewWindow(opts *WindowOptions, options ...Option) (*Window, error) {
	var o WindowOptions
	if opts != nil {
		o = *opts
	}
	o = o.withDefaults()
	if err := o.validate(); err != nil {
		return nil, &ConstructionError{Op: "validate options", Err: err}
	}

	cfg := windowConfig{
		factory: DefaultEngineFactory,
		logger:  slog.Default(),
	}
	for _, opt := range options {
		opt(&cfg)
	}
	if cfg.contextDir == "" {
		cfg.contextDir = WebContextDir(o.AppName)
	}
	if err := prepareWebContext(cfg.contextDir); err != nil {
		return nil, &ConstructionError{Op: "prepare web context", Err: err}
	}

	if cfg.factory == nil {
		return nil, &ConstructionError{Op: "allocate engine", Err: errors.New("engine factory is nil")}
	}
	engine, err := cfg.factory(o.Devtools)
	if err != nil {
		return nil, &ConstructionError{Op: "allocate engine", Err: err}
	}
	if engine == nil {
		return nil, &ConstructionError{Op: "allocate engine", Err: errors.New("factory returned no engine")}
	}

	id := uuid.NewString()
	w := &Window{
		id:     id,
		logger: cfg.logger.With("window", id),
		state:  StateConfigured,
		opts:   o,
		engine: engine,
	}
	w.logger.Info("window created", "app", o.AppName, "devtools", o.Devtools, "context_dir", cfg.contextDir)
	return w, nil
}

// ID returns the identifier used in log records.
func (w *Window) ID() string {
	return w.id
}

// State returns the current lifecycle state.
func (w *Window) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Title returns the last title set.
func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.opts.Title
}

// Options returns a copy of the effective options.
func (w *Window) Options() WindowOptions {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.opts.withDefaults()
}

// MessagesDelivered returns how many IPC messages reached the handler.
func (w *Window) MessagesDelivered() uint64 {
	w.mu.Lock()
	b := w.bridge
	w.mu.Unlock()
	if b == nil {
		return 0
	}
	return b.count()
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case StateClosed:
		return &InvalidStateError{Op: "set title", State: w.state}
	case StateRunning:
		e := w.engine
		e.Dispatch(func() { e.SetTitle(title) })
	}
	w.opts.Title = title
	return nil
}

// LoadHTML replaces the displayed content with html. The markup is handed to
// the engine as is.
func (w *Window) LoadHTML(html string) error {
	return w.load("load html", content{value: html, set: true})
}

// LoadURL navigates the window to url.
func (w *Window) LoadURL(url string) error {
	return w.load("load url", content{value: url, isURL: true, set: true})
}

func (w *Window) load(op string, c content) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case StateClosed:
		return &InvalidStateError{Op: op, State: w.state}
	case StateRunning:
		e := w.engine
		e.Dispatch(func() { show(e, c) })
	}
	w.content = c
	return nil
}

func show(e Engine, c content) {
	switch {
	case !c.set:
	case c.isURL:
		e.Navigate(c.value)
	default:
		e.SetHtml(c.value)
	}
}

// Create registers handler as the receiver of every message posted by the
// content through window.ipc.postMessage, then runs the native loop. It
// blocks until the window is closed by the user, by Close, or by ctx being
// cancelled, and must be called from the thread that created the Window
// (the main thread on macOS).
//
// Messages are delivered once each, in post order, on the loop thread. A
// Window can only be created once.
func (w *Window) Create(ctx context.Context, handler MessageHandler) error {
	if handler == nil {
		return errors.New("create: message handler is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	if w.state != StateConfigured {
		st := w.state
		w.mu.Unlock()
		return &InvalidStateError{Op: "create", State: st}
	}
	e := w.engine
	b := newBridge(handler, w.logger)
	if err := b.install(e); err != nil {
		w.mu.Unlock()
		return err
	}
	w.bridge = b
	w.applyLocked()
	w.state = StateRunning
	w.mu.Unlock()

	stop := context.AfterFunc(ctx, w.terminate)
	w.logger.Info("run loop started", "title", w.Title())
	e.Run()
	stop()

	w.mu.Lock()
	w.releaseLocked()
	w.mu.Unlock()
	w.logger.Info("window closed", "messages", b.count())

	return ctx.Err()
}

// applyLocked pushes the configured title, size and content to the engine.
func (w *Window) applyLocked() {
	e, o := w.engine, w.opts
	e.SetTitle(o.Title)
	if o.MinWidth > 0 || o.MinHeight > 0 {
		e.SetSize(o.MinWidth, o.MinHeight, HintMin)
	}
	if o.MaxWidth > 0 || o.MaxHeight > 0 {
		e.SetSize(o.MaxWidth, o.MaxHeight, HintMax)
	}
	hint := HintNone
	if !o.IsResizable() {
		hint = HintFixed
	}
	e.SetSize(o.Width, o.Height, hint)
	show(e, w.content)
}

// Close closes the window. A running loop is asked to stop and Create
// returns; a window that never ran releases its native resources at once.
// Closing a closed window does nothing.
func (w *Window) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case StateRunning:
		w.engine.Terminate()
	case StateConfigured:
		w.releaseLocked()
		w.logger.Info("window closed before start")
	}
	return nil
}

func (w *Window) terminate() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateRunning {
		w.engine.Terminate()
	}
}

// releaseLocked destroys the engine exactly once.
func (w *Window) releaseLocked() {
	if w.state == StateClosed {
		return
	}
	w.state = StateClosed
	if w.engine != nil {
		w.engine.Destroy()
		w.engine = nil
	}
}
