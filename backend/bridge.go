package backend

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// MessageHandler receives each string posted by embedded content.
type MessageHandler func(message string)

// bridgeBinding is the native function the content-side shim calls.
const bridgeBinding = "__glacier_ipc_post"

// bridgeScript installs window.ipc.postMessage ahead of every page load.
var bridgeScript = fmt.Sprintf(`(function () {
  var post = window[%[1]q];
  window.ipc = Object.freeze({
    postMessage: function (message) {
      post(String(message));
    }
  });
})();`, bridgeBinding)

// bridge delivers posted messages to a single handler, one at a time and in
// arrival order.
type bridge struct {
	handler MessageHandler
	logger  *slog.Logger

	// mu serializes handler calls; delivered is read without it so the
	// handler itself may ask for the count.
	mu        sync.Mutex
	delivered atomic.Uint64
}

func newBridge(handler MessageHandler, logger *slog.Logger) *bridge {
	return &bridge{handler: handler, logger: logger}
}

// install binds the native side and injects the content-side shim.
func (b *bridge) install(e Engine) error {
	if err := e.Bind(bridgeBinding, b.deliver); err != nil {
		return fmt.Errorf("bind ipc bridge: %w", err)
	}
	e.Init(bridgeScript)
	return nil
}

// deliver runs the handler for one message. A panic in the handler is logged
// and does not stop later deliveries.
func (b *bridge) deliver(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.delivered.Add(1)
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("ipc handler panicked", "message", message, "panic", r)
		}
	}()
	b.handler(message)
}

func (b *bridge) count() uint64 {
	return b.delivered.Load()
}
