package backend

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridge_InstallBindsAndInjectsShim(t *testing.T) {
	engine := newFakeEngine(true)
	b := newBridge(func(string) {}, testLogger())

	require.NoError(t, b.install(engine))

	calls, _, _, _, _ := engine.snapshot()
	assert.Equal(t, []string{"bind:" + bridgeBinding, "init"}, calls)
	require.Len(t, engine.inits, 1)
	assert.Contains(t, engine.inits[0], `window["`+bridgeBinding+`"]`)
	assert.Contains(t, engine.inits[0], "postMessage")
}

func TestBridge_InstallBindError(t *testing.T) {
	engine := newFakeEngine(true)
	require.NoError(t, engine.Bind(bridgeBinding, func(string) {}))

	err := newBridge(func(string) {}, testLogger()).install(engine)
	assert.ErrorContains(t, err, "bind ipc bridge")
}

func TestBridge_SerializesDeliveries(t *testing.T) {
	var (
		active, maxActive int
		mu                sync.Mutex
	)
	b := newBridge(func(string) {
		mu.Lock()
		active++
		if active > maxActive {
			maxActive = active
		}
		mu.Unlock()

		mu.Lock()
		active--
		mu.Unlock()
	}, testLogger())

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.deliver("m")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxActive)
	assert.Equal(t, uint64(50), b.count())
}

func TestBridge_LogsHandlerPanic(t *testing.T) {
	var buf bytes.Buffer
	b := newBridge(func(string) { panic("bad message") }, NewLogger(&buf, 0, true))

	assert.NotPanics(t, func() { b.deliver("x") })
	assert.True(t, strings.Contains(buf.String(), "ipc handler panicked"), buf.String())
}
