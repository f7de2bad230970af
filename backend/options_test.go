package backend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowOptions_WithDefaults(t *testing.T) {
	resizable := false
	o := WindowOptions{Title: "Mine", Height: 300, Resizable: &resizable}.withDefaults()

	assert.Equal(t, "Glacier App", o.AppName)
	assert.Equal(t, "Mine", o.Title)
	assert.Equal(t, 800, o.Width)
	assert.Equal(t, 300, o.Height)
	assert.False(t, o.IsResizable())

	resizable = true
	assert.False(t, o.IsResizable(), "defaults copy the Resizable pointer")
}

func TestWindowOptions_Validate(t *testing.T) {
	assert.NoError(t, DefaultWindowOptions().validate())
	assert.NoError(t, WindowOptions{MinWidth: 100, MaxWidth: 100}.validate())
	assert.Error(t, WindowOptions{MaxHeight: -1}.validate())
	assert.Error(t, WindowOptions{MinHeight: 500, MaxHeight: 400}.validate())
}

func TestWebContextDir(t *testing.T) {
	assert.Equal(t, filepath.Join(os.TempDir(), "Glacier App"), WebContextDir("Glacier App"))
	assert.Equal(t, filepath.Join(os.TempDir(), "a_b_c"), WebContextDir("a/b:c"))
	assert.Equal(t, filepath.Join(os.TempDir(), "Glacier App"), WebContextDir(""))
}

func TestPrepareWebContext(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profile")
	require.NoError(t, prepareWebContext(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
