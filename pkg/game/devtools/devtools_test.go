package devtools

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/game/scene"
	"escaperoom/pkg/game/state"
)

func TestWriteStateDump(t *testing.T) {
	g := state.NewGame()
	g.Inventory.Add(state.KeyItem())

	var buf bytes.Buffer
	WriteStateDump(&buf, g, 1234)
	out := buf.String()

	assert.Contains(t, out, "room: cellar")
	assert.Contains(t, out, "now_ms: 1234")
	assert.Contains(t, out, `name: "chest" rect: 100,500 150x150`)
	assert.Contains(t, out, `0: "key"`)
	assert.Contains(t, out, "--- Draw list (back to front) ---")
	assert.Contains(t, out, "sprite=bg")
}

func TestWriteDrawList(t *testing.T) {
	var buf bytes.Buffer
	WriteDrawList(&buf, []scene.Directive{
		{Kind: scene.KindRect, Bounds: geom.R(1, 2, 3, 4), Opacity: 9},
		{Kind: scene.KindText, Text: "hi", Opacity: 255},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "00 rect    1,2 3x4 a=9", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], `text="hi"`)
}

func TestDumpStateToFile(t *testing.T) {
	dir := t.TempDir()
	path, err := DumpStateToFile(state.NewGame(), 0, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "state.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "=== STATE DUMP ==="))
}

func TestWriteScreenshotHTML(t *testing.T) {
	g := state.NewGame()
	g.ShowMessage("MSG_<b>")

	var buf bytes.Buffer
	WriteScreenshotHTML(&buf, g, scene.Build(g, 0), func(key string, args ...any) string {
		return "translated " + key
	})
	out := buf.String()

	assert.Contains(t, out, "Room: cellar")
	assert.Contains(t, out, "width:1024px;height:768px")
	assert.Contains(t, out, "translated MSG_&lt;b&gt;", "text is escaped")
	assert.Contains(t, out, `class="d text right"`)
	assert.Contains(t, out, "(empty)")
}

func TestSaveScreenshotHTML(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveScreenshotHTML(state.NewGame(), 0, nil, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.FileExists(t, path)
}

func TestCSSColor(t *testing.T) {
	assert.Equal(t, "rgba(0,0,0,0.502)", cssColor(color.RGBA{0, 0, 0, 255}, 128))
	assert.Equal(t, "rgba(255,0,0,1.000)", cssColor(color.RGBA{255, 0, 0, 255}, 255))
}
