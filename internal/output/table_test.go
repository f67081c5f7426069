package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableString(t *testing.T) {
	out := NewTable("FILE", "SIZE").Row("widgets.js", "1 B").String()
	assert.Contains(t, out, "FILE")
	assert.Contains(t, out, "widgets.js")
}

func TestRenderOutputFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "widgets.js")
	require.NoError(t, os.WriteFile(path, make([]byte, 2048), 0o644))

	out := RenderOutputFiles([]string{path, filepath.Join(dir, "gone.js")})
	assert.Contains(t, out, "2.0 KiB")
	assert.Contains(t, out, "gone.js")
	assert.Contains(t, out, "-")
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "512 B", humanSize(512))
	assert.Equal(t, "1.0 KiB", humanSize(1024))
	assert.Equal(t, "1.5 MiB", humanSize(1536*1024))
}
