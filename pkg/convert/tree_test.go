package convert

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"totxt/pkg/ignore"
)

func TestRenderTree(t *testing.T) {
	assert := assert.New(t)
	root := t.TempDir()
	writeFile(t, root, "b.txt", []byte("b\n"))
	writeFile(t, root, "a.txt", []byte("a\n"))
	writeFile(t, root, "sub/inner.txt", []byte("inner\n"))
	writeFile(t, root, "node_modules/dep.js", []byte("dep\n"))
	writeFile(t, root, ".gitignore", []byte("*.log\n"))
	writeFile(t, root, "debug.log", []byte("noise\n"))

	rules, err := ignore.NewRuleSet(root, ignore.Options{})
	require.NoError(t, err)

	tree, err := RenderTree(root, rules, zap.NewNop())
	require.NoError(t, err)

	assert.True(strings.HasPrefix(tree, filepath.Base(root)+"/\n"))
	assert.Contains(tree, "├── sub/")
	assert.Contains(tree, "│   └── inner.txt")
	assert.Contains(tree, "a.txt")
	assert.Contains(tree, "b.txt")
	assert.NotContains(tree, "node_modules")
	assert.NotContains(tree, "debug.log")

	// Directories sort before files.
	assert.Less(strings.Index(tree, "sub/"), strings.Index(tree, "a.txt"))
}
