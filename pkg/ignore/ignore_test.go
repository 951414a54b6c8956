package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRuleSetRootGitignore(t *testing.T) {
	assert := assert.New(t)
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "*.log\nbuild/\n")

	rs, err := NewRuleSet(root, Options{})
	assert.NoError(err)

	assert.True(rs.Match("debug.log", false))
	assert.True(rs.Match("sub/debug.log", false))
	assert.True(rs.Match("build", true))
	assert.False(rs.Match("main.go", false))
	assert.False(rs.Match(".", true))
}

func TestRuleSetNestedGitignoreScopedToSubtree(t *testing.T) {
	assert := assert.New(t)
	root := t.TempDir()
	writeFile(t, root, "sub/.gitignore", "secret.txt\n")
	writeFile(t, root, "sub/secret.txt", "x")
	writeFile(t, root, "secret.txt", "x")

	rs, err := NewRuleSet(root, Options{})
	assert.NoError(err)

	assert.True(rs.Match("sub/secret.txt", false))
	assert.False(rs.Match("secret.txt", false))
}

func TestRuleSetNegationReincludes(t *testing.T) {
	assert := assert.New(t)
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "*.log\n!keep.log\n")

	rs, err := NewRuleSet(root, Options{})
	assert.NoError(err)

	assert.True(rs.Match("debug.log", false))
	assert.False(rs.Match("keep.log", false))
}

func TestRuleSetNegationFromNestedFile(t *testing.T) {
	assert := assert.New(t)
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "*.tmp\n")
	writeFile(t, root, "sub/.gitignore", "!important.tmp\n")

	rs, err := NewRuleSet(root, Options{})
	assert.NoError(err)

	assert.True(rs.Match("sub/other.tmp", false))
	assert.False(rs.Match("sub/important.tmp", false))
}

func TestRuleSetCommandLinePatternsWinLast(t *testing.T) {
	assert := assert.New(t)
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "docs/\n")

	rs, err := NewRuleSet(root, Options{Patterns: []string{"!docs/", "*.md"}})
	assert.NoError(err)

	assert.False(rs.Match("docs", true))
	assert.True(rs.Match("README.md", false))
}

func TestRuleSetGlobalFileAppliesBeforeRepoRules(t *testing.T) {
	assert := assert.New(t)
	root := t.TempDir()
	global := filepath.Join(t.TempDir(), "ignore")
	require.NoError(t, os.WriteFile(global, []byte("# comment\n\n*.bak\n"), 0o644))
	writeFile(t, root, ".gitignore", "!special.bak\n")

	rs, err := NewRuleSet(root, Options{GlobalFile: global})
	assert.NoError(err)

	assert.True(rs.Match("old.bak", false))
	// Repository rules come later, so they can re-include.
	assert.False(rs.Match("special.bak", false))
}

func TestRuleSetMissingGlobalFileFails(t *testing.T) {
	root := t.TempDir()
	_, err := NewRuleSet(root, Options{GlobalFile: filepath.Join(root, "nope")})
	assert.Error(t, err)
}

func TestRuleSetCommentAndBlankLinesSkipped(t *testing.T) {
	assert := assert.New(t)
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "# only comments\n\n   \n")

	rs, err := NewRuleSet(root, Options{})
	assert.NoError(err)
	assert.False(rs.Match("anything.txt", false))
}
